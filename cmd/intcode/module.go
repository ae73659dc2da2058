package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/intcode/consoles"
	"github.com/reusee/intcode/debugs"
	"github.com/reusee/intcode/intconfigs"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/pipelines"
)

type Module struct {
	dscope.Module
	Configs   intconfigs.Module
	Consoles  consoles.Module
	Pipelines pipelines.Module
	Debugs    debugs.Module
}

func (Module) Session(
	programPath intconfigs.ProgramPath,
	inputs intconfigs.Inputs,
	phaseSet intconfigs.PhaseSet,
	output consoles.Output,
	logger logs.Logger,
	runConsole consoles.RunConsole,
	findMaxSignal pipelines.FindMaxSignal,
) *session {
	return &session{
		programPath:   programPath,
		inputs:        inputs,
		phaseSet:      phaseSet,
		output:        output,
		logger:        logger,
		runConsole:    runConsole,
		findMaxSignal: findMaxSignal,
	}
}
