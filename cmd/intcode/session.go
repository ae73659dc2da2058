package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/reusee/intcode/consoles"
	"github.com/reusee/intcode/intcode"
	"github.com/reusee/intcode/intconfigs"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/pipelines"
	"github.com/reusee/intcode/programs"
)

var ErrNoProgram = errors.New("no program: use 'program <path>' or set program in intcode.cue")

// session holds the program and the machine shared by queued actions.
type session struct {
	programPath   intconfigs.ProgramPath
	inputs        intconfigs.Inputs
	phaseSet      intconfigs.PhaseSet
	output        consoles.Output
	logger        logs.Logger
	runConsole    consoles.RunConsole
	findMaxSignal pipelines.FindMaxSignal

	program []int64
	machine *intcode.Machine
}

func (s *session) loadProgram() ([]int64, error) {
	if s.program != nil {
		return s.program, nil
	}
	if s.programPath == "" {
		return nil, ErrNoProgram
	}
	program, err := programs.Load(string(s.programPath))
	if err != nil {
		return nil, err
	}
	s.logger.Debug("program loaded",
		"path", s.programPath,
		"words", len(program),
	)
	s.program = program
	return program, nil
}

// getMachine returns the session machine, creating it with the configured
// inputs queued on first use.
func (s *session) getMachine() (*intcode.Machine, error) {
	if s.machine != nil {
		return s.machine, nil
	}
	program, err := s.loadProgram()
	if err != nil {
		return nil, err
	}
	m := intcode.New(program)
	m.Name = strings.TrimSuffix(
		filepath.Base(string(s.programPath)),
		filepath.Ext(string(s.programPath)),
	)
	m.Logger = s.logger.With("machine", m.Name)
	m.Feed(s.inputs...)
	s.machine = m
	return m, nil
}

func (s *session) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(s.output, format, args...)
	return err
}
