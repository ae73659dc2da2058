package main

import (
	"context"

	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/debugs"
	"github.com/reusee/intcode/pipelines"
	"github.com/reusee/intcode/programs"
	"github.com/reusee/intcode/searches"
)

type action func(ctx context.Context, s *session) error

// actions run in command line order after all arguments are parsed
var actions []action

func queue(fn action) {
	actions = append(actions, fn)
}

var doTap = cmds.Switch("tap")

func init() {

	cmds.Define("run", cmds.Func(func() {
		queue(runMachine)
	}).Desc("run the program to halt, reading inputs from stdin"))

	cmds.Define("patch", cmds.Func(func(addr int64, value int64) {
		queue(func(ctx context.Context, s *session) error {
			return patch(ctx, s, addr, value)
		})
	}).Desc("write value at addr before running"))

	cmds.Define("peek", cmds.Func(func(addr int64) {
		queue(func(ctx context.Context, s *session) error {
			return peek(ctx, s, addr)
		})
	}).Desc("print the word at addr"))

	cmds.Define("dump", cmds.Func(func() {
		queue(dump)
	}).Desc("print the whole memory"))

	cmds.Define("eval", cmds.Func(func(expr string) {
		queue(func(ctx context.Context, s *session) error {
			return eval(ctx, s, expr)
		})
	}).Desc("evaluate a starlark expression over the machine state"))

	cmds.Define("search", cmds.Func(func(target int64) {
		queue(func(ctx context.Context, s *session) error {
			return search(ctx, s, target)
		})
	}).Desc("find the noun and verb producing target at address 0"))

	cmds.Define("amplify", cmds.Func(func() {
		queue(amplify)
	}).Desc("run an amplifier pipeline with the phases in order, seeded with the first input"))

	cmds.Define("max-signal", cmds.Func(func() {
		queue(maxSignal)
	}).Desc("find the phase ordering giving the highest signal"))

}

func runMachine(ctx context.Context, s *session) error {
	m, err := s.getMachine()
	if err != nil {
		return err
	}
	return s.runConsole(ctx, m)
}

func patch(ctx context.Context, s *session, addr int64, value int64) error {
	m, err := s.getMachine()
	if err != nil {
		return err
	}
	return searches.Patch(m, addr, value)
}

func peek(ctx context.Context, s *session, addr int64) error {
	m, err := s.getMachine()
	if err != nil {
		return err
	}
	value, err := m.Memory.Load(addr)
	if err != nil {
		return err
	}
	return s.printf("%d\n", value)
}

func dump(ctx context.Context, s *session) error {
	m, err := s.getMachine()
	if err != nil {
		return err
	}
	return s.printf("%s\n", programs.Format(m.Memory))
}

func eval(ctx context.Context, s *session, expr string) error {
	m, err := s.getMachine()
	if err != nil {
		return err
	}
	result, err := debugs.Eval(expr, debugs.Globals(m))
	if err != nil {
		return err
	}
	return s.printf("%s\n", result)
}

func search(ctx context.Context, s *session, target int64) error {
	program, err := s.loadProgram()
	if err != nil {
		return err
	}
	noun, verb, err := searches.NounVerb(program, target)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "found",
		"noun", noun,
		"verb", verb,
	)
	return s.printf("%d\n", searches.Answer(noun, verb))
}

func amplify(ctx context.Context, s *session) error {
	program, err := s.loadProgram()
	if err != nil {
		return err
	}
	var seed int64
	if len(s.inputs) > 0 {
		seed = s.inputs[0]
	}
	signal, err := pipelines.Amplify(program, s.phaseSet, seed)
	if err != nil {
		return err
	}
	return s.printf("%d\n", signal)
}

func maxSignal(ctx context.Context, s *session) error {
	program, err := s.loadProgram()
	if err != nil {
		return err
	}
	result, err := s.findMaxSignal(ctx, program, s.phaseSet)
	if err != nil {
		return err
	}
	return s.printf("%d %s\n", result.Signal, programs.Format(result.Phases))
}
