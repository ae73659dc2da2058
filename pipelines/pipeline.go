package pipelines

import (
	"fmt"

	"github.com/reusee/intcode/intcode"
	"github.com/reusee/intcode/logs"
)

// Pipeline chains machines: each output becomes the next machine's input,
// and the last output feeds back to the first.
type Pipeline struct {
	Machines []*intcode.Machine
	Logger   logs.Logger
}

func New(program []int64, phases []int64) (*Pipeline, error) {
	if len(phases) == 0 {
		return nil, ErrEmptyPipeline
	}
	ret := &Pipeline{
		Machines: make([]*intcode.Machine, 0, len(phases)),
	}
	for i, phase := range phases {
		m, err := intcode.NewWithPhase(program, phase)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		m.Name = fmt.Sprintf("stage%d", i)
		ret.Machines = append(ret.Machines, m)
	}
	return ret, nil
}

// Run drives the machines round-robin until all of them halt, and returns
// the last signal. Running a pipeline that already halted fails with
// intcode.ErrHalted.
func (p *Pipeline) Run(signal int64) (int64, error) {
	if len(p.Machines) == 0 {
		return 0, ErrEmptyPipeline
	}
	for round := 0; ; round++ {
		live := 0
		for _, m := range p.Machines {
			if m.Halted() {
				continue
			}
			live++
			var err error
			signal, err = p.turn(m, signal)
			if err != nil {
				return signal, fmt.Errorf("%s: %w", m.Name, err)
			}
		}
		if live == 0 {
			if round == 0 {
				return signal, intcode.ErrHalted
			}
			if p.Logger != nil {
				p.Logger.Debug("pipeline halted",
					"rounds", round,
					"signal", signal,
				)
			}
			return signal, nil
		}
	}
}

// turn runs m until it outputs or halts. signal is delivered at most once.
func (p *Pipeline) turn(m *intcode.Machine, signal int64) (int64, error) {
	delivered := false
	for {
		intr, err := m.Resume()
		if err != nil {
			return signal, err
		}
		switch {

		case intr.Halt:
			return signal, nil

		case intr.Output:
			if p.Logger != nil {
				p.Logger.Debug("signal",
					"machine", m.Name,
					"value", intr.Value,
				)
			}
			return intr.Value, nil

		case intr.NeedInput:
			if delivered {
				return signal, ErrStalled
			}
			m.Feed(signal)
			delivered = true

		}
	}
}

// Amplify builds a pipeline for phases and runs it with the seed signal.
func Amplify(program []int64, phases []int64, signal int64) (int64, error) {
	p, err := New(program, phases)
	if err != nil {
		return 0, err
	}
	return p.Run(signal)
}
