package pipelines

import (
	"fmt"
)

type Result struct {
	Signal int64
	Phases []int64
}

// MaxSignal tries every ordering of phaseSet with seed 0. Ties keep the
// lexicographically first ordering.
func MaxSignal(program []int64, phaseSet []int64) (ret Result, err error) {
	return maxSignal(program, phaseSet, nil)
}

func maxSignal(program []int64, phaseSet []int64, setup func(*Pipeline)) (ret Result, err error) {
	if len(phaseSet) == 0 {
		return ret, ErrEmptyPipeline
	}
	found := false
	for phases := range Permutations(phaseSet) {
		p, err := New(program, phases)
		if err != nil {
			return ret, fmt.Errorf("phases %v: %w", phases, err)
		}
		if setup != nil {
			setup(p)
		}
		signal, err := p.Run(0)
		if err != nil {
			return ret, fmt.Errorf("phases %v: %w", phases, err)
		}
		if !found || signal > ret.Signal {
			ret = Result{
				Signal: signal,
				Phases: phases,
			}
			found = true
		}
	}
	return ret, nil
}
