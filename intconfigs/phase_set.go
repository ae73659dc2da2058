package intconfigs

import (
	"slices"

	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
)

// PhaseSet is permuted by amplifier searches.
type PhaseSet []int64

var DefaultPhaseSet = PhaseSet{0, 1, 2, 3, 4}

var phasesFlag = cmds.Var[[]int64]("phases")

func (Module) PhaseSet(
	loader configs.Loader,
) PhaseSet {
	// flag
	if len(*phasesFlag) > 0 {
		return PhaseSet(slices.Clone(*phasesFlag))
	}
	// config
	if phases := configs.First[[]int64](loader, "phases"); len(phases) > 0 {
		return PhaseSet(phases)
	}
	return slices.Clone(DefaultPhaseSet)
}
