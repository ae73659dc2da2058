package intconfigs

import (
	"slices"

	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
)

// Inputs are fed to a machine before it runs.
type Inputs []int64

var inputFlags = cmds.Collect[int64]("input")

func (Module) Inputs(
	loader configs.Loader,
) Inputs {
	// flag
	if len(*inputFlags) > 0 {
		return Inputs(slices.Clone(*inputFlags))
	}
	// config
	return Inputs(configs.First[[]int64](loader, "inputs"))
}
