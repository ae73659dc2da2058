package intconfigs

import (
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/vars"
)

// ProgramPath is the file holding the program text.
type ProgramPath string

var programFlag = cmds.Var[string]("program")

func (Module) ProgramPath(
	loader configs.Loader,
) ProgramPath {
	return ProgramPath(vars.FirstNonZero(
		*programFlag,
		configs.First[string](loader, "program"),
	))
}
