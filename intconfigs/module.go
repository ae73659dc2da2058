package intconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/intcode/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
