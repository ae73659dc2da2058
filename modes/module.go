package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForProduction is used by the command line tools.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

// ModuleForTest carries the running test and turns on development defaults,
// like debug logging.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
