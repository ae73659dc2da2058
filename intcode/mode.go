package intcode

import "strconv"

type ParamMode int8

const (
	ModePosition ParamMode = iota
	ModeImmediate
	ModeRelative
)

func (m ParamMode) String() string {
	switch m {
	case ModePosition:
		return "pos"
	case ModeImmediate:
		return "imm"
	case ModeRelative:
		return "rel"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}
