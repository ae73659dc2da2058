package intcode

import "strconv"

type OpCode int64

const (
	OpAdd         OpCode = 1
	OpMul         OpCode = 2
	OpInput       OpCode = 3
	OpOutput      OpCode = 4
	OpJumpIfTrue  OpCode = 5
	OpJumpIfFalse OpCode = 6
	OpLessThan    OpCode = 7
	OpEquals      OpCode = 8
	OpAdjustBase  OpCode = 9
	OpHalt        OpCode = 99
)

type opInfo struct {
	name      string
	numParams int
}

var opInfos = map[OpCode]opInfo{
	OpAdd:         {"add", 3},
	OpMul:         {"mul", 3},
	OpInput:       {"in", 1},
	OpOutput:      {"out", 1},
	OpJumpIfTrue:  {"jnz", 2},
	OpJumpIfFalse: {"jz", 2},
	OpLessThan:    {"lt", 3},
	OpEquals:      {"eq", 3},
	OpAdjustBase:  {"arb", 1},
	OpHalt:        {"halt", 0},
}

func (o OpCode) String() string {
	if info, ok := opInfos[o]; ok {
		return info.name
	}
	return "op(" + strconv.FormatInt(int64(o), 10) + ")"
}

// NumParams returns the operand count, or -1 for codes outside the table.
func (o OpCode) NumParams() int {
	if info, ok := opInfos[o]; ok {
		return info.numParams
	}
	return -1
}
