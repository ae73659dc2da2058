package intcode

import (
	"fmt"
	"log/slog"
	"strings"
)

const MaxParams = 3

type Instruction struct {
	Op    OpCode
	Modes [MaxParams]ParamMode
}

// Decode splits an instruction word into its opcode and one mode digit per
// parameter, lowest digit first. Digits past the opcode's arity are ignored.
func Decode(word int64) (inst Instruction, err error) {
	if word < 0 {
		return inst, fmt.Errorf("%w: %d", ErrNegativeWord, word)
	}
	op := OpCode(word % 100)
	n := op.NumParams()
	if n < 0 {
		return inst, fmt.Errorf("%w: %d", ErrUnknownOpcode, int64(op))
	}
	inst.Op = op
	digits := word / 100
	for k := 0; k < n; k++ {
		d := digits % 10
		digits /= 10
		if d > int64(ModeRelative) {
			return inst, fmt.Errorf("%w: %d for parameter %d", ErrInvalidMode, d, k+1)
		}
		inst.Modes[k] = ParamMode(d)
	}
	return inst, nil
}

func (i Instruction) NumParams() int {
	return i.Op.NumParams()
}

// Width is the instruction's length in memory cells.
func (i Instruction) Width() int64 {
	return int64(1 + i.NumParams())
}

func (i Instruction) String() string {
	var b strings.Builder
	b.WriteString(i.Op.String())
	for k := 0; k < i.NumParams(); k++ {
		b.WriteByte(' ')
		b.WriteString(i.Modes[k].String())
	}
	return b.String()
}

var _ slog.LogValuer = Instruction{}

func (i Instruction) LogValue() slog.Value {
	return slog.StringValue(i.String())
}
