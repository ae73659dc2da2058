package intcode

import (
	"slices"

	"github.com/reusee/intcode/logs"
)

type Machine struct {
	Name         string
	Memory       Memory
	IP           int64
	RelativeBase int64
	Logger       logs.Logger

	inputs   []int64
	awaiting bool
	halted   bool
	err      error
}

// New returns a machine owning a copy of program.
func New(program []int64) *Machine {
	return &Machine{
		Memory: slices.Clone(program),
	}
}

// NewWithPhase writes phase to the target of the input instruction at
// address 0 and starts execution after it.
func NewWithPhase(program []int64, phase int64) (*Machine, error) {
	m := New(program)
	raw, err := m.Memory.Load(0)
	if err != nil {
		return nil, m.fault(raw, err)
	}
	inst, err := Decode(raw)
	if err != nil {
		return nil, m.fault(raw, err)
	}
	if inst.Op != OpInput {
		return nil, m.fault(raw, ErrNoPhaseSlot)
	}
	addr, err := m.target(inst, 0)
	if err != nil {
		return nil, m.fault(raw, err)
	}
	if err := m.Memory.Store(addr, phase); err != nil {
		return nil, m.fault(raw, err)
	}
	m.IP = inst.Width()
	return m, nil
}

// Feed queues input values. They are consumed by input instructions in order.
func (m *Machine) Feed(values ...int64) {
	m.inputs = append(m.inputs, values...)
}

func (m *Machine) Halted() bool {
	return m.halted
}

// Err returns the error that stopped the machine, if any.
func (m *Machine) Err() error {
	return m.err
}

// Pending returns the number of queued input values.
func (m *Machine) Pending() int {
	return len(m.inputs)
}

func (m *Machine) Clone() *Machine {
	ret := *m
	ret.Memory = slices.Clone(m.Memory)
	ret.inputs = slices.Clone(m.inputs)
	return &ret
}
