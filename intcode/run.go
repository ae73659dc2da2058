package intcode

import (
	"context"
	"fmt"

	"github.com/reusee/intcode/logs"
)

// Run executes until the machine halts. Output and needs-input events are
// yielded; on needs-input the caller feeds a value before continuing the
// loop. Errors are yielded once and end the iteration.
func (m *Machine) Run(yield func(*Interrupt, error) bool) {
	for {
		intr, err := m.resume()
		if err != nil {
			yield(nil, err)
			return
		}
		if intr.Halt {
			return
		}
		if !yield(intr, nil) {
			return
		}
	}
}

// Resume queues input and runs to the next event.
func (m *Machine) Resume(input ...int64) (*Interrupt, error) {
	m.Feed(input...)
	return m.resume()
}

// Exec runs to halt with the given inputs and returns every output.
func (m *Machine) Exec(inputs ...int64) (outputs []int64, err error) {
	m.Feed(inputs...)
	for intr, err := range m.Run {
		if err != nil {
			return outputs, err
		}
		if intr.NeedInput {
			m.err = fmt.Errorf("%w (ip %d)", ErrNoInput, m.IP)
			return outputs, m.err
		}
		outputs = append(outputs, intr.Value)
	}
	return outputs, nil
}

func (m *Machine) resume() (*Interrupt, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.halted {
		return nil, ErrHalted
	}

	tracing := m.Logger != nil && m.Logger.Enabled(context.Background(), logs.LevelTrace)

	for {
		raw, err := m.Memory.Load(m.IP)
		if err != nil {
			return nil, m.fault(raw, err)
		}
		inst, err := Decode(raw)
		if err != nil {
			return nil, m.fault(raw, err)
		}
		if tracing {
			m.Logger.Log(context.Background(), logs.LevelTrace, "step",
				"ip", m.IP,
				"instruction", inst,
				"relative_base", m.RelativeBase,
			)
		}

		switch inst.Op {

		case OpAdd, OpMul, OpLessThan, OpEquals:
			a, err := m.param(inst, 0)
			if err != nil {
				return nil, m.fault(raw, err)
			}
			b, err := m.param(inst, 1)
			if err != nil {
				return nil, m.fault(raw, err)
			}
			addr, err := m.target(inst, 2)
			if err != nil {
				return nil, m.fault(raw, err)
			}
			var v int64
			switch inst.Op {
			case OpAdd:
				v = a + b
			case OpMul:
				v = a * b
			case OpLessThan:
				if a < b {
					v = 1
				}
			case OpEquals:
				if a == b {
					v = 1
				}
			}
			if err := m.Memory.Store(addr, v); err != nil {
				return nil, m.fault(raw, err)
			}
			m.IP += 4

		case OpInput:
			addr, err := m.target(inst, 0)
			if err != nil {
				return nil, m.fault(raw, err)
			}
			if len(m.inputs) == 0 {
				if m.awaiting {
					m.err = fmt.Errorf("%w (ip %d)", ErrNoInput, m.IP)
					return nil, m.err
				}
				m.awaiting = true
				return InterruptNeedInput, nil
			}
			if err := m.Memory.Store(addr, m.inputs[0]); err != nil {
				return nil, m.fault(raw, err)
			}
			m.inputs = m.inputs[1:]
			m.awaiting = false
			m.IP += 2

		case OpOutput:
			v, err := m.param(inst, 0)
			if err != nil {
				return nil, m.fault(raw, err)
			}
			m.IP += 2
			return &Interrupt{
				Output: true,
				Value:  v,
			}, nil

		case OpJumpIfTrue, OpJumpIfFalse:
			cond, err := m.param(inst, 0)
			if err != nil {
				return nil, m.fault(raw, err)
			}
			dest, err := m.param(inst, 1)
			if err != nil {
				return nil, m.fault(raw, err)
			}
			if (cond != 0) == (inst.Op == OpJumpIfTrue) {
				m.IP = dest
			} else {
				m.IP += 3
			}

		case OpAdjustBase:
			v, err := m.param(inst, 0)
			if err != nil {
				return nil, m.fault(raw, err)
			}
			m.RelativeBase += v
			m.IP += 2

		case OpHalt:
			m.halted = true
			if m.Logger != nil {
				m.Logger.Debug("halt", "ip", m.IP)
			}
			return InterruptHalt, nil

		}
	}
}

// param resolves the k-th operand of inst to a value.
func (m *Machine) param(inst Instruction, k int) (int64, error) {
	operand, err := m.Memory.Load(m.IP + 1 + int64(k))
	if err != nil {
		return 0, err
	}
	switch inst.Modes[k] {
	case ModeImmediate:
		return operand, nil
	case ModeRelative:
		return m.Memory.Load(m.RelativeBase + operand)
	default:
		return m.Memory.Load(operand)
	}
}

// target resolves the k-th operand of inst to a write address.
func (m *Machine) target(inst Instruction, k int) (int64, error) {
	operand, err := m.Memory.Load(m.IP + 1 + int64(k))
	if err != nil {
		return 0, err
	}
	switch inst.Modes[k] {
	case ModeImmediate:
		return 0, fmt.Errorf("%w: parameter %d", ErrImmediateWrite, k+1)
	case ModeRelative:
		return m.RelativeBase + operand, nil
	default:
		return operand, nil
	}
}

func (m *Machine) fault(raw int64, err error) error {
	m.err = &Fault{
		Addr: m.IP,
		Raw:  raw,
		Err:  err,
	}
	if m.Logger != nil {
		m.Logger.Debug("fault", "error", m.err)
	}
	return m.err
}
