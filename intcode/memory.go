package intcode

import "fmt"

// Memory grows on demand: any address in [0, MaxAddress] is readable and writable.
type Memory []int64

// MaxAddress bounds memory growth to what a host can allocate.
const MaxAddress = 1 << 32

func (m *Memory) ensure(addr int64) error {
	if addr < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAddress, addr)
	}
	if addr > MaxAddress {
		return fmt.Errorf("%w: %d", ErrAddressTooLarge, addr)
	}
	if n := int64(len(*m)); addr >= n {
		*m = append(*m, make([]int64, addr+1-n)...)
	}
	return nil
}

func (m *Memory) Load(addr int64) (int64, error) {
	if err := m.ensure(addr); err != nil {
		return 0, err
	}
	return (*m)[addr], nil
}

func (m *Memory) Store(addr int64, value int64) error {
	if err := m.ensure(addr); err != nil {
		return err
	}
	(*m)[addr] = value
	return nil
}
