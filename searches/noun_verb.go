package searches

import (
	"errors"
	"fmt"

	"github.com/reusee/intcode/intcode"
)

var ErrNotFound = errors.New("no noun and verb produce the target")

const (
	NounAddr = 1
	VerbAddr = 2
	MaxWord  = 99
)

func Patch(m *intcode.Machine, addr int64, value int64) error {
	return m.Memory.Store(addr, value)
}

// NounVerb finds the noun and verb that leave target at address 0.
func NounVerb(program []int64, target int64) (noun, verb int64, err error) {
	for verb = 0; verb <= MaxWord; verb++ {
		for noun = 0; noun <= MaxWord; noun++ {
			result, err := Try(program, noun, verb)
			if errors.Is(err, intcode.ErrMalformed) {
				continue
			}
			if err != nil {
				return 0, 0, fmt.Errorf("noun %d verb %d: %w", noun, verb, err)
			}
			if result == target {
				return noun, verb, nil
			}
		}
	}
	return 0, 0, ErrNotFound
}

// Try runs program with noun and verb patched in and returns address 0.
func Try(program []int64, noun, verb int64) (int64, error) {
	m := intcode.New(program)
	if err := Patch(m, NounAddr, noun); err != nil {
		return 0, err
	}
	if err := Patch(m, VerbAddr, verb); err != nil {
		return 0, err
	}
	if _, err := m.Exec(); err != nil {
		return 0, err
	}
	return m.Memory.Load(0)
}

func Answer(noun, verb int64) int64 {
	return 100*noun + verb
}
