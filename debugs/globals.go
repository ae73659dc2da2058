package debugs

import (
	"fmt"

	"github.com/reusee/intcode/intcode"
	"go.starlark.net/starlark"
)

// Globals exposes machine state to starlark expressions.
func Globals(m *intcode.Machine) map[string]any {
	return map[string]any{
		"name":          m.Name,
		"ip":            m.IP,
		"relative_base": m.RelativeBase,
		"memory":        []int64(m.Memory),
		"halted":        m.Halted(),
		"error":         m.Err(),
		"pending":       m.Pending(),
		"peek":          peek(m),
		"decode":        decode,
	}
}

// peek reads a memory cell without growing memory.
func peek(m *intcode.Machine) *starlark.Builtin {
	return starlark.NewBuiltin("peek", func(
		thread *starlark.Thread,
		fn *starlark.Builtin,
		args starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		var arg starlark.Value
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &arg); err != nil {
			return nil, err
		}
		var addr int64
		if err := starlark.AsInt(arg, &addr); err != nil {
			return nil, fmt.Errorf("%s: %w", fn.Name(), err)
		}
		if addr < 0 {
			return nil, fmt.Errorf("%w: %d", intcode.ErrNegativeAddress, addr)
		}
		if addr >= int64(len(m.Memory)) {
			return starlark.MakeInt(0), nil
		}
		return starlark.MakeInt64(m.Memory[addr]), nil
	})
}

func decode(word int64) string {
	inst, err := intcode.Decode(word)
	if err != nil {
		return err.Error()
	}
	return inst.String()
}
