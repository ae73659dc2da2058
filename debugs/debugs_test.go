package debugs

import (
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intcode"
	"github.com/reusee/intcode/modes"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "stage0", starlark.String("stage0")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(-7), starlark.MakeInt(-7)},
		{"uint8", uint8(3), starlark.MakeInt(3)},
		{"error", errors.New("halted"), starlark.String("halted")},
		{"stringer", intcode.OpMul, starlark.String("mul")},
		{"memory", intcode.Memory{1, 2}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2)})},
		{"map", map[string]int64{"a": 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("a"), starlark.MakeInt(1))
			return d
		}()},
		{"pointer", new(int64), starlark.MakeInt(0)},
		{"nil pointer", (*int64)(nil), starlark.None},
		{"starlark value", starlark.String("x"), starlark.String("x")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}

func TestEval(t *testing.T) {
	m := intcode.New([]int64{1, 0, 0, 0, 99})
	m.Name = "day02"
	if _, err := m.Exec(); err != nil {
		t.Fatal(err)
	}
	globals := Globals(m)

	for _, c := range []struct {
		expr     string
		expected string
	}{
		{"memory[0]", "2"},
		{"len(memory)", "5"},
		{"ip", "4"},
		{"halted", "True"},
		{"name", `"day02"`},
		{"error", "None"},
		{"relative_base", "0"},
		{"peek(4)", "99"},
		{"peek(100)", "0"},
		{"peek(1 << 31)", "0"},
		{"peek(1 << 40)", "0"},
		{"[peek(i) for i in range(3)]", "[2, 0, 0]"},
		{"type(peek)", `"builtin_function_or_method"`},
	} {
		got, err := Eval(c.expr, globals)
		if err != nil {
			t.Fatalf("%s: %v", c.expr, err)
		}
		if got != c.expected {
			t.Fatalf("%s: got %s", c.expr, got)
		}
	}

	// peek does not grow memory
	if len(m.Memory) != 5 {
		t.Fatalf("got %v", len(m.Memory))
	}

	if _, err := Eval("peek(-1)", globals); !errors.Is(err, intcode.ErrNegativeAddress) {
		t.Fatalf("got %v", err)
	}
	if _, err := Eval("nope", globals); err == nil {
		t.Fatal("should error")
	}
}

func TestEvalError(t *testing.T) {
	m := intcode.New([]int64{42})
	_, err := m.Exec()
	if err == nil {
		t.Fatal("should error")
	}
	got, err := Eval("error", Globals(m))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "fault at 0 (word 42)") {
		t.Fatalf("got %v", got)
	}
}

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", Globals(intcode.New([]int64{99})))
	})
}
