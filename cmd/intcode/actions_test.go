package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/consoles"
	"github.com/reusee/intcode/intcode"
	"github.com/reusee/intcode/intconfigs"
	"github.com/reusee/intcode/modes"
	"github.com/reusee/intcode/searches"
)

func newTestSession(t *testing.T, program string, inputs []int64, phases []int64) (*session, *bytes.Buffer) {
	path := filepath.Join(t.TempDir(), "prog.txt")
	if program != "" {
		if err := os.WriteFile(path, []byte(program), 0644); err != nil {
			t.Fatal(err)
		}
	} else {
		path = ""
	}
	out := new(bytes.Buffer)
	var ret *session
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() intconfigs.ProgramPath {
			return intconfigs.ProgramPath(path)
		},
		func() intconfigs.Inputs {
			return inputs
		},
		func() intconfigs.PhaseSet {
			return phases
		},
		func() consoles.Output {
			return out
		},
		func() consoles.Input {
			return strings.NewReader("")
		},
	).Call(func(
		s *session,
	) {
		ret = s
	})
	return ret, out
}

func TestRunAction(t *testing.T) {
	// day 9 style: echo the input through relative base
	s, out := newTestSession(t, "109,10,203,-2,204,-2,99\n", []int64{42}, nil)
	if err := runMachine(t.Context(), s); err != nil {
		t.Fatal(err)
	}
	if out.String() != "42\n" {
		t.Fatalf("got %q", out.String())
	}
	if s.machine.Name != "prog" {
		t.Fatalf("got %v", s.machine.Name)
	}
	// halted machine stays halted
	err := runMachine(t.Context(), s)
	if !errors.Is(err, intcode.ErrHalted) {
		t.Fatalf("got %v", err)
	}
}

func TestPatchPeekDump(t *testing.T) {
	s, out := newTestSession(t, "1,0,0,0,99", nil, nil)
	ctx := t.Context()
	if err := patch(ctx, s, 1, 4); err != nil {
		t.Fatal(err)
	}
	if err := patch(ctx, s, 2, 4); err != nil {
		t.Fatal(err)
	}
	if err := runMachine(ctx, s); err != nil {
		t.Fatal(err)
	}
	if err := peek(ctx, s, 0); err != nil {
		t.Fatal(err)
	}
	if err := dump(ctx, s); err != nil {
		t.Fatal(err)
	}
	if out.String() != "198\n198,4,4,0,99\n" {
		t.Fatalf("got %q", out.String())
	}
	if err := peek(ctx, s, -1); !errors.Is(err, intcode.ErrNegativeAddress) {
		t.Fatalf("got %v", err)
	}
}

func TestEvalAction(t *testing.T) {
	s, out := newTestSession(t, "1,0,0,0,99", nil, nil)
	ctx := t.Context()
	if err := runMachine(ctx, s); err != nil {
		t.Fatal(err)
	}
	if err := eval(ctx, s, "memory[0] * 10 + ip"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "24\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestSearchAction(t *testing.T) {
	s, out := newTestSession(t, "2,0,0,0,99", nil, nil)
	if err := search(t.Context(), s, 198); err != nil {
		t.Fatal(err)
	}
	if out.String() != "400\n" {
		t.Fatalf("got %q", out.String())
	}
	if err := search(t.Context(), s, -5); !errors.Is(err, searches.ErrNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestAmplifyActions(t *testing.T) {
	program := "3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5"
	s, out := newTestSession(t, program, nil, []int64{9, 8, 7, 6, 5})
	if err := amplify(t.Context(), s); err != nil {
		t.Fatal(err)
	}
	if err := maxSignal(t.Context(), s); err != nil {
		t.Fatal(err)
	}
	if out.String() != "139629729\n139629729 9,8,7,6,5\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestNoProgram(t *testing.T) {
	s, _ := newTestSession(t, "", nil, nil)
	if err := runMachine(t.Context(), s); !errors.Is(err, ErrNoProgram) {
		t.Fatalf("got %v", err)
	}
	if err := maxSignal(t.Context(), s); !errors.Is(err, ErrNoProgram) {
		t.Fatalf("got %v", err)
	}
}
