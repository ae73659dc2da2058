package intcode

import (
	"errors"
	"testing"
)

func TestMemoryGrowOnLoad(t *testing.T) {
	mem := Memory{1, 2, 3}
	v, err := mem.Load(10)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0 {
		t.Fatalf("got %d", v)
	}
	if len(mem) != 11 {
		t.Fatalf("got len %d", len(mem))
	}
	if mem[0] != 1 || mem[1] != 2 || mem[2] != 3 {
		t.Fatalf("got %v", mem[:3])
	}
}

func TestMemoryGrowOnStore(t *testing.T) {
	var mem Memory
	if err := mem.Store(5, 42); err != nil {
		t.Fatal(err)
	}
	if err := mem.Store(2, 7); err != nil {
		t.Fatal(err)
	}
	if err := mem.Store(100000, 9); err != nil {
		t.Fatal(err)
	}
	if mem[5] != 42 || mem[2] != 7 || mem[100000] != 9 {
		t.Fatalf("got %d %d %d", mem[5], mem[2], mem[100000])
	}
	for _, addr := range []int64{0, 1, 3, 4, 6, 99999} {
		if mem[addr] != 0 {
			t.Fatalf("cell %d: got %d", addr, mem[addr])
		}
	}
}

func TestMemoryNegativeAddress(t *testing.T) {
	mem := Memory{1}
	if _, err := mem.Load(-1); !errors.Is(err, ErrNegativeAddress) {
		t.Fatalf("got %v", err)
	}
	if err := mem.Store(-5, 1); !errors.Is(err, ErrNegativeAddress) {
		t.Fatalf("got %v", err)
	}
	if len(mem) != 1 {
		t.Fatalf("got len %d", len(mem))
	}
}

func TestMemoryAddressLimit(t *testing.T) {
	var mem Memory
	if err := mem.Store(MaxAddress+1, 1); !errors.Is(err, ErrAddressTooLarge) {
		t.Fatalf("got %v", err)
	}
	if _, err := mem.Load(1 << 62); !errors.Is(err, ErrAddressTooLarge) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(ErrAddressTooLarge, ErrMalformed) {
		t.Fatal()
	}
	if len(mem) != 0 {
		t.Fatalf("got len %d", len(mem))
	}
}
