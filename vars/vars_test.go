package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if s := FirstNonZero("", "day09.txt", "day07.txt"); s != "day09.txt" {
		t.Fatalf("got %v", s)
	}
	if n := FirstNonZero(0, 0); n != 0 {
		t.Fatalf("got %v", n)
	}
}

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true":  true,
		"Y":     true,
		"no":    false,
		"F":     false,
		"maybe": false,
	} {
		if got := StrToBool(str); got != expected {
			t.Fatalf("%s: got %v", str, got)
		}
	}
}
