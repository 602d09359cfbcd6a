package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero("", "", "tape.json", "other"); got != "tape.json" {
		t.Fatalf("got %q", got)
	}
	if got := FirstNonZero[uint64](0, 0); got != 0 {
		t.Fatalf("got %d", got)
	}
}

func TestStrToBool(t *testing.T) {
	for str, want := range map[string]bool{
		"true": true, "Y": true, "yes": true,
		"false": false, "n": false, "other": false,
	} {
		if got := StrToBool(str); got != want {
			t.Fatalf("%s: got %v", str, got)
		}
	}
}
