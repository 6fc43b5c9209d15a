package strconvx

import "testing"

func TestFormatIntUintBases(t *testing.T) {
	type C struct {
		u    uint64
		base int
		want string
	}
	for _, c := range []C{
		{0, 2, "0"},
		{5, 2, "101"},
		{255, 16, "ff"},
		{255, 10, "255"},
		{35, 36, "z"},
	} {
		if got := FormatUint(c.u, c.base); got != c.want {
			t.Fatalf("FormatUint(%d,%d) = %q, want %q", c.u, c.base, got, c.want)
		}
	}
	if got := FormatInt(-15, 10); got != "-15" {
		t.Fatalf("FormatInt(-15,10) = %q, want -15", got)
	}
	if got := Itoa(42); got != "42" {
		t.Fatalf("Itoa(42) = %q", got)
	}
}

func TestFormatFloatFixed(t *testing.T) {
	if got := FormatFloat(1.5, 'f', 2, 64); got != "1.50" {
		t.Fatalf("FormatFloat(1.5) = %q, want 1.50", got)
	}
	if got := FormatFloat(-2.25, 'f', 2, 64); got != "-2.25" {
		t.Fatalf("FormatFloat(-2.25) = %q, want -2.25", got)
	}
	if got := FormatFloat(3.0, 'f', 0, 64); got != "3" {
		t.Fatalf("FormatFloat(3,prec 0) = %q, want 3", got)
	}
}
