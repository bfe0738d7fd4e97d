package common

import "testing"

func TestLerp(t *testing.T) {
	if got := Lerp(0.0, 10.0, 0.25); got != 2.5 {
		t.Fatalf("Lerp = %v", got)
	}
	if got := Lerp[float32](4, 8, 1); got != 8 {
		t.Fatalf("Lerp32 = %v", got)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, lo, hi, want float64 }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 10, 0, 0},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%v,%v,%v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}
