package core

import "testing"

func TestTorusWrap(t *testing.T) {
	tor := Torus{W: 4, H: 3}
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{-1, 0, 3, 0},
		{0, -1, 0, 2},
		{4, 3, 0, 0},
		{-5, -4, 3, 2},
		{9, 7, 1, 1},
	}
	for _, c := range cases {
		x, y := tor.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestTorusIndexRoundTrip(t *testing.T) {
	tor := Torus{W: 5, H: 4}
	for i := 0; i < tor.W*tor.H; i++ {
		x, y := tor.Coords(i)
		if got := tor.Index(x, y); got != i {
			t.Fatalf("Index(Coords(%d)) = %d", i, got)
		}
	}
	if got := tor.WrapIndex(-1, -1); got != 19 {
		t.Fatalf("WrapIndex(-1,-1) = %d, expected 19", got)
	}
}

func TestSizeArea(t *testing.T) {
	if got := (Size{W: 7, H: 3}).Area(); got != 21 {
		t.Fatalf("Area() = %d, expected 21", got)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if a.Bool() != b.Bool() {
			t.Fatalf("draw %d differs for equal seeds", i)
		}
	}
}

func TestRNGProducesBothValues(t *testing.T) {
	r := NewRandomRNG()
	buf := make([]bool, 512)
	FillBool(r, buf)
	seen := map[bool]bool{}
	for _, v := range buf {
		seen[v] = true
	}
	if !seen[true] || !seen[false] {
		t.Fatalf("512 coin flips produced only %v", seen)
	}
}

func TestSequenceCycles(t *testing.T) {
	s := NewSequence(true, false, false)
	want := []bool{true, false, false, true, false, false, true}
	for i, w := range want {
		if got := s.Bool(); got != w {
			t.Fatalf("draw %d = %v, expected %v", i, got, w)
		}
	}
	if NewSequence().Bool() {
		t.Fatal("empty sequence must yield false")
	}
}
