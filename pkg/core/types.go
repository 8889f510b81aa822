package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int { return s.W * s.H }

// Torus performs index arithmetic on a W×H grid whose edges wrap around.
// Both dimensions must be positive.
type Torus struct {
	W, H int
}

// Wrap applies toroidal wrapping to the provided coordinates. The result is
// always in range, including for negative inputs.
func (t Torus) Wrap(x, y int) (int, int) {
	x = (x%t.W + t.W) % t.W
	y = (y%t.H + t.H) % t.H
	return x, y
}

// Index returns the linear slice index for in-range coordinates (x, y).
func (t Torus) Index(x, y int) int { return y*t.W + x }

// WrapIndex wraps (x, y) and returns its linear index.
func (t Torus) WrapIndex(x, y int) int {
	x, y = t.Wrap(x, y)
	return t.Index(x, y)
}

// Coords converts a linear index back into coordinates.
func (t Torus) Coords(i int) (int, int) { return i % t.W, i / t.W }
