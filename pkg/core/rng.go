package core

import "math/rand/v2"

// BoolSource yields an independent fair-coin boolean on demand.
type BoolSource interface {
	Bool() bool
}

// RNG is a thin convenience wrapper around math/rand/v2 for seeding grids.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewRandomRNG creates an RNG seeded from the runtime's random source. Two
// RNGs created this way produce unrelated streams.
func NewRandomRNG() *RNG {
	return &RNG{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// FillBool fills the buffer with independent draws from src.
func FillBool(src BoolSource, buf []bool) {
	for i := range buf {
		buf[i] = src.Bool()
	}
}

// Sequence replays a fixed list of values, starting over once exhausted. An
// empty Sequence always yields false.
type Sequence struct {
	vals []bool
	pos  int
}

// NewSequence returns a Sequence over a private copy of vals.
func NewSequence(vals ...bool) *Sequence {
	return &Sequence{vals: append([]bool(nil), vals...)}
}

// Bool returns the next value in the sequence.
func (s *Sequence) Bool() bool {
	if len(s.vals) == 0 {
		return false
	}
	v := s.vals[s.pos]
	s.pos = (s.pos + 1) % len(s.vals)
	return v
}
