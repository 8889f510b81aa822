package life

import (
	"errors"
	"fmt"
	"math"

	"torus-life/pkg/core"
)

// ErrInvalidSize reports grid dimensions that cannot back a simulation.
var ErrInvalidSize = errors.New("invalid grid size")

// ValidateSize reports whether w×h is a usable grid extent.
func ValidateSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("life: %w: %dx%d, both dimensions must be positive", ErrInvalidSize, w, h)
	}
	if w > math.MaxInt/h {
		return fmt.Errorf("life: %w: %dx%d overflows the cell count", ErrInvalidSize, w, h)
	}
	return nil
}

// Grid implements Conway's Game of Life (B3/S23) on a toroidal grid using
// two equally sized buffers. cur is authoritative between calls to Update;
// nxt is scratch.
//
// A Grid has no internal locking. Exactly one goroutine may own it at a time.
type Grid struct {
	t   core.Torus
	cur []bool
	nxt []bool
	gen uint64
}

// New returns a grid of the given dimensions with every cell seeded by an
// independent fair coin flip. It panics if either dimension is not positive.
func New(w, h int) *Grid {
	return NewWithSource(w, h, core.NewRandomRNG())
}

// NewWithSource returns a grid seeded by drawing exactly w*h values from src,
// in row-major index order. It panics if either dimension is not positive or
// src is nil.
func NewWithSource(w, h int, src core.BoolSource) *Grid {
	if src == nil {
		panic("life: nil BoolSource")
	}
	g := alloc(w, h)
	core.FillBool(src, g.cur)
	return g
}

// FromCells returns a grid whose initial state is a copy of cells, laid out
// row-major. It panics if the dimensions are not positive or len(cells) is not
// w*h.
func FromCells(w, h int, cells []bool) *Grid {
	g := alloc(w, h)
	if len(cells) != len(g.cur) {
		panic(fmt.Sprintf("life: got %d cells for a %dx%d grid", len(cells), w, h))
	}
	copy(g.cur, cells)
	return g
}

func alloc(w, h int) *Grid {
	if err := ValidateSize(w, h); err != nil {
		panic(err)
	}
	n := w * h
	return &Grid{t: core.Torus{W: w, H: h}, cur: make([]bool, n), nxt: make([]bool, n)}
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "life" }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.t.W, H: g.t.H} }

// Generation returns the number of completed calls to Update.
func (g *Grid) Generation() uint64 { return g.gen }

// Current returns a read-only view of the authoritative state. The view is
// valid until the next call to Update.
func (g *Grid) Current() View { return View{t: g.t, cells: g.cur} }

// Update advances the simulation by one generation. Every cell of the next
// generation is computed from the untouched current one before the buffers
// swap roles.
func (g *Grid) Update() {
	w, h := g.t.W, g.t.H
	cur, nxt := g.cur, g.nxt
	// Row offsets and wrapped columns are computed once per row and column
	// instead of wrapping each of the eight neighbors; View.Neighbors is the
	// per-cell form of the same count.
	for y := 0; y < h; y++ {
		up := ((y + h - 1) % h) * w
		row := y * w
		down := ((y + 1) % h) * w
		for x := 0; x < w; x++ {
			left := (x + w - 1) % w
			right := (x + 1) % w
			neighbors := 0
			for _, i := range [8]int{
				up + left, up + x, up + right,
				row + left, row + right,
				down + left, down + x, down + right,
			} {
				if cur[i] {
					neighbors++
				}
			}
			nxt[row+x] = NextState(cur[row+x], neighbors)
		}
	}
	g.cur, g.nxt = nxt, cur
	g.gen++
}

// NextState applies the Life rule to a single cell: a live cell survives with
// two or three live neighbors, a dead cell is born with exactly three.
func NextState(alive bool, neighbors int) bool {
	switch neighbors {
	case 2:
		return alive
	case 3:
		return true
	default:
		return false
	}
}
