package life

import (
	"slices"
	"strings"

	"torus-life/pkg/core"
)

// View is a read-only window onto a grid's authoritative buffer.
type View struct {
	t     core.Torus
	cells []bool
}

// Width returns the number of columns.
func (v View) Width() int { return v.t.W }

// Height returns the number of rows.
func (v View) Height() int { return v.t.H }

// Size returns the view dimensions.
func (v View) Size() core.Size { return core.Size{W: v.t.W, H: v.t.H} }

// Len returns the number of cells, always Width()*Height().
func (v View) Len() int { return len(v.cells) }

// At reports whether the cell at linear index i (x + y*Width) is alive.
func (v View) At(i int) bool { return v.cells[i] }

// Alive reports whether the cell at (x, y) is alive. Coordinates wrap.
func (v View) Alive(x, y int) bool { return v.cells[v.t.WrapIndex(x, y)] }

// Neighbors counts the live cells among the eight toroidal neighbors of
// (x, y). On grids narrower than three cells a wrapped position may be counted
// more than once.
func (v View) Neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if v.Alive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Population returns the number of live cells.
func (v View) Population() int {
	n := 0
	for _, c := range v.cells {
		if c {
			n++
		}
	}
	return n
}

// CopyTo copies the cells into dst and returns the number copied.
func (v View) CopyTo(dst []bool) int { return copy(dst, v.cells) }

// Equal reports whether the view holds exactly the given row-major cells.
func (v View) Equal(cells []bool) bool { return slices.Equal(v.cells, cells) }

// String renders the view with '#' for live and '.' for dead cells, one line
// per row.
func (v View) String() string {
	var b strings.Builder
	b.Grow(len(v.cells) + v.t.H)
	for i, c := range v.cells {
		if c {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
		if (i+1)%v.t.W == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
