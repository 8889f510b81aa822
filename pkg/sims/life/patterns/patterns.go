// Package patterns provides named seed shapes for life grids.
package patterns

import (
	"errors"
	"fmt"
	"sort"

	"torus-life/pkg/core"
)

var (
	// ErrUnknown is returned by Lookup for unregistered names.
	ErrUnknown = errors.New("unknown pattern")
	// ErrTooLarge is returned by Place when the shape does not fit the grid.
	ErrTooLarge = errors.New("pattern larger than grid")
)

// Random names the pattern that leaves seeding to a BoolSource.
const Random = "random"

// Pattern is a small shape drawn with '#' (or 'O') for live cells and any
// other byte for dead ones. A Pattern with no rows carries no cells.
type Pattern struct {
	Rows []string
}

// Size returns the bounding box of the shape.
func (p Pattern) Size() core.Size {
	w := 0
	for _, r := range p.Rows {
		w = max(w, len(r))
	}
	return core.Size{W: w, H: len(p.Rows)}
}

// Empty reports whether the pattern carries no cells and should be seeded
// from a random source instead.
func (p Pattern) Empty() bool { return len(p.Rows) == 0 }

// Place stamps the shape into a fresh w*h row-major buffer with its top-left
// corner at (ox, oy). Offsets wrap around the grid edges. An empty pattern
// returns nil cells.
func (p Pattern) Place(w, h, ox, oy int) ([]bool, error) {
	if p.Empty() {
		return nil, nil
	}
	s := p.Size()
	if s.W > w || s.H > h {
		return nil, fmt.Errorf("patterns: %w: %dx%d into %dx%d", ErrTooLarge, s.W, s.H, w, h)
	}
	t := core.Torus{W: w, H: h}
	cells := make([]bool, w*h)
	for y, row := range p.Rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '#' || row[x] == 'O' {
				cells[t.WrapIndex(ox+x, oy+y)] = true
			}
		}
	}
	return cells, nil
}

// Center stamps the shape in the middle of a w*h grid.
func (p Pattern) Center(w, h int) ([]bool, error) {
	s := p.Size()
	return p.Place(w, h, (w-s.W)/2, (h-s.H)/2)
}

var registry = map[string]Pattern{}

// Register adds a pattern under the provided name, replacing any previous
// entry. Empty names are ignored.
func Register(name string, p Pattern) {
	if name == "" {
		return
	}
	registry[name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, error) {
	p, ok := registry[name]
	if !ok {
		return Pattern{}, fmt.Errorf("patterns: %w %q", ErrUnknown, name)
	}
	return p, nil
}

// Names returns the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Random, Pattern{})
	Register("block", Pattern{Rows: []string{
		"##",
		"##",
	}})
	Register("blinker", Pattern{Rows: []string{
		"###",
	}})
	Register("beehive", Pattern{Rows: []string{
		".##.",
		"#..#",
		".##.",
	}})
	Register("glider", Pattern{Rows: []string{
		".#.",
		"..#",
		"###",
	}})
	Register("rpentomino", Pattern{Rows: []string{
		".##",
		"##.",
		".#.",
	}})
}
