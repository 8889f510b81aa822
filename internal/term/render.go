// Package term drives a life grid on a terminal screen.
package term

import (
	"torus-life/internal/ui"
	"torus-life/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

// Renderer draws life views onto a tcell screen. Each cell is two columns
// wide so the board looks roughly square; the bottom row carries the status
// line.
type Renderer struct {
	Live tcell.Style
	Dead tcell.Style
	Text tcell.Style
}

// NewRenderer returns a Renderer with the default color scheme.
func NewRenderer() *Renderer {
	return &Renderer{
		Live: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
		Dead: tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
		Text: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
}

// Draw paints the view and status line, clipping whatever does not fit.
func (r *Renderer) Draw(screen tcell.Screen, view life.View, generation uint64, paused bool) {
	sw, sh := screen.Size()
	rows := min(view.Height(), sh-1)
	cols := min(view.Width(), sw/2)

	screen.Clear()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			style := r.Dead
			if view.At(y*view.Width() + x) {
				style = r.Live
			}
			screen.SetContent(x*2, y, ' ', nil, style)
			screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}
	if sh > 0 {
		line := ui.StatusLine(generation, view.Population(), paused)
		for i, c := range line {
			if i >= sw {
				break
			}
			screen.SetContent(i, sh-1, c, nil, r.Text)
		}
	}
	screen.Show()
}
