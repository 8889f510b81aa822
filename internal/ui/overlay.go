//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayPadding = 4
	overlayHeight  = 18
)

// Overlay draws the generation counter and population on top of the grid.
type Overlay struct {
	hidden bool
	pixel  *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay with the H key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// Draw renders the status line in the top-left corner of screen.
func (o *Overlay) Draw(screen *ebiten.Image, generation uint64, population int, paused bool) {
	if o.hidden {
		return
	}
	face := basicfont.Face7x13
	line := StatusLine(generation, population, paused)
	width := len(line)*face.Advance + 2*overlayPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), overlayHeight)
	op.ColorScale.ScaleWithColor(color.RGBA{A: 170})
	screen.DrawImage(o.pixel, op)

	text.Draw(screen, line, face, overlayPadding, overlayHeight-overlayPadding-1, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}
