//go:build ebiten

package render

import (
	"image/color"

	"torus-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from a life view and draws it
// scaled onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the view into the painter image and draws it. Views whose size
// does not match the painter are skipped.
func (gp *GridPainter) Blit(dst *ebiten.Image, view life.View, on, off color.Color, scale int) {
	if view.Width() != gp.w || view.Height() != gp.h {
		return
	}
	fillViewRGBA(gp.buf, view, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
