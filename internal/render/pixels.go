package render

import (
	"image/color"

	"torus-life/pkg/sims/life"
)

// rgba8 holds a color reduced to 8 bits per channel.
type rgba8 [4]byte

func toRGBA8(c color.Color) rgba8 {
	r, g, b, a := c.RGBA()
	return rgba8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillViewRGBA converts the live/dead state of every cell in view into RGBA
// pixels in buf, which must hold 4*view.Len() bytes.
func fillViewRGBA(buf []byte, view life.View, on, off color.Color) {
	pOn, pOff := toRGBA8(on), toRGBA8(off)
	for i := 0; i < view.Len(); i++ {
		px := pOff
		if view.At(i) {
			px = pOn
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
