//go:build ebiten

package app

import (
	"image/color"

	"torus-life/internal/render"
	"torus-life/internal/ui"
	"torus-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life grid to the ebiten.Game interface. It is the grid's only
// owner: ebiten calls Update and Draw from the same goroutine.
type Game struct {
	cfg     *Config
	grid    *life.Grid
	painter *render.GridPainter
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided configuration and initial grid.
func New(cfg *Config, grid *life.Grid) *Game {
	s := grid.Size()
	return &Game{
		cfg:      cfg,
		grid:     grid,
		painter:  render.NewGridPainter(s.W, s.H),
		overlay:  ui.NewOverlay(),
		onColor:  color.White,
		offColor: color.Black,
	}
}

// Reset rebuilds the board from the configuration. A zero seed yields a
// fresh random board each time.
func (g *Game) Reset() error {
	grid, err := g.cfg.NewGrid()
	if err != nil {
		return err
	}
	g.grid = grid
	g.tickOnce = false
	return nil
}

// Update handles per-frame input and advances the grid by at most one
// generation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(); err != nil {
			return err
		}
	}

	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.grid.Update()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	view := g.grid.Current()
	g.painter.Blit(screen, view, g.onColor, g.offColor, g.cfg.Scale)
	g.overlay.Draw(screen, g.grid.Generation(), view.Population(), g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.grid.Size()
	return s.W * g.cfg.Scale, s.H * g.cfg.Scale
}
