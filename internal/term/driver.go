package term

import (
	"context"
	"time"

	"torus-life/internal/core"
	"torus-life/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

// Options tune the terminal driver.
type Options struct {
	// TPS is the target number of generations per second.
	TPS int
	// Reset builds a replacement grid when the user presses 'r'. Nil
	// disables reseeding.
	Reset func() (*life.Grid, error)
	// Renderer defaults to NewRenderer().
	Renderer *Renderer
}

// Run owns grid until it returns: it advances one generation per tick,
// redraws after every change and handles keys (q/Esc quit, space pause,
// n single step, r reseed). It returns nil when the user quits and ctx.Err()
// when ctx is done. The caller remains responsible for screen.Fini.
func Run(ctx context.Context, screen tcell.Screen, grid *life.Grid, opts Options) error {
	rd := opts.Renderer
	if rd == nil {
		rd = NewRenderer()
	}
	step := core.NewFixedStep(opts.TPS)
	poll := max(step.Interval()/4, time.Millisecond)
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	paused := false
	rd.Draw(screen, grid.Current(), grid.Generation(), paused)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
					return nil
				case ev.Rune() == ' ':
					paused = !paused
					step.Reset()
				case ev.Rune() == 'n' && paused:
					grid.Update()
				case ev.Rune() == 'r' && opts.Reset != nil:
					g, err := opts.Reset()
					if err != nil {
						return err
					}
					grid = g
				}
			}
			rd.Draw(screen, grid.Current(), grid.Generation(), paused)
		case <-ticker.C:
			if paused || !step.ShouldStep() {
				continue
			}
			grid.Update()
			rd.Draw(screen, grid.Current(), grid.Generation(), paused)
		}
	}
}
