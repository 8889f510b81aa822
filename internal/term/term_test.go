package term

import (
	"context"
	"errors"
	"testing"
	"time"

	"torus-life/pkg/core"
	"torus-life/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestRendererDraw(t *testing.T) {
	screen := newScreen(t, 10, 4)
	g := life.FromCells(3, 2, []bool{true, false, false, false, false, true})
	r := NewRenderer()

	r.Draw(screen, g.Current(), 0, false)

	check := func(x, y int, want tcell.Style) {
		t.Helper()
		_, _, style, _ := screen.GetContent(x, y)
		if style != want {
			t.Fatalf("cell at column %d row %d has style %v, expected %v", x, y, style, want)
		}
	}
	check(0, 0, r.Live)
	check(1, 0, r.Live)
	check(2, 0, r.Dead)
	check(4, 1, r.Live)
	check(5, 1, r.Live)
	check(0, 1, r.Dead)

	line := ""
	for x := 0; x < 10; x++ {
		c, _, _, _ := screen.GetContent(x, 3)
		line += string(c)
	}
	if line != "gen 0  pop" {
		t.Fatalf("status row = %q", line)
	}
}

func TestRendererClips(t *testing.T) {
	screen := newScreen(t, 6, 3)
	g := life.NewWithSource(40, 40, core.NewRNG(1))
	NewRenderer().Draw(screen, g.Current(), 3, true)
}

func TestRunQuits(t *testing.T) {
	screen := newScreen(t, 20, 10)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	g := life.NewWithSource(8, 8, core.NewRNG(2))

	errc := make(chan error, 1)
	go func() { errc <- Run(context.Background(), screen, g, Options{TPS: 30}) }()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run returned %v on quit", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestRunAdvancesUntilCanceled(t *testing.T) {
	screen := newScreen(t, 20, 10)
	g := life.NewWithSource(8, 8, core.NewRNG(3))
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := Run(ctx, screen, g, Options{TPS: 1000})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run returned %v, expected deadline exceeded", err)
	}
	if g.Generation() == 0 {
		t.Fatal("grid never advanced")
	}
}

func TestRunPauseAndStep(t *testing.T) {
	screen := newScreen(t, 20, 10)
	for _, r := range " nnq" {
		screen.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	g := life.NewWithSource(8, 8, core.NewRNG(4))

	if err := Run(context.Background(), screen, g, Options{TPS: 1}); err != nil {
		t.Fatal(err)
	}
	if g.Generation() != 2 {
		t.Fatalf("generation %d, expected two single steps while paused", g.Generation())
	}
}

func TestRunReset(t *testing.T) {
	screen := newScreen(t, 20, 10)
	screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	calls := 0
	opts := Options{TPS: 1, Reset: func() (*life.Grid, error) {
		calls++
		return life.NewWithSource(8, 8, core.NewRNG(5)), nil
	}}

	if err := Run(context.Background(), screen, life.New(8, 8), opts); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("reset called %d times, expected 1", calls)
	}
}

func TestRunResetError(t *testing.T) {
	screen := newScreen(t, 20, 10)
	screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	boom := errors.New("boom")
	opts := Options{TPS: 1, Reset: func() (*life.Grid, error) { return nil, boom }}

	if err := Run(context.Background(), screen, life.New(4, 4), opts); !errors.Is(err, boom) {
		t.Fatalf("Run returned %v, expected reset error", err)
	}
}
