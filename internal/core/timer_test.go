package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepPacing(t *testing.T) {
	clk := &fakeClock{t: time.Unix(100, 0)}
	fs := newFixedStep(10, clk.now)

	if !fs.ShouldStep() {
		t.Fatal("first poll must tick")
	}
	if fs.ShouldStep() {
		t.Fatal("second poll without elapsed time must not tick")
	}
	clk.advance(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick elapsed, expected no step")
	}
	clk.advance(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full tick elapsed, expected a step")
	}
}

func TestFixedStepDrainsBacklog(t *testing.T) {
	clk := &fakeClock{t: time.Unix(100, 0)}
	fs := newFixedStep(10, clk.now)
	fs.ShouldStep()

	clk.advance(300 * time.Millisecond)
	ticks := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			ticks++
		}
	}
	if ticks != 3 {
		t.Fatalf("drained %d ticks, expected 3", ticks)
	}
}

func TestFixedStepReset(t *testing.T) {
	clk := &fakeClock{t: time.Unix(100, 0)}
	fs := newFixedStep(10, clk.now)
	fs.ShouldStep()
	clk.advance(time.Second)
	fs.Reset()
	if fs.ShouldStep() {
		t.Fatal("reset must discard the backlog")
	}
}

func TestFixedStepDefaults(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/DefaultTPS {
		t.Fatalf("interval %v, expected default rate", fs.Interval())
	}
	fs.SetTPS(4)
	if fs.Interval() != 250*time.Millisecond {
		t.Fatalf("interval %v after SetTPS(4)", fs.Interval())
	}
}
