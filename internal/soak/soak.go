// Package soak runs many independent life grids concurrently and collects
// population statistics.
package soak

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"

	"torus-life/pkg/core"
	"torus-life/pkg/sims/life"

	"golang.org/x/sync/errgroup"
)

// Config controls a soak run.
type Config struct {
	Runs        int
	Generations int
	Width       int
	Height      int
	// Seed of the first run; run i uses Seed+i. Zero picks a random
	// positive base seed, reported through Result.Seed.
	Seed    int64
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Runs:        16,
		Generations: 1000,
		Width:       128,
		Height:      128,
		Seed:        1,
		Workers:     runtime.NumCPU(),
	}
}

// Result summarizes one grid's history.
type Result struct {
	Run  int
	Seed int64
	// Generations is the number of updates performed. Runs stop early once
	// they reach a still life.
	Generations int
	Initial     int
	Final       int
	Min         int
	Max         int
	// StableAt is the first generation identical to its predecessor, or -1.
	StableAt int
}

// Run simulates cfg.Runs grids, each owned by a single goroutine. The context
// is checked between generations; a cancelled context returns its error.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	if err := life.ValidateSize(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	if cfg.Runs < 0 || cfg.Generations < 0 {
		return nil, fmt.Errorf("soak: runs and generations must not be negative, got %d and %d", cfg.Runs, cfg.Generations)
	}
	base := cfg.Seed
	if base == 0 {
		base = rand.Int64N(1<<31) + 1
	}
	results := make([]Result, cfg.Runs)
	eg, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		eg.SetLimit(cfg.Workers)
	}
	for i := range results {
		eg.Go(func() error {
			seed := base + int64(i)
			res, err := simulate(ctx, life.NewWithSource(cfg.Width, cfg.Height, core.NewRNG(seed)), cfg.Generations)
			if err != nil {
				return err
			}
			res.Run = i
			res.Seed = seed
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func simulate(ctx context.Context, g *life.Grid, generations int) (Result, error) {
	pop := g.Current().Population()
	res := Result{Initial: pop, Final: pop, Min: pop, Max: pop, StableAt: -1}
	prev := make([]bool, g.Current().Len())
	for gen := 1; gen <= generations; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		g.Current().CopyTo(prev)
		g.Update()
		v := g.Current()
		pop = v.Population()
		res.Generations = gen
		res.Final = pop
		res.Min = min(res.Min, pop)
		res.Max = max(res.Max, pop)
		if v.Equal(prev) {
			res.StableAt = gen
			break
		}
	}
	return res, nil
}

// Summary aggregates a set of results.
type Summary struct {
	Runs      int
	Stable    int
	Extinct   int
	MeanFinal float64
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results)}
	total := 0
	for _, r := range results {
		total += r.Final
		if r.StableAt >= 0 {
			s.Stable++
		}
		if r.Final == 0 {
			s.Extinct++
		}
	}
	if len(results) > 0 {
		s.MeanFinal = float64(total) / float64(len(results))
	}
	return s
}
