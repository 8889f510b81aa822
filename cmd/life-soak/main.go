package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"torus-life/internal/soak"
	"torus-life/pkg/core"
)

func main() {
	cfg := soak.DefaultConfig()
	flag.IntVar(&cfg.Runs, "runs", cfg.Runs, "number of independent grids")
	flag.IntVar(&cfg.Generations, "generations", cfg.Generations, "maximum generations per grid")
	flag.IntVar(&cfg.Width, "w", cfg.Width, "grid width in cells")
	flag.IntVar(&cfg.Height, "h", cfg.Height, "grid height in cells")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the first run (0 picks a random base seed)")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "grids simulated in parallel")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := soak.Run(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	area := core.Size{W: cfg.Width, H: cfg.Height}.Area()
	cells := 0
	for _, r := range results {
		stable := "-"
		if r.StableAt >= 0 {
			stable = fmt.Sprint(r.StableAt)
		}
		fmt.Printf("run %3d seed %-6d gens %5d pop %5d -> %5d (min %5d, max %5d) stable %s\n",
			r.Run, r.Seed, r.Generations, r.Initial, r.Final, r.Min, r.Max, stable)
		cells += r.Generations * area
	}

	s := soak.Summarize(results)
	fmt.Printf("\n%d runs, %d stable, %d extinct, mean final population %.1f\n", s.Runs, s.Stable, s.Extinct, s.MeanFinal)
	if elapsed > 0 {
		fmt.Printf("%.1f Mcell updates/s over %v\n", float64(cells)/elapsed.Seconds()/1e6, elapsed.Round(time.Millisecond))
	}
}
