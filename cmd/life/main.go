//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"torus-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	grid, err := cfg.NewGrid()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(cfg, grid)
	size := grid.Size()

	ebiten.SetWindowTitle(fmt.Sprintf("torus-life — %s %dx%d", grid.Name(), size.W, size.H))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
