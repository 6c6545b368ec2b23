//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"popnum/internal/app"
	"popnum/internal/core"
	"popnum/internal/popnum"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	state := popnum.New(core.NewRNG(seed))
	game := app.New(state, cfg.Divider)

	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowTitle("popnum — reach 99")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(popnum.Width*scale, popnum.Height*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
