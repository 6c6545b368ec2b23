package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"popnum/internal/core"
	"popnum/internal/popnum"
	"popnum/internal/term"
)

func main() {
	cfg := term.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := term.OpenScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state := popnum.New(core.NewRNG(seed))
	err = term.New(screen, state, cfg.TPS()).Run(ctx, cfg.FPS)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
