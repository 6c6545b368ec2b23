package main

import (
	"flag"
	"fmt"

	"popnum/internal/bot"
)

func main() {
	def := bot.DefaultConfig()
	ticks := flag.Int("ticks", def.Ticks, "number of ticks to simulate per run")
	every := flag.Int("every", def.ClickEvery, "ticks between bot clicks")
	seed := flag.Int64("seed", def.Seed, "seed of the first run")
	runs := flag.Int("runs", 1, "number of runs; run i uses seed+i")
	flag.Parse()

	totalWins := 0
	for i := 0; i < *runs; i++ {
		rep := bot.Play(bot.Config{Ticks: *ticks, ClickEvery: *every, Seed: *seed + int64(i)})
		totalWins += rep.Wins
		fmt.Printf("run %s seed %d: %d ticks, %d clicks, %d popped, %d expired, %d spawned, %d wraps, %d wins (first at tick %d)\n",
			rep.ID, rep.Seed, rep.Ticks, rep.Clicks, rep.Popped, rep.Expired, rep.Spawned, rep.Wraps, rep.Wins, rep.FirstWin)
	}
	if *runs > 1 {
		fmt.Printf("\nTotal wins across %d runs: %d\n", *runs, totalWins)
	}
}
