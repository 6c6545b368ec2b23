// Package bot plays popnum without a screen. It is used to exercise the
// rules over long runs and to report how a seed plays out.
package bot

import (
	"popnum/internal/core"
	"popnum/internal/popnum"

	"github.com/google/uuid"
)

// Config controls a headless run.
type Config struct {
	Ticks      int
	ClickEvery int
	Seed       int64
}

// DefaultConfig returns the standard run length and click cadence.
func DefaultConfig() Config {
	return Config{Ticks: 6000, ClickEvery: 3, Seed: 1337}
}

// Report summarizes a run.
type Report struct {
	ID       uuid.UUID
	Seed     int64
	Ticks    int
	Clicks   int
	Popped   int
	Expired  int
	Spawned  int
	Wraps    int
	Wins     int
	FirstWin int // tick of the first win, 0 if none
}

// Move is a click the bot intends to make and the gain it expects.
type Move struct {
	At   popnum.Point
	Gain int
}

// Choose picks the best click for the current scene. A click at a circle's
// center scores the value of the last circle in spawn order covering that
// point, so gains are computed per candidate point. Moves that land on the
// target win; otherwise the largest gain that stays below the target is
// preferred. It reports false when no move avoids overshooting.
func Choose(scene popnum.Scene) (Move, bool) {
	remaining := scene.Target - scene.Score
	var best Move
	found := false
	for _, c := range scene.Circles {
		gain := gainAt(scene.Circles, c.X, c.Y)
		if gain > remaining {
			continue
		}
		if gain == remaining {
			return Move{At: popnum.Point{X: c.X, Y: c.Y}, Gain: gain}, true
		}
		if !found || gain > best.Gain {
			best = Move{At: popnum.Point{X: c.X, Y: c.Y}, Gain: gain}
			found = true
		}
	}
	return best, found
}

func gainAt(circles []popnum.Circle, x, y int) int {
	gain := 0
	for _, c := range circles {
		if c.Contains(x, y) {
			gain = c.Value
		}
	}
	return gain
}

// Play runs a game for cfg.Ticks ticks, clicking every cfg.ClickEvery ticks.
func Play(cfg Config) Report {
	if cfg.ClickEvery < 1 {
		cfg.ClickEvery = 1
	}
	rep := Report{ID: uuid.New(), Seed: cfg.Seed}
	state := popnum.New(core.NewRNG(cfg.Seed))

	for i := 1; i <= cfg.Ticks; i++ {
		if i%cfg.ClickEvery == 0 {
			if state.Status() == popnum.Won {
				state.Click(0, 0)
				rep.Clicks++
			} else if mv, ok := Choose(state.Scene()); ok {
				state.Click(mv.At.X, mv.At.Y)
				rep.Clicks++
			}
		}

		before := state.Score()
		res := state.Tick()
		rep.Ticks++
		rep.Popped += res.Popped
		rep.Expired += res.Expired
		rep.Spawned += res.Spawned
		if res.Gain > 0 && state.Score() < before {
			rep.Wraps++
		}
		if res.Won {
			rep.Wins++
			if rep.FirstWin == 0 {
				rep.FirstWin = i
			}
		}
	}
	return rep
}
