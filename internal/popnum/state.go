package popnum

import (
	"time"

	"popnum/internal/core"
)

// Status is the phase of a game.
type Status int

const (
	Playing Status = iota
	Won
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Point is a position in logical coordinates.
type Point struct {
	X, Y int
}

// TickResult summarizes what a single Tick changed.
type TickResult struct {
	Popped  int
	Expired int
	Spawned int
	Gain    int
	Won     bool
}

// GameState owns every circle and the score. It is not safe for concurrent
// use; callers serialize Click and Tick.
type GameState struct {
	circles    []Circle
	pending    Point
	hasPending bool
	score      int
	status     Status
	rng        Rand
}

// New returns a game in its startup state. A nil rng falls back to a
// time-seeded generator.
func New(rng Rand) *GameState {
	if rng == nil {
		rng = core.NewRNG(time.Now().UnixNano())
	}
	g := &GameState{
		circles: make([]Circle, 0, MaxCircles),
		rng:     rng,
	}
	g.Reset()
	return g
}

// Reset returns the game to its startup state: a single seed circle, zero
// score, playing.
func (g *GameState) Reset() {
	g.circles = append(g.circles[:0], seedCircle())
	g.hasPending = false
	g.pending = Point{}
	g.score = 0
	g.status = Playing
}

// Click records a press at logical coordinates (x, y). The press is resolved
// on the next Tick; a later click before that replaces it. Clicking a won
// game restarts it instead.
func (g *GameState) Click(x, y int) {
	if g.status == Won {
		g.Reset()
		return
	}
	g.pending = Point{X: x, Y: y}
	g.hasPending = true
}

// Tick advances the game by one step. It resolves the pending click, grows
// or expires the remaining circles, refills the board and applies the
// scoring rules. Ticks on a won game do nothing.
func (g *GameState) Tick() TickResult {
	var res TickResult
	if g.status == Won {
		return res
	}

	gain := 0
	kept := g.circles[:0]
	for _, c := range g.circles {
		if g.hasPending && c.Contains(g.pending.X, g.pending.Y) {
			// Overlapping hits do not add up: the last one scanned counts.
			gain = c.Value
			res.Popped++
			continue
		}
		next := c.Radius + GrowthPerTick
		if next >= MaxRadius {
			res.Expired++
			continue
		}
		c.Radius = next
		kept = append(kept, c)
	}
	g.circles = kept
	g.hasPending = false
	g.pending = Point{}

	g.score += gain
	res.Gain = gain

	for len(g.circles) < MaxCircles {
		g.circles = append(g.circles, randomCircle(g.rng))
		res.Spawned++
	}

	switch {
	case g.score == TargetScore:
		g.status = Won
		res.Won = true
	case g.score > TargetScore:
		g.score -= TargetScore
	}
	return res
}

// Score returns the current score.
func (g *GameState) Score() int { return g.score }

// Status returns the current phase.
func (g *GameState) Status() Status { return g.status }

// Pending returns the unresolved click, if any.
func (g *GameState) Pending() (Point, bool) { return g.pending, g.hasPending }

// Circles returns a copy of the live circles in spawn order.
func (g *GameState) Circles() []Circle {
	return append([]Circle(nil), g.circles...)
}
