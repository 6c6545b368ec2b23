// Package popnum implements the rules of the circle popping game: circles
// spawn with a number, grow every tick and expire at a radius cap unless the
// player clicks inside them first. Popped numbers add up toward the target
// score; an exact hit wins, an overshoot wraps around.
package popnum

// Logical playfield and rule constants.
const (
	Width  = 500
	Height = 600

	StartRadius   = 50
	GrowthPerTick = 8
	MaxRadius     = 200
	MaxCircles    = 10
	TargetScore   = 99

	// MaxValue is the largest number a circle can carry; values start at 1.
	MaxValue = 9
	// PaletteSize is the number of cosmetic color slots a circle can use.
	PaletteSize = 4
	// TickDivider is the number of display frames per game tick.
	TickDivider = 10
)

// Rand is the random source used for spawning circles.
type Rand interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}
