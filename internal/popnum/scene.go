package popnum

import "fmt"

// Status line messages.
const (
	PlayingMessage = "Click Circle to reach 99"
	WonMessage     = "Congratulations!!"
)

// Scene is a read-only snapshot of everything a renderer needs.
type Scene struct {
	Circles []Circle
	Score   int
	Target  int
	Status  Status
}

// Message returns the prompt shown next to the score.
func (s Scene) Message() string {
	if s.Status == Won {
		return WonMessage
	}
	return PlayingMessage
}

// StatusLine formats the score, the target and the message for display.
func (s Scene) StatusLine() string {
	return fmt.Sprintf("%d / %d  %s", s.Score, s.Target, s.Message())
}

// Scene returns a snapshot of the current state. It never mutates the game.
func (g *GameState) Scene() Scene {
	return Scene{
		Circles: g.Circles(),
		Score:   g.score,
		Target:  TargetScore,
		Status:  g.status,
	}
}
