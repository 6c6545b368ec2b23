package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// OpenScreen creates and initializes a terminal screen with mouse reporting
// enabled. Callers must Fini the returned screen.
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}
