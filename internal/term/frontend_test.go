package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"popnum/internal/core"
	"popnum/internal/popnum"

	"github.com/gdamore/tcell/v2"
)

func newTestFrontend(t *testing.T, w, h int) (*Frontend, *popnum.GameState, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	state := popnum.New(core.NewRNG(5))
	return New(screen, state, 6), state, screen
}

func rowText(screen tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestMousePressMapsCellToLogical(t *testing.T) {
	f, state, _ := newTestFrontend(t, 50, 61)

	f.HandleEvent(tcell.NewEventMouse(10, 11, tcell.Button1, tcell.ModNone))
	p, ok := state.Pending()
	if !ok {
		t.Fatal("press did not record a click")
	}
	if p != (popnum.Point{X: 105, Y: 105}) {
		t.Fatalf("pending = %+v, want {105 105}", p)
	}
}

func TestMouseHoldIsNotARepeatClick(t *testing.T) {
	f, state, _ := newTestFrontend(t, 50, 61)

	f.HandleEvent(tcell.NewEventMouse(10, 11, tcell.Button1, tcell.ModNone))
	state.Tick()
	f.HandleEvent(tcell.NewEventMouse(12, 11, tcell.Button1, tcell.ModNone))
	if _, ok := state.Pending(); ok {
		t.Fatal("drag with the button held should not click again")
	}

	f.HandleEvent(tcell.NewEventMouse(12, 11, tcell.ButtonNone, tcell.ModNone))
	f.HandleEvent(tcell.NewEventMouse(12, 11, tcell.Button1, tcell.ModNone))
	if _, ok := state.Pending(); !ok {
		t.Fatal("press after release should click")
	}
}

func TestQuitAndResetKeys(t *testing.T) {
	f, state, _ := newTestFrontend(t, 50, 61)

	state.Tick()
	if !f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)) {
		t.Fatal("reset key should not quit")
	}
	if n := len(state.Circles()); n != 1 {
		t.Fatalf("after reset circle count = %d, want 1", n)
	}
	if f.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
	if f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
}

func TestDrawShowsStatusAndCircles(t *testing.T) {
	f, _, screen := newTestFrontend(t, 50, 61)
	f.Draw()

	status := rowText(screen, 0, 50)
	if !strings.HasPrefix(status, " 0 / 99  Click Circle to reach 99") {
		t.Fatalf("status row = %q", status)
	}
	_, _, style, _ := screen.GetContent(10, 12)
	_, bg, _ := style.Decompose()
	if bg == tcell.ColorDefault {
		t.Fatal("seed circle cell has no fill")
	}
	r, _, _, _ := screen.GetContent(10, 11)
	if r != '1' {
		t.Fatalf("seed label = %q, want '1'", r)
	}
	_, _, style, _ = screen.GetContent(45, 55)
	if _, bg, _ := style.Decompose(); bg != tcell.ColorDefault {
		t.Fatal("empty cell should keep the default background")
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	f, _, screen := newTestFrontend(t, 20, 20)
	screen.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	errc := make(chan error, 1)
	go func() { errc <- f.Run(context.Background(), 60) }()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on escape")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	f, _, _ := newTestFrontend(t, 20, 20)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := f.Run(ctx, 60); err != context.Canceled {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}
}

func TestConfigTPS(t *testing.T) {
	tests := []struct {
		fps, div, want int
	}{
		{60, 10, 6},
		{60, 0, 60},
		{5, 10, 1},
		{0, 10, 6},
	}
	for _, tt := range tests {
		c := Config{FPS: tt.fps, Divider: tt.div}
		if got := c.TPS(); got != tt.want {
			t.Errorf("TPS(fps=%d, div=%d) = %d, want %d", tt.fps, tt.div, got, tt.want)
		}
	}
}
