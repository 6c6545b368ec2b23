// Package term plays the game inside a terminal. Circles are rasterized onto
// the character grid, the status line takes the top row and mouse presses
// are mapped from cells into the logical playfield.
package term

import (
	"context"
	"time"

	"popnum/internal/core"
	"popnum/internal/popnum"
	"popnum/internal/render"

	"github.com/gdamore/tcell/v2"
)

// statusRows is the number of rows reserved above the playfield.
const statusRows = 1

// Frontend drives a GameState from tcell events and draws it to a screen.
type Frontend struct {
	screen  tcell.Screen
	state   *popnum.GameState
	step    *core.FixedStep
	grid    *core.ByteGrid
	palette render.Palette

	pressed bool
}

// New constructs a Frontend ticking state at tps ticks per second.
func New(screen tcell.Screen, state *popnum.GameState, tps int) *Frontend {
	return &Frontend{
		screen:  screen,
		state:   state,
		step:    core.NewFixedStep(tps),
		grid:    core.NewByteGrid(1, 1),
		palette: render.DefaultPalette(),
	}
}

// HandleEvent applies a single input event. It reports false once the user
// asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
			f.state.Reset()
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !f.pressed {
			x, y := ev.Position()
			p := f.cellToLogical(x, y)
			f.state.Click(p.X, p.Y)
		}
		f.pressed = down
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

func (f *Frontend) cellToLogical(x, y int) popnum.Point {
	w, h := f.playfieldSize()
	row := y - statusRows
	if row < 0 {
		row = 0
	}
	return render.CellCenter(x, row, w, h)
}

func (f *Frontend) playfieldSize() (int, int) {
	w, h := f.screen.Size()
	h -= statusRows
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Frame advances the game when a tick is due and redraws the screen.
func (f *Frontend) Frame() {
	if f.step.ShouldStep() {
		f.state.Tick()
	}
	f.Draw()
}

// Draw renders the current scene.
func (f *Frontend) Draw() {
	scene := f.state.Scene()
	w, h := f.playfieldSize()
	f.grid.Resize(w, h)
	render.Rasterize(f.grid, scene)

	f.screen.Clear()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := f.grid.At(x, y)
			if v == 0 {
				continue
			}
			f.screen.SetContent(x, y+statusRows, ' ', nil, f.cellStyle(v))
		}
	}
	for _, l := range render.Labels(scene, w, h) {
		style := f.cellStyle(f.grid.At(l.X, l.Y)).Foreground(tcell.ColorWhite).Bold(true)
		for i, r := range l.Text {
			f.screen.SetContent(l.X+i, l.Y+statusRows, r, nil, style)
		}
	}
	f.drawStatus(scene, w)
	f.screen.Show()
}

func (f *Frontend) cellStyle(v uint8) tcell.Style {
	if v == 0 {
		return tcell.StyleDefault
	}
	c := f.palette.At(int(v) - 1)
	// Blend toward black to mimic the translucent GUI fill.
	bg := tcell.NewRGBColor(int32(c.R)/2, int32(c.G)/2, int32(c.B)/2)
	return tcell.StyleDefault.Background(bg)
}

func (f *Frontend) drawStatus(scene popnum.Scene, w int) {
	style := tcell.StyleDefault.Bold(true).Reverse(true)
	if scene.Status == popnum.Won {
		style = style.Foreground(tcell.ColorYellow)
	}
	line := []rune(" " + scene.StatusLine())
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		f.screen.SetContent(x, 0, r, nil, style)
	}
}

// Run processes events and frames until the user quits or ctx is done.
func (f *Frontend) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !f.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			f.Frame()
		}
	}
}
