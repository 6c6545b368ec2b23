//go:build ebiten

package app

import (
	"popnum/internal/core"
	"popnum/internal/popnum"
	"popnum/internal/render"
	"popnum/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a popnum game to the ebiten.Game interface.
type Game struct {
	state   *popnum.GameState
	painter *render.ScenePainter
	status  *ui.StatusBar
	divider *core.FrameDivider

	viewW, viewH int
}

// New constructs a Game that ticks state once every divider frames.
func New(state *popnum.GameState, divider int) *Game {
	return &Game{
		state:   state,
		painter: render.NewScenePainter(render.DefaultPalette()),
		status:  ui.NewStatusBar(),
		divider: core.NewFrameDivider(divider),
		viewW:   popnum.Width,
		viewH:   popnum.Height,
	}
}

// Update handles input and advances the game on tick frames.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.state.Reset()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p := popnum.MapPoint(x, y, g.viewW, g.viewH)
		g.state.Click(p.X, p.Y)
	}
	if g.divider.Advance() {
		g.state.Tick()
	}
	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	scene := g.state.Scene()
	g.painter.Draw(screen, scene, g.viewW, g.viewH)
	g.status.Draw(screen, scene)
}

// Layout keeps the screen at the window's size so pointer positions arrive
// in device pixels and are mapped into the playfield by MapPoint.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.viewW, g.viewH
	}
	g.viewW, g.viewH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
