package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/go-invaders/pkg/config"
	"github.com/opd-ai/go-invaders/pkg/engine"
)

// Game implements ebiten.Game and engine.Scheduler. Each Update runs the
// pending game frame.
type Game struct {
	engine.FrameQueue

	Surface  *Surface
	Keyboard *Keyboard

	width  int
	height int
}

// NewGame creates a host sized to the configured field
func NewGame(cfg *config.GameConfig, keyboard *Keyboard) *Game {
	return &Game{
		Surface:  NewSurface(),
		Keyboard: keyboard,
		width:    int(cfg.Field.Width),
		height:   int(cfg.Field.Height),
	}
}

// Update implements ebiten.Game. It returns ebiten.Termination once a quit
// key is pressed.
func (g *Game) Update() error {
	if g.Keyboard.QuitRequested() {
		return ebiten.Termination
	}
	g.Keyboard.Sync()
	g.RunPending()
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.Surface.Draw(screen)
}

// Layout implements ebiten.Game. The logical screen is the play field, so
// field units are pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it closes. Start the engine game
// with g as its scheduler first.
func (g *Game) Run(title string) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(ebiten.DefaultTPS)
	return ebiten.RunGame(g)
}
