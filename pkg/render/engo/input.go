// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-invaders/pkg/entity"
)

// Button names registered with engo.Input
const (
	ButtonLeft  = "left"
	ButtonRight = "right"
	ButtonUp    = "up"
	ButtonDown  = "down"
	ButtonFire  = "fire"
	ButtonQuit  = "quit"
)

var bindings = []struct {
	button string
	key    entity.Key
}{
	{ButtonLeft, entity.KeyLeft},
	{ButtonRight, entity.KeyRight},
	{ButtonUp, entity.KeyUp},
	{ButtonDown, entity.KeyDown},
	{ButtonFire, entity.KeyFire},
}

// InputSystem copies engo button state into an InputState once per frame,
// before the game loop reads it.
type InputSystem struct {
	state *entity.InputState

	// down and quit are swapped out in tests
	down func(button string) bool
	quit func()
}

// NewInputSystem creates an input system writing to state
func NewInputSystem(state *entity.InputState) *InputSystem {
	return &InputSystem{
		state: state,
		down: func(button string) bool {
			return engo.Input.Button(button).Down()
		},
		quit: engo.Exit,
	}
}

// Priority runs input ahead of the frame system
func (is *InputSystem) Priority() int {
	return 20
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update syncs every bound key. Escape closes the window.
func (is *InputSystem) Update(dt float32) {
	for _, b := range bindings {
		is.state.Set(b.key, is.down(b.button))
	}
	if is.down(ButtonQuit) {
		is.quit()
	}
}

// SetupInputBindings registers arrow keys and WASD for movement, space to
// fire and escape to quit.
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonLeft, engo.KeyArrowLeft, engo.KeyA)
	engo.Input.RegisterButton(ButtonRight, engo.KeyArrowRight, engo.KeyD)
	engo.Input.RegisterButton(ButtonUp, engo.KeyArrowUp, engo.KeyW)
	engo.Input.RegisterButton(ButtonDown, engo.KeyArrowDown, engo.KeyS)
	engo.Input.RegisterButton(ButtonFire, engo.KeySpace)
	engo.Input.RegisterButton(ButtonQuit, engo.KeyEscape)
}
