package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/go-invaders/pkg/entity"
)

// KeyMap lists the physical keys bound to each logical key
var KeyMap = map[entity.Key][]ebiten.Key{
	entity.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	entity.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	entity.KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	entity.KeyDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	entity.KeyFire:  {ebiten.KeySpace},
}

// QuitKeys end the game
var QuitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}

// Keyboard polls Ebitengine's key state into an InputState
type Keyboard struct {
	State *entity.InputState

	pressed func(ebiten.Key) bool
}

// NewKeyboard creates a keyboard writing to state
func NewKeyboard(state *entity.InputState) *Keyboard {
	return &Keyboard{
		State:   state,
		pressed: ebiten.IsKeyPressed,
	}
}

// Sync updates every logical key. A logical key is held while any of its
// physical keys is.
func (k *Keyboard) Sync() {
	for _, key := range entity.Keys {
		k.State.Set(key, k.anyPressed(KeyMap[key]))
	}
}

// QuitRequested reports whether a quit key is down
func (k *Keyboard) QuitRequested() bool {
	return k.anyPressed(QuitKeys)
}

func (k *Keyboard) anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if k.pressed(key) {
			return true
		}
	}
	return false
}
