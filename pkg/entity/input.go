package entity

import "sync"

// Key is a logical input action, independent of raw key codes
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyFire

	keyCount
)

// Keys lists every logical key in declaration order
var Keys = []Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeyFire}

// String returns the key name
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyFire:
		return "fire"
	default:
		return "unknown"
	}
}

// Input answers whether a logical key is currently held
type Input interface {
	IsKeyHeld(k Key) bool
}

// InputState is the held/released flag per logical key. Backends write it
// from their event plumbing while the game loop reads it, so access is
// guarded.
type InputState struct {
	mu   sync.RWMutex
	held [keyCount]bool
}

// NewInputState returns a state with every key released
func NewInputState() *InputState {
	return &InputState{}
}

// Set records whether k is held. Unknown keys are ignored.
func (s *InputState) Set(k Key, held bool) {
	if k < 0 || k >= keyCount {
		return
	}
	s.mu.Lock()
	s.held[k] = held
	s.mu.Unlock()
}

// Press marks k as held
func (s *InputState) Press(k Key) {
	s.Set(k, true)
}

// Release marks k as released
func (s *InputState) Release(k Key) {
	s.Set(k, false)
}

// Reset releases every key
func (s *InputState) Reset() {
	s.mu.Lock()
	s.held = [keyCount]bool{}
	s.mu.Unlock()
}

// IsKeyHeld implements Input
func (s *InputState) IsKeyHeld(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.held[k]
}
