package render

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-invaders/pkg/entity"
)

// DefaultKeyTimeout is how long a key counts as held after its last press.
// Terminals send no release events, only repeats.
const DefaultKeyTimeout = 150 * time.Millisecond

// TerminalInput turns tcell key events into held keys. Arrow keys move and
// space fires; Esc, Ctrl-C and q quit.
type TerminalInput struct {
	mu        sync.RWMutex
	lastPress map[entity.Key]time.Time
	timeout   time.Duration
	now       func() time.Time
}

// NewTerminalInput creates an input with the given hold timeout
func NewTerminalInput(timeout time.Duration) *TerminalInput {
	if timeout <= 0 {
		timeout = DefaultKeyTimeout
	}
	return &TerminalInput{
		lastPress: make(map[entity.Key]time.Time),
		timeout:   timeout,
		now:       time.Now,
	}
}

// IsKeyHeld implements entity.Input.
func (in *TerminalInput) IsKeyHeld(k entity.Key) bool {
	in.mu.RLock()
	defer in.mu.RUnlock()

	last, ok := in.lastPress[k]
	return ok && in.now().Sub(last) < in.timeout
}

// HandleEvent records key presses and reports whether ev asks to quit.
// Non-key events are ignored.
func (in *TerminalInput) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	return in.handleKey(key.Key(), key.Rune())
}

func (in *TerminalInput) handleKey(k tcell.Key, r rune) bool {
	var logical entity.Key
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		logical = entity.KeyLeft
	case tcell.KeyRight:
		logical = entity.KeyRight
	case tcell.KeyUp:
		logical = entity.KeyUp
	case tcell.KeyDown:
		logical = entity.KeyDown
	case tcell.KeyRune:
		switch r {
		case 'q':
			return true
		case ' ':
			logical = entity.KeyFire
		default:
			return false
		}
	default:
		return false
	}

	in.mu.Lock()
	in.lastPress[logical] = in.now()
	in.mu.Unlock()
	return false
}

// Listen polls screen until it is finalized or a quit key arrives, then
// calls onQuit once if a quit key was seen. Run it on its own goroutine.
func (in *TerminalInput) Listen(screen tcell.Screen, onQuit func()) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if in.HandleEvent(ev) {
			onQuit()
			return
		}
	}
}
