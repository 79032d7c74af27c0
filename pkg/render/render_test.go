package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-invaders/pkg/config"
	"github.com/opd-ai/go-invaders/pkg/engine"
	"github.com/opd-ai/go-invaders/pkg/entity"
	"github.com/opd-ai/go-invaders/pkg/logging"
	"github.com/opd-ai/go-invaders/pkg/physics"
)

var field = physics.RectFromCorner(0, 0, 480, 640)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return screen
}

func filled(screen tcell.Screen, x, y int) bool {
	mainc, _, _, _ := screen.GetContent(x, y)
	return mainc == fillRune
}

func TestNullSurface_CountsCalls(t *testing.T) {
	s := NewNullSurface(nil)

	s.Clear(field)
	s.FillRect(1, 2, 3, 4)
	s.FillRect(5, 6, 7, 8)
	assert.Equal(t, 2, s.Rects())

	s.Clear(field)
	assert.Equal(t, 0, s.Rects())
	assert.Equal(t, 2, s.Frames())
}

func TestNullSurface_DebugLogs(t *testing.T) {
	t.Setenv(logging.LevelEnvVar, "DEBUG")
	var buf bytes.Buffer
	s := NewNullSurface(logging.NewLoggerWithWriter(&buf))

	s.Clear(field)
	s.FillRect(232.5, 617.5, 15, 15)

	out := buf.String()
	assert.Contains(t, out, `"msg":"Clear called"`)
	assert.Contains(t, out, `"msg":"FillRect called"`)
	assert.Contains(t, out, `"x":232.5`)
}

func TestTerminalSurface_FillRect(t *testing.T) {
	// 48x32 cells make each cell 10x20 field units
	screen := newSimScreen(t, 48, 32)
	s := NewTerminalSurface(screen)

	s.Clear(field)
	s.FillRect(232.5, 617.5, 15, 15)
	s.Present()

	for _, cell := range [][2]int{{23, 30}, {24, 30}, {23, 31}, {24, 31}} {
		assert.True(t, filled(screen, cell[0], cell[1]), "cell %v", cell)
	}
	assert.False(t, filled(screen, 22, 30))
	assert.False(t, filled(screen, 25, 31))
	assert.False(t, filled(screen, 23, 29))
}

func TestTerminalSurface_SmallRectFillsOneCell(t *testing.T) {
	screen := newSimScreen(t, 48, 32)
	s := NewTerminalSurface(screen)

	s.Clear(field)
	s.FillRect(101, 101, 3, 3)
	s.Present()

	assert.True(t, filled(screen, 10, 5))
	assert.False(t, filled(screen, 11, 5))
}

func TestTerminalSurface_ClipsOutsideField(t *testing.T) {
	screen := newSimScreen(t, 48, 32)
	s := NewTerminalSurface(screen)

	s.Clear(field)
	// an enemy still above the visible field
	s.FillRect(50, -100, 12, 12)
	// partly above the top edge
	s.FillRect(0, -6, 12, 12)
	s.Present()

	assert.True(t, filled(screen, 0, 0))
	assert.True(t, filled(screen, 1, 0))
	assert.False(t, filled(screen, 5, 0))
}

func TestTerminalSurface_ClearErases(t *testing.T) {
	screen := newSimScreen(t, 48, 32)
	s := NewTerminalSurface(screen)

	s.Clear(field)
	s.FillRect(0, 0, 10, 20)
	s.Present()
	require.True(t, filled(screen, 0, 0))

	s.Clear(field)
	s.Present()
	assert.False(t, filled(screen, 0, 0))
}

func TestTerminalSurface_Cell(t *testing.T) {
	screen := newSimScreen(t, 48, 32)
	s := NewTerminalSurface(screen)
	s.Clear(field)

	x, y := s.Cell(240, 625)
	assert.Equal(t, 24, x)
	assert.Equal(t, 31, y)
}

func TestTerminalSurface_DrivesGame(t *testing.T) {
	screen := newSimScreen(t, 48, 32)
	s := NewTerminalSurface(screen)
	cfg := config.DefaultConfig()
	cfg.Spawn.EnemyCount = 0

	g, err := engine.NewGame(cfg, s, &engine.FrameQueue{}, nil)
	require.NoError(t, err)

	g.Step()

	assert.True(t, filled(screen, 23, 30), "player is drawn and presented")
}

func TestTerminalInput_HeldWithinTimeout(t *testing.T) {
	now := time.Unix(100, 0)
	in := NewTerminalInput(100 * time.Millisecond)
	in.now = func() time.Time { return now }

	assert.False(t, in.IsKeyHeld(entity.KeyLeft))

	assert.False(t, in.handleKey(tcell.KeyLeft, 0))
	assert.True(t, in.IsKeyHeld(entity.KeyLeft))
	assert.False(t, in.IsKeyHeld(entity.KeyRight))

	now = now.Add(99 * time.Millisecond)
	assert.True(t, in.IsKeyHeld(entity.KeyLeft))

	now = now.Add(time.Millisecond)
	assert.False(t, in.IsKeyHeld(entity.KeyLeft), "released once the timeout passes")
}

func TestTerminalInput_KeyMapping(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want entity.Key
	}{
		{"left", tcell.KeyLeft, 0, entity.KeyLeft},
		{"right", tcell.KeyRight, 0, entity.KeyRight},
		{"up", tcell.KeyUp, 0, entity.KeyUp},
		{"down", tcell.KeyDown, 0, entity.KeyDown},
		{"space_fires", tcell.KeyRune, ' ', entity.KeyFire},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewTerminalInput(0)
			assert.False(t, in.handleKey(tt.key, tt.r))
			for _, k := range entity.Keys {
				assert.Equal(t, k == tt.want, in.IsKeyHeld(k), "key %s", k)
			}
		})
	}
}

func TestTerminalInput_Quit(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"escape", tcell.KeyEscape, 0},
		{"ctrl_c", tcell.KeyCtrlC, 0},
		{"q", tcell.KeyRune, 'q'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, NewTerminalInput(0).handleKey(tt.key, tt.r))
		})
	}
}

func TestTerminalInput_IgnoresOtherKeys(t *testing.T) {
	in := NewTerminalInput(0)
	assert.False(t, in.handleKey(tcell.KeyRune, 'x'))
	assert.False(t, in.handleKey(tcell.KeyTab, 0))
	assert.False(t, in.HandleEvent(tcell.NewEventResize(80, 24)))
	for _, k := range entity.Keys {
		assert.False(t, in.IsKeyHeld(k))
	}
}

func TestTerminalInput_ListenStopsOnFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())

	done := make(chan struct{})
	quit := false
	go func() {
		NewTerminalInput(0).Listen(screen, func() { quit = true })
		close(done)
	}()

	screen.Fini()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Listen did not return after Fini")
	}
	assert.False(t, quit)
}
