package health

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-invaders/pkg/config"
	"github.com/opd-ai/go-invaders/pkg/engine"
	"github.com/opd-ai/go-invaders/pkg/entity"
	"github.com/opd-ai/go-invaders/pkg/physics"
)

// blankSurface draws nothing
type blankSurface struct{}

func (blankSurface) Clear(physics.Rect)          {}
func (blankSurface) FillRect(x, y, w, h float64) {}

// alwaysFire makes every fire draw succeed and every drift zero
type alwaysFire struct{}

func (alwaysFire) Float64() float64 { return 0 }

// newSession starts a game with the given enemy count, driven by the
// returned queue one frame per RunPending.
func newSession(t *testing.T, enemies int, input entity.Input, opts ...engine.Option) (*engine.Game, *engine.FrameQueue) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Spawn.EnemyCount = enemies
	cfg.Engine.Seed = 7

	queue := &engine.FrameQueue{}
	game, err := engine.NewGame(cfg, blankSurface{}, queue, input, opts...)
	require.NoError(t, err)
	game.Start()
	return game, queue
}

func runFrames(queue *engine.FrameQueue, n int) {
	for i := 0; i < n; i++ {
		queue.RunPending()
	}
}

func sessionChecker(game *engine.Game, maxLive int) *HealthChecker {
	hc := NewHealthChecker()
	hc.AddCheck(NewLoopHealthCheck(game.Running, func() uint64 { return game.Stats().Frames }))
	hc.AddCheck(NewEntityBudgetCheck(maxLive, game.Registry.Len))
	hc.AddCheck(NewMemoryHealthCheck(1<<20, nil))
	return hc
}

func TestHealthChecker_RegisteredChecks(t *testing.T) {
	game, _ := newSession(t, 0, nil)
	hc := sessionChecker(game, 10)

	status := hc.CheckHealth(context.Background())
	assert.ElementsMatch(t, []string{"game_loop", "entity_budget", "memory"}, keys(status.Checks))

	// a replaced check keeps its name
	hc.AddCheck(NewEntityBudgetCheck(0, game.Registry.Len))
	hc.RemoveCheck("memory")
	hc.RemoveCheck("not_registered")

	status = hc.CheckHealth(context.Background())
	assert.ElementsMatch(t, []string{"game_loop", "entity_budget"}, keys(status.Checks))
	assert.Equal(t, StatusUnhealthy, status.Checks["entity_budget"].Status)
}

func TestHealthChecker_Empty(t *testing.T) {
	status := NewHealthChecker().CheckHealth(context.Background())
	assert.True(t, status.Healthy())
	assert.Empty(t, status.Failures())
}

func TestSessionHealth_Lifecycle(t *testing.T) {
	game, queue := newSession(t, 4, nil)
	hc := sessionChecker(game, 100)
	ctx := game.Context()

	steps := []struct {
		name     string
		act      func()
		healthy  bool
		failures []string
	}{
		{
			name:     "started_no_frames",
			act:      func() {},
			failures: []string{"game_loop: game loop stalled at frame 0"},
		},
		{
			name:    "advancing",
			act:     func() { runFrames(queue, 3) },
			healthy: true,
		},
		{
			name:     "stalled",
			act:      func() {},
			failures: []string{"game_loop: game loop stalled at frame 3"},
		},
		{
			name:    "advancing_again",
			act:     func() { runFrames(queue, 1) },
			healthy: true,
		},
		{
			name:     "stopped",
			act:      game.Stop,
			failures: []string{"game_loop: game loop is not running"},
		},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			step.act()
			status := hc.CheckHealth(ctx)
			if status.Healthy() != step.healthy {
				t.Errorf("Healthy() = %v, want %v (failures %v)", status.Healthy(), step.healthy, status.Failures())
			}
			assert.Equal(t, step.failures, nilIfEmpty(status.Failures()))
			assert.Equal(t, StatusHealthy, status.Checks["memory"].Status)
		})
	}
}

func TestEntityBudgetCheck_LiveGame(t *testing.T) {
	tests := []struct {
		name    string
		enemies int
		budget  int
		wantErr string
	}{
		{"whole_wave_fits", 32, 33, ""},
		{"wave_over_budget", 32, 32, "live entities 33 exceed budget 32"},
		{"player_only", 0, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, _ := newSession(t, tt.enemies, nil)
			check := NewEntityBudgetCheck(tt.budget, game.Registry.Len)
			assert.Equal(t, "entity_budget", check.Name())

			err := check.Check(context.Background())
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestEntityBudgetCheck_ProjectilesAccumulate(t *testing.T) {
	input := entity.NewInputState()
	input.Press(entity.KeyFire)
	game, queue := newSession(t, 0, input, engine.WithRand(alwaysFire{}))
	hc := sessionChecker(game, 4)

	// player plus one shot per frame
	runFrames(queue, 3)
	require.Equal(t, 4, game.Registry.Len())
	assert.True(t, hc.CheckHealth(context.Background()).Healthy())

	runFrames(queue, 2)
	status := hc.CheckHealth(context.Background())
	assert.False(t, status.Healthy())
	assert.Equal(t, []string{"entity_budget: live entities 6 exceed budget 4"}, status.Failures())
}

func TestMemoryHealthCheck(t *testing.T) {
	tests := []struct {
		name      string
		currentMB int64
		maxMB     int64
		wantErr   bool
	}{
		{"within_limit", 50, 100, false},
		{"at_limit", 100, 100, false},
		{"over_limit", 150, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := NewMemoryHealthCheck(tt.maxMB, func() int64 { return tt.currentMB })

			err := check.Check(context.Background())
			if tt.wantErr != (err != nil) {
				t.Errorf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMemoryHealthCheck_ZeroLimitFailsOnRealHeap(t *testing.T) {
	// keep at least a megabyte live so the runtime reading is non-zero
	ballast := make([]byte, 2<<20)
	check := NewMemoryHealthCheck(0, nil)

	assert.ErrorContains(t, check.Check(context.Background()), "exceeds limit 0MB")
	runtime.KeepAlive(ballast)
}

func keys(m map[string]ComponentHealth) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
