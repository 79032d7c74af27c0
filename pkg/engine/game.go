// pkg/engine/game.go
package engine

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/kamstrup/intmap"

	"github.com/opd-ai/go-invaders/pkg/config"
	"github.com/opd-ai/go-invaders/pkg/entity"
	"github.com/opd-ai/go-invaders/pkg/event"
	"github.com/opd-ai/go-invaders/pkg/logging"
	"github.com/opd-ai/go-invaders/pkg/physics"
)

var (
	// ErrNoSurface is returned by NewGame when no drawing surface is available
	ErrNoSurface = errors.New("no drawing surface")
	// ErrNoScheduler is returned by NewGame when no frame scheduler is available
	ErrNoScheduler = errors.New("no frame scheduler")
)

// quadTreeCapacity is the number of bodies per quad before subdivision
const quadTreeCapacity = 8

// Stats are running counters for a game session
type Stats struct {
	Frames     uint64
	Spawned    uint64
	Despawned  uint64
	Collisions uint64 // colliding pairs
	Destroyed  uint64 // entities removed by collision
	Live       int
}

// Option configures optional Game collaborators
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *logging.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithEventBus sets the bus game events are published on
func WithEventBus(bus *event.Bus) Option {
	return func(g *Game) { g.EventBus = bus }
}

// WithRand overrides the random source seeded from the configuration
func WithRand(rng entity.Rand) Option {
	return func(g *Game) { g.rand = rng }
}

// Game owns the live entity set and runs the per-frame pipeline:
// collision sweep, removal of every colliding entity, update, render.
type Game struct {
	Config    *config.GameConfig
	Registry  *Registry
	EventBus  *event.Bus
	Player    *entity.Player
	Field     physics.Rect
	SessionID string

	surface   Surface
	scheduler Scheduler
	input     entity.Input
	rand      entity.Rand
	logger    *logging.Logger
	ctx       context.Context

	running    atomic.Bool
	marks      *intmap.Map[entity.ID, struct{}]
	frames     uint64
	collisions uint64
	destroyed  uint64
}

// NewGame validates cfg, wires the collaborators and spawns the initial
// population. A nil input leaves every key released.
func NewGame(cfg *config.GameConfig, surface Surface, scheduler Scheduler, input entity.Input, opts ...Option) (*Game, error) {
	if cfg == nil {
		return nil, config.ErrInvalidConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if surface == nil {
		return nil, ErrNoSurface
	}
	if scheduler == nil {
		return nil, ErrNoScheduler
	}
	if input == nil {
		input = entity.NewInputState()
	}

	g := &Game{
		Config:    cfg,
		EventBus:  event.NewEventBus(),
		Field:     physics.RectFromCorner(0, 0, cfg.Field.Width, cfg.Field.Height),
		SessionID: logging.NewSessionID(),
		surface:   surface,
		scheduler: scheduler,
		input:     input,
		logger:    logging.NewNopLogger(),
		marks:     intmap.New[entity.ID, struct{}](64),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rand == nil {
		g.rand = entity.NewRand(cfg.Engine.Seed)
	}
	if g.EventBus == nil {
		g.EventBus = event.NewEventBus()
	}
	if g.logger == nil {
		g.logger = logging.NewNopLogger()
	}
	g.ctx = logging.WithSession(context.Background(), g.SessionID)
	g.Registry = NewRegistry(g.EventBus)
	g.Player = NewSpawner(cfg, g.rand, input).Populate(g.Registry)

	return g, nil
}

// Context returns the context carrying the session id
func (g *Game) Context() context.Context {
	return g.ctx
}

// Start requests the first frame. Each frame requests the next one until
// Stop is called.
func (g *Game) Start() {
	if !g.running.CompareAndSwap(false, true) {
		return
	}

	g.logger.Info(g.ctx, "game started",
		"enemies", g.Registry.Count(entity.KindEnemy),
		"spatial_index", g.Config.Engine.SpatialIndex,
		"seed", g.Config.Engine.Seed,
	)
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameStarted,
		Source:    g,
	})

	g.scheduler.RequestFrame(g.frame)
}

// Stop turns the pending frame callback into a no-op. It is safe to call
// from any goroutine.
func (g *Game) Stop() {
	if !g.running.CompareAndSwap(true, false) {
		return
	}

	g.logger.Info(g.ctx, "game stopped")
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameStopped,
		Source:    g,
	})
}

// Running reports whether the loop is scheduled
func (g *Game) Running() bool {
	return g.running.Load()
}

func (g *Game) frame() {
	if !g.running.Load() {
		return
	}
	g.Step()
	g.scheduler.RequestFrame(g.frame)
}

// Step runs one frame without rescheduling
func (g *Game) Step() {
	live := g.Registry.Snapshot()

	destroyed := 0
	if g.sweep(live) > 0 {
		removed := g.Registry.Filter(func(e entity.Entity) bool {
			_, hit := g.marks.Get(e.GetID())
			return !hit
		})
		destroyed = len(removed)
		for _, e := range removed {
			if e.GetKind() == entity.KindPlayer {
				g.playerDestroyed(e)
			}
		}
	}

	g.update()

	g.render()

	g.frames++
	g.destroyed += uint64(destroyed)
	if g.EventBus.HasSubscribers(event.FrameCompleted) {
		g.EventBus.Publish(event.NewFrameEvent(g, g.frames, g.Registry.Len(), destroyed))
	}
	g.logStats()
}

// update runs the survivors, then whatever they spawned, which may spawn
// more. Entities spawned here are first collision-tested next frame.
func (g *Game) update() {
	g.Registry.BeginPass()
	for _, e := range g.Registry.Snapshot() {
		e.Update()
	}
	for i := 0; ; i++ {
		e, ok := g.Registry.Recent(i)
		if !ok {
			break
		}
		e.Update()
	}
}

// Stats returns the session counters. Call it from the loop goroutine or
// after the loop has stopped.
func (g *Game) Stats() Stats {
	return Stats{
		Frames:     g.frames,
		Spawned:    g.Registry.spawned,
		Despawned:  g.Registry.despawned,
		Collisions: g.collisions,
		Destroyed:  g.destroyed,
		Live:       g.Registry.Len(),
	}
}

// sweep marks every entity of live that overlaps at least one other and
// returns the number marked.
func (g *Game) sweep(live []entity.Entity) int {
	g.marks.Clear()
	if g.Config.Engine.SpatialIndex {
		g.sweepIndexed(live)
	} else {
		g.sweepAllPairs(live)
	}
	return g.marks.Len()
}

func (g *Game) sweepAllPairs(live []entity.Entity) {
	for i := 0; i < len(live); i++ {
		a := live[i].GetBody()
		for j := i + 1; j < len(live); j++ {
			if physics.Colliding(a, live[j].GetBody()) {
				g.hit(live[i], live[j])
			}
		}
	}
}

// sweepIndexed finds the same pairs as sweepAllPairs. Bodies are indexed by
// center, so each query area is grown by the largest body in the frame.
func (g *Game) sweepIndexed(live []entity.Entity) {
	if len(live) < 2 {
		return
	}

	tree, reach, ok := buildIndex(live)
	if !ok {
		g.sweepAllPairs(live)
		return
	}

	for i, e := range live {
		a := e.GetBody()
		area := physics.Rect{
			Center: a.Center,
			Width:  a.Size.X + reach.X,
			Height: a.Size.Y + reach.Y,
		}
		for _, obj := range tree.Query(area) {
			j := obj.(int)
			if j <= i {
				continue
			}
			if physics.Colliding(a, live[j].GetBody()) {
				g.hit(live[i], live[j])
			}
		}
	}
}

// buildIndex inserts every body center into a quad tree covering them all.
// It reports false if a center could not be placed.
func buildIndex(live []entity.Entity) (*physics.QuadTree, physics.Vector2D, bool) {
	first := live[0].GetBody()
	lo, hi := first.Center, first.Center
	var reach physics.Vector2D
	for _, e := range live {
		b := e.GetBody()
		lo.X, lo.Y = min(lo.X, b.Center.X), min(lo.Y, b.Center.Y)
		hi.X, hi.Y = max(hi.X, b.Center.X), max(hi.Y, b.Center.Y)
		reach.X, reach.Y = max(reach.X, b.Size.X), max(reach.Y, b.Size.Y)
	}

	const pad = 1.0
	boundary := physics.Rect{
		Center: physics.Vector2D{X: (lo.X + hi.X) / 2, Y: (lo.Y + hi.Y) / 2},
		Width:  hi.X - lo.X + 2*pad,
		Height: hi.Y - lo.Y + 2*pad,
	}

	tree := physics.NewQuadTree(boundary, quadTreeCapacity)
	for i, e := range live {
		if !tree.Insert(e.GetBody().Center, i) {
			return nil, reach, false
		}
	}
	return tree, reach, true
}

func (g *Game) hit(a, b entity.Entity) {
	g.marks.Put(a.GetID(), struct{}{})
	g.marks.Put(b.GetID(), struct{}{})
	g.collisions++

	if g.EventBus.HasSubscribers(event.EntityCollision) {
		g.EventBus.Publish(event.NewCollisionEvent(g, uint64(a.GetID()), uint64(b.GetID())))
	}
}

func (g *Game) playerDestroyed(player entity.Entity) {
	g.logger.Info(g.ctx, "player destroyed",
		"frame", g.frames+1,
		"entity_id", uint64(player.GetID()),
	)
	g.EventBus.Publish(event.NewEntityEvent(event.PlayerDestroyed, g, uint64(player.GetID()), player.GetKind().String()))
}

func (g *Game) render() {
	g.surface.Clear(g.Field)
	for _, e := range g.Registry.entities {
		b := e.GetBody()
		corner := b.Min()
		g.surface.FillRect(corner.X, corner.Y, b.Size.X, b.Size.Y)
	}
	if p, ok := g.surface.(Presenter); ok {
		p.Present()
	}
}

func (g *Game) logStats() {
	interval := g.Config.Engine.StatsInterval
	if interval <= 0 || g.frames%uint64(interval) != 0 || !g.logger.DebugEnabled(g.ctx) {
		return
	}

	s := g.Stats()
	g.logger.Debug(g.ctx, "frame stats",
		"frame", s.Frames,
		"live", s.Live,
		"enemies", g.Registry.Count(entity.KindEnemy),
		"projectiles", g.Registry.Count(entity.KindProjectile),
		"spawned", s.Spawned,
		"despawned", s.Despawned,
		"collisions", s.Collisions,
		"destroyed", s.Destroyed,
	)
}
