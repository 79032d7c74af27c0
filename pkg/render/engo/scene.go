// pkg/render/engo/scene.go
package engo

import (
	"context"
	"errors"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-invaders/pkg/config"
	"github.com/opd-ai/go-invaders/pkg/engine"
	"github.com/opd-ai/go-invaders/pkg/entity"
	"github.com/opd-ai/go-invaders/pkg/logging"
)

// ErrNoWorld is reported when engo hands Setup something other than an
// *ecs.World
var ErrNoWorld = errors.New("engo updater is not an ecs world")

// GameScene hosts one game in an engo window
type GameScene struct {
	config *config.GameConfig
	logger *logging.Logger
	input  *entity.InputState
	opts   []engine.Option

	game    *engine.Game
	surface *Surface
	frames  *FrameSystem
	err     error
}

// NewGameScene creates a new game scene. The game itself is built in Setup,
// once engo has a world to render into.
func NewGameScene(cfg *config.GameConfig, logger *logging.Logger, opts ...engine.Option) *GameScene {
	return &GameScene{
		config: cfg,
		logger: logger,
		input:  entity.NewInputState(),
		opts:   append([]engine.Option{engine.WithLogger(logger)}, opts...),
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		scene.fail(ErrNoWorld)
		return
	}
	common.SetBackground(color.Black)

	renderSystem := &common.RenderSystem{}
	scene.frames = &FrameSystem{}
	scene.surface = NewSurface(renderSystem)

	SetupInputBindings()
	world.AddSystem(renderSystem)
	world.AddSystem(NewInputSystem(scene.input))
	world.AddSystem(scene.frames)

	if err := scene.start(); err != nil {
		scene.fail(err)
	}
}

func (scene *GameScene) fail(err error) {
	scene.err = err
	scene.logger.Error(context.Background(), "failed to start game", err)
	engo.Exit()
}

func (scene *GameScene) start() error {
	game, err := engine.NewGame(scene.config, scene.surface, scene.frames, scene.input, scene.opts...)
	if err != nil {
		return logging.WrapError(err, "create game")
	}
	scene.game = game
	game.Start()
	return nil
}

// Exit is called when the window closes
func (scene *GameScene) Exit() {
	if scene.game == nil {
		return
	}
	scene.game.Stop()
	stats := scene.game.Stats()
	scene.logger.Info(scene.game.Context(), "session finished",
		"frames", stats.Frames,
		"spawned", stats.Spawned,
		"destroyed", stats.Destroyed,
	)
}

// RunOptions returns the window options for cfg. The frame rate is left
// uncapped so frames follow the display refresh; Engine.FrameRate only
// paces the timer scheduler.
func RunOptions(cfg *config.GameConfig, title string) engo.RunOptions {
	return engo.RunOptions{
		Title:  title,
		Width:  int(cfg.Field.Width),
		Height: int(cfg.Field.Height),
		VSync:  true,
	}
}

// Game returns the running game, nil before Setup
func (scene *GameScene) Game() *engine.Game {
	return scene.game
}

// Err returns the error that prevented the game from starting
func (scene *GameScene) Err() error {
	return scene.err
}
