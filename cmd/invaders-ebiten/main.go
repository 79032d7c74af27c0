// cmd/invaders-ebiten/main.go
package main

import (
	"context"
	"flag"
	"os"

	"github.com/opd-ai/go-invaders/pkg/config"
	"github.com/opd-ai/go-invaders/pkg/engine"
	"github.com/opd-ai/go-invaders/pkg/entity"
	"github.com/opd-ai/go-invaders/pkg/logging"
	ebitenrender "github.com/opd-ai/go-invaders/pkg/render/ebiten"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "invaders.json", "Path to configuration file")
	flag.Parse()

	gameConfig, err := config.Resolve(*configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err,
			"config_path", *configPath,
		)
		os.Exit(1)
	}

	keyboard := ebitenrender.NewKeyboard(entity.NewInputState())
	host := ebitenrender.NewGame(gameConfig, keyboard)

	game, err := engine.NewGame(gameConfig, host.Surface, host, keyboard.State,
		engine.WithLogger(logger),
	)
	if err != nil {
		logger.Error(ctx, "Failed to create game", err)
		os.Exit(1)
	}
	game.Start()

	if err := host.Run("Go Invaders"); err != nil {
		logger.Error(game.Context(), "Window closed with error", err)
		os.Exit(1)
	}

	game.Stop()
	stats := game.Stats()
	logger.Info(game.Context(), "Session finished",
		"frames", stats.Frames,
		"spawned", stats.Spawned,
		"destroyed", stats.Destroyed,
	)
}
