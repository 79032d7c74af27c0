// cmd/invaders-term/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-invaders/pkg/config"
	"github.com/opd-ai/go-invaders/pkg/engine"
	"github.com/opd-ai/go-invaders/pkg/event"
	"github.com/opd-ai/go-invaders/pkg/health"
	"github.com/opd-ai/go-invaders/pkg/logging"
	"github.com/opd-ai/go-invaders/pkg/render"
)

func main() {
	configPath := flag.String("config", "invaders.json", "Path to configuration file")
	logPath := flag.String("log", "invaders.log", "Log file, the terminal itself is used for drawing")
	headless := flag.Bool("headless", false, "Run without a screen, logging frames instead")
	frames := flag.Uint64("frames", 600, "Frames to run in headless mode")
	maxLive := flag.Int("max-live", 1024, "Live entity budget checked in headless mode")
	maxHeap := flag.Int64("max-heap", 256, "Heap limit in MB checked in headless mode")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", *logPath, err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := logging.NewLoggerWithWriter(logFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gameConfig, err := config.Resolve(*configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err,
			"config_path", *configPath,
		)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *headless {
		err = runHeadless(ctx, gameConfig, logger, *frames, newChecks(*maxLive, *maxHeap))
	} else {
		err = runTerminal(ctx, gameConfig, logger)
	}
	if err != nil {
		logger.Error(ctx, "Game failed", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runTerminal plays in the terminal until a quit key or a signal
func runTerminal(ctx context.Context, cfg *config.GameConfig, logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return logging.WrapError(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return logging.WrapError(err, "initialize screen")
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	screen.Clear()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	input := render.NewTerminalInput(render.DefaultKeyTimeout)
	scheduler := engine.NewTimerScheduler(cfg.Engine.FrameRate)
	game, err := engine.NewGame(cfg, render.NewTerminalSurface(screen), scheduler, input,
		engine.WithLogger(logger),
	)
	if err != nil {
		return logging.WrapError(err, "create game")
	}

	go input.Listen(screen, cancel)

	game.Start()
	return finish(game, logger, scheduler.Run(ctx))
}

// sessionChecks holds the limits for the health checks of a headless run
type sessionChecks struct {
	maxLive int
	maxHeap int64
}

func newChecks(maxLive int, maxHeap int64) sessionChecks {
	return sessionChecks{maxLive: maxLive, maxHeap: maxHeap}
}

func (c sessionChecks) checker(game *engine.Game) *health.HealthChecker {
	hc := health.NewHealthChecker()
	hc.AddCheck(health.NewLoopHealthCheck(game.Running, func() uint64 { return game.Stats().Frames }))
	hc.AddCheck(health.NewEntityBudgetCheck(c.maxLive, game.Registry.Len))
	hc.AddCheck(health.NewMemoryHealthCheck(c.maxHeap, nil))
	return hc
}

// runHeadless runs a fixed number of frames against a NullSurface. Health
// checks run every stats interval and on the last frame; the first failure
// ends the run with an error.
func runHeadless(ctx context.Context, cfg *config.GameConfig, logger *logging.Logger, frames uint64, checks sessionChecks) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	scheduler := engine.NewTimerScheduler(cfg.Engine.FrameRate)
	surface := render.NewNullSurface(logger)
	game, err := engine.NewGame(cfg, surface, scheduler, nil,
		engine.WithLogger(logger),
	)
	if err != nil {
		return logging.WrapError(err, "create game")
	}
	surface.WithContext(game.Context())

	hc := checks.checker(game)
	interval := uint64(cfg.Engine.StatsInterval)
	var unhealthy error
	game.EventBus.Subscribe(event.FrameCompleted, func(e event.Event) {
		frame := e.(*event.FrameEvent).Frame
		last := frame >= frames
		if last || (interval > 0 && frame%interval == 0) {
			status := hc.CheckHealth(game.Context())
			if !status.Healthy() {
				unhealthy = fmt.Errorf("session unhealthy at frame %d: %s", frame, strings.Join(status.Failures(), "; "))
				cancel()
				return
			}
			logger.Debug(game.Context(), "Health check passed", "frame", frame)
		}
		if last {
			cancel()
		}
	})

	game.Start()
	if err := finish(game, logger, scheduler.Run(ctx)); err != nil {
		return err
	}
	return unhealthy
}

func finish(game *engine.Game, logger *logging.Logger, runErr error) error {
	game.Stop()
	stats := game.Stats()
	logger.Info(game.Context(), "Session finished",
		"frames", stats.Frames,
		"spawned", stats.Spawned,
		"despawned", stats.Despawned,
		"collisions", stats.Collisions,
		"destroyed", stats.Destroyed,
		"live", stats.Live,
	)

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}
