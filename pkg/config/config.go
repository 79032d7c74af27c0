// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/opd-ai/go-invaders/pkg/entity"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// GameConfig contains configuration for a game
type GameConfig struct {
	Field      FieldConfig             `json:"field"`
	Player     entity.PlayerTuning     `json:"player"`
	Projectile entity.ProjectileTuning `json:"projectile"`
	Enemy      entity.EnemyTuning      `json:"enemy"`
	Spawn      SpawnConfig             `json:"spawn"`
	Engine     EngineConfig            `json:"engine"`
}

// FieldConfig is the play field size. Origin is top-left, y grows downward.
type FieldConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SpawnConfig controls the initial population
type SpawnConfig struct {
	EnemyCount int `json:"enemyCount"`
}

// EngineConfig contains loop-related configuration
type EngineConfig struct {
	// Seed makes a run reproducible when non-zero
	Seed uint64 `json:"seed"`
	// SpatialIndex switches the collision sweep to a quad tree broad phase
	SpatialIndex bool `json:"spatialIndex"`
	// StatsInterval is the number of frames between stats log lines, 0 disables them
	StatsInterval int `json:"statsInterval"`
	// FrameRate drives the timer scheduler used where no display cadence exists
	FrameRate int `json:"frameRate"`
}

// LoadConfig loads a configuration from a file. Fields missing from the file
// keep their default values.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Resolve builds the configuration a frontend runs with: the file at path if
// it exists, defaults otherwise, then environment overrides, then validation.
func Resolve(path string) (*GameConfig, error) {
	config := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			config, err = LoadConfig(path)
			if err != nil {
				return nil, err
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	config, err := LoadConfigFromEnv(config)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration for values the game cannot run with
func (c *GameConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("%w: field must have a positive size, got %vx%v", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	}
	sizes := map[string]float64{
		"player.size.x":     c.Player.Size.X,
		"player.size.y":     c.Player.Size.Y,
		"projectile.size.x": c.Projectile.Size.X,
		"projectile.size.y": c.Projectile.Size.Y,
		"enemy.size.x":      c.Enemy.Size.X,
		"enemy.size.y":      c.Enemy.Size.Y,
	}
	for name, v := range sizes {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, name, v)
		}
	}
	if c.Player.FireChance < 0 || c.Player.FireChance > 1 {
		return fmt.Errorf("%w: player.fireChance must be within [0,1], got %v", ErrInvalidConfig, c.Player.FireChance)
	}
	if c.Spawn.EnemyCount < 0 {
		return fmt.Errorf("%w: spawn.enemyCount must not be negative, got %d", ErrInvalidConfig, c.Spawn.EnemyCount)
	}
	if c.Engine.FrameRate <= 0 {
		return fmt.Errorf("%w: engine.frameRate must be positive, got %d", ErrInvalidConfig, c.Engine.FrameRate)
	}
	if c.Engine.StatsInterval < 0 {
		return fmt.Errorf("%w: engine.statsInterval must not be negative, got %d", ErrInvalidConfig, c.Engine.StatsInterval)
	}
	return nil
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Field: FieldConfig{
			Width:  480,
			Height: 640,
		},
		Player:     entity.DefaultPlayerTuning(),
		Projectile: entity.DefaultProjectileTuning(),
		Enemy:      entity.DefaultEnemyTuning(),
		Spawn: SpawnConfig{
			EnemyCount: 32,
		},
		Engine: EngineConfig{
			Seed:          0,
			SpatialIndex:  false,
			StatsInterval: 300,
			FrameRate:     60,
		},
	}
}
