package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by LoadConfigFromEnv
const (
	EnvEnemyCount    = "INVADERS_ENEMY_COUNT"
	EnvSeed          = "INVADERS_SEED"
	EnvSpatialIndex  = "INVADERS_SPATIAL_INDEX"
	EnvStatsInterval = "INVADERS_STATS_INTERVAL"
	EnvFrameRate     = "INVADERS_FRAME_RATE"
)

// LoadConfigFromEnv returns a copy of base with any INVADERS_* overrides
// applied. Unset variables leave the base value alone; malformed ones are
// reported.
func LoadConfigFromEnv(base *GameConfig) (*GameConfig, error) {
	config := *base

	if err := envInt(EnvEnemyCount, &config.Spawn.EnemyCount); err != nil {
		return nil, err
	}
	if err := envUint(EnvSeed, &config.Engine.Seed); err != nil {
		return nil, err
	}
	if err := envBool(EnvSpatialIndex, &config.Engine.SpatialIndex); err != nil {
		return nil, err
	}
	if err := envInt(EnvStatsInterval, &config.Engine.StatsInterval); err != nil {
		return nil, err
	}
	if err := envInt(EnvFrameRate, &config.Engine.FrameRate); err != nil {
		return nil, err
	}

	return &config, nil
}

func envInt(key string, dst *int) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	*dst = v
	return nil
}

func envUint(key string, dst *uint64) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	*dst = v
	return nil
}

func envBool(key string, dst *bool) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	*dst = v
	return nil
}
