package entity

import "github.com/opd-ai/go-invaders/pkg/physics"

// PlayerTuning holds the player's size, movement and fire parameters
type PlayerTuning struct {
	Size       physics.Vector2D `json:"size"`
	Step       float64          `json:"step"`
	FireChance float64          `json:"fireChance"`
}

// ProjectileTuning holds the projectile's size and launch velocity
type ProjectileTuning struct {
	Size   physics.Vector2D `json:"size"`
	Speed  float64          `json:"speed"`
	Spread float64          `json:"spread"`
}

// EnemyTuning holds the enemy's size and descent speed. The per-frame speed
// is BaseSpeed plus a fresh uniform draw scaled by SpeedJitter.
type EnemyTuning struct {
	Size        physics.Vector2D `json:"size"`
	BaseSpeed   float64          `json:"baseSpeed"`
	SpeedJitter float64          `json:"speedJitter"`
}

// DefaultPlayerTuning returns the classic player parameters
func DefaultPlayerTuning() PlayerTuning {
	return PlayerTuning{
		Size:       physics.Vector2D{X: 15, Y: 15},
		Step:       5,
		FireChance: 0.33,
	}
}

// DefaultProjectileTuning returns the classic projectile parameters
func DefaultProjectileTuning() ProjectileTuning {
	return ProjectileTuning{
		Size:   physics.Vector2D{X: 3, Y: 3},
		Speed:  7,
		Spread: 0.25,
	}
}

// DefaultEnemyTuning returns the classic enemy parameters
func DefaultEnemyTuning() EnemyTuning {
	return EnemyTuning{
		Size:        physics.Vector2D{X: 12, Y: 12},
		BaseSpeed:   0.2,
		SpeedJitter: 0.2,
	}
}
