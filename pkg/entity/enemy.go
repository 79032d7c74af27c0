// pkg/entity/enemy.go
package entity

import (
	"github.com/opd-ai/go-invaders/pkg/physics"
)

// Enemy descends with a speed redrawn every frame
type Enemy struct {
	BaseEntity
	Tuning EnemyTuning
	// Floor is the y coordinate past which the enemy has left the field
	Floor float64

	rand Rand
}

// NewEnemy creates an enemy
func NewEnemy(world World, center physics.Vector2D, rng Rand, tuning EnemyTuning, floor float64) *Enemy {
	return &Enemy{
		BaseEntity: newBaseEntity(world, center, tuning.Size),
		Tuning:     tuning,
		Floor:      floor,
		rand:       rng,
	}
}

// GetKind implements Entity
func (e *Enemy) GetKind() Kind {
	return KindEnemy
}

// Update moves the enemy down and removes it once it passes the floor
func (e *Enemy) Update() {
	speed := e.Tuning.BaseSpeed + e.rand.Float64()*e.Tuning.SpeedJitter
	e.Body.Translate(physics.Vector2D{Y: speed})
	if e.Body.Center.Y > e.Floor {
		e.World.Despawn(e)
	}
}
