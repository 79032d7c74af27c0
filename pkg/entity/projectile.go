// pkg/entity/projectile.go
package entity

import (
	"github.com/opd-ai/go-invaders/pkg/physics"
)

// Projectile represents a shot travelling at a constant velocity
type Projectile struct {
	BaseEntity
	Velocity physics.Vector2D
}

// NewProjectile creates a projectile
func NewProjectile(world World, center, velocity, size physics.Vector2D) *Projectile {
	return &Projectile{
		BaseEntity: newBaseEntity(world, center, size),
		Velocity:   velocity,
	}
}

// GetKind implements Entity
func (p *Projectile) GetKind() Kind {
	return KindProjectile
}

// Update moves the projectile and removes it once it leaves the top of the field
func (p *Projectile) Update() {
	p.Body.Translate(p.Velocity)
	if p.Body.Center.Y < 0 {
		p.World.Despawn(p)
	}
}
