// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-invaders/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Kind tags the closed set of entity variants
type Kind int

const (
	KindPlayer Kind = iota
	KindProjectile
	KindEnemy
)

// String returns the kind name used in logs and events
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Entity is the base interface for all game objects. Update advances the
// entity by exactly one frame; movement is not scaled by wall-clock time.
type Entity interface {
	GetID() ID
	GetKind() Kind
	GetBody() *physics.Body
	Update()
}

// World is the capability an entity gets for changing the live set. Entities
// spawn others through it and despawn themselves; they never see the loop.
type World interface {
	Spawn(e Entity)
	Despawn(e Entity)
}

// BaseEntity contains common functionality for all entities
type BaseEntity struct {
	ID    ID
	Body  *physics.Body
	World World
}

func newBaseEntity(world World, center, size physics.Vector2D) BaseEntity {
	return BaseEntity{
		ID:    GenerateID(),
		Body:  physics.NewBody(center, size),
		World: world,
	}
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetBody returns the entity's spatial body
func (e *BaseEntity) GetBody() *physics.Body {
	return e.Body
}

var nextID atomic.Uint64

// GenerateID returns a process-wide unique entity id
func GenerateID() ID {
	return ID(nextID.Add(1))
}
