// pkg/entity/player.go
package entity

import (
	"github.com/opd-ai/go-invaders/pkg/physics"
)

// Player is the ship steered by the keyboard
type Player struct {
	BaseEntity
	Tuning PlayerTuning
	Shot   ProjectileTuning

	input Input
	rand  Rand
}

// NewPlayer creates the player centered at center. input is owned by the
// caller and read once per Update.
func NewPlayer(world World, center physics.Vector2D, input Input, rng Rand, tuning PlayerTuning, shot ProjectileTuning) *Player {
	return &Player{
		BaseEntity: newBaseEntity(world, center, tuning.Size),
		Tuning:     tuning,
		Shot:       shot,
		input:      input,
		rand:       rng,
	}
}

// GetKind implements Entity
func (p *Player) GetKind() Kind {
	return KindPlayer
}

// Update moves the player one step per held direction and may fire.
// Directions are independent, so diagonals are not normalized.
func (p *Player) Update() {
	var delta physics.Vector2D
	if p.input.IsKeyHeld(KeyLeft) {
		delta.X -= p.Tuning.Step
	}
	if p.input.IsKeyHeld(KeyRight) {
		delta.X += p.Tuning.Step
	}
	if p.input.IsKeyHeld(KeyUp) {
		delta.Y -= p.Tuning.Step
	}
	if p.input.IsKeyHeld(KeyDown) {
		delta.Y += p.Tuning.Step
	}
	p.Body.Translate(delta)

	if p.input.IsKeyHeld(KeyFire) && p.rand.Float64() < p.Tuning.FireChance {
		p.fire()
	}
}

// fire spawns a projectile at the player's nose with a small random drift
func (p *Player) fire() {
	muzzle := physics.Vector2D{
		X: p.Body.Center.X,
		Y: p.Body.Center.Y - p.Body.Size.Y/2,
	}
	velocity := physics.Vector2D{
		X: (p.rand.Float64() - 0.5) * p.Shot.Spread,
		Y: -p.Shot.Speed,
	}
	p.World.Spawn(NewProjectile(p.World, muzzle, velocity, p.Shot.Size))
}
