// pkg/engine/spawner.go
package engine

import (
	"github.com/opd-ai/go-invaders/pkg/config"
	"github.com/opd-ai/go-invaders/pkg/entity"
	"github.com/opd-ai/go-invaders/pkg/physics"
)

// Spawner builds the initial population
type Spawner struct {
	Config *config.GameConfig
	Rand   entity.Rand
	Input  entity.Input
}

// NewSpawner creates a spawner drawing positions from rng
func NewSpawner(cfg *config.GameConfig, rng entity.Rand, input entity.Input) *Spawner {
	return &Spawner{
		Config: cfg,
		Rand:   rng,
		Input:  input,
	}
}

// Populate spawns the enemy wave followed by the player into world and
// returns the player.
func (s *Spawner) Populate(world entity.World) *entity.Player {
	for _, enemy := range s.Enemies(world, s.Config.Spawn.EnemyCount) {
		world.Spawn(enemy)
	}

	player := s.Player(world)
	world.Spawn(player)
	return player
}

// Enemies creates n enemies scattered across the field width, in a band from
// a quarter field above the top edge to a quarter field below it.
func (s *Spawner) Enemies(world entity.World, n int) []*entity.Enemy {
	field := s.Config.Field
	enemies := make([]*entity.Enemy, 0, n)
	for i := 0; i < n; i++ {
		x := s.Rand.Float64() * field.Width
		y := s.Rand.Float64()*field.Height*0.5 - field.Height*0.25
		enemies = append(enemies, entity.NewEnemy(
			world,
			physics.Vector2D{X: x, Y: y},
			s.Rand,
			s.Config.Enemy,
			field.Height,
		))
	}
	return enemies
}

// Player creates the player centered horizontally, one body height above the
// bottom edge.
func (s *Spawner) Player(world entity.World) *entity.Player {
	field := s.Config.Field
	center := physics.Vector2D{
		X: field.Width / 2,
		Y: field.Height - s.Config.Player.Size.Y,
	}
	return entity.NewPlayer(world, center, s.Input, s.Rand, s.Config.Player, s.Config.Projectile)
}
