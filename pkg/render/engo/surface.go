// pkg/render/engo/surface.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-invaders/pkg/physics"
)

// rectEntity is one pooled rectangle in the render system
type rectEntity struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// Surface implements engine.Surface on top of engo's render system. Render
// entities are pooled: Clear hides every rectangle and FillRect shows the
// next one, adding to the pool when it runs out.
type Surface struct {
	renderSystem *common.RenderSystem
	color        color.Color
	pool         []*rectEntity
	used         int
}

// NewSurface creates a surface adding its rectangles to renderSystem. A nil
// render system keeps the pool but draws nothing.
func NewSurface(renderSystem *common.RenderSystem) *Surface {
	return &Surface{
		renderSystem: renderSystem,
		color:        color.White,
	}
}

// Clear implements engine.Surface.
func (s *Surface) Clear(area physics.Rect) {
	for _, r := range s.pool[:s.used] {
		r.Hidden = true
	}
	s.used = 0
}

// FillRect implements engine.Surface.
func (s *Surface) FillRect(x, y, width, height float64) {
	if s.used == len(s.pool) {
		s.pool = append(s.pool, s.newRect())
	}

	r := s.pool[s.used]
	r.Position = engo.Point{X: float32(x), Y: float32(y)}
	r.Width = float32(width)
	r.Height = float32(height)
	r.Hidden = false
	s.used++
}

func (s *Surface) newRect() *rectEntity {
	r := &rectEntity{BasicEntity: ecs.NewBasic()}
	r.RenderComponent = common.RenderComponent{
		Drawable: common.Rectangle{},
		Color:    s.color,
		Hidden:   true,
	}
	if s.renderSystem != nil {
		s.renderSystem.Add(&r.BasicEntity, &r.RenderComponent, &r.SpaceComponent)
	}
	return r
}

// Visible returns the number of rectangles shown this frame
func (s *Surface) Visible() int {
	return s.used
}

// PoolSize returns the number of rectangle entities created so far
func (s *Surface) PoolSize() int {
	return len(s.pool)
}
