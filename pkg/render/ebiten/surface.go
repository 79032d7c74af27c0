// Package ebiten runs the game in an Ebitengine window. Ebitengine's fixed
// 60 ticks per second drive the frames and each tick's display list is
// replayed in Draw.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/opd-ai/go-invaders/pkg/physics"
)

// Rect is one recorded FillRect call in screen pixels
type Rect struct {
	X, Y, Width, Height float32
}

// Surface implements engine.Surface by recording a display list. Draw may be
// called any number of times per tick and always shows the last frame.
type Surface struct {
	Background color.Color
	Foreground color.Color

	rects []Rect
}

// NewSurface creates a surface drawing white rectangles on black
func NewSurface() *Surface {
	return &Surface{
		Background: color.Black,
		Foreground: color.White,
		rects:      make([]Rect, 0, 64),
	}
}

// Clear implements engine.Surface.
func (s *Surface) Clear(area physics.Rect) {
	s.rects = s.rects[:0]
}

// FillRect implements engine.Surface.
func (s *Surface) FillRect(x, y, width, height float64) {
	s.rects = append(s.rects, Rect{
		X:      float32(x),
		Y:      float32(y),
		Width:  float32(width),
		Height: float32(height),
	})
}

// Rects returns the display list of the last frame
func (s *Surface) Rects() []Rect {
	return s.rects
}

// Draw replays the display list onto screen
func (s *Surface) Draw(screen *ebiten.Image) {
	screen.Fill(s.Background)
	for _, r := range s.rects {
		vector.DrawFilledRect(screen, r.X, r.Y, r.Width, r.Height, s.Foreground, false)
	}
}
