package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-invaders/pkg/physics"
)

// fillRune is drawn in every cell a rectangle touches
const fillRune = '█'

// TerminalSurface draws the play field onto a tcell screen. The field is
// stretched over the whole cell grid, so each cell covers a block of field
// units.
type TerminalSurface struct {
	screen    tcell.Screen
	fillStyle tcell.Style
	field     physics.Rect
	cols      int
	rows      int
	cellW     float64
	cellH     float64
}

// NewTerminalSurface creates a surface drawing on screen
func NewTerminalSurface(screen tcell.Screen) *TerminalSurface {
	return &TerminalSurface{
		screen:    screen,
		fillStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite),
	}
}

// Clear implements engine.Surface. The screen size is read on every frame
// so a resized terminal is picked up.
func (s *TerminalSurface) Clear(area physics.Rect) {
	s.field = area
	s.cols, s.rows = s.screen.Size()
	if s.cols > 0 && s.rows > 0 {
		s.cellW = area.Width / float64(s.cols)
		s.cellH = area.Height / float64(s.rows)
	}
	s.screen.Clear()
}

// FillRect implements engine.Surface. Any cell the rectangle touches is
// filled; parts outside the field are clipped.
func (s *TerminalSurface) FillRect(x, y, width, height float64) {
	if s.cols <= 0 || s.rows <= 0 || s.cellW <= 0 || s.cellH <= 0 {
		return
	}

	c0, c1 := s.span(x-s.field.Left(), width, s.cellW, s.cols)
	r0, r1 := s.span(y-s.field.Top(), height, s.cellH, s.rows)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			s.screen.SetContent(c, r, fillRune, nil, s.fillStyle)
		}
	}
}

// span maps [offset, offset+size) to an inclusive cell range clipped to
// [0, limit). An empty range comes back with first > last.
func (s *TerminalSurface) span(offset, size, cell float64, limit int) (int, int) {
	first := int(math.Floor(offset / cell))
	last := int(math.Ceil((offset+size)/cell)) - 1
	if last < first {
		last = first
	}
	first = max(first, 0)
	last = min(last, limit-1)
	return first, last
}

// Present implements engine.Presenter.
func (s *TerminalSurface) Present() {
	s.screen.Show()
}

// Cell returns the grid cell holding field point (x, y)
func (s *TerminalSurface) Cell(x, y float64) (int, int) {
	if s.cellW <= 0 || s.cellH <= 0 {
		return 0, 0
	}
	return int((x - s.field.Left()) / s.cellW), int((y - s.field.Top()) / s.cellH)
}
