// Package render holds the surfaces that do not need a window: a null
// surface for headless runs and a tcell surface for terminals.
package render

import (
	"context"

	"github.com/opd-ai/go-invaders/pkg/logging"
	"github.com/opd-ai/go-invaders/pkg/physics"
)

// NullSurface draws nothing. It debug-logs every call and counts the
// rectangles of the current frame.
type NullSurface struct {
	logger *logging.Logger
	ctx    context.Context
	rects  int
	frames int
}

// NewNullSurface creates a NullSurface. A nil logger discards everything.
func NewNullSurface(logger *logging.Logger) *NullSurface {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &NullSurface{
		logger: logger,
		ctx:    context.Background(),
	}
}

// WithContext returns the surface logging with ctx, so lines carry the
// session id.
func (s *NullSurface) WithContext(ctx context.Context) *NullSurface {
	s.ctx = ctx
	return s
}

// Clear implements engine.Surface.
func (s *NullSurface) Clear(area physics.Rect) {
	s.rects = 0
	s.frames++
	if s.logger.DebugEnabled(s.ctx) {
		s.logger.Debug(s.ctx, "Clear called",
			"width", area.Width,
			"height", area.Height,
		)
	}
}

// FillRect implements engine.Surface.
func (s *NullSurface) FillRect(x, y, width, height float64) {
	s.rects++
	if s.logger.DebugEnabled(s.ctx) {
		s.logger.Debug(s.ctx, "FillRect called",
			"x", x,
			"y", y,
			"width", width,
			"height", height,
		)
	}
}

// Rects returns the number of rectangles filled since the last Clear
func (s *NullSurface) Rects() int {
	return s.rects
}

// Frames returns the number of Clear calls
func (s *NullSurface) Frames() int {
	return s.frames
}
