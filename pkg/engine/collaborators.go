package engine

import (
	"github.com/opd-ai/go-invaders/pkg/physics"
)

//go:generate go tool mockgen -destination=./mocks/engine_mock.go -package=mocks . Surface,Scheduler

// Surface is the drawing target of the render phase. Each frame the game
// clears the play field once and fills one rectangle per live entity, given
// by its top-left corner and full size.
type Surface interface {
	Clear(area physics.Rect)
	FillRect(x, y, width, height float64)
}

// Scheduler hands control back to the host between frames. RequestFrame is
// called once per frame and must run callback once, later, on the loop's
// goroutine.
type Scheduler interface {
	RequestFrame(callback func())
}

// Presenter is implemented by surfaces that buffer a frame and must be
// flushed after the last FillRect.
type Presenter interface {
	Present()
}
