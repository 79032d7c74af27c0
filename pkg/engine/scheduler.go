package engine

import (
	"context"
	"sync"
	"time"
)

// FrameQueue holds the single pending frame callback. Hosts with their own
// tick (a window toolkit's update hook) embed it and call RunPending from
// that hook.
type FrameQueue struct {
	mu      sync.Mutex
	pending func()
}

// RequestFrame implements Scheduler. A later request replaces an earlier one
// that has not run yet.
func (q *FrameQueue) RequestFrame(callback func()) {
	q.mu.Lock()
	q.pending = callback
	q.mu.Unlock()
}

// RunPending runs the pending callback, if any, and reports whether one ran.
// The callback runs outside the lock so it can request the next frame.
func (q *FrameQueue) RunPending() bool {
	q.mu.Lock()
	callback := q.pending
	q.pending = nil
	q.mu.Unlock()

	if callback == nil {
		return false
	}
	callback()
	return true
}

// TimerScheduler is the fallback Scheduler for hosts without a display
// cadence: it fires the pending callback on a fixed interval.
type TimerScheduler struct {
	FrameQueue
	interval time.Duration
}

// NewTimerScheduler returns a scheduler ticking frameRate times per second
func NewTimerScheduler(frameRate int) *TimerScheduler {
	if frameRate <= 0 {
		frameRate = 60
	}
	return &TimerScheduler{
		interval: time.Second / time.Duration(frameRate),
	}
}

// Interval returns the delay between frames
func (s *TimerScheduler) Interval() time.Duration {
	return s.interval
}

// Run drives frames until ctx is done. It returns ctx.Err().
func (s *TimerScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.RunPending()
		}
	}
}
