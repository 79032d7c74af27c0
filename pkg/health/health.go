// Package health checks that a game session is progressing. Checks are
// registered on a HealthChecker and run together; headless runs use the
// aggregated status as their pass or fail result.
package health

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
)

// Status values
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthCheck defines the interface for individual health checks.
type HealthCheck interface {
	// Name returns the unique name of this health check
	Name() string
	// Check performs the health check and returns an error if unhealthy
	Check(ctx context.Context) error
}

// HealthStatus represents the overall health status of a session.
type HealthStatus struct {
	Status string                     `json:"status"`
	Checks map[string]ComponentHealth `json:"checks"`
}

// Healthy reports whether every check passed
func (s HealthStatus) Healthy() bool {
	return s.Status == StatusHealthy
}

// Failures returns the messages of failed checks, sorted by check name
func (s HealthStatus) Failures() []string {
	names := make([]string, 0, len(s.Checks))
	for name, c := range s.Checks {
		if c.Status != StatusHealthy {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, name+": "+s.Checks[name].Message)
	}
	return out
}

// ComponentHealth represents the health status of an individual check.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker manages and executes health checks.
type HealthChecker struct {
	checks map[string]HealthCheck
	mu     sync.RWMutex
}

// NewHealthChecker creates a new health checker instance.
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		checks: make(map[string]HealthCheck),
	}
}

// AddCheck registers a new health check with the health checker.
// If a check with the same name already exists, it will be replaced.
func (hc *HealthChecker) AddCheck(check HealthCheck) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.checks[check.Name()] = check
}

// RemoveCheck removes a health check by name.
func (hc *HealthChecker) RemoveCheck(name string) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	delete(hc.checks, name)
}

// CheckHealth executes all registered health checks and returns the aggregated status.
// The overall status is healthy only if all individual checks pass.
func (hc *HealthChecker) CheckHealth(ctx context.Context) HealthStatus {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	status := HealthStatus{
		Status: StatusHealthy,
		Checks: make(map[string]ComponentHealth),
	}

	for name, check := range hc.checks {
		if err := check.Check(ctx); err != nil {
			status.Status = StatusUnhealthy
			status.Checks[name] = ComponentHealth{
				Status:  StatusUnhealthy,
				Message: err.Error(),
			}
		} else {
			status.Checks[name] = ComponentHealth{
				Status: StatusHealthy,
			}
		}
	}

	return status
}

// LoopHealthCheck fails when the game loop is stopped or has not completed
// a frame since the previous check.
type LoopHealthCheck struct {
	running func() bool
	frames  func() uint64
	last    uint64
}

// NewLoopHealthCheck creates a health check for the game loop.
func NewLoopHealthCheck(running func() bool, frames func() uint64) *LoopHealthCheck {
	return &LoopHealthCheck{
		running: running,
		frames:  frames,
	}
}

// Name returns the name of this health check.
func (l *LoopHealthCheck) Name() string {
	return "game_loop"
}

// Check verifies that the loop is running and advancing.
func (l *LoopHealthCheck) Check(ctx context.Context) error {
	if !l.running() {
		return fmt.Errorf("game loop is not running")
	}
	current := l.frames()
	if current <= l.last {
		return fmt.Errorf("game loop stalled at frame %d", current)
	}
	l.last = current
	return nil
}

// EntityBudgetCheck fails when the live set grows past a limit, which
// points at entities that are spawned but never leave the field.
type EntityBudgetCheck struct {
	maxLive int
	live    func() int
}

// NewEntityBudgetCheck creates a health check for the live entity count.
func NewEntityBudgetCheck(maxLive int, live func() int) *EntityBudgetCheck {
	return &EntityBudgetCheck{
		maxLive: maxLive,
		live:    live,
	}
}

// Name returns the name of this health check.
func (e *EntityBudgetCheck) Name() string {
	return "entity_budget"
}

// Check verifies that the live count is within budget.
func (e *EntityBudgetCheck) Check(ctx context.Context) error {
	if n := e.live(); n > e.maxLive {
		return fmt.Errorf("live entities %d exceed budget %d", n, e.maxLive)
	}
	return nil
}

// MemoryHealthCheck implements HealthCheck for memory usage monitoring.
type MemoryHealthCheck struct {
	maxMemoryMB    int64
	getMemoryUsage func() int64
}

// NewMemoryHealthCheck creates a health check for memory usage. A nil
// getMemoryUsage reads the heap size from the runtime.
func NewMemoryHealthCheck(maxMemoryMB int64, getMemoryUsage func() int64) *MemoryHealthCheck {
	if getMemoryUsage == nil {
		getMemoryUsage = heapMB
	}
	return &MemoryHealthCheck{
		maxMemoryMB:    maxMemoryMB,
		getMemoryUsage: getMemoryUsage,
	}
}

// Name returns the name of this health check.
func (m *MemoryHealthCheck) Name() string {
	return "memory"
}

// Check verifies that memory usage is within acceptable limits.
func (m *MemoryHealthCheck) Check(ctx context.Context) error {
	currentMB := m.getMemoryUsage()
	if currentMB > m.maxMemoryMB {
		return fmt.Errorf("memory usage %dMB exceeds limit %dMB", currentMB, m.maxMemoryMB)
	}
	return nil
}

func heapMB() int64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return int64(m.HeapAlloc / 1024 / 1024)
}
