package observability

import (
	"context"
	"sync"
	"time"
)

// HealthStatus is the health state of a component.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthCheckResult is one component's check outcome.
type HealthCheckResult struct {
	Status    HealthStatus  `json:"status"`
	Message   string        `json:"message,omitempty"`
	Duration  time.Duration `json:"duration_ns"`
	Timestamp time.Time     `json:"timestamp"`
}

// HealthChecker probes one component.
type HealthChecker func(ctx context.Context) error

// HealthRegistry aggregates component health for the worker's endpoint.
type HealthRegistry struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
}

// NewHealthRegistry creates an empty registry.
func NewHealthRegistry() *HealthRegistry {
	return &HealthRegistry{checkers: make(map[string]HealthChecker)}
}

// Register adds a component check.
func (r *HealthRegistry) Register(name string, checker HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = checker
}

// Check probes every component and reports per-component results.
func (r *HealthRegistry) Check(ctx context.Context) map[string]HealthCheckResult {
	r.mu.RLock()
	checkers := make(map[string]HealthChecker, len(r.checkers))
	for name, checker := range r.checkers {
		checkers[name] = checker
	}
	r.mu.RUnlock()

	results := make(map[string]HealthCheckResult, len(checkers))
	for name, checker := range checkers {
		start := time.Now()
		err := checker(ctx)
		result := HealthCheckResult{
			Status:    HealthStatusHealthy,
			Duration:  time.Since(start),
			Timestamp: time.Now().UTC(),
		}
		if err != nil {
			result.Status = HealthStatusUnhealthy
			result.Message = err.Error()
		}
		results[name] = result
	}
	return results
}

// Healthy reports whether every component passed.
func (r *HealthRegistry) Healthy(ctx context.Context) bool {
	for _, result := range r.Check(ctx) {
		if result.Status != HealthStatusHealthy {
			return false
		}
	}
	return true
}
