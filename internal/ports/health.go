package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrDuplicateChecker is returned when a health checker name is registered twice.
var ErrDuplicateChecker = errors.New("duplicate health checker")

const (
	// maxConcurrentChecks bounds how many checks CheckAll runs at once.
	maxConcurrentChecks = 8

	// DefaultCheckTimeout bounds a single check.
	DefaultCheckTimeout = 2 * time.Second
)

// HealthChecker is implemented by components that report readiness.
// Adapters register themselves with the HealthRegistry at startup.
type HealthChecker interface {
	// Name identifies the component in readiness responses.
	Name() string

	// Check returns nil when the component can serve traffic.
	Check(ctx context.Context) error
}

// HealthRegistry aggregates health checks from multiple components.
type HealthRegistry interface {
	// Register adds a checker. Names must be unique.
	Register(checker HealthChecker) error

	// CheckAll runs every registered check and aggregates the outcome.
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus represents the overall health state.
type HealthStatus string

const (
	// HealthStatusHealthy indicates all checks passed.
	HealthStatusHealthy HealthStatus = "healthy"

	// HealthStatusUnhealthy indicates at least one check failed.
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult contains the aggregated health check results.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult contains the result of a single health check.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// DefaultHealthRegistry is a thread-safe HealthRegistry.
type DefaultHealthRegistry struct {
	mu           sync.RWMutex
	checkers     []HealthChecker
	checkTimeout time.Duration
}

// RegistryOption configures a DefaultHealthRegistry.
type RegistryOption func(*DefaultHealthRegistry)

// WithCheckTimeout overrides DefaultCheckTimeout. A check still running when
// it expires sees its context cancelled.
func WithCheckTimeout(d time.Duration) RegistryOption {
	return func(r *DefaultHealthRegistry) {
		if d > 0 {
			r.checkTimeout = d
		}
	}
}

// NewHealthRegistry creates an empty health registry.
func NewHealthRegistry(opts ...RegistryOption) *DefaultHealthRegistry {
	r := &DefaultHealthRegistry{
		checkTimeout: DefaultCheckTimeout,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a health checker to the registry.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	for _, c := range r.checkers {
		if c.Name() == name {
			return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
		}
	}

	r.checkers = append(r.checkers, checker)

	return nil
}

// CheckAll runs all registered health checks concurrently. A failing check
// does not cancel the others; every checker gets a result entry.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := make([]HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	result := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	var (
		g  errgroup.Group
		mu sync.Mutex
	)

	g.SetLimit(maxConcurrentChecks)

	for _, checker := range checkers {
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, r.checkTimeout)
			defer cancel()

			start := time.Now()
			err := checker.Check(checkCtx)

			checkResult := &CheckResult{
				Status:   HealthStatusHealthy,
				Duration: time.Since(start),
			}

			if err != nil {
				checkResult.Status = HealthStatusUnhealthy
				checkResult.Message = err.Error()
			}

			mu.Lock()
			defer mu.Unlock()

			result.Checks[checker.Name()] = checkResult
			if checkResult.Status == HealthStatusUnhealthy {
				result.Status = HealthStatusUnhealthy
			}

			return nil
		})
	}

	_ = g.Wait()

	return result
}
