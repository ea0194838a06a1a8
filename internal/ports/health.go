package ports

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultCheckTimeout bounds a single readiness check.
const DefaultCheckTimeout = 2 * time.Second

var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is a dependency readiness depends on: the Postgres pool and
// each upstream API's circuit breaker.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

type HealthRegistry interface {
	// Register fails with ErrDuplicateChecker for a name already taken.
	Register(checker HealthChecker) error

	// CheckAll runs every check concurrently. Any failure makes the whole
	// result unhealthy.
	CheckAll(ctx context.Context) *HealthResult
}

type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult is the body of the readiness probe.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// RegistryOption configures NewHealthRegistry.
type RegistryOption func(*DefaultHealthRegistry)

// WithCheckTimeout bounds each check. Zero or negative leaves checks
// bounded only by the caller's context.
func WithCheckTimeout(d time.Duration) RegistryOption {
	return func(r *DefaultHealthRegistry) { r.timeout = d }
}

func WithHealthClock(clock clockwork.Clock) RegistryOption {
	return func(r *DefaultHealthRegistry) { r.clock = clock }
}

// DefaultHealthRegistry is safe for concurrent use.
type DefaultHealthRegistry struct {
	timeout time.Duration
	clock   clockwork.Clock

	mu       sync.RWMutex
	checkers []HealthChecker
}

func NewHealthRegistry(opts ...RegistryOption) *DefaultHealthRegistry {
	r := &DefaultHealthRegistry{timeout: DefaultCheckTimeout, clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	if slices.ContainsFunc(r.checkers, func(c HealthChecker) bool { return c.Name() == name }) {
		return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
	}
	r.checkers = append(r.checkers, checker)
	return nil
}

func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	results := make([]*CheckResult, len(checkers))
	var wg sync.WaitGroup
	for i, checker := range checkers {
		wg.Go(func() { results[i] = r.run(ctx, checker) })
	}
	wg.Wait()

	out := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: r.clock.Now(),
	}
	for i, checker := range checkers {
		out.Checks[checker.Name()] = results[i]
		if results[i].Status != HealthStatusHealthy {
			out.Status = HealthStatusUnhealthy
		}
	}
	return out
}

func (r *DefaultHealthRegistry) run(ctx context.Context, checker HealthChecker) *CheckResult {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := r.clock.Now()
	err := checker.Check(ctx)
	res := &CheckResult{Status: HealthStatusHealthy, Duration: r.clock.Since(start)}
	if err != nil {
		res.Status = HealthStatusUnhealthy
		res.Message = err.Error()
	}
	return res
}
