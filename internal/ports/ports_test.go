package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (s *stubChecker) Name() string                  { return s.name }
func (s *stubChecker) Check(_ context.Context) error { return s.err }

type blockingChecker struct{ name string }

func (b *blockingChecker) Name() string { return b.name }

func (b *blockingChecker) Check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(time.Second):
		return nil
	}
}

func TestRegister_DuplicateName(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "postgres"}))
	err := registry.Register(&stubChecker{name: "postgres"})

	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "postgres")
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name       string
		checkers   []HealthChecker
		wantStatus HealthStatus
		wantFailed []string
	}{
		{
			name:       "no checkers",
			wantStatus: HealthStatusHealthy,
		},
		{
			name: "all healthy",
			checkers: []HealthChecker{
				&stubChecker{name: "postgres"},
				&stubChecker{name: "mapbox"},
			},
			wantStatus: HealthStatusHealthy,
		},
		{
			name: "circuit open on one upstream",
			checkers: []HealthChecker{
				&stubChecker{name: "postgres"},
				&stubChecker{name: "gemini", err: errors.New("circuit breaker is open")},
			},
			wantStatus: HealthStatusUnhealthy,
			wantFailed: []string{"gemini"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Len(t, result.Checks, len(tt.checkers))
			for _, name := range tt.wantFailed {
				assert.Equal(t, HealthStatusUnhealthy, result.Checks[name].Status)
				assert.NotEmpty(t, result.Checks[name].Message)
			}
		})
	}
}

func TestCheckAll_ContextCancelled(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&blockingChecker{name: "bluesky"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["bluesky"].Message, "context canceled")
}

func TestCheckAll_PerCheckTimeout(t *testing.T) {
	registry := NewHealthRegistry(WithCheckTimeout(10 * time.Millisecond))
	require.NoError(t, registry.Register(&blockingChecker{name: "postgres"}))
	require.NoError(t, registry.Register(&stubChecker{name: "mapbox"}))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["postgres"].Message, "deadline exceeded")
	assert.Equal(t, HealthStatusHealthy, result.Checks["mapbox"].Status)
}

func TestCheckAll_Timestamp(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 17, 10, 0, 0, 0, time.UTC))
	registry := NewHealthRegistry(WithHealthClock(clock))

	result := registry.CheckAll(context.Background())

	assert.Equal(t, clock.Now(), result.Timestamp)
	assert.Empty(t, result.Checks)
}
