package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrConflict, ErrValidation, ErrForbidden, ErrUnavailable}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

func TestTypedErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		msg      string
	}{
		{"not found with id", NewNotFoundError("disaster", "d-1"), ErrNotFound, "disaster d-1 not found"},
		{"not found without id", NewNotFoundError("location", ""), ErrNotFound, "location not found"},
		{"conflict", NewConflictError("report", "duplicate source"), ErrConflict, "report: conflict (duplicate source)"},
		{"validation with field", NewValidationError("title", "blank"), ErrValidation, "invalid title: blank"},
		{"validation without field", NewValidationError("", "missing fields"), ErrValidation, "invalid input: missing fields"},
		{"forbidden", NewForbiddenError("delete disaster", "admin only"), ErrForbidden, "delete disaster: forbidden (admin only)"},
		{"unavailable", NewUnavailableError("mapbox", "circuit open"), ErrUnavailable, "mapbox: unavailable (circuit open)"},
		{"unavailable without reason", NewUnavailableError("gemini", ""), ErrUnavailable, "gemini: unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.msg, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			require.ErrorIs(t, fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", tt.err)), tt.sentinel)
		})
	}
}

func TestValidationError_CarriesValue(t *testing.T) {
	err := fmt.Errorf("create resource: %w", NewValidationErrorWithValue("radius", "must be positive", -5.0))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "radius", ve.Field)
	assert.Equal(t, -5.0, ve.Value)
}

func TestRuleError_ExposesKind(t *testing.T) {
	err := fmt.Errorf("delete disaster d-1: %w", NewForbiddenError("delete disaster", "admin only"))

	var re *RuleError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, ErrForbidden, re.Kind)
	assert.Equal(t, "delete disaster", re.Subject)
	assert.NotErrorIs(t, err, ErrConflict)
}

func TestIsHelpers(t *testing.T) {
	plain := errors.New("connection reset")

	assert.True(t, IsNotFound(NewNotFoundError("report", "r-1")))
	assert.True(t, IsConflict(NewConflictError("report", "exists")))
	assert.True(t, IsValidation(NewValidationError("title", "blank")))
	assert.True(t, IsForbidden(NewForbiddenError("delete", "")))
	assert.True(t, IsUnavailable(NewUnavailableError("gemini", "")))
	assert.False(t, IsNotFound(plain))
	assert.False(t, IsUnavailable(nil))
}

func TestIsUserFacing(t *testing.T) {
	assert.True(t, IsUserFacing(NewValidationError("title", "blank")))
	assert.True(t, IsUserFacing(NewNotFoundError("disaster", "d-1")))
	assert.True(t, IsUserFacing(NewForbiddenError("delete", "")))
	assert.False(t, IsUserFacing(NewUnavailableError("mapbox", "timeout")))
	assert.False(t, IsUserFacing(errors.New("pgx: closed pool")))
}
