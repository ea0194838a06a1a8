package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDisaster_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      NewDisaster
		wantErr string
	}{
		{"valid with location", NewDisaster{Title: "NYC Flood", LocationName: "Manhattan"}, ""},
		{"valid with description only", NewDisaster{Title: "NYC Flood", Description: "Heavy flooding in Manhattan"}, ""},
		{"blank title", NewDisaster{Title: "   ", LocationName: "Manhattan"}, "Title is required and must be a non-empty string."},
		{"no location source", NewDisaster{Title: "NYC Flood"}, "location_name or description is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDisasterUpdate(t *testing.T) {
	blank := " "
	title := "Updated"

	assert.True(t, DisasterUpdate{}.Empty())
	assert.False(t, DisasterUpdate{TagsSet: true}.Empty())
	assert.NoError(t, DisasterUpdate{Title: &title}.Validate())
	assert.ErrorIs(t, DisasterUpdate{Title: &blank}.Validate(), ErrValidation)
}

func TestNewAuditEntry(t *testing.T) {
	now := time.Date(2025, 6, 18, 9, 0, 0, 0, time.FixedZone("X", 3600))

	e := NewAuditEntry(AuditCreate, "", now)

	assert.Equal(t, SystemUser, e.UserID)
	assert.Equal(t, AuditCreate, e.Action)
	assert.Equal(t, time.UTC, e.Timestamp.Location())
	assert.True(t, e.Timestamp.Equal(now))
}

func TestCleanLocationName(t *testing.T) {
	tests := map[string]string{
		"Manhattan, NYC":            "Manhattan, NYC",
		"  \"Manhattan, NYC\".\n":   "Manhattan, NYC",
		"**Lower East Side**":       "Lower East Side",
		"Brooklyn.\nExplanation: x": "Brooklyn",
		"   ":                       "",
	}

	for in, want := range tests {
		assert.Equal(t, want, CleanLocationName(in), in)
	}
}
