package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{limit: 0, want: DefaultLimit},
		{limit: -3, want: DefaultLimit},
		{limit: 1, want: 1},
		{limit: 50, want: 50},
		{limit: 500, want: MaxLimit},
	}

	for _, tt := range tests {
		p := PaginationRequest{Limit: tt.limit}
		assert.Equal(t, tt.want, p.GetLimit(), "limit %d", tt.limit)
	}
}

func TestCursorRoundTrip(t *testing.T) {
	created := time.Date(2025, 6, 17, 12, 0, 0, 123456789, time.UTC)
	encoded := EncodeCursor(CreatedAtCursor(created, "res-1"))
	require.NotEmpty(t, encoded)

	p := PaginationRequest{Cursor: encoded, Limit: 5}
	page, err := p.ToPageRequest()
	require.NoError(t, err)

	assert.Equal(t, 5, page.Limit)
	require.NotNil(t, page.After)
	assert.True(t, created.Equal(page.After.CreatedAt))
	assert.Equal(t, "res-1", page.After.ID)
}

func TestToPageRequest(t *testing.T) {
	tests := []struct {
		name    string
		cursor  string
		wantErr error
	}{
		{name: "first page"},
		{name: "not base64", cursor: "%%%", wantErr: ErrInvalidCursor},
		{name: "not json", cursor: "bm90LWpzb24=", wantErr: ErrInvalidCursor},
		{name: "wrong field", cursor: EncodeCursor(NewCursor("name", "a", "1")), wantErr: ErrInvalidCursor},
		{name: "bad time", cursor: EncodeCursor(NewCursor("created_at", "yesterday", "1")), wantErr: ErrInvalidCursor},
		{name: "missing id", cursor: EncodeCursor(NewCursor("created_at", "2025-06-17T12:00:00Z", "")), wantErr: ErrInvalidCursor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PaginationRequest{Cursor: tt.cursor}
			page, err := p.ToPageRequest()

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Nil(t, page.After)
			assert.Equal(t, DefaultLimit, page.Limit)
		})
	}
}

func TestNewPaginatedResponse(t *testing.T) {
	cursorFor := func(s string) *CursorData { return NewCursor("created_at", "v", s) }

	t.Run("more pages", func(t *testing.T) {
		resp := NewPaginatedResponse([]string{"a", "b", "c"}, 2, cursorFor)

		assert.Equal(t, []string{"a", "b"}, resp.Items)
		assert.True(t, resp.HasMore)

		cursor, err := DecodeCursor(resp.NextCursor)
		require.NoError(t, err)
		assert.Equal(t, "b", cursor.ID)
	})

	t.Run("last page", func(t *testing.T) {
		resp := NewPaginatedResponse([]string{"a"}, 2, cursorFor)

		assert.Equal(t, []string{"a"}, resp.Items)
		assert.False(t, resp.HasMore)
		assert.Empty(t, resp.NextCursor)
	})

	t.Run("empty", func(t *testing.T) {
		resp := NewPaginatedResponse[string](nil, 2, cursorFor)
		assert.NotNil(t, resp.Items)
		assert.Empty(t, resp.Items)
	})
}

func TestDecodeCursorEmpty(t *testing.T) {
	_, err := DecodeCursor("")
	assert.ErrorIs(t, err, ErrNoCursor)
	assert.Empty(t, EncodeCursor(nil))
}
