package app

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLimit(t *testing.T) {
	boom := errors.New("bluesky: unavailable")

	tests := []struct {
		name    string
		inputs  []string
		fn      func(context.Context, string) (int, error)
		want    []int
		wantErr error
	}{
		{
			name:   "keeps input order",
			inputs: []string{"flood", "nyc", "shelter", "urgent"},
			fn: func(_ context.Context, kw string) (int, error) {
				// Later inputs finish first.
				time.Sleep(time.Duration(10-len(kw)) * time.Millisecond)
				return len(kw), nil
			},
			want: []int{5, 3, 7, 6},
		},
		{
			name:   "returns the first error",
			inputs: []string{"flood", "nyc"},
			fn: func(_ context.Context, kw string) (int, error) {
				if kw == "nyc" {
					return 0, boom
				}
				return 1, nil
			},
			wantErr: boom,
		},
		{
			name:   "no inputs",
			inputs: nil,
			fn:     func(context.Context, string) (int, error) { return 0, nil },
			want:   []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapLimit(context.Background(), 2, tt.inputs, tt.fn)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapLimit_BoundsConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int32
	inputs := strings.Fields("a b c d e f g h")

	_, err := MapLimit(context.Background(), 2, inputs, func(context.Context, string) (struct{}, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for p := peak.Load(); n > p && !peak.CompareAndSwap(p, n); p = peak.Load() {
		}
		time.Sleep(5 * time.Millisecond)
		return struct{}{}, nil
	})

	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestMapLimit_ErrorCancelsOthers(t *testing.T) {
	boom := errors.New("boom")

	_, err := MapLimit(context.Background(), 0, []int{0, 1}, func(ctx context.Context, i int) (int, error) {
		if i == 0 {
			return 0, boom
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(time.Second):
			return 0, errors.New("not canceled")
		}
	})

	require.ErrorIs(t, err, boom)
}
