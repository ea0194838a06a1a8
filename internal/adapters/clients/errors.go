// Package clients is the outbound HTTP layer shared by the Gemini, Mapbox,
// Bluesky and image adapters.
package clients

import "errors"

// The acl package maps these to domain.ErrUnavailable.
var (
	// ErrCircuitOpen means the upstream was not called at all.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last attempt's error.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
