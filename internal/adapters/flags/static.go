// Package flags provides feature flag evaluation from configuration.
package flags

import (
	"context"
	"maps"
	"strings"
	"sync"
)

// Static serves flags from a fixed map loaded at startup (the `features`
// config section). Names are case-insensitive.
type Static struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewStatic copies flags into a new Static.
func NewStatic(flags map[string]bool) *Static {
	s := &Static{flags: make(map[string]bool, len(flags))}
	for name, enabled := range flags {
		s.flags[strings.ToLower(name)] = enabled
	}
	return s
}

// IsEnabled implements ports.FeatureFlags.
func (s *Static) IsEnabled(_ context.Context, flag string, defaultValue bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if enabled, ok := s.flags[strings.ToLower(flag)]; ok {
		return enabled
	}
	return defaultValue
}

// Set overrides one flag at runtime.
func (s *Static) Set(flag string, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[strings.ToLower(flag)] = enabled
}

// Snapshot returns a copy of every configured flag.
func (s *Static) Snapshot() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.flags)
}
