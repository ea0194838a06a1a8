package ports

import "context"

// Feature flag names.
const (
	// FlagAutoReliefResource creates a relief hub next to every new disaster.
	FlagAutoReliefResource = "auto_relief_resource"

	// FlagPersistSocialReports stores fetched feed posts as reports.
	FlagPersistSocialReports = "persist_social_reports"
)

// FeatureFlags evaluates boolean feature toggles.
//
//	if flags.IsEnabled(ctx, ports.FlagAutoReliefResource, true) {
//	    s.createReliefHub(ctx, d)
//	}
type FeatureFlags interface {
	// IsEnabled returns defaultValue when the flag is not configured.
	IsEnabled(ctx context.Context, flag string, defaultValue bool) bool
}
