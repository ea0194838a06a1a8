// Package main is the entry point for the disaster response service.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/disaster-response/internal/platform/config"
	"github.com/jsamuelsen/disaster-response/internal/platform/logging"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:          "disaster-response",
		Short:        "Disaster response coordination API",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&profile, "profile", "p", defaultProfile(),
		"config profile, loaded from configs/<profile>.yaml (env: APP_ENVIRONMENT)")

	cmd.AddCommand(
		serveCmd(&profile),
		migrateCmd(&profile),
		versionCmd(),
	)
	return cmd
}

func defaultProfile() string {
	if profile := os.Getenv("APP_ENVIRONMENT"); profile != "" {
		return profile
	}
	return "local"
}

// loadConfig loads and validates configuration for profile, then builds the
// process logger and installs it as the slog default.
func loadConfig(profile string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(profile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	return cfg, logger, nil
}
