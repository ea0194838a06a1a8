package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/disaster-response/internal/adapters/postgres"
)

func migrateCmd(profile *string) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate {up|down|status}",
		Short:     "Apply, roll back or list database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{postgres.MigrateUp, postgres.MigrateDown, postgres.MigrateStatus},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(*profile)
			if err != nil {
				return err
			}
			if !cfg.DatabaseEnabled() {
				return errors.New("database.url is not set (APP_DATABASE__URL)")
			}

			if err := postgres.Migrate(cmd.Context(), cfg.Database.URL, args[0], logger); err != nil {
				return fmt.Errorf("migrate %s: %w", args[0], err)
			}
			return nil
		},
	}
}
