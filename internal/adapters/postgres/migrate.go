package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver for goose
	"github.com/pressly/goose/v3"

	"github.com/jsamuelsen/disaster-response/migrations"
)

// Migration directions accepted by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// OpenSQL opens a database/sql handle on the pgx driver for goose.
func OpenSQL(dsn string) (*sql.DB, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres.OpenSQL: %w", err)
	}
	return sqlDB, nil
}

// NewMigrator returns a goose provider over the embedded migrations.
func NewMigrator(sqlDB *sql.DB) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("postgres.NewMigrator: %w", err)
	}
	return provider, nil
}

// Migrate runs direction against dsn and logs each applied or pending version.
func Migrate(ctx context.Context, dsn, direction string, logger *slog.Logger) error {
	sqlDB, err := OpenSQL(dsn)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	provider, err := NewMigrator(sqlDB)
	if err != nil {
		return err
	}

	switch direction {
	case MigrateUp:
		results, err := provider.Up(ctx)
		for _, r := range results {
			logger.Info("migration applied", slog.Int64("version", r.Source.Version), slog.Duration("duration", r.Duration))
		}
		if err != nil {
			return fmt.Errorf("postgres.Migrate: up: %w", err)
		}
	case MigrateDown:
		result, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("postgres.Migrate: down: %w", err)
		}
		if result != nil {
			logger.Info("migration rolled back", slog.Int64("version", result.Source.Version))
		}
	case MigrateStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("postgres.Migrate: status: %w", err)
		}
		for _, s := range statuses {
			logger.Info("migration status",
				slog.Int64("version", s.Source.Version),
				slog.String("state", string(s.State)),
			)
		}
	default:
		return fmt.Errorf("postgres.Migrate: unknown direction %q", direction)
	}
	return nil
}
