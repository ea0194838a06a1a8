// Package postgres implements the repository ports on Postgres via pgx.
//
// Repositories take a small db interface so the same code runs against a
// *pgxpool.Pool in production and a pgx.Tx in tests.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/platform/config"
)

// pgForeignKeyViolation is the SQLSTATE for a foreign key violation.
const pgForeignKeyViolation = "23503"

type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

type scanner interface {
	Scan(dest ...any) error
}

// NewPool opens a pgx pool from cfg and verifies connectivity.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("postgres.NewPool: parse config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("postgres.NewPool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres.NewPool: ping: %w", err)
	}
	return pool, nil
}

// HealthChecker reports pool connectivity to the readiness registry.
type HealthChecker struct {
	pool *pgxpool.Pool
}

// NewHealthChecker wraps pool for readiness checks.
func NewHealthChecker(pool *pgxpool.Pool) *HealthChecker {
	return &HealthChecker{pool: pool}
}

// Name implements ports.HealthChecker.
func (h *HealthChecker) Name() string { return "database" }

// Check implements ports.HealthChecker.
func (h *HealthChecker) Check(ctx context.Context) error {
	return h.pool.Ping(ctx)
}

// auditRow is the JSON shape of an audit_trail element.
type auditRow struct {
	Action    string    `json:"action"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	Label     string    `json:"label,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
}

func toAuditRow(e domain.AuditEntry) auditRow {
	return auditRow{
		Action:    string(e.Action),
		UserID:    e.UserID,
		Timestamp: e.Timestamp.UTC(),
		Label:     string(e.Label),
		ImageURL:  e.ImageURL,
	}
}

func toAuditRows(entries []domain.AuditEntry) []auditRow {
	rows := make([]auditRow, len(entries))
	for i, e := range entries {
		rows[i] = toAuditRow(e)
	}
	return rows
}

func fromAuditRows(rows []auditRow) []domain.AuditEntry {
	entries := make([]domain.AuditEntry, len(rows))
	for i, r := range rows {
		entries[i] = domain.AuditEntry{
			Action:    domain.AuditAction(r.Action),
			UserID:    r.UserID,
			Timestamp: r.Timestamp.UTC(),
			Label:     domain.VerificationLabel(r.Label),
			ImageURL:  r.ImageURL,
		}
	}
	return entries
}

// validID rejects ids that would fail the uuid cast; such rows cannot exist.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

// notFound maps pgx.ErrNoRows to a domain not-found error.
func notFound(err error, entity, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewNotFoundError(entity, id)
	}
	return err
}

// missingParent maps a foreign key violation to a not-found error for the
// referenced entity.
func missingParent(err error, entity, id string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return domain.NewNotFoundError(entity, id)
	}
	return err
}

// nullTime returns nil for the zero time so the column default applies.
func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}
