// Package testutil holds helpers for tests that need a real Postgres.
// Tests skip when TEST_DATABASE_URL is unset.
package testutil

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
)

// DatabaseURLEnv names the environment variable holding the test DSN.
const DatabaseURLEnv = "TEST_DATABASE_URL"

// DatabaseURL returns the test DSN, or "" when none is configured.
func DatabaseURL() string {
	return os.Getenv(DatabaseURLEnv)
}

// NewPool opens a pool on the test database and closes it on cleanup.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := requireDSN(t)

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err, "open pool")
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(context.Background()), "ping test database")
	return pool
}

// NewTx begins a transaction that is rolled back when the test ends.
func NewTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")
	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// MustOpenSQLDB opens a database/sql handle for goose from TestMain, where no
// *testing.T is available.
func MustOpenSQLDB(dsn string) *sql.DB {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("testutil: open sql db: %v", err)
	}
	return db
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := DatabaseURL()
	if dsn == "" {
		t.Skipf("%s not set; skipping database test", DatabaseURLEnv)
	}
	return dsn
}
