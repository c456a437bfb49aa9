// Package testutil provides shared helpers for integration tests.
// Every helper skips its test when the backing service is not configured,
// so `go test ./...` passes on a machine without Postgres or Redis.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql

	"github.com/pkordes/trip-dashboard/backend/migrations"
)

const (
	databaseEnv = "TEST_DATABASE_URL"
	redisEnv    = "TEST_REDIS_URL"
)

// requireEnv returns the value of the named variable, skipping the test
// when it is empty.
func requireEnv(t *testing.T, name string) string {
	t.Helper()
	v := os.Getenv(name)
	if v == "" {
		t.Skipf("%s not set; skipping integration test", name)
	}
	return v
}

// NewPool opens a *pgxpool.Pool on TEST_DATABASE_URL, closed when the test
// finishes. The schema is left as found.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), requireEnv(t, databaseEnv))
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB opens a *sql.DB on TEST_DATABASE_URL through the pgx driver,
// for goose, which needs database/sql.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", requireEnv(t, databaseEnv))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: open: %v", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		t.Fatalf("testutil.NewSQLDB: ping: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

var (
	migrateOnce sync.Once
	migrateErr  error
)

// NewMigratedPool is NewPool with every migration applied. Migrations run
// once per test binary.
func NewMigratedPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	db := NewSQLDB(t)
	migrateOnce.Do(func() {
		_, migrateErr = migrations.Up(context.Background(), db)
	})
	if migrateErr != nil {
		t.Fatalf("testutil.NewMigratedPool: %v", migrateErr)
	}
	return NewPool(t)
}

// NewDocumentTx begins a transaction on a migrated database with
// trip_documents emptied. It is rolled back when the test finishes, so
// tests never see documents seeded by a running server and never leave any.
func NewDocumentTx(t *testing.T) pgx.Tx {
	t.Helper()
	ctx := context.Background()

	tx, err := NewMigratedPool(t).Begin(ctx)
	if err != nil {
		t.Fatalf("testutil.NewDocumentTx: begin: %v", err)
	}
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })

	if _, err := tx.Exec(ctx, `DELETE FROM trip_documents`); err != nil {
		t.Fatalf("testutil.NewDocumentTx: clear trip_documents: %v", err)
	}
	return tx
}
