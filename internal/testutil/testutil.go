// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"brewfinder/internal/db"
)

// TestDB creates a migrated test database connection that is cleaned and
// closed when the test ends. Tests are skipped unless TEST_DATABASE_URL is
// set.
func TestDB(t *testing.T) *db.DB {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Run migrations
	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	cleanupTestData(ctx, database.Pool)
	t.Cleanup(func() {
		cleanupTestData(ctx, database.Pool)
		database.Close()
	})

	return database
}

// cleanupTestData removes all test data from the database.
func cleanupTestData(ctx context.Context, pool *pgxpool.Pool) {
	pool.Exec(ctx, "DELETE FROM kv_store")
	pool.Exec(ctx, "DELETE FROM search_outcomes")
}

// SetSnapshot writes a raw history snapshot, bypassing the history store.
func SetSnapshot(t *testing.T, database *db.DB, key, value string) {
	t.Helper()

	if err := db.NewKVStore(database).Set(key, []byte(value), 0); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
}
