package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/sprout/internal/catalog"
	"github.com/alexanderramin/sprout/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewSeededTestDB is NewTestDB with the embedded species catalog loaded.
func NewSeededTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database := NewTestDB(t)
	species, err := catalog.Load()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	if err := db.SeedSpecies(context.Background(), db.NewSQLiteUnitOfWork(database), species); err != nil {
		t.Fatalf("seeding species: %v", err)
	}
	return database
}
