package database

import (
	"path/filepath"
	"testing"
)

func TestInitializeCreatesSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "schema.db")

	db, err := Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	var name string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='requests'").Scan(&name)
	if err != nil {
		t.Fatalf("Expected requests table to exist: %v", err)
	}
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "idempotent.db")

	db, err := Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Running again must not fail or duplicate applied versions
	if err := RunMigrations(db); err != nil {
		t.Fatalf("Expected re-running migrations to succeed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count); err != nil {
		t.Fatalf("Failed to count applied migrations: %v", err)
	}
	if count != len(migrations) {
		t.Errorf("Expected %d applied migrations, got %d", len(migrations), count)
	}
}
