package database

import (
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestInitializeCreatesSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"applications", "admin_logs", "migrations"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("Expected table %s to exist: %v", table, err)
		}
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	db.Close()

	// A second startup against the same file must not fail
	db, err = Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to re-initialize database: %v", err)
	}
	db.Close()
}

func TestStatusColumnMigration(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// Simulate a deployment created before the status column existed
	legacy, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	_, err = legacy.Exec(`
		CREATE TABLE applications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			address TEXT,
			swimming TEXT NOT NULL,
			experience TEXT NOT NULL,
			rescue TEXT NOT NULL,
			message TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		t.Fatalf("Failed to create legacy table: %v", err)
	}

	_, err = legacy.Exec(`
		INSERT INTO applications (name, email, swimming, experience, rescue)
		VALUES ('Ann', 'a@x.com', 'yes', '2 years', 'yes')
	`)
	if err != nil {
		t.Fatalf("Failed to insert legacy row: %v", err)
	}
	legacy.Close()

	// Startup must add the column and backfill existing rows
	db, err := Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to migrate legacy database: %v", err)
	}
	defer db.Close()

	var status string
	err = db.QueryRow("SELECT status FROM applications WHERE name = 'Ann'").Scan(&status)
	if err != nil {
		t.Fatalf("Failed to read migrated status: %v", err)
	}
	if status != "Ny" {
		t.Errorf("Expected backfilled status 'Ny', got %q", status)
	}
}
