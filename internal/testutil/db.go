package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// every pooled connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	// Run migrations inline
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })

	return db
}

// createTestSchema creates the complete database schema for testing
func createTestSchema(db *sql.DB) error {
	_, err := db.ExecContext(context.Background(), `
	CREATE TABLE IF NOT EXISTS colors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		code TEXT NOT NULL,
		time INTEGER NOT NULL
	);
	`)
	return err
}

// CreateTestColor inserts a color directly and returns its ID
func CreateTestColor(t *testing.T, db *sql.DB, code string, timeMillis int64) int {
	t.Helper()

	result, err := db.ExecContext(context.Background(),
		`INSERT INTO colors (code, time) VALUES (?, ?)`, code, timeMillis)
	if err != nil {
		t.Fatalf("Failed to create test color: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get color ID: %v", err)
	}

	return int(id)
}

// CountColors returns the number of rows in the colors table
func CountColors(t *testing.T, db *sql.DB) int {
	t.Helper()

	var count int
	if err := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM colors`).Scan(&count); err != nil {
		t.Fatalf("Failed to count colors: %v", err)
	}
	return count
}
