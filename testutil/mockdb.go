package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateInMemoryDB creates an in-memory SQLite event cache for testing
func CreateInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory database: %v", err)
	}

	createEventsTable(t, db)
	return db
}

// createEventsTable creates the events table used by the companion
// client's cache
func createEventsTable(t *testing.T, db *sql.DB) {
	t.Helper()
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		thread TEXT,
		kind INTEGER,
		created_at INTEGER,
		json TEXT
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		t.Fatalf("Failed to create events table: %v", err)
	}
}

// InsertEvent inserts one raw event row into a cache database
func InsertEvent(t *testing.T, db *sql.DB, id, thread string, kind int, createdAt int64, payload string) {
	t.Helper()
	insertSQL := "INSERT INTO events (id, thread, kind, created_at, json) VALUES (?, ?, ?, ?, ?)"
	if _, err := db.Exec(insertSQL, id, thread, kind, createdAt, payload); err != nil {
		t.Fatalf("Failed to insert event %s: %v", id, err)
	}
}

// CreateTestDB creates an in-memory cache seeded with a small thread
func CreateTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db := CreateInMemoryDB(t)

	for _, row := range SampleThreadRows() {
		InsertEvent(t, db, row.ID, row.Thread, row.Kind, row.CreatedAt, row.Payload)
	}

	return db
}
