package internal

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// OpenDatabase opens an event-cache SQLite database in read-only mode.
// The cache is the companion client's artifact; this tool never writes
// it. The file: URI scheme is required for the driver to honor mode=ro;
// a bare path would ignore the query string and create missing files.
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// QueryThreadEvents loads all cached events for a thread, oldest first.
// Rows whose payload fails to parse are skipped.
func QueryThreadEvents(db *sql.DB, threadID string) ([]*Event, error) {
	query := "SELECT json FROM events WHERE thread = ? AND json IS NOT NULL ORDER BY created_at, id"
	rows, err := db.Query(query, threadID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}

		ev, err := ParseEvent([]byte(payload))
		if err != nil {
			LogDebug("Skipping unparseable cached event in thread %s: %v", threadID, err)
			continue
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return events, nil
}

// ThreadSummary describes one thread present in an event cache
type ThreadSummary struct {
	ThreadID   string
	EventCount int
	FirstAt    int64
	LastAt     int64
}

// QueryThreadSummaries lists the threads in an event cache, most
// recently active first
func QueryThreadSummaries(db *sql.DB) ([]ThreadSummary, error) {
	query := `SELECT thread, COUNT(*), MIN(created_at), MAX(created_at)
		FROM events WHERE thread != '' GROUP BY thread ORDER BY MAX(created_at) DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var summaries []ThreadSummary
	for rows.Next() {
		var s ThreadSummary
		if err := rows.Scan(&s.ThreadID, &s.EventCount, &s.FirstAt, &s.LastAt); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return summaries, nil
}
