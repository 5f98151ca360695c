package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// EventRow is one raw cache row used to seed fixtures
type EventRow struct {
	ID        string
	Thread    string
	Kind      int
	CreatedAt int64
	Payload   string
}

// SampleThreadRows returns a small thread: a root message, a direct
// reply, a nested reply and a typing-start event, in thread "root-1"
func SampleThreadRows() []EventRow {
	return []EventRow{
		{
			ID: "root-1", Thread: "root-1", Kind: 1, CreatedAt: 1000,
			Payload: `{"id":"root-1","author":"alice","thread":"root-1","kind":1,"created_at":1000,"content":"thread root"}`,
		},
		{
			ID: "reply-1", Thread: "root-1", Kind: 1, CreatedAt: 1010,
			Payload: `{"id":"reply-1","author":"bob","thread":"root-1","kind":1,"created_at":1010,"content":"first reply","reply_to":"root-1"}`,
		},
		{
			ID: "nested-1", Thread: "root-1", Kind: 1, CreatedAt: 1020,
			Payload: `{"id":"nested-1","author":"carol","thread":"root-1","kind":1,"created_at":1020,"content":"nested reply","reply_to":"reply-1"}`,
		},
		{
			ID: "typing-1", Thread: "root-1", Kind: 3, CreatedAt: 1030,
			Payload: `{"id":"typing-1","author":"dave","thread":"root-1","kind":3,"created_at":1030}`,
		},
	}
}

// SampleEventLog returns the sample thread as JSONL content
func SampleEventLog() string {
	var out string
	for _, row := range SampleThreadRows() {
		out += row.Payload + "\n"
	}
	return out
}

// CreateEventLogFixture writes a JSONL event log file and returns its path
func CreateEventLogFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write event log fixture: %v", err)
	}
	return path
}

// CreateCacheFixture creates an on-disk SQLite cache seeded with the
// sample thread and returns its path
func CreateCacheFixture(t *testing.T, dbPath string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	createEventsTable(t, db)
	insertSQL := "INSERT INTO events (id, thread, kind, created_at, json) VALUES (?, ?, ?, ?, ?)"
	for _, row := range SampleThreadRows() {
		if _, err := db.Exec(insertSQL, row.ID, row.Thread, row.Kind, row.CreatedAt, row.Payload); err != nil {
			t.Fatalf("Failed to insert fixture event %s: %v", row.ID, err)
		}
	}

	return dbPath
}

// DeltaPayload builds a stream-delta event payload
func DeltaPayload(author string, seq int, fragment string, createdAt int64) string {
	return fmt.Sprintf(`{"author":%q,"kind":2,"created_at":%d,"content":%q,"sequence":%d}`,
		author, createdAt, fragment, seq)
}
