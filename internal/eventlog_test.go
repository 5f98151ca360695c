package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.jsonl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write log: %v", err)
	}
	return path
}

func TestReadEventLog(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{
			name: "valid lines",
			content: `{"id":"m1","author":"alice","kind":1,"created_at":1000,"content":"hi"}
{"author":"bob","kind":2,"created_at":1001,"content":"fra","sequence":0}
`,
			want: 2,
		},
		{
			name: "malformed line skipped",
			content: `{"id":"m1","author":"alice","kind":1,"created_at":1000,"content":"hi"}
not json at all
{"id":"m2","author":"bob","kind":1,"created_at":1001,"content":"yo"}
`,
			want: 2,
		},
		{
			name: "blank lines skipped",
			content: `
{"id":"m1","author":"alice","kind":1,"created_at":1000,"content":"hi"}

`,
			want: 1,
		},
		{
			name:    "empty file",
			content: "",
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeLog(t, tt.content)
			events, err := ReadEventLog(path)
			if err != nil {
				t.Fatalf("ReadEventLog() error = %v", err)
			}
			if len(events) != tt.want {
				t.Errorf("ReadEventLog() returned %d events, want %d", len(events), tt.want)
			}
		})
	}
}

func TestReadEventLog_MissingFile(t *testing.T) {
	_, err := ReadEventLog(filepath.Join(t.TempDir(), "nope.jsonl"))
	if err == nil {
		t.Fatal("ReadEventLog() on missing file should error")
	}
	if _, ok := err.(*SourceError); !ok {
		t.Errorf("error = %T, want *SourceError", err)
	}
}

func TestStreamEventLog(t *testing.T) {
	path := writeLog(t, `{"id":"m1","author":"alice","kind":1,"created_at":1000,"content":"hi"}
{"id":"m2","author":"bob","kind":1,"created_at":1001,"content":"yo"}
`)

	events, err := StreamEventLog(path)
	if err != nil {
		t.Fatalf("StreamEventLog() error = %v", err)
	}

	var got []*Event
	for ev := range events {
		got = append(got, ev)
	}

	if len(got) != 2 {
		t.Fatalf("streamed %d events, want 2", len(got))
	}
	if got[0].ID != "m1" || got[1].ID != "m2" {
		t.Errorf("streamed order = [%s %s], want [m1 m2]", got[0].ID, got[1].ID)
	}
}
