package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/threadloom/threadloom/internal"
)

func TestJSONExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	e := &JSONExporter{}

	if err := e.Export(sampleThread(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded internal.Thread
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.RootID != "root" {
		t.Errorf("RootID = %q, want %q", decoded.RootID, "root")
	}
	if len(decoded.Messages) != 3 {
		t.Errorf("decoded %d messages, want 3", len(decoded.Messages))
	}
	if decoded.Metadata.AuthorCount != 3 {
		t.Errorf("AuthorCount = %d, want 3", decoded.Metadata.AuthorCount)
	}
}
