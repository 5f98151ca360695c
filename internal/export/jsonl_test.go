package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	e := &JSONLExporter{}

	if err := e.Export(sampleThread(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("output has %d lines, want 3 (one per message)", len(lines))
	}

	for i, line := range lines {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if obj["id"] == "" || obj["author"] == "" {
			t.Errorf("line %d missing id or author: %v", i, obj)
		}
	}

	// Replies carry their parent; the root does not.
	var first, second map[string]interface{}
	_ = json.Unmarshal([]byte(lines[0]), &first)
	_ = json.Unmarshal([]byte(lines[1]), &second)
	if _, ok := first["reply_to"]; ok {
		t.Error("root line should not carry reply_to")
	}
	if second["reply_to"] != "root" {
		t.Errorf("reply line reply_to = %v, want %q", second["reply_to"], "root")
	}
}
