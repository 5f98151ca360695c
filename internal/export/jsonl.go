package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/threadloom/threadloom/internal"
)

// JSONLExporter exports threads in JSONL format (one message per line)
type JSONLExporter struct{}

// Export exports a thread to JSONL format
func (e *JSONLExporter) Export(thread *internal.Thread, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, msg := range thread.Messages {
		obj := map[string]interface{}{
			"id":         msg.ID,
			"author":     msg.Author,
			"content":    msg.Content,
			"created_at": msg.CreatedAt,
		}
		if msg.ReplyTo != "" {
			obj["reply_to"] = msg.ReplyTo
		}

		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
