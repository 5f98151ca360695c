package internal

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Event represents a raw wire event delivered by a transport source.
// A single logical message may arrive as several stream-delta events
// followed by one final message event, in any order.
type Event struct {
	ID        string `json:"id,omitempty"`
	Author    string `json:"author"`
	Thread    string `json:"thread,omitempty"`
	Kind      int    `json:"kind"`
	CreatedAt int64  `json:"created_at"` // unix seconds
	Content   string `json:"content,omitempty"`
	Sequence  int    `json:"sequence,omitempty"`
	ReplyTo   string `json:"reply_to,omitempty"`
}

// ParseEvent parses a single JSON-encoded event
func ParseEvent(data []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, &ParseError{Source: "event", Key: previewJSON(data), Err: err}
	}

	if ev.Author == "" {
		return nil, &ParseError{Source: "event", Key: ev.ID, Err: fmt.Errorf("missing author")}
	}
	if ev.CreatedAt < 0 {
		return nil, &ParseError{Source: "event", Key: ev.ID, Err: fmt.Errorf("negative created_at: %d", ev.CreatedAt)}
	}

	return &ev, nil
}

// EventID computes the content-addressed id for an event. Final message
// ids are sha256 hex over (author, created_at, kind, content); the hex
// alphabet keeps them disjoint from the "streaming:" synthetic namespace.
func EventID(author string, createdAt int64, kind int, content string) string {
	h := sha256.New()
	h.Write([]byte(author))
	h.Write([]byte(fmt.Sprintf("|%d|%d|", createdAt, kind)))
	h.Write([]byte(content))
	return hex.EncodeToString(h.Sum(nil))
}

// GetCreatedAt returns a time.Time from the event timestamp
func (ev *Event) GetCreatedAt() time.Time {
	if ev.CreatedAt == 0 {
		return time.Time{}
	}
	return time.Unix(ev.CreatedAt, 0)
}

// previewJSON truncates a raw payload for use in error messages
func previewJSON(data []byte) string {
	const max = 64
	if len(data) <= max {
		return string(data)
	}
	return string(data[:max]) + "..."
}
