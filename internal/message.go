package internal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Message statuses for locally-originated messages
const (
	StatusSending = "sending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// Message represents a finalized chat message
type Message struct {
	ID        string `json:"id"`
	Thread    string `json:"thread,omitempty"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"` // unix seconds
	ReplyTo   string `json:"reply_to,omitempty"`
	Kind      int    `json:"kind"`
	Status    string `json:"status,omitempty"` // locally-originated messages only

	// IsStreaming is true only for synthetic messages fabricated from an
	// in-progress stream; messages in the finalized map always carry false.
	IsStreaming bool `json:"is_streaming,omitempty"`

	// Display-only annotations, computed per DisplayMessages call and
	// never populated on stored messages.
	ReplyCount     int      `json:"reply_count,omitempty"`
	ReplyAuthorIDs []string `json:"reply_author_ids,omitempty"`
}

// contentEnvelope is the optional structured payload carried in an
// event's content field.
type contentEnvelope struct {
	Text    string `json:"text"`
	ReplyTo string `json:"reply_to,omitempty"`
	Status  string `json:"status,omitempty"`
}

// MessageParser converts a raw final-message event into a Message
type MessageParser func(ev *Event) (*Message, error)

// ParseMessage is the default MessageParser. It validates the event and
// decodes the optional JSON content envelope. Callers fall back to
// FallbackMessage on error so a message is never dropped.
func ParseMessage(ev *Event) (*Message, error) {
	if ev == nil {
		return nil, fmt.Errorf("event is nil")
	}
	if ev.ID == "" {
		return nil, fmt.Errorf("event has no id")
	}
	if ev.Author == "" {
		return nil, fmt.Errorf("event has no author")
	}

	msg := &Message{
		ID:        ev.ID,
		Thread:    ev.Thread,
		Author:    ev.Author,
		Content:   ev.Content,
		CreatedAt: ev.CreatedAt,
		ReplyTo:   ev.ReplyTo,
		Kind:      ev.Kind,
	}

	// Structured content is a JSON envelope; plain text passes through.
	if strings.HasPrefix(strings.TrimSpace(ev.Content), "{") {
		var env contentEnvelope
		if err := json.Unmarshal([]byte(ev.Content), &env); err != nil {
			return nil, &ParseError{Source: "message", Key: ev.ID, Err: err}
		}
		msg.Content = env.Text
		if env.ReplyTo != "" {
			msg.ReplyTo = env.ReplyTo
		}
		if env.Status != "" {
			msg.Status = env.Status
		}
	}

	return msg, nil
}

// FallbackMessage builds a minimal Message directly from the event's
// primitive fields. Used when structured parsing fails.
func FallbackMessage(ev *Event) *Message {
	id := ev.ID
	if id == "" {
		id = EventID(ev.Author, ev.CreatedAt, ev.Kind, ev.Content)
	}
	return &Message{
		ID:        id,
		Thread:    ev.Thread,
		Author:    ev.Author,
		Content:   ev.Content,
		CreatedAt: ev.CreatedAt,
		ReplyTo:   ev.ReplyTo,
		Kind:      ev.Kind,
	}
}

// GetCreatedAt returns a time.Time from the message timestamp
func (m *Message) GetCreatedAt() time.Time {
	if m.CreatedAt == 0 {
		return time.Time{}
	}
	return time.Unix(m.CreatedAt, 0)
}
