package internal

import "time"

// Thread represents a point-in-time snapshot of a reconstructed
// conversation, suitable for export
type Thread struct {
	RootID   string     `json:"root_id"`
	Messages []*Message `json:"messages"`
	Metadata ThreadMeta `json:"metadata"`
}

// ThreadMeta contains derived information about a thread
type ThreadMeta struct {
	MessageCount  int    `json:"message_count"`
	AuthorCount   int    `json:"author_count"`
	FirstActivity string `json:"first_activity,omitempty"`
	LastActivity  string `json:"last_activity,omitempty"`
}

// Snapshot builds a Thread from the current finalized messages, in
// chronological order. Stream sessions and typing signals are transient
// and never part of a snapshot.
func (ts *ThreadState) Snapshot() *Thread {
	msgs := ts.Messages()

	authors := make(map[string]bool)
	for _, msg := range msgs {
		authors[msg.Author] = true
	}

	meta := ThreadMeta{
		MessageCount: len(msgs),
		AuthorCount:  len(authors),
	}
	if len(msgs) > 0 {
		meta.FirstActivity = formatTimestamp(msgs[0].CreatedAt)
		meta.LastActivity = formatTimestamp(msgs[len(msgs)-1].CreatedAt)
	}

	return &Thread{
		RootID:   ts.RootID,
		Messages: msgs,
		Metadata: meta,
	}
}

// formatTimestamp formats a unix-seconds timestamp as ISO8601
func formatTimestamp(ts int64) string {
	if ts == 0 {
		return ""
	}
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}
