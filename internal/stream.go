package internal

// SyntheticIDPrefix is the reserved namespace for synthetic message ids.
// Real message ids are sha256 hex, so the colon keeps the two id spaces
// disjoint.
const SyntheticIDPrefix = "streaming:"

// StreamSession represents one author's in-progress, not-yet-finalized
// message. At most one live instance exists per author.
type StreamSession struct {
	Author string

	acc    *DeltaAccumulator
	latest *Event
}

// NewStreamSession creates a session from the first stream-delta event
// for an author and feeds that event into a fresh accumulator.
func NewStreamSession(ev *Event) *StreamSession {
	s := &StreamSession{
		Author: ev.Author,
		acc:    NewDeltaAccumulator(),
	}
	s.AddDelta(ev)
	return s
}

// AddDelta feeds a subsequent delta event for the same author into the
// accumulator and records it as the latest event seen.
func (s *StreamSession) AddDelta(ev *Event) {
	s.acc.AddDelta(ev.Sequence, ev.Content)
	s.latest = ev
}

// Content returns the accumulator's current reconstructed text
func (s *StreamSession) Content() string {
	return s.acc.Reconstruct()
}

// Latest returns the most recently seen delta event, retained for its
// timestamp and kind when stamping the synthetic message.
func (s *StreamSession) Latest() *Event {
	return s.latest
}

// SyntheticID returns the display-only message id for this session. It
// is a pure function of the author id and stable for the session's
// lifetime.
func (s *StreamSession) SyntheticID() string {
	return SyntheticIDPrefix + s.Author
}

// SyntheticMessage fabricates a Message-shaped value from the session's
// reconstructed content. It exists only in the derived display list,
// never in the finalized-message map.
func (s *StreamSession) SyntheticMessage(thread string) *Message {
	msg := &Message{
		ID:          s.SyntheticID(),
		Thread:      thread,
		Author:      s.Author,
		Content:     s.Content(),
		IsStreaming: true,
	}
	if s.latest != nil {
		msg.CreatedAt = s.latest.CreatedAt
		msg.Kind = s.latest.Kind
	}
	return msg
}
