package internal

import (
	"sort"
)

// TypingSignal represents an ephemeral per-author composing indicator
type TypingSignal struct {
	Author    string
	StartedAt int64 // unix seconds, from the typing-start event
}

// ThreadState is the aggregate root of conversation reconstruction. It
// owns the finalized-message map, the per-author stream sessions and the
// per-author typing signals, classifies incoming events and derives the
// flat display list.
//
// ThreadState is a single-writer aggregate: it carries no locking of its
// own, and all calls must be serialized onto one logical execution
// context. Feed is the serializing funnel for concurrent sources.
type ThreadState struct {
	RootID string

	// Classifier decides which of the four categories an event falls
	// into; Parser converts final-message events into Messages;
	// OnFinalMessage is invoked synchronously on every final-message
	// ingest, redeliveries included. All three may be left at their
	// defaults.
	Classifier     Classifier
	Parser         MessageParser
	OnFinalMessage func(*Message)

	messages map[string]*Message
	sessions map[string]*StreamSession
	typing   map[string]*TypingSignal
}

// NewThreadState creates a ThreadState for the thread rooted at rootID
func NewThreadState(rootID string) *ThreadState {
	return &ThreadState{
		RootID:     rootID,
		Classifier: KindClassifier{},
		Parser:     ParseMessage,
		messages:   make(map[string]*Message),
		sessions:   make(map[string]*StreamSession),
		typing:     make(map[string]*TypingSignal),
	}
}

// ProcessEvent classifies a single event and applies it to the state.
// Events matching none of the four categories are silently ignored.
func (ts *ThreadState) ProcessEvent(ev *Event) {
	if ev == nil {
		return
	}

	switch {
	case ts.Classifier.IsFinalMessage(ev):
		ts.applyFinalMessage(ev)
	case ts.Classifier.IsStreamDelta(ev):
		ts.applyStreamDelta(ev)
	case ts.Classifier.IsTypingStart(ev):
		ts.typing[ev.Author] = &TypingSignal{Author: ev.Author, StartedAt: ev.CreatedAt}
	case ts.Classifier.IsTypingStop(ev):
		delete(ts.typing, ev.Author)
	default:
		LogDebug("Ignoring unclassified event kind %d from %s", ev.Kind, ev.Author)
	}
}

// applyFinalMessage ingests a final-message event. A final message
// always wins over an in-flight stream from the same author.
func (ts *ThreadState) applyFinalMessage(ev *Event) {
	msg, err := ts.Parser(ev)
	if err != nil {
		// Never drop a message: degrade to the event's primitive fields.
		LogDebug("Falling back to minimal message for %s: %v", ev.ID, err)
		msg = FallbackMessage(ev)
	}

	ts.messages[msg.ID] = msg

	if ts.OnFinalMessage != nil {
		ts.OnFinalMessage(msg)
	}

	// Finalization retires the author's transient state in the same call.
	delete(ts.typing, msg.Author)
	delete(ts.sessions, msg.Author)
}

// applyStreamDelta feeds a delta into the author's session, creating the
// session on first contact. The late-chunk guard discards a delta whose
// author already has a finalized message at the same timestamp: the
// message it belongs to has been superseded by its final form. The
// (author, created_at) match is a best-effort heuristic at the
// transport's one-second granularity.
func (ts *ThreadState) applyStreamDelta(ev *Event) {
	for _, msg := range ts.messages {
		if msg.Author == ev.Author && msg.CreatedAt == ev.CreatedAt {
			LogDebug("Discarding late chunk from %s at %d", ev.Author, ev.CreatedAt)
			return
		}
	}

	if session, ok := ts.sessions[ev.Author]; ok {
		session.AddDelta(ev)
		return
	}
	ts.sessions[ev.Author] = NewStreamSession(ev)
}

// AddMessage inserts a message directly, bypassing classification. Used
// to seed the thread root, which a transport subscription may never
// itself redeliver.
func (ts *ThreadState) AddMessage(msg *Message) {
	if msg == nil {
		return
	}
	ts.messages[msg.ID] = msg
}

// Clear empties all three maps
func (ts *ThreadState) Clear() {
	ts.messages = make(map[string]*Message)
	ts.sessions = make(map[string]*StreamSession)
	ts.typing = make(map[string]*TypingSignal)
}

// Message returns the finalized message with the given id, if present
func (ts *ThreadState) Message(id string) (*Message, bool) {
	msg, ok := ts.messages[id]
	return msg, ok
}

// Messages returns a flat snapshot of all finalized messages. The slice
// is freshly allocated and safe to hand to BuildTree.
func (ts *ThreadState) Messages() []*Message {
	msgs := make([]*Message, 0, len(ts.messages))
	for _, msg := range ts.messages {
		msgs = append(msgs, msg)
	}
	sortMessages(msgs)
	return msgs
}

// MessageCount returns the number of finalized messages
func (ts *ThreadState) MessageCount() int {
	return len(ts.messages)
}

// SessionCount returns the number of active stream sessions
func (ts *ThreadState) SessionCount() int {
	return len(ts.sessions)
}

// TypingAuthors returns the authors with a live typing signal, sorted
func (ts *ThreadState) TypingAuthors() []string {
	authors := make([]string, 0, len(ts.typing))
	for author := range ts.typing {
		authors = append(authors, author)
	}
	sort.Strings(authors)
	return authors
}

// DisplayMessages derives the ordered list for a live conversation
// screen: the root and its direct replies, direct replies annotated with
// their nested reply count and up to 3 distinct reply author ids, plus
// one synthetic message per active stream session, sorted by creation
// time. The list is recomputed from scratch on every call.
func (ts *ThreadState) DisplayMessages() []*Message {
	children := make(map[string][]*Message)
	for _, msg := range ts.messages {
		children[msg.ReplyTo] = append(children[msg.ReplyTo], msg)
	}

	display := make([]*Message, 0, len(ts.messages)+len(ts.sessions))
	for _, msg := range ts.messages {
		switch {
		case msg.ReplyTo == "":
			display = append(display, msg)
		case msg.ReplyTo == ts.RootID:
			display = append(display, ts.annotateReply(msg, children))
		}
	}

	for _, session := range ts.sessions {
		display = append(display, session.SyntheticMessage(ts.RootID))
	}

	sortMessages(display)
	return display
}

// annotateReply attaches the computed reply count and reply author stack
// to a direct reply that has nested replies of its own. The annotation
// goes on a copy; stored messages never carry display-only fields.
func (ts *ThreadState) annotateReply(msg *Message, children map[string][]*Message) *Message {
	if len(children[msg.ID]) == 0 {
		return msg
	}

	nested := collectDescendants(msg.ID, children)

	annotated := *msg
	annotated.ReplyCount = len(nested)
	annotated.ReplyAuthorIDs = distinctAuthors(nested, 3)
	return &annotated
}

// collectDescendants gathers all transitive descendants of a message id
// via breadth-first traversal of the children index, in chronological
// order.
func collectDescendants(id string, children map[string][]*Message) []*Message {
	var out []*Message
	queue := append([]*Message(nil), children[id]...)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		out = append(out, msg)
		queue = append(queue, children[msg.ID]...)
	}
	sortMessages(out)
	return out
}

// distinctAuthors returns up to max distinct author ids from messages,
// in encounter order
func distinctAuthors(msgs []*Message, max int) []string {
	seen := make(map[string]bool)
	var authors []string
	for _, msg := range msgs {
		if seen[msg.Author] {
			continue
		}
		seen[msg.Author] = true
		authors = append(authors, msg.Author)
		if len(authors) == max {
			break
		}
	}
	return authors
}

// sortMessages sorts by creation time ascending, breaking ties by id so
// output ordering is deterministic
func sortMessages(msgs []*Message) {
	sort.Slice(msgs, func(i, j int) bool {
		if msgs[i].CreatedAt != msgs[j].CreatedAt {
			return msgs[i].CreatedAt < msgs[j].CreatedAt
		}
		return msgs[i].ID < msgs[j].ID
	})
}
