package internal

// Wire kind registry. The reconciliation engine never consumes these
// numbers directly; it only sees the Classifier's boolean answers.
const (
	KindMessage     = 1
	KindStreamDelta = 2
	KindTypingStart = 3
	KindTypingStop  = 4
	KindReaction    = 7 // known kind, not handled by the engine
)

// Classifier maps a raw event to one of the four categories the engine
// understands. An event matching none of the four is ignored.
type Classifier interface {
	IsFinalMessage(ev *Event) bool
	IsStreamDelta(ev *Event) bool
	IsTypingStart(ev *Event) bool
	IsTypingStop(ev *Event) bool
}

// KindClassifier classifies events by their wire kind number
type KindClassifier struct{}

// IsFinalMessage reports whether the event is a fully delivered message
func (KindClassifier) IsFinalMessage(ev *Event) bool {
	return ev.Kind == KindMessage
}

// IsStreamDelta reports whether the event is an incremental content fragment
func (KindClassifier) IsStreamDelta(ev *Event) bool {
	return ev.Kind == KindStreamDelta
}

// IsTypingStart reports whether the event starts a typing signal
func (KindClassifier) IsTypingStart(ev *Event) bool {
	return ev.Kind == KindTypingStart
}

// IsTypingStop reports whether the event stops a typing signal
func (KindClassifier) IsTypingStop(ev *Event) bool {
	return ev.Kind == KindTypingStop
}
