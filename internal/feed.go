package internal

import (
	"sync"
)

// Feed is the serialized entry point in front of a ThreadState. Event
// sources may deliver from multiple goroutines; the feed funnels every
// delivery through one mutex so the aggregate only ever sees one caller
// at a time.
type Feed struct {
	mu      sync.Mutex
	state   *ThreadState
	applied int
}

// NewFeed creates a Feed wrapping the given state
func NewFeed(state *ThreadState) *Feed {
	return &Feed{state: state}
}

// Process applies a single event
func (f *Feed) Process(ev *Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.ProcessEvent(ev)
	f.applied++
}

// ProcessAll applies a batch of events in order and returns how many
// were applied
func (f *Feed) ProcessAll(events []*Event) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ev := range events {
		f.state.ProcessEvent(ev)
		f.applied++
	}
	return len(events)
}

// Run consumes events from a channel until it is closed
func (f *Feed) Run(events <-chan *Event) {
	for ev := range events {
		f.Process(ev)
	}
}

// Applied returns the number of events processed so far
func (f *Feed) Applied() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.applied
}

// Display returns the current display list under the feed's lock
func (f *Feed) Display() []*Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.DisplayMessages()
}

// Messages returns a snapshot of the finalized messages
func (f *Feed) Messages() []*Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Messages()
}

// Snapshot returns the thread snapshot under the feed's lock
func (f *Feed) Snapshot() *Thread {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Snapshot()
}

// TypingAuthors returns the authors currently typing
func (f *Feed) TypingAuthors() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.TypingAuthors()
}

// Clear empties the underlying state
func (f *Feed) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Clear()
}

// MergeEvents fans multiple event sources into one channel. The merged
// channel closes once every source has closed.
func MergeEvents(sources ...<-chan *Event) <-chan *Event {
	merged := make(chan *Event, 100)

	var wg sync.WaitGroup
	for _, source := range sources {
		wg.Add(1)
		go func(src <-chan *Event) {
			defer wg.Done()
			for ev := range src {
				if ev != nil {
					merged <- ev
				}
			}
		}(source)
	}

	go func() {
		wg.Wait()
		close(merged)
	}()

	return merged
}
