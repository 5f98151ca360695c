package internal

import (
	"testing"
)

func TestThreadState_Snapshot(t *testing.T) {
	ts := NewThreadState("root")
	ts.AddMessage(CreateTestMessage("root", "alice", "the root", 1000))
	ts.ProcessEvent(CreateTestFinalEvent("m2", "bob", "later", 1100))
	ts.ProcessEvent(CreateTestFinalEvent("m1", "alice", "earlier reply", 1050))

	// Transient state must not leak into the snapshot.
	ts.ProcessEvent(CreateTestDeltaEvent("carol", 0, "str", 1200))
	ts.ProcessEvent(CreateTestTypingEvent("dave", KindTypingStart, 1201))

	snap := ts.Snapshot()

	if snap.RootID != "root" {
		t.Errorf("RootID = %q, want %q", snap.RootID, "root")
	}
	if len(snap.Messages) != 3 {
		t.Fatalf("snapshot has %d messages, want 3", len(snap.Messages))
	}
	for i := 1; i < len(snap.Messages); i++ {
		if snap.Messages[i-1].CreatedAt > snap.Messages[i].CreatedAt {
			t.Fatal("snapshot messages are not chronological")
		}
	}
	for _, msg := range snap.Messages {
		if msg.IsStreaming {
			t.Error("snapshot contains a synthetic streaming message")
		}
	}

	if snap.Metadata.MessageCount != 3 {
		t.Errorf("MessageCount = %d, want 3", snap.Metadata.MessageCount)
	}
	if snap.Metadata.AuthorCount != 2 {
		t.Errorf("AuthorCount = %d, want 2", snap.Metadata.AuthorCount)
	}
	if snap.Metadata.FirstActivity == "" || snap.Metadata.LastActivity == "" {
		t.Error("activity timestamps should be set")
	}
}

func TestThreadState_SnapshotEmpty(t *testing.T) {
	snap := NewThreadState("root").Snapshot()

	if snap.Metadata.MessageCount != 0 {
		t.Errorf("MessageCount = %d, want 0", snap.Metadata.MessageCount)
	}
	if snap.Metadata.FirstActivity != "" {
		t.Errorf("FirstActivity = %q, want empty", snap.Metadata.FirstActivity)
	}
}

func TestFormatTimestamp(t *testing.T) {
	if got := formatTimestamp(0); got != "" {
		t.Errorf("formatTimestamp(0) = %q, want empty", got)
	}
	if got := formatTimestamp(1700000000); got != "2023-11-14T22:13:20Z" {
		t.Errorf("formatTimestamp() = %q, want %q", got, "2023-11-14T22:13:20Z")
	}
}
