package cmd

import (
	"bytes"
	"testing"

	"github.com/threadloom/threadloom/internal"
	"github.com/threadloom/threadloom/testutil"
)

func TestTreeCommand_FromLog(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	logPath := testutil.CreateEventLogFixture(t, dir, "events.jsonl", testutil.SampleEventLog())

	rootCmd.SetArgs([]string{"tree", "root-1", "--log", logPath})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	defer func() { treeLog = "" }()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute(tree) error = %v", err)
	}
}

func TestPrintNode(t *testing.T) {
	root := &internal.ThreadNode{
		Message: &internal.Message{ID: "root", Author: "alice", Content: "line one\nline two", CreatedAt: 1000},
		Children: []*internal.ThreadNode{
			{Message: &internal.Message{ID: "d1", Author: "bob", Content: "reply", CreatedAt: 1010}},
		},
	}

	// Verify rendering of multi-line content and nesting does not panic.
	printNode(root, 0)
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "short single line", in: "hello", want: "hello"},
		{name: "multi-line truncated", in: "one\ntwo", want: "one…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstLine(tt.in); got != tt.want {
				t.Errorf("firstLine(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
