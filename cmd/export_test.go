package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/threadloom/threadloom/testutil"
)

func TestExportCommand(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		wantFile string
	}{
		{name: "json", format: "json", wantFile: "root-1.json"},
		{name: "jsonl", format: "jsonl", wantFile: "root-1.jsonl"},
		{name: "yaml", format: "yaml", wantFile: "root-1.yaml"},
		{name: "markdown", format: "md", wantFile: "root-1.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := testutil.CreateTempDir(t)
			logPath := testutil.CreateEventLogFixture(t, dir, "events.jsonl", testutil.SampleEventLog())
			outDir := filepath.Join(dir, "out")

			rootCmd.SetArgs([]string{
				"export", "root-1",
				"--log", logPath,
				"--format", tt.format,
				"--output", outDir,
			})
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})

			if err := rootCmd.Execute(); err != nil {
				t.Fatalf("Execute(export) error = %v", err)
			}

			outPath := filepath.Join(outDir, tt.wantFile)
			data, err := os.ReadFile(outPath)
			if err != nil {
				t.Fatalf("expected output file %s: %v", outPath, err)
			}
			if len(data) == 0 {
				t.Error("export wrote an empty file")
			}

			// The typing event in the fixture never becomes a message.
			if tt.format == "jsonl" {
				lines := strings.Split(strings.TrimSpace(string(data)), "\n")
				if len(lines) != 3 {
					t.Errorf("jsonl export has %d lines, want 3", len(lines))
				}
			}
		})
	}
}

func TestExportCommand_BadFormat(t *testing.T) {
	rootCmd.SetArgs([]string{"export", "root-1", "--format", "xml"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("Execute(export) with unsupported format should error")
	}
	exportFormat = ""
}
