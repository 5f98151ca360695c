package internal

import (
	"testing"
)

func TestInitLogger(t *testing.T) {
	defer InitLogger("info", "text")

	tests := []struct {
		name   string
		level  string
		format string
		want   string
	}{
		{name: "debug level", level: "debug", format: "text", want: "debug"},
		{name: "warn level", level: "warn", format: "json", want: "warning"},
		{name: "error level", level: "error", format: "text", want: "error"},
		{name: "unknown level falls back to info", level: "chatty", format: "text", want: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitLogger(tt.level, tt.format)
			if got := Level(); got != tt.want {
				t.Errorf("Level() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetVerbose(t *testing.T) {
	defer InitLogger("info", "text")

	InitLogger("info", "text")
	SetVerbose(true)
	if Level() != "debug" {
		t.Errorf("SetVerbose(true) level = %q, want debug", Level())
	}

	// SetVerbose(false) leaves the configured level alone.
	InitLogger("warn", "text")
	SetVerbose(false)
	if Level() != "warning" {
		t.Errorf("SetVerbose(false) level = %q, want warning", Level())
	}
}

func TestLogFunctions(t *testing.T) {
	// The helpers return nothing; verify they do not panic.
	LogError("test error message")
	LogWarn("test warning message")
	LogInfo("test info message")
	LogDebug("test debug message")
}
