package internal

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDetectCachePath(t *testing.T) {
	if runtime.GOOS != "darwin" && runtime.GOOS != "linux" {
		t.Skipf("unsupported OS %s", runtime.GOOS)
	}

	path, err := DetectCachePath()
	if err != nil {
		t.Fatalf("DetectCachePath() error = %v", err)
	}
	if !strings.HasSuffix(path, "events.db") {
		t.Errorf("DetectCachePath() = %q, want an events.db path", path)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("DetectCachePath() = %q, want an absolute path", path)
	}
}

func TestResolveCachePath(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		t.Setenv(CacheEnvVar, "/env/events.db")
		got, err := ResolveCachePath("/flag/events.db")
		if err != nil {
			t.Fatalf("ResolveCachePath() error = %v", err)
		}
		if got != "/flag/events.db" {
			t.Errorf("ResolveCachePath() = %q, want the override", got)
		}
	})

	t.Run("env var over detection", func(t *testing.T) {
		t.Setenv(CacheEnvVar, "/env/events.db")
		got, err := ResolveCachePath("")
		if err != nil {
			t.Fatalf("ResolveCachePath() error = %v", err)
		}
		if got != "/env/events.db" {
			t.Errorf("ResolveCachePath() = %q, want the env value", got)
		}
	})
}

func TestCacheExists(t *testing.T) {
	dir := t.TempDir()

	if CacheExists(filepath.Join(dir, "missing.db")) {
		t.Error("CacheExists() = true for a missing file")
	}
	if CacheExists(dir) {
		t.Error("CacheExists() = true for a directory")
	}

	path := filepath.Join(dir, "events.db")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if !CacheExists(path) {
		t.Error("CacheExists() = false for an existing file")
	}
}
