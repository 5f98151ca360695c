package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// CacheEnvVar overrides event-cache detection when set
const CacheEnvVar = "THREADLOOM_CACHE"

// DetectCachePath returns the default location of the companion desktop
// client's event cache for the current operating system
func DetectCachePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library/Application Support/Threadloom/events.db"), nil
	case "linux":
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			dataHome = filepath.Join(home, ".local/share")
		}
		return filepath.Join(dataHome, "threadloom/events.db"), nil
	default:
		return "", fmt.Errorf("unsupported OS: %s (only macOS and Linux are supported)", runtime.GOOS)
	}
}

// ResolveCachePath picks the event-cache path to use. Precedence:
// explicit override (the --cache flag or config), the THREADLOOM_CACHE
// environment variable, then per-OS detection.
func ResolveCachePath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if env := os.Getenv(CacheEnvVar); env != "" {
		return env, nil
	}
	return DetectCachePath()
}

// CacheExists checks that the cache file is present
func CacheExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
