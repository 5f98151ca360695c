package testutil

import "testing"

// CreateTempDir creates a temporary directory cleaned up with the test
func CreateTempDir(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}
