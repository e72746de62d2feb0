package collector

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestCheckPaths verifies the readability probe used by the platform guard.
func TestCheckPaths(t *testing.T) {
	dir := t.TempDir()

	readable := filepath.Join(dir, "stat")
	if err := os.WriteFile(readable, []byte("cpu 0 0 0 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := checkPaths(readable); err != nil {
		t.Errorf("readable path: unexpected error %v", err)
	}

	missing := filepath.Join(dir, "meminfo")
	err := checkPaths(readable, missing)
	if err == nil {
		t.Fatal("missing path: expected error, got nil")
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error %q does not name the missing path", err)
	}
}
