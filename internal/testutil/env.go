package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Isolate moves the test into a fresh working directory, points the user
// config directory at an empty location and clears every JATOKEN_* variable,
// so no config outside the test can leak in. It returns the new directory.
func Isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "JATOKEN_") {
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}
	}
	return dir
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
