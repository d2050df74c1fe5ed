// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"runtime"
	"strings"
	"testing"
)

// UnsetEnv removes key from the environment for the duration of the test.
// The original value is restored on cleanup. Like t.Setenv, it cannot be
// used in parallel tests.
func UnsetEnv(t testing.TB, key string) {
	t.Helper()
	// t.Setenv records the original value and registers the restore.
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset env %s: %v", key, err)
	}
}

// UnsetPrefixed removes every environment variable named <prefix>_* for the
// duration of the test.
func UnsetPrefixed(t testing.TB, prefix string) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, prefix+"_") {
			UnsetEnv(t, key)
		}
	}
}

// SetHomeDir points the user home directory at dir for the duration of the
// test.
//
// Platform handling:
//   - Windows: Sets USERPROFILE and APPDATA
//   - Linux/macOS: Sets HOME and XDG_CONFIG_HOME
func SetHomeDir(t testing.TB, dir string) {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		t.Setenv("USERPROFILE", dir)
		t.Setenv("APPDATA", dir)
	default:
		t.Setenv("HOME", dir)
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
}

// IsolateHome gives the test an empty home and config directory and clears
// the <prefix>_* overrides, so the developer's own settings cannot leak in.
// It returns the directory.
//
//	func TestSomething(t *testing.T) {
//	    dir := testutil.IsolateHome(t, "SIGCALC")
//	    // Test code that reads configuration...
//	}
func IsolateHome(t testing.TB, prefix string) string {
	t.Helper()
	dir := t.TempDir()
	SetHomeDir(t, dir)
	UnsetPrefixed(t, prefix)
	return dir
}
