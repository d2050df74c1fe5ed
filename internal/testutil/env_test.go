// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUnsetPrefixed(t *testing.T) {
	t.Setenv("TESTUTIL_PROBE_A", "1")
	t.Setenv("TESTUTIL_PROBE_B", "2")
	t.Setenv("TESTUTILX", "3")

	UnsetPrefixed(t, "TESTUTIL")

	for _, key := range []string{"TESTUTIL_PROBE_A", "TESTUTIL_PROBE_B"} {
		if _, ok := os.LookupEnv(key); ok {
			t.Errorf("%s is still set", key)
		}
	}
	if got := os.Getenv("TESTUTILX"); got != "3" {
		t.Errorf("TESTUTILX = %q, want it untouched", got)
	}
}

func TestIsolateHome(t *testing.T) {
	dir := IsolateHome(t, "TESTUTIL")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() error = %v", err)
	}
	if home != dir {
		t.Errorf("UserHomeDir() = %q, want %q", home, dir)
	}
}

func TestMustWriteFile(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested")
	path := MustWriteFile(t, dir, "config.cue", "ui: verbose: true\n")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "ui: verbose: true\n" {
		t.Errorf("content = %q", data)
	}
}
