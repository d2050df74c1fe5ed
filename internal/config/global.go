// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride replaces the platform config directory in tests.
var configDirOverride string

// Reset clears test overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
}

// SetConfigDirOverride sets a custom config directory path, bypassing
// os.UserHomeDir(), which does not honor HOME on every platform.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
