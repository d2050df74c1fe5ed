// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorScheme_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scheme  ColorScheme
		want    bool
		wantErr bool
	}{
		{ColorSchemeAuto, true, false},
		{ColorSchemeDark, true, false},
		{ColorSchemeLight, true, false},
		{"", false, true},
		{"solarized", false, true},
		{"DARK", false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.scheme), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.scheme.IsValid()
			if isValid != tt.want {
				t.Errorf("ColorScheme(%q).IsValid() = %v, want %v", tt.scheme, isValid, tt.want)
			}
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatalf("ColorScheme(%q).IsValid() returned no errors, want error", tt.scheme)
				}
				if !errors.Is(errs[0], ErrInvalidColorScheme) {
					t.Errorf("error should wrap ErrInvalidColorScheme, got: %v", errs[0])
				}
			} else if len(errs) > 0 {
				t.Errorf("ColorScheme(%q).IsValid() returned unexpected errors: %v", tt.scheme, errs)
			}
		})
	}
}

func TestLogLevel_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   LogLevel
		want    bool
		wantErr bool
	}{
		{LogLevelDebug, true, false},
		{LogLevelInfo, true, false},
		{LogLevelWarn, true, false},
		{LogLevelError, true, false},
		{"", false, true},
		{"trace", false, true},
		{"WARN", false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.level.IsValid()
			if isValid != tt.want {
				t.Errorf("LogLevel(%q).IsValid() = %v, want %v", tt.level, isValid, tt.want)
			}
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatalf("LogLevel(%q).IsValid() returned no errors, want error", tt.level)
				}
				var levelErr *InvalidLogLevelError
				if !errors.As(errs[0], &levelErr) || levelErr.Value != tt.level {
					t.Errorf("errors.As(*InvalidLogLevelError) failed: %v", errs[0])
				}
				if !errors.Is(errs[0], ErrInvalidLogLevel) {
					t.Errorf("error should wrap ErrInvalidLogLevel, got: %v", errs[0])
				}
			} else if len(errs) > 0 {
				t.Errorf("LogLevel(%q).IsValid() returned unexpected errors: %v", tt.level, errs)
			}
		})
	}
}

func TestConfig_IsValid(t *testing.T) {
	t.Parallel()

	if ok, errs := DefaultConfig().IsValid(); !ok {
		t.Fatalf("DefaultConfig().IsValid() = false: %v", errs)
	}

	cfg := DefaultConfig()
	cfg.UI.ColorScheme = "neon"
	cfg.Log.Level = "loud"
	ok, errs := cfg.IsValid()
	if ok {
		t.Fatal("IsValid() = true for invalid scheme and level")
	}
	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) {
		t.Fatalf("expected *InvalidConfigError, got %T", errs[0])
	}
	if len(cfgErr.FieldErrors) != 2 {
		t.Errorf("FieldErrors = %d, want 2", len(cfgErr.FieldErrors))
	}
	if !errors.Is(errs[0], ErrInvalidConfig) {
		t.Error("InvalidConfigError should wrap ErrInvalidConfig")
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("expected default color scheme to be auto, got %s", cfg.UI.ColorScheme)
	}
	if cfg.Log.Level != LogLevelWarn {
		t.Errorf("expected default log level to be warn, got %s", cfg.Log.Level)
	}
}
