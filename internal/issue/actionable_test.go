// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "load config"},
			expected: "failed to load config",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "load config", Resource: "/tmp/config.cue"},
			expected: "failed to load config: /tmp/config.cue",
		},
		{
			name:     "operation with cause",
			err:      &ActionableError{Operation: "decode config", Cause: errors.New("bad key")},
			expected: "failed to decode config: bad key",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "read config file",
				Resource:  "/tmp/config.toml",
				Cause:     errors.New("permission denied"),
			},
			expected: "failed to read config file: /tmp/config.toml: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_ErrorsIsAndAs(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	err := WrapWithContext(fmt.Errorf("outer: %w", sentinel), "load config", "config.cue")

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find the wrapped sentinel")
	}

	var wrapped error = fmt.Errorf("cli: %w", err)
	var ae *ActionableError
	if !errors.As(wrapped, &ae) {
		t.Fatal("errors.As should find the ActionableError")
	}
	if ae.Resource != "config.cue" {
		t.Errorf("Resource = %q, want config.cue", ae.Resource)
	}

	if (&ActionableError{Operation: "x"}).Unwrap() != nil {
		t.Error("Unwrap() should return nil without a cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	root := errors.New("unexpected token")
	err := &ActionableError{
		Operation:   "load config",
		Resource:    "config.cue",
		Suggestions: []string{"Check the CUE syntax", "Remove the file to use defaults"},
		Cause:       fmt.Errorf("compile: %w", root),
	}

	short := err.Format(false)
	if !strings.HasPrefix(short, "failed to load config: config.cue: compile: unexpected token") {
		t.Errorf("Format(false) should start with Error(), got %q", short)
	}
	for _, s := range err.Suggestions {
		if !strings.Contains(short, "• "+s) {
			t.Errorf("Format(false) missing suggestion %q", s)
		}
	}
	if strings.Contains(short, "Error chain:") {
		t.Error("Format(false) should not include the error chain")
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Fatal("Format(true) should include the error chain")
	}
	if !strings.Contains(verbose, "1. compile: unexpected token") || !strings.Contains(verbose, "2. unexpected token") {
		t.Errorf("Format(true) chain incomplete:\n%s", verbose)
	}

	bare := (&ActionableError{Operation: "load config"}).Format(true)
	if bare != "failed to load config" {
		t.Errorf("Format(true) without cause or suggestions = %q", bare)
	}
}

func TestActionableError_HasSuggestions(t *testing.T) {
	t.Parallel()

	if (&ActionableError{Operation: "x"}).HasSuggestions() {
		t.Error("HasSuggestions() = true without suggestions")
	}
	if !(&ActionableError{Operation: "x", Suggestions: []string{"y"}}).HasSuggestions() {
		t.Error("HasSuggestions() = false with a suggestion")
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	ae := NewErrorContext().
		WithOperation("load config").
		WithResource("config.toml").
		WithSuggestion("first").
		WithSuggestion("second").
		Wrap(cause).
		Build()

	if ae == nil {
		t.Fatal("Build() returned nil")
	}
	if ae.Operation != "load config" || ae.Resource != "config.toml" || ae.Cause != cause {
		t.Errorf("Build() = %+v", ae)
	}
	if len(ae.Suggestions) != 2 || ae.Suggestions[0] != "first" || ae.Suggestions[1] != "second" {
		t.Errorf("Suggestions = %v", ae.Suggestions)
	}

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without an operation should return nil")
	}
}

func TestErrorContext_BuildError(t *testing.T) {
	t.Parallel()

	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without an operation = %v, want untyped nil", err)
	}
	err := NewErrorContext().WithOperation("load config").BuildError()
	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Errorf("BuildError() = %v, want *ActionableError", err)
	}
}

func TestErrorContext_Reuse(t *testing.T) {
	t.Parallel()

	ctx := NewErrorContext().WithOperation("load config").WithSuggestion("shared")
	first := ctx.Build()
	ctx.WithSuggestion("extra")
	second := ctx.Build()

	if len(first.Suggestions) != 1 {
		t.Errorf("first build changed after reuse: %v", first.Suggestions)
	}
	if len(second.Suggestions) != 2 {
		t.Errorf("second build suggestions = %v, want 2", second.Suggestions)
	}
}

func TestWrapWithContext_Nil(t *testing.T) {
	t.Parallel()

	if WrapWithContext(nil, "load config", "x") != nil {
		t.Error("WrapWithContext(nil) should return nil")
	}
}
