// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/invowk/sigcli/pkg/bind"
)

func TestId_Constants(t *testing.T) {
	ids := []Id{
		ParseFailedId,
		MissingSubcommandId,
		UnknownSubcommandId,
		RegistrationFailedId,
		ConfigLoadFailedId,
		HandlerFailedId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	if ParseFailedId != 1 {
		t.Errorf("ParseFailedId = %d, want 1", ParseFailedId)
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		id      Id
		content string
	}{
		{ParseFailedId, "Could not parse"},
		{MissingSubcommandId, "subcommand is required"},
		{UnknownSubcommandId, "Unknown subcommand"},
		{RegistrationFailedId, "Invalid command declaration"},
		{ConfigLoadFailedId, "Failed to load configuration"},
		{HandlerFailedId, "command failed"},
	}

	for _, tt := range tests {
		iss := Get(tt.id)
		if iss == nil {
			t.Fatalf("Get(%d) returned nil", tt.id)
		}
		if iss.Id() != tt.id {
			t.Errorf("Get(%d).Id() = %d", tt.id, iss.Id())
		}
		if !strings.Contains(string(iss.MarkdownMsg()), tt.content) {
			t.Errorf("Get(%d).MarkdownMsg() should contain %q", tt.id, tt.content)
		}
	}

	if Get(Id(999)) != nil {
		t.Error("Get(999) should return nil")
	}
}

func TestValues(t *testing.T) {
	vals := Values()
	if len(vals) != len(issues) {
		t.Fatalf("Values() returned %d issues, want %d", len(vals), len(issues))
	}
	for i := 1; i < len(vals); i++ {
		if vals[i-1].Id() >= vals[i].Id() {
			t.Errorf("Values() not ordered by id at %d", i)
		}
	}
}

func TestIssue_LinksAreCopies(t *testing.T) {
	iss := Get(ParseFailedId)
	links := iss.ExtLinks()
	if len(links) == 0 {
		t.Fatal("ParseFailed issue should have external links")
	}
	links[0] = "mutated"
	if iss.ExtLinks()[0] == "mutated" {
		t.Error("ExtLinks() exposed internal state")
	}
	if len(Get(MissingSubcommandId).DocLinks()) != 0 {
		t.Error("MissingSubcommand issue should have no doc links")
	}
}

func TestIssue_Render(t *testing.T) {
	originalRender := render
	defer func() { render = originalRender }()

	var gotIn, gotStyle string
	render = func(in string, stylePath string) (string, error) {
		gotIn, gotStyle = in, stylePath
		return "rendered", nil
	}

	out, err := Get(ParseFailedId).Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "rendered" || gotStyle != "dark" {
		t.Errorf("Render() = %q with style %q", out, gotStyle)
	}
	if !strings.Contains(gotIn, "## See also") || !strings.Contains(gotIn, "pkg.go.dev/github.com/spf13/pflag") {
		t.Errorf("Render() input missing links section:\n%s", gotIn)
	}

	if _, err := Get(MissingSubcommandId).Render("notty"); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(gotIn, "See also") {
		t.Error("issue without links should not render a links section")
	}
}

func TestAllIssuesAreRenderable(t *testing.T) {
	for _, iss := range Values() {
		out, err := iss.Render("notty")
		if err != nil {
			t.Errorf("issue %d failed to render: %v", iss.Id(), err)
		}
		if strings.TrimSpace(out) == "" {
			t.Errorf("issue %d rendered empty output", iss.Id())
		}
	}
}

func TestForError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		wantId Id
		wantOk bool
	}{
		{"nil", nil, 0, false},
		{"parse", &bind.ParseError{Flag: "--one"}, ParseFailedId, true},
		{"wrapped parse", fmt.Errorf("run: %w", &bind.ParseError{}), ParseFailedId, true},
		{"missing subcommand", &bind.MissingSubcommandError{Choices: []string{"add"}}, MissingSubcommandId, true},
		{"unknown subcommand", &bind.UnknownSubcommandError{Name: "mul"}, UnknownSubcommandId, true},
		{"unsupported kind", &bind.UnsupportedParameterKindError{Param: "rest"}, RegistrationFailedId, true},
		{"duplicate", &bind.DuplicateRegistrationError{TopLevel: true}, RegistrationFailedId, true},
		{"conflict", &bind.ParameterConflictError{Subcommand: "add"}, RegistrationFailedId, true},
		{"no top-level", bind.ErrConfiguration, RegistrationFailedId, true},
		{"handler error", errors.New("division by zero"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ForError(tt.err)
			if id != tt.wantId || ok != tt.wantOk {
				t.Errorf("ForError(%v) = %d, %v; want %d, %v", tt.err, id, ok, tt.wantId, tt.wantOk)
			}
		})
	}
}
