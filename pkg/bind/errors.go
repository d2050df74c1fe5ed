// SPDX-License-Identifier: MPL-2.0

package bind

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedParameterKind is returned when a handler declares a parameter
	// that cannot be expressed as a flag.
	ErrUnsupportedParameterKind = errors.New("unsupported parameter kind")
	// ErrDuplicateRegistration is returned for a second top-level handler or a
	// repeated subcommand name.
	ErrDuplicateRegistration = errors.New("duplicate registration")
	// ErrConfiguration is returned by the dispatcher when no top-level handler
	// was registered.
	ErrConfiguration = errors.New("need a top-level handler")
	// ErrParse is the sentinel wrapped by ParseError.
	ErrParse = errors.New("parse error")
	// ErrMissingSubcommand is the sentinel wrapped by MissingSubcommandError.
	ErrMissingSubcommand = errors.New("missing subcommand")
	// ErrUnknownSubcommand is the sentinel wrapped by UnknownSubcommandError.
	ErrUnknownSubcommand = errors.New("unknown subcommand")
	// ErrParameterConflict is the sentinel wrapped by ParameterConflictError.
	ErrParameterConflict = errors.New("parameter conflict")
	// ErrInvalidParameter is the sentinel wrapped by InvalidParameterError.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidCommandName is the sentinel wrapped by InvalidCommandNameError.
	ErrInvalidCommandName = errors.New("invalid command name")
	// ErrInvalidValueType is the sentinel wrapped by InvalidValueTypeError.
	ErrInvalidValueType = errors.New("invalid value type")
	// ErrNilHandler is returned when a nil command or handler is registered.
	ErrNilHandler = errors.New("handler is nil")
	// ErrHelpShown is returned by Dispatcher.Parse when the tokens asked for
	// help output instead of an invocation.
	ErrHelpShown = errors.New("help shown")
)

type (
	// UnsupportedParameterKindError is returned at registration time when a
	// parameter is positional-only, variadic-positional, or variadic-keyword.
	// It wraps ErrUnsupportedParameterKind for errors.Is() compatibility.
	UnsupportedParameterKindError struct {
		Command string
		Param   string
		Kind    ParamKind
	}

	// DuplicateRegistrationError is returned when the registry already holds a
	// top-level handler or a subcommand with the same name.
	DuplicateRegistrationError struct {
		// Name is the subcommand name; empty for the top-level handler.
		Name     string
		TopLevel bool
	}

	// ParseError describes a token parsing failure. Flag holds the flag token
	// (e.g. "--one") when the failure is tied to a single flag; Missing lists
	// required flags that were not supplied.
	ParseError struct {
		Command string
		Flag    string
		Value   string
		Missing []string
		Err     error
	}

	// MissingSubcommandError is returned when subcommands are registered but the
	// tokens did not select one.
	MissingSubcommandError struct {
		Choices []string
	}

	// UnknownSubcommandError is returned when the selected subcommand is not
	// registered.
	UnknownSubcommandError struct {
		Name        string
		Choices     []string
		Suggestions []string
	}

	// ParameterConflictError is returned when the top-level handler and a
	// subcommand handler declare the same parameter name or flag.
	ParameterConflictError struct {
		Subcommand string
		Names      []string
	}

	// InvalidParameterError is returned when a parameter declaration is malformed
	// (bad name, mismatched default, missing parser, duplicate flag).
	InvalidParameterError struct {
		Command string
		Param   string
		Reason  string
	}

	// InvalidCommandNameError is returned when a subcommand name cannot be used
	// as a command token.
	InvalidCommandNameError struct {
		Name string
	}

	// InvalidValueTypeError is returned when a ValueType value is not recognized.
	InvalidValueTypeError struct {
		Value ValueType
	}
)

func (e *UnsupportedParameterKindError) Error() string {
	return fmt.Sprintf("%s: parameter %q: %s parameters unsupported", commandLabel(e.Command), e.Param, e.Kind)
}

// Unwrap returns ErrUnsupportedParameterKind for errors.Is() compatibility.
func (e *UnsupportedParameterKindError) Unwrap() error { return ErrUnsupportedParameterKind }

func (e *DuplicateRegistrationError) Error() string {
	if e.TopLevel {
		return "tried to register multiple top-level handlers"
	}
	return fmt.Sprintf("subcommand %q is already registered", e.Name)
}

// Unwrap returns ErrDuplicateRegistration for errors.Is() compatibility.
func (e *DuplicateRegistrationError) Unwrap() error { return ErrDuplicateRegistration }

func (e *ParseError) Error() string {
	switch {
	case len(e.Missing) > 0:
		return "missing required flag(s): " + strings.Join(e.Missing, ", ")
	case e.Flag != "" && e.Value != "":
		return fmt.Sprintf("invalid value %q for flag %s: %v", e.Value, e.Flag, e.cause())
	case e.Flag != "":
		return fmt.Sprintf("flag %s: %v", e.Flag, e.cause())
	default:
		return e.cause().Error()
	}
}

func (e *ParseError) cause() error {
	if e.Err == nil {
		return ErrParse
	}
	return e.Err
}

// Unwrap returns both ErrParse and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

func (e *MissingSubcommandError) Error() string {
	return "a subcommand is required; pick from: " + strings.Join(e.Choices, ", ")
}

// Unwrap returns ErrMissingSubcommand for errors.Is() compatibility.
func (e *MissingSubcommandError) Unwrap() error { return ErrMissingSubcommand }

func (e *UnknownSubcommandError) Error() string {
	msg := fmt.Sprintf("invalid subcommand %q; pick from: %s", e.Name, strings.Join(e.Choices, ", "))
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, " or ") + "?)"
	}
	return msg
}

// Unwrap returns ErrUnknownSubcommand for errors.Is() compatibility.
func (e *UnknownSubcommandError) Unwrap() error { return ErrUnknownSubcommand }

func (e *ParameterConflictError) Error() string {
	return fmt.Sprintf("subcommand %q shares parameter(s) with the top-level handler: %s",
		e.Subcommand, strings.Join(e.Names, ", "))
}

// Unwrap returns ErrParameterConflict for errors.Is() compatibility.
func (e *ParameterConflictError) Unwrap() error { return ErrParameterConflict }

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: parameter %q: %s", commandLabel(e.Command), e.Param, e.Reason)
}

// Unwrap returns ErrInvalidParameter for errors.Is() compatibility.
func (e *InvalidParameterError) Unwrap() error { return ErrInvalidParameter }

func (e *InvalidCommandNameError) Error() string {
	return fmt.Sprintf("invalid subcommand name %q (must be non-empty without whitespace, must not start with '-' or be \"help\")", e.Name)
}

// Unwrap returns ErrInvalidCommandName for errors.Is() compatibility.
func (e *InvalidCommandNameError) Unwrap() error { return ErrInvalidCommandName }

func (e *InvalidValueTypeError) Error() string {
	return fmt.Sprintf("invalid value type %q (valid: string, bool, int, float, duration, custom)", e.Value)
}

// Unwrap returns ErrInvalidValueType for errors.Is() compatibility.
func (e *InvalidValueTypeError) Unwrap() error { return ErrInvalidValueType }

func commandLabel(name string) string {
	if name == "" {
		return "top-level handler"
	}
	return fmt.Sprintf("subcommand %q", name)
}
