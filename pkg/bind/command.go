// SPDX-License-Identifier: MPL-2.0

package bind

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

type (
	// HandlerFunc is the callable bound to a command. args holds exactly the
	// values of the command's own declared parameters, keyed by parameter name.
	HandlerFunc func(ctx context.Context, args Values) error

	// Command pairs a handler with its declared parameters.
	Command struct {
		handler HandlerFunc
		params  []Param
		summary string
	}

	// commandSpec is the immutable, registered form of a Command with every
	// parameter resolved once.
	commandSpec struct {
		name    string
		summary string
		handler HandlerFunc
		params  []boundParam
		// names, idents and shorts index params by parameter name, flag ident
		// and shorthand.
		names  map[string]struct{}
		idents map[string]string
		shorts map[string]string
	}

	boundParam struct {
		Param
		ident    string
		coercion Coercion
	}
)

// NewCommand declares a handler with its parameters in declaration order.
func NewCommand(handler HandlerFunc, params ...Param) *Command {
	return &Command{
		handler: handler,
		params:  slices.Clone(params),
	}
}

// WithSummary sets the one-line help text shown for the command.
func (c *Command) WithSummary(summary string) *Command {
	c.summary = summary
	return c
}

// Summary returns the one-line help text.
func (c *Command) Summary() string {
	return c.summary
}

// Parameters returns the declared parameters in declaration order.
func (c *Command) Parameters() []Param {
	return slices.Clone(c.params)
}

// newCommandSpec resolves every parameter of c, failing on the first
// unsupported or malformed one.
func newCommandSpec(name string, c *Command) (*commandSpec, error) {
	if c == nil || c.handler == nil {
		return nil, fmt.Errorf("%s: %w", commandLabel(name), ErrNilHandler)
	}

	spec := &commandSpec{
		name:    name,
		summary: c.summary,
		handler: c.handler,
		params:  make([]boundParam, 0, len(c.params)),
		names:   make(map[string]struct{}, len(c.params)),
		idents:  make(map[string]string, len(c.params)),
		shorts:  make(map[string]string),
	}

	for _, p := range c.params {
		coercion, err := Resolve(p)
		if err != nil {
			return nil, withCommand(err, name)
		}
		if reason := validateName(p.Name); reason != "" {
			return nil, &InvalidParameterError{Command: name, Param: p.Name, Reason: reason}
		}
		if reason := validateShort(p.Short); reason != "" {
			return nil, &InvalidParameterError{Command: name, Param: p.Name, Reason: reason}
		}

		if _, dup := spec.names[p.Name]; dup {
			return nil, &InvalidParameterError{Command: name, Param: p.Name, Reason: "declared more than once"}
		}
		ident := flagIdent(p.Name)
		if other, dup := spec.idents[ident]; dup {
			return nil, &InvalidParameterError{
				Command: name,
				Param:   p.Name,
				Reason:  fmt.Sprintf("flag %s is already used by parameter %q", FlagName(p.Name), other),
			}
		}
		if p.Short != "" {
			if other, dup := spec.shorts[p.Short]; dup {
				return nil, &InvalidParameterError{
					Command: name,
					Param:   p.Name,
					Reason:  fmt.Sprintf("shorthand -%s is already used by parameter %q", p.Short, other),
				}
			}
			spec.shorts[p.Short] = p.Name
		}

		spec.names[p.Name] = struct{}{}
		spec.idents[ident] = p.Name
		spec.params = append(spec.params, boundParam{Param: p, ident: ident, coercion: coercion})
	}

	return spec, nil
}

// owns reports whether key is one of the command's parameter names.
func (s *commandSpec) owns(key string) bool {
	_, ok := s.names[key]
	return ok
}

// withCommand fills in the command name on resolver errors, which are
// produced without knowledge of the owning command.
func withCommand(err error, name string) error {
	var kindErr *UnsupportedParameterKindError
	if errors.As(err, &kindErr) {
		kindErr.Command = name
		return kindErr
	}
	var paramErr *InvalidParameterError
	if errors.As(err, &paramErr) {
		paramErr.Command = name
		return paramErr
	}
	return err
}
