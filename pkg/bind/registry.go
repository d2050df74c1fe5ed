// SPDX-License-Identifier: MPL-2.0

package bind

import (
	"maps"
	"slices"
	"strings"
	"unicode"
)

// Registry holds at most one top-level command and any number of named
// subcommands. Register everything before dispatching; a Registry is not
// safe for concurrent mutation and is only read during Run.
type Registry struct {
	topLevel    *commandSpec
	subcommands map[string]*commandSpec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{subcommands: make(map[string]*commandSpec)}
}

// RegisterTopLevel registers the handler that receives the global flags.
// Parameters are resolved immediately, so unsupported declarations fail here
// rather than at dispatch time.
func (r *Registry) RegisterTopLevel(cmd *Command) error {
	if r.topLevel != nil {
		return &DuplicateRegistrationError{TopLevel: true}
	}

	spec, err := newCommandSpec("", cmd)
	if err != nil {
		return err
	}

	for _, name := range r.SubcommandNames() {
		if err := checkDisjoint(spec, r.subcommands[name]); err != nil {
			return err
		}
	}

	r.topLevel = spec
	return nil
}

// RegisterSubcommand registers cmd under name. The subcommand's parameter
// names and flags must not overlap with the top-level command's.
func (r *Registry) RegisterSubcommand(name string, cmd *Command) error {
	if !validCommandName(name) {
		return &InvalidCommandNameError{Name: name}
	}
	if _, exists := r.subcommands[name]; exists {
		return &DuplicateRegistrationError{Name: name}
	}

	spec, err := newCommandSpec(name, cmd)
	if err != nil {
		return err
	}

	if r.topLevel != nil {
		if err := checkDisjoint(r.topLevel, spec); err != nil {
			return err
		}
	}

	r.subcommands[name] = spec
	return nil
}

// HasTopLevel reports whether a top-level command is registered.
func (r *Registry) HasTopLevel() bool {
	return r.topLevel != nil
}

// SubcommandNames returns the registered subcommand names, sorted.
func (r *Registry) SubcommandNames() []string {
	return slices.Sorted(maps.Keys(r.subcommands))
}

// Len returns the number of registered subcommands.
func (r *Registry) Len() int {
	return len(r.subcommands)
}

func (r *Registry) subcommand(name string) (*commandSpec, bool) {
	spec, ok := r.subcommands[name]
	return spec, ok
}

// checkDisjoint rejects a subcommand that shares a parameter name, flag ident
// or shorthand with the top-level command. Values are partitioned by name, and
// top-level flags are inherited by every subcommand's flag set.
func checkDisjoint(top, sub *commandSpec) error {
	var shared []string
	for _, p := range sub.params {
		_, sameName := top.names[p.Name]
		_, sameFlag := top.idents[p.ident]
		_, sameShort := top.shorts[p.Short]
		if sameName || sameFlag || (p.Short != "" && sameShort) {
			shared = append(shared, p.Name)
		}
	}
	if len(shared) == 0 {
		return nil
	}
	slices.Sort(shared)
	return &ParameterConflictError{Subcommand: sub.name, Names: shared}
}

// validCommandName rejects names cobra cannot route to, including the
// built-in help command.
func validCommandName(name string) bool {
	if name == "" || name == helpFlag || strings.HasPrefix(name, "-") {
		return false
	}
	return !strings.ContainsFunc(name, unicode.IsSpace)
}
