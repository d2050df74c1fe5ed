// SPDX-License-Identifier: MPL-2.0

package bind

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// buildRoot composes the cobra command tree for the registry. Top-level
// parameters become root flags (persistent when subcommands exist, so they
// may precede the subcommand token); each subcommand gets its own child
// command with local flags. The caller must ensure a top-level command is
// registered.
func (r *Registry) buildRoot(prog string, state *parseState) *cobra.Command {
	root := &cobra.Command{
		Use:               prog,
		Short:             r.topLevel.summary,
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			state.reached = cmd
		},
	}
	root.SetFlagErrorFunc(state.flagError)

	hasSubcommands := r.Len() > 0
	topFlags := root.Flags()
	if hasSubcommands {
		topFlags = root.PersistentFlags()
	}
	for _, p := range r.topLevel.params {
		addFlag(topFlags, p)
		if !p.coercion.Required {
			continue
		}
		if hasSubcommands {
			_ = root.MarkPersistentFlagRequired(p.ident)
		} else {
			_ = root.MarkFlagRequired(p.ident)
		}
	}

	if !hasSubcommands {
		root.Args = cobra.NoArgs
		root.RunE = func(cmd *cobra.Command, _ []string) error {
			return state.capture(cmd, nil, "", false)
		}
		return root
	}

	// Unknown subcommand tokens reach RunE as positional arguments so that
	// they are reported against the registered names.
	root.Args = cobra.ArbitraryArgs
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return state.capture(cmd, nil, "", false)
		}
		if _, ok := r.subcommand(args[0]); ok {
			return &ParseError{
				Command: cmd.Name(),
				Value:   args[0],
				Err:     fmt.Errorf("subcommand %q must appear before \"--\"", args[0]),
			}
		}
		return state.capture(cmd, nil, args[0], true)
	}

	for _, name := range r.SubcommandNames() {
		spec := r.subcommands[name]
		sub := &cobra.Command{
			Use:   spec.name,
			Short: spec.summary,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return state.capture(cmd, spec, spec.name, true)
			},
		}
		for _, p := range spec.params {
			addFlag(sub.Flags(), p)
			if p.coercion.Required {
				_ = sub.MarkFlagRequired(p.ident)
			}
		}
		root.AddCommand(sub)
	}

	return root
}

// addFlag defines the pflag flag for one resolved parameter.
func addFlag(fs *pflag.FlagSet, p boundParam) {
	c := p.coercion
	switch c.Strategy {
	case StrategyPresence:
		def, _ := c.Default.(bool)
		fs.BoolP(p.ident, p.Short, def, p.Usage)
	case StrategyRaw:
		def, _ := c.Default.(string)
		fs.StringP(p.ident, p.Short, def, p.Usage)
	case StrategyTyped:
		switch p.Type {
		case TypeInt:
			def, _ := c.Default.(int)
			fs.IntP(p.ident, p.Short, def, p.Usage)
		case TypeFloat:
			def, _ := c.Default.(float64)
			fs.Float64P(p.ident, p.Short, def, p.Usage)
		case TypeDuration:
			def, _ := c.Default.(time.Duration)
			fs.DurationP(p.ident, p.Short, def, p.Usage)
		case TypeCustom:
			fs.VarP(newCustomValue(c.Parse, c.Default), p.ident, p.Short, p.Usage)
		default: // TypeString
			def, _ := c.Default.(string)
			fs.StringP(p.ident, p.Short, def, p.Usage)
		}
	}
}

// readFlag extracts the coerced value of one parameter after parsing.
// An optional parameter declared with a nil default reads as nil when its
// flag was not supplied.
func readFlag(fs *pflag.FlagSet, p boundParam) (any, error) {
	f := fs.Lookup(p.ident)
	if f == nil {
		return nil, fmt.Errorf("flag %s is not defined", FlagName(p.Name))
	}

	c := p.coercion
	if !f.Changed && c.Strategy != StrategyPresence && p.HasDefault && p.Default == nil {
		return nil, nil
	}

	switch c.Strategy {
	case StrategyPresence:
		return fs.GetBool(p.ident)
	case StrategyRaw:
		return fs.GetString(p.ident)
	}

	switch p.Type {
	case TypeInt:
		return fs.GetInt(p.ident)
	case TypeFloat:
		return fs.GetFloat64(p.ident)
	case TypeDuration:
		return fs.GetDuration(p.ident)
	case TypeCustom:
		cv, ok := f.Value.(*customValue)
		if !ok {
			return nil, fmt.Errorf("flag %s has unexpected value type %T", FlagName(p.Name), f.Value)
		}
		return cv.value, nil
	default: // TypeString
		return fs.GetString(p.ident)
	}
}
