// SPDX-License-Identifier: MPL-2.0

package bind

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type (
	// ExecuteFunc runs a fully built root command. The default calls
	// cobra's ExecuteContext; applications may route execution through a
	// richer runner such as fang.
	ExecuteFunc func(ctx context.Context, root *cobra.Command) error

	// Option configures a Dispatcher.
	Option func(*Dispatcher)

	// Dispatcher parses tokens against a Registry and invokes the bound
	// handlers. It holds no per-invocation state; every Parse or Run builds
	// a fresh command tree.
	Dispatcher struct {
		registry *Registry
		prog     string
		version  string
		out      io.Writer
		errOut   io.Writer
		logger   *log.Logger
		executor ExecuteFunc
	}

	// Invocation is the result of parsing one token sequence.
	Invocation struct {
		// ID correlates the log lines of a single dispatch.
		ID string
		// Values holds the coerced values of the top-level parameters and,
		// when a registered subcommand was selected, of its parameters.
		Values Values
		// Subcommand is the selected subcommand token, possibly unregistered.
		Subcommand string
		// Selected reports whether the tokens named a subcommand at all.
		Selected bool
	}

	// parseState carries what the command tree observed during one
	// execution back to the dispatcher.
	parseState struct {
		registry *Registry
		// reached is the deepest command cobra started executing; set before
		// required flags are validated.
		reached  *cobra.Command
		captured *Invocation
		// then runs inside the executed command once values are captured.
		then func(cmd *cobra.Command, inv *Invocation) error
	}
)

// WithProgramName sets the program name shown in usage and help output.
func WithProgramName(name string) Option {
	return func(d *Dispatcher) { d.prog = name }
}

// WithOutput sets the writers for help output and error output.
func WithOutput(out, errOut io.Writer) Option {
	return func(d *Dispatcher) {
		d.out = out
		d.errOut = errOut
	}
}

// WithLogger sets the logger used for dispatch debug messages.
func WithLogger(logger *log.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// WithExecutor replaces the function that executes the root command.
func WithExecutor(execute ExecuteFunc) Option {
	return func(d *Dispatcher) { d.executor = execute }
}

// WithVersion enables the --version flag with the given version string.
func WithVersion(version string) Option {
	return func(d *Dispatcher) { d.version = version }
}

// NewDispatcher creates a dispatcher for reg.
func NewDispatcher(reg *Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: reg,
		prog:     defaultProgramName(),
		out:      os.Stdout,
		errOut:   os.Stderr,
		logger:   log.NewWithOptions(io.Discard, log.Options{Prefix: "bind"}),
		executor: executeCobra,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run parses tokens against reg and invokes the bound handlers.
func Run(ctx context.Context, reg *Registry, tokens []string, opts ...Option) error {
	return NewDispatcher(reg, opts...).Run(ctx, tokens)
}

// Parse converts tokens into an Invocation without invoking any handler.
// It returns ErrHelpShown when the tokens requested help or version output.
// An unknown or missing subcommand is not an error at this stage.
func (d *Dispatcher) Parse(ctx context.Context, tokens []string) (*Invocation, error) {
	return d.execute(ctx, tokens, nil)
}

// Run parses tokens, then invokes the top-level handler followed by the
// selected subcommand handler, each receiving only its own parameters.
// Help output returns nil without invoking anything; handler errors are
// returned unchanged and stop the sequence.
func (d *Dispatcher) Run(ctx context.Context, tokens []string) error {
	_, err := d.execute(ctx, tokens, d.dispatch)
	if errors.Is(err, ErrHelpShown) {
		return nil
	}
	return err
}

func (d *Dispatcher) execute(ctx context.Context, tokens []string, then func(*cobra.Command, *Invocation) error) (*Invocation, error) {
	if d.registry == nil || !d.registry.HasTopLevel() {
		return nil, ErrConfiguration
	}

	state := &parseState{registry: d.registry, then: then}
	root := d.registry.buildRoot(d.prog, state)
	root.Version = d.version
	root.SetOut(d.out)
	root.SetErr(d.errOut)
	if tokens == nil {
		tokens = []string{}
	}
	root.SetArgs(tokens)

	d.logger.Debug("parsing tokens", "program", d.prog, "tokens", tokens, "subcommands", d.registry.SubcommandNames())

	err := d.executor(ctx, root)
	if state.captured == nil {
		if err == nil {
			d.logger.Debug("help or version output shown")
			return nil, ErrHelpShown
		}
		err = state.parseError(err)
		d.logger.Debug("parse failed", "error", err)
		return nil, err
	}
	return state.captured, err
}

// dispatch resolves the selected subcommand, partitions the values and
// calls the handlers in order.
func (d *Dispatcher) dispatch(cmd *cobra.Command, inv *Invocation) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sub, err := d.resolve(cmd.Root(), inv)
	if err != nil {
		d.logger.Debug("subcommand resolution failed", "id", inv.ID, "error", err)
		return err
	}

	topArgs, subArgs := d.partition(inv.Values, sub)

	d.logger.Debug("invoking top-level handler", "id", inv.ID, "params", topArgs.Keys())
	if err := d.registry.topLevel.handler(ctx, topArgs); err != nil {
		d.logger.Debug("top-level handler failed", "id", inv.ID, "error", err)
		return err
	}

	if sub == nil {
		return nil
	}

	d.logger.Debug("invoking subcommand handler", "id", inv.ID, "subcommand", sub.name, "params", subArgs.Keys())
	if err := sub.handler(ctx, subArgs); err != nil {
		d.logger.Debug("subcommand handler failed", "id", inv.ID, "subcommand", sub.name, "error", err)
		return err
	}
	return nil
}

// resolve returns the selected subcommand, or nil when none are registered.
func (d *Dispatcher) resolve(root *cobra.Command, inv *Invocation) (*commandSpec, error) {
	if d.registry.Len() == 0 {
		return nil, nil
	}
	choices := d.registry.SubcommandNames()
	if !inv.Selected {
		return nil, &MissingSubcommandError{Choices: choices}
	}
	sub, ok := d.registry.subcommand(inv.Subcommand)
	if !ok {
		return nil, &UnknownSubcommandError{
			Name:        inv.Subcommand,
			Choices:     choices,
			Suggestions: root.SuggestionsFor(inv.Subcommand),
		}
	}
	return sub, nil
}

// partition splits values into the top-level handler's arguments and the
// subcommand handler's arguments. Parameter names are disjoint across the
// two, so every key lands in exactly one side.
func (d *Dispatcher) partition(values Values, sub *commandSpec) (top, rest Values) {
	top = values.subset(d.registry.topLevel.owns)
	if sub == nil {
		return top, Values{}
	}
	return top, values.subset(sub.owns)
}

// capture records the parsed values of the executed command. sub is nil when
// the root command itself ran.
func (s *parseState) capture(cmd *cobra.Command, sub *commandSpec, selected string, hasSelection bool) error {
	values := make(Values)
	fs := cmd.Flags()
	for _, p := range s.registry.topLevel.params {
		v, err := readFlag(fs, p)
		if err != nil {
			return err
		}
		values[p.Name] = v
	}
	if sub != nil {
		for _, p := range sub.params {
			v, err := readFlag(fs, p)
			if err != nil {
				return err
			}
			values[p.Name] = v
		}
	}

	s.captured = &Invocation{
		ID:         uuid.NewString(),
		Values:     values,
		Subcommand: selected,
		Selected:   hasSelection,
	}
	if s.then == nil {
		return nil
	}
	return s.then(cmd, s.captured)
}

// flagError converts pflag failures into ParseError. An unregistered
// subcommand token followed by subcommand flags is reported as an unknown
// subcommand, since the flags could not have been understood anyway.
func (s *parseState) flagError(cmd *cobra.Command, err error) error {
	s.reached = cmd

	if !cmd.HasParent() && s.registry.Len() > 0 {
		if args := cmd.Flags().Args(); len(args) > 0 {
			if _, ok := s.registry.subcommand(args[0]); !ok {
				return &UnknownSubcommandError{
					Name:        args[0],
					Choices:     s.registry.SubcommandNames(),
					Suggestions: cmd.SuggestionsFor(args[0]),
				}
			}
		}
	}

	pe := &ParseError{Command: cmd.Name(), Err: err}

	var (
		invalid  *pflag.InvalidValueError
		notExist *pflag.NotExistError
		needsArg *pflag.ValueRequiredError
	)
	switch {
	case errors.As(err, &invalid):
		pe.Flag = flagPrefix + invalid.GetFlag().Name
		pe.Value = invalid.GetValue()
		if cause := errors.Unwrap(invalid); cause != nil {
			pe.Err = cause
		}
	case errors.As(err, &notExist):
		pe.Flag = flagPrefix + notExist.GetSpecifiedName()
		if notExist.GetSpecifiedShortnames() != "" {
			pe.Flag = "-" + notExist.GetSpecifiedName()
		}
		pe.Err = errors.New("unknown flag")
	case errors.As(err, &needsArg):
		pe.Flag = flagPrefix + needsArg.GetFlag().Name
		pe.Err = errors.New("flag needs an argument")
	}
	return pe
}

// parseError wraps a failure that happened before values were captured.
func (s *parseState) parseError(err error) error {
	var (
		pe      *ParseError
		unknown *UnknownSubcommandError
	)
	if errors.As(err, &pe) || errors.As(err, &unknown) {
		return err
	}

	out := &ParseError{Err: err}
	if s.reached != nil {
		out.Command = s.reached.Name()
		out.Missing = missingRequired(s.reached)
	}
	return out
}

// missingRequired lists the required flags of cmd that were not supplied,
// sorted.
func missingRequired(cmd *cobra.Command) []string {
	var missing []string
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		ann, ok := f.Annotations[cobra.BashCompOneRequiredFlag]
		if ok && len(ann) > 0 && ann[0] == "true" && !f.Changed {
			missing = append(missing, flagPrefix+f.Name)
		}
	})
	slices.Sort(missing)
	return missing
}

func executeCobra(ctx context.Context, root *cobra.Command) error {
	return root.ExecuteContext(ctx)
}

func defaultProgramName() string {
	if len(os.Args) > 0 && os.Args[0] != "" {
		return filepath.Base(os.Args[0])
	}
	return "app"
}

// String implements fmt.Stringer for debug output.
func (inv *Invocation) String() string {
	if !inv.Selected {
		return fmt.Sprintf("invocation %s %v", inv.ID, inv.Values)
	}
	return fmt.Sprintf("invocation %s %s %v", inv.ID, inv.Subcommand, inv.Values)
}
