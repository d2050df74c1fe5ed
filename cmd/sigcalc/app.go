// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/invowk/sigcli/pkg/bind"
)

// calculator holds the state shared between the top-level handler and the
// subcommands. The top-level handler always runs first, so subcommands see
// the verbose setting of the current invocation.
type calculator struct {
	out     io.Writer
	verbose bool
}

func newCalculator(out io.Writer) *calculator {
	return &calculator{out: out}
}

// registry declares the calculator. defaultVerbose is the value of --verbose
// when the flag is absent.
func (c *calculator) registry(defaultVerbose bool) (*bind.Registry, error) {
	reg := bind.NewRegistry()

	if err := reg.RegisterTopLevel(bind.NewCommand(c.setup,
		bind.Optional("verbose", bind.TypeBool, defaultVerbose).
			WithKind(bind.KindKeywordOnly).
			WithUsage("print the whole expression, not just the result"),
	).WithSummary("A small calculator")); err != nil {
		return nil, err
	}

	operands := []bind.Param{
		bind.Required("one", bind.TypeInt).WithUsage("first operand"),
		bind.Required("two", bind.TypeInt).WithUsage("second operand"),
	}
	subcommands := []struct {
		name string
		cmd  *bind.Command
	}{
		{"add", bind.NewCommand(c.add, operands...).WithSummary("Add two integers")},
		{"sub", bind.NewCommand(c.sub, operands...).WithSummary("Subtract the second integer from the first")},
		{"invert", bind.NewCommand(c.invert,
			bind.Required("operand", bind.TypeInt).WithUsage("integer to complement"),
		).WithSummary("Bitwise complement of an integer, printed in binary")},
	}
	for _, sc := range subcommands {
		if err := reg.RegisterSubcommand(sc.name, sc.cmd); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func (c *calculator) setup(_ context.Context, args bind.Values) error {
	c.verbose = args.Bool("verbose")
	return nil
}

func (c *calculator) add(_ context.Context, args bind.Values) error {
	one, two := args.Int("one"), args.Int("two")
	return c.print(fmt.Sprintf("%d + %d = ", one, two), strconv.Itoa(one+two))
}

func (c *calculator) sub(_ context.Context, args bind.Values) error {
	one, two := args.Int("one"), args.Int("two")
	return c.print(fmt.Sprintf("%d - %d = ", one, two), strconv.Itoa(one-two))
}

func (c *calculator) invert(_ context.Context, args bind.Values) error {
	operand := args.Int("operand")
	return c.print("~"+binary(operand)+" = ", binary(^operand))
}

// print writes result, prefixed by expr in verbose mode.
func (c *calculator) print(expr, result string) error {
	if !c.verbose {
		expr = ""
	}
	_, err := fmt.Fprintln(c.out, expr+result)
	return err
}

// binary formats n as 0b-prefixed base 2, with the sign in front of the
// prefix: 5 is "0b101" and -6 is "-0b110".
func binary(n int) string {
	digits := strconv.FormatInt(int64(n), 2)
	if rest, ok := strings.CutPrefix(digits, "-"); ok {
		return "-0b" + rest
	}
	return "0b" + digits
}
