// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"errors"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"

	"github.com/invowk/sigcli/pkg/bind"
)

type Id int

const (
	ParseFailedId Id = iota + 1
	MissingSubcommandId
	UnknownSubcommandId
	RegistrationFailedId
	ConfigLoadFailedId
	HandlerFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // reference docs for the failing area
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue markdown with the given glamour style
// ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
		for _, link := range i.extLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	parseFailedIssue = &Issue{
		id: ParseFailedId,
		mdMsg: `
# Could not parse the command line!

Every parameter is passed as a long flag. Flags take their value from the
next token (` + "`--one 5`" + `) or after an equals sign (` + "`--one=5`" + `).
Boolean flags take no value: their presence means true.

## Things you can try:
- Check the flag names with:
~~~
$ sigcalc <subcommand> --help
~~~

- Parameter names with underscores use hyphens on the command line
  (` + "`two_value`" + ` becomes ` + "`--two-value`" + `)
- Put global flags such as ` + "`--verbose`" + ` before the subcommand name`,
		extLinks: []HttpLink{"https://pkg.go.dev/github.com/spf13/pflag"},
	}

	missingSubcommandIssue = &Issue{
		id: MissingSubcommandId,
		mdMsg: `
# A subcommand is required!

This program does its work in subcommands; the global flags alone do nothing.

## Things you can try:
- List the available subcommands:
~~~
$ sigcalc --help
~~~

- Run one of them, for example:
~~~
$ sigcalc add --one 5 --two 7
~~~`,
	}

	unknownSubcommandIssue = &Issue{
		id: UnknownSubcommandId,
		mdMsg: `
# Unknown subcommand!

The first positional token names the subcommand to run, and it did not match any
registered subcommand.

## Things you can try:
- Check for typos; the error above lists the valid choices
- List the available subcommands:
~~~
$ sigcalc --help
~~~`,
	}

	registrationFailedIssue = &Issue{
		id: RegistrationFailedId,
		mdMsg: `
# Invalid command declaration!

A handler was declared with parameters that cannot be turned into flags. This is
a problem in the program itself, not in how it was called.

## Common causes:
- Positional-only or variadic parameters (only named parameters become flags)
- Two handlers registered under the same name
- A subcommand reusing a parameter name of the top-level handler
- A default value whose type does not match the parameter type`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the sigcalc configuration file.

## Configuration file locations:
- Linux: ~/.config/sigcalc/config.cue (or config.toml)
- macOS: ~/Library/Application Support/sigcalc/config.cue
- Windows: %APPDATA%\sigcalc\config.cue
- Any path given in the SIGCALC_CONFIG environment variable

## Things you can try:
- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
ui: {
  verbose: false
  color_scheme: "auto"
}
log: level: "warn"
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	handlerFailedIssue = &Issue{
		id: HandlerFailedId,
		mdMsg: `
# The command failed!

The command line was understood, but the subcommand reported an error while
running.

## Things you can try:
- Re-run with ` + "`--verbose`" + ` to see the inputs that were used
- Check the values passed to the subcommand's flags`,
	}

	issues = map[Id]*Issue{
		parseFailedIssue.Id():        parseFailedIssue,
		missingSubcommandIssue.Id():  missingSubcommandIssue,
		unknownSubcommandIssue.Id():  unknownSubcommandIssue,
		registrationFailedIssue.Id(): registrationFailedIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		handlerFailedIssue.Id():      handlerFailedIssue,
	}
)

// Values returns every catalog entry ordered by id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}

// ForError maps a binding error to its catalog entry. Errors that are not
// produced by the binding engine report false.
func ForError(err error) (Id, bool) {
	switch {
	case err == nil:
		return 0, false
	case errors.Is(err, bind.ErrParse):
		return ParseFailedId, true
	case errors.Is(err, bind.ErrMissingSubcommand):
		return MissingSubcommandId, true
	case errors.Is(err, bind.ErrUnknownSubcommand):
		return UnknownSubcommandId, true
	case errors.Is(err, bind.ErrUnsupportedParameterKind),
		errors.Is(err, bind.ErrDuplicateRegistration),
		errors.Is(err, bind.ErrParameterConflict),
		errors.Is(err, bind.ErrInvalidParameter),
		errors.Is(err, bind.ErrInvalidCommandName),
		errors.Is(err, bind.ErrNilHandler),
		errors.Is(err, bind.ErrConfiguration):
		return RegistrationFailedId, true
	default:
		return 0, false
	}
}
