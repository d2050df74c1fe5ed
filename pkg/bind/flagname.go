// SPDX-License-Identifier: MPL-2.0

package bind

import "strings"

const (
	flagPrefix    = "--"
	helpFlag      = "help"
	helpShorthand = "h"
)

// FlagName maps a parameter name to its flag token: leading hyphens are
// stripped, underscores become hyphens, and "--" is prepended.
//
//	FlagName("one")       == "--one"
//	FlagName("two_value") == "--two-value"
func FlagName(name string) string {
	return flagPrefix + flagIdent(name)
}

// flagIdent is the flag name as registered with pflag (no "--" prefix).
func flagIdent(name string) string {
	return strings.ReplaceAll(strings.TrimLeft(name, "-"), "_", "-")
}
