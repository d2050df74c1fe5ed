// SPDX-License-Identifier: MPL-2.0

// Package bind derives command-line parsers from declared handler parameters.
//
// A handler is registered together with an ordered list of Param descriptors.
// The Registry holds one top-level handler and any number of named subcommand
// handlers; the Dispatcher builds a cobra command tree from those declarations,
// parses process tokens into typed values, and invokes the top-level handler
// followed by the selected subcommand handler, each with its own parameters.
//
//	reg := bind.NewRegistry()
//	_ = reg.RegisterTopLevel(bind.NewCommand(topLevel,
//		bind.Optional("verbose", bind.TypeBool, false).WithKind(bind.KindKeywordOnly)))
//	_ = reg.RegisterSubcommand("add", bind.NewCommand(add,
//		bind.Required("one", bind.TypeInt),
//		bind.Required("two", bind.TypeInt)))
//
//	err := bind.Run(ctx, reg, os.Args[1:])
//
// Parameter names map to flags by stripping leading hyphens, replacing
// underscores with hyphens, and prefixing "--" (two_value becomes --two-value).
package bind
