// SPDX-License-Identifier: MPL-2.0

package bind

import (
	"fmt"
	"time"
	"unicode"
)

const (
	// KindPlain is a positional-or-keyword parameter. Bound as a flag.
	KindPlain ParamKind = iota
	// KindKeywordOnly is a keyword-only parameter. Bound as a flag.
	KindKeywordOnly
	// KindPositionalOnly cannot be bound; registration rejects it.
	KindPositionalOnly
	// KindVariadicPositional (an *args-like parameter) cannot be bound.
	KindVariadicPositional
	// KindVariadicKeyword (a **kwargs-like parameter) cannot be bound.
	KindVariadicKeyword
)

const (
	// TypeRaw is the zero value: the token is taken verbatim as a string.
	TypeRaw ValueType = ""
	// TypeString is an explicitly typed string value.
	TypeString ValueType = "string"
	// TypeBool is a presence flag: --flag sets true, absence keeps the default.
	TypeBool ValueType = "bool"
	// TypeInt is parsed as an int; 0x, 0o and 0b prefixes are accepted.
	TypeInt ValueType = "int"
	// TypeFloat is parsed as a float64.
	TypeFloat ValueType = "float"
	// TypeDuration is parsed with time.ParseDuration.
	TypeDuration ValueType = "duration"
	// TypeCustom is parsed with the parameter's own ParseFunc.
	TypeCustom ValueType = "custom"
)

type (
	// ParamKind classifies how a parameter was declared.
	ParamKind int

	// ValueType selects the coercion applied to a parameter's token.
	ValueType string

	// ParseFunc converts one raw token into a typed value.
	ParseFunc func(raw string) (any, error)

	// Param describes one handler parameter.
	Param struct {
		// Name is the identifier the handler reads the value by. It maps to the
		// flag token via FlagName.
		Name string
		// Kind defaults to KindPlain.
		Kind ParamKind
		// Type defaults to TypeRaw.
		Type ValueType
		// Default is the value used when the flag is absent. Only meaningful
		// when HasDefault is set; a nil Default yields nil for an absent flag.
		Default    any
		HasDefault bool
		// Usage is the help text shown for the flag.
		Usage string
		// Short is an optional single-letter shorthand (-v).
		Short string
		// Parse converts tokens for TypeCustom parameters.
		Parse ParseFunc
	}
)

// String returns the kind name used in error messages.
func (k ParamKind) String() string {
	switch k {
	case KindPlain:
		return "positional-or-keyword"
	case KindKeywordOnly:
		return "keyword-only"
	case KindPositionalOnly:
		return "positional-only"
	case KindVariadicPositional:
		return "variadic-positional"
	case KindVariadicKeyword:
		return "variadic-keyword"
	default:
		return fmt.Sprintf("ParamKind(%d)", int(k))
	}
}

// Bindable reports whether parameters of this kind can be exposed as flags.
func (k ParamKind) Bindable() bool {
	return k == KindPlain || k == KindKeywordOnly
}

// IsValid returns whether the ValueType is one of the defined types,
// and a list of validation errors if it is not.
func (t ValueType) IsValid() (bool, []error) {
	switch t {
	case TypeRaw, TypeString, TypeBool, TypeInt, TypeFloat, TypeDuration, TypeCustom:
		return true, nil
	default:
		return false, []error{&InvalidValueTypeError{Value: t}}
	}
}

// Required declares a parameter without a default; its flag must be supplied
// (presence flags excepted).
func Required(name string, typ ValueType) Param {
	return Param{Name: name, Type: typ}
}

// Optional declares a parameter with a default value.
func Optional(name string, typ ValueType, def any) Param {
	return Param{Name: name, Type: typ, Default: def, HasDefault: true}
}

// Custom declares a required parameter converted by parse.
func Custom(name string, parse ParseFunc) Param {
	return Param{Name: name, Type: TypeCustom, Parse: parse}
}

// WithDefault returns a copy of p with a default value.
func (p Param) WithDefault(def any) Param {
	p.Default = def
	p.HasDefault = true
	return p
}

// WithUsage returns a copy of p with help text.
func (p Param) WithUsage(usage string) Param {
	p.Usage = usage
	return p
}

// WithShort returns a copy of p with a single-letter shorthand.
func (p Param) WithShort(short string) Param {
	p.Short = short
	return p
}

// WithKind returns a copy of p declared with the given kind.
func (p Param) WithKind(kind ParamKind) Param {
	p.Kind = kind
	return p
}

// validateName checks that a parameter name can become a pflag flag name.
// Names start with a letter (after any leading hyphens, which FlagName strips)
// and continue with letters, digits, underscores or hyphens.
func validateName(name string) string {
	ident := flagIdent(name)
	if ident == "" {
		return "name is empty"
	}
	for i, r := range ident {
		switch {
		case i == 0 && !unicode.IsLetter(r):
			return "name must start with a letter"
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-':
		default:
			return fmt.Sprintf("name contains invalid character %q", r)
		}
	}
	if ident == helpFlag {
		return "name \"help\" is reserved for the built-in help flag"
	}
	return ""
}

// validateShort checks a shorthand: empty, or a single ASCII letter other
// than the reserved "h".
func validateShort(short string) string {
	if short == "" {
		return ""
	}
	if len(short) != 1 || !isASCIILetter(rune(short[0])) {
		return fmt.Sprintf("shorthand %q must be a single ASCII letter", short)
	}
	if short == helpShorthand {
		return "shorthand \"h\" is reserved for the built-in help flag"
	}
	return ""
}

// validateDefault checks that a declared default matches the value type.
// A nil default is accepted for every type.
func validateDefault(p Param) string {
	if !p.HasDefault || p.Default == nil {
		return ""
	}
	var ok bool
	switch p.Type {
	case TypeRaw, TypeString:
		_, ok = p.Default.(string)
	case TypeBool:
		_, ok = p.Default.(bool)
	case TypeInt:
		_, ok = p.Default.(int)
	case TypeFloat:
		_, ok = p.Default.(float64)
	case TypeDuration:
		_, ok = p.Default.(time.Duration)
	case TypeCustom:
		ok = true
	}
	if !ok {
		return fmt.Sprintf("default %v (%T) does not match type %s", p.Default, p.Default, typeLabel(p.Type))
	}
	return ""
}

func typeLabel(t ValueType) string {
	if t == TypeRaw {
		return "raw string"
	}
	return string(t)
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
