// SPDX-License-Identifier: MPL-2.0

package bind

import (
	"fmt"
)

const (
	// StrategyRaw takes the next token verbatim.
	StrategyRaw Strategy = iota
	// StrategyPresence consumes no value token: presence yields true.
	StrategyPresence
	// StrategyTyped parses the next token with the type's conversion rule.
	StrategyTyped
)

type (
	// Strategy is the coercion rule applied to one parameter.
	Strategy int

	// Coercion is the resolved, cached binding rule for one parameter.
	Coercion struct {
		Strategy Strategy
		Type     ValueType
		// Parse is set for TypeCustom parameters only; built-in types are
		// converted by pflag's typed flags.
		Parse    ParseFunc
		Required bool
		Default  any
	}

	// customValue adapts a ParseFunc to pflag.Value.
	customValue struct {
		parse ParseFunc
		raw   string
		value any
	}
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyRaw:
		return "raw"
	case StrategyPresence:
		return "presence"
	case StrategyTyped:
		return "typed"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Resolve maps a parameter to its coercion strategy. Unbindable kinds are
// rejected first, in declaration-kind order, before any type is considered.
func Resolve(p Param) (Coercion, error) {
	switch p.Kind {
	case KindPlain, KindKeywordOnly:
	case KindPositionalOnly, KindVariadicPositional, KindVariadicKeyword:
		return Coercion{}, &UnsupportedParameterKindError{Param: p.Name, Kind: p.Kind}
	default:
		return Coercion{}, &InvalidParameterError{Param: p.Name, Reason: fmt.Sprintf("unknown parameter kind %s", p.Kind)}
	}

	if ok, errs := p.Type.IsValid(); !ok {
		return Coercion{}, &InvalidParameterError{Param: p.Name, Reason: errs[0].Error()}
	}
	if p.Type == TypeCustom && p.Parse == nil {
		return Coercion{}, &InvalidParameterError{Param: p.Name, Reason: "custom type requires a parse function"}
	}
	if reason := validateDefault(p); reason != "" {
		return Coercion{}, &InvalidParameterError{Param: p.Name, Reason: reason}
	}

	c := Coercion{Type: p.Type, Default: p.Default}
	switch p.Type {
	case TypeBool:
		c.Strategy = StrategyPresence
		if !p.HasDefault || p.Default == nil {
			c.Default = false
		}
		return c, nil
	case TypeRaw:
		c.Strategy = StrategyRaw
	default:
		c.Strategy = StrategyTyped
		c.Parse = p.Parse
	}
	c.Required = !p.HasDefault
	return c, nil
}

func newCustomValue(parse ParseFunc, def any) *customValue {
	v := &customValue{parse: parse, value: def}
	if def != nil {
		v.raw = fmt.Sprint(def)
	}
	return v
}

func (v *customValue) String() string { return v.raw }

func (v *customValue) Set(raw string) error {
	parsed, err := v.parse(raw)
	if err != nil {
		return err
	}
	v.raw = raw
	v.value = parsed
	return nil
}

func (v *customValue) Type() string { return "value" }
