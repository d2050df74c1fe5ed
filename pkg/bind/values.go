// SPDX-License-Identifier: MPL-2.0

package bind

import (
	"maps"
	"slices"
	"time"
)

// Values maps parameter names to coerced values. Accessors return the zero
// value when a key is absent or holds a different type.
type Values map[string]any

// Get returns the raw value for name.
func (v Values) Get(name string) (any, bool) {
	val, ok := v[name]
	return val, ok
}

// Has reports whether name is present, including present-but-nil values.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// String returns the string value for name.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Bool returns the boolean value for name.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Int returns the integer value for name.
func (v Values) Int(name string) int {
	i, _ := v[name].(int)
	return i
}

// Float returns the float64 value for name.
func (v Values) Float(name string) float64 {
	f, _ := v[name].(float64)
	return f
}

// Duration returns the duration value for name.
func (v Values) Duration(name string) time.Duration {
	d, _ := v[name].(time.Duration)
	return d
}

// Keys returns the parameter names in sorted order.
func (v Values) Keys() []string {
	return slices.Sorted(maps.Keys(v))
}

// subset returns the entries of v whose keys satisfy keep.
func (v Values) subset(keep func(string) bool) Values {
	out := make(Values)
	for k, val := range v {
		if keep(k) {
			out[k] = val
		}
	}
	return out
}
