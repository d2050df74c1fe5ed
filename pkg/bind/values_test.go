// SPDX-License-Identifier: MPL-2.0

package bind

import (
	"slices"
	"testing"
	"time"
)

func TestValues_Accessors(t *testing.T) {
	t.Parallel()

	v := Values{
		"name":    "gopher",
		"verbose": true,
		"count":   3,
		"ratio":   0.25,
		"timeout": 2 * time.Second,
		"label":   nil,
	}

	if got := v.String("name"); got != "gopher" {
		t.Errorf("String(name) = %q", got)
	}
	if !v.Bool("verbose") {
		t.Error("Bool(verbose) = false, want true")
	}
	if got := v.Int("count"); got != 3 {
		t.Errorf("Int(count) = %d", got)
	}
	if got := v.Float("ratio"); got != 0.25 {
		t.Errorf("Float(ratio) = %v", got)
	}
	if got := v.Duration("timeout"); got != 2*time.Second {
		t.Errorf("Duration(timeout) = %v", got)
	}

	// Wrong type or absent key yields the zero value.
	if got := v.Int("name"); got != 0 {
		t.Errorf("Int(name) = %d, want 0", got)
	}
	if got := v.String("missing"); got != "" {
		t.Errorf("String(missing) = %q, want empty", got)
	}

	if !v.Has("label") {
		t.Error("Has(label) = false for present nil value")
	}
	if val, ok := v.Get("label"); !ok || val != nil {
		t.Errorf("Get(label) = %v, %v; want nil, true", val, ok)
	}
	if v.Has("missing") {
		t.Error("Has(missing) = true")
	}
}

func TestValues_Keys(t *testing.T) {
	t.Parallel()

	v := Values{"two": 2, "one": 1, "verbose": false}
	want := []string{"one", "two", "verbose"}
	if got := v.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestValues_Subset(t *testing.T) {
	t.Parallel()

	v := Values{"verbose": true, "one": 5, "two": 7}
	keep := map[string]bool{"one": true, "two": true}

	got := v.subset(func(k string) bool { return keep[k] })
	if len(got) != 2 || got.Int("one") != 5 || got.Int("two") != 7 {
		t.Errorf("subset() = %v, want one and two", got)
	}
	if got.Has("verbose") {
		t.Error("subset() kept verbose")
	}
	if !v.Has("verbose") {
		t.Error("subset() mutated the receiver")
	}
}
