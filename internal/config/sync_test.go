// SPDX-License-Identifier: MPL-2.0

package config

import (
	"reflect"
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// These tests keep the Go struct JSON tags and the CUE schema field names in
// step, so a renamed field cannot silently stop being decoded.

func schemaFields(t *testing.T, def string) map[string]bool {
	t.Helper()

	schema := cuecontext.New().CompileString(configSchema)
	if schema.Err() != nil {
		t.Fatalf("failed to compile CUE schema: %v", schema.Err())
	}
	val := schema.LookupPath(cue.ParsePath(def))
	if val.Err() != nil {
		t.Fatalf("failed to lookup CUE definition %s: %v", def, val.Err())
	}

	iter, err := val.Fields(cue.Definitions(false), cue.Optional(true))
	if err != nil {
		t.Fatalf("failed to iterate CUE fields: %v", err)
	}
	fields := make(map[string]bool)
	for iter.Next() {
		fields[strings.TrimSuffix(iter.Selector().String(), "?")] = true
	}
	return fields
}

func jsonTags(typ reflect.Type) map[string]bool {
	fields := make(map[string]bool)
	for i := range typ.NumField() {
		name, _, _ := strings.Cut(typ.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			fields[name] = true
		}
	}
	return fields
}

func TestSchemaSync(t *testing.T) {
	t.Parallel()

	tests := []struct {
		def string
		typ reflect.Type
	}{
		{"#Config", reflect.TypeFor[Config]()},
		{"#UIConfig", reflect.TypeFor[UIConfig]()},
		{"#LogConfig", reflect.TypeFor[LogConfig]()},
	}

	for _, tt := range tests {
		t.Run(tt.def, func(t *testing.T) {
			t.Parallel()

			cueFields := schemaFields(t, tt.def)
			goFields := jsonTags(tt.typ)
			for f := range cueFields {
				if !goFields[f] {
					t.Errorf("[%s] CUE field %q not found in Go struct", tt.def, f)
				}
			}
			for f := range goFields {
				if !cueFields[f] {
					t.Errorf("[%s] Go JSON tag %q not found in CUE schema", tt.def, f)
				}
			}
		})
	}
}
