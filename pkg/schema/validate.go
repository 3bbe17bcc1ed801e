/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
)

// Validate checks value against the schema. It returns nil when the value
// conforms and a *SchemaError describing the first mismatch otherwise.
func (s *Schema) Validate(value any) error {
	return validate(value, s, nil)
}

// Validate checks value against s, see Schema.Validate.
func Validate(value any, s *Schema) error {
	return s.Validate(value)
}

// ValidateJSON decodes data and checks the result against s.  Malformed
// input yields a decode error rather than a *SchemaError.
func ValidateJSON(data []byte, s *Schema) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var value any

	if err := decoder.Decode(&value); err != nil {
		return fmt.Errorf("decoding json: %w", err)
	}

	// Anything other than EOF is trailing data, including a stray closing
	// delimiter that More would not report.
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding json: unexpected data after top-level value")
	}

	return s.Validate(value)
}

//nolint:cyclop
func validate(value any, s *Schema, path Path) error {
	if s == nil {
		return fmt.Errorf("%w: %s: schema is nil", ErrInvalidSchema, path)
	}

	kind := KindOf(value)

	switch s.Type {
	case TypeObject:
		object, ok := value.(map[string]any)
		if !ok {
			return typeMismatch(path, s.Type, value)
		}

		for _, name := range s.Required {
			if _, ok := object[name]; !ok {
				return missingRequired(path, name)
			}
		}

		for _, name := range slices.Sorted(maps.Keys(s.Properties)) {
			v, ok := object[name]
			if !ok {
				continue
			}

			if err := validate(v, s.Properties[name], path.Key(name)); err != nil {
				return err
			}
		}
	case TypeArray:
		items, ok := value.([]any)
		if !ok {
			return typeMismatch(path, s.Type, value)
		}

		for i, item := range items {
			if err := validate(item, s.Items, path.Index(i)); err != nil {
				return err
			}
		}
	case TypeString:
		if kind != KindString {
			return typeMismatch(path, s.Type, value)
		}
	case TypeNumber:
		if kind != KindNumber {
			return typeMismatch(path, s.Type, value)
		}
	case TypeInteger:
		if kind != KindNumber || !isIntegral(value) {
			return typeMismatch(path, s.Type, value)
		}
	case TypeBoolean:
		if kind != KindBoolean {
			return typeMismatch(path, s.Type, value)
		}
	default:
		return fmt.Errorf("%w: %s: unknown type %q", ErrInvalidSchema, path, s.Type)
	}

	return nil
}
