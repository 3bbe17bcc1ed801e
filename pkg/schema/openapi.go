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
	"fmt"
	"maps"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
)

// FromOpenAPI converts an OpenAPI 3 schema into a Schema.  Only the subset
// this package understands is accepted: a single type per node, and
// resolved property and item references.
func FromOpenAPI(in *openapi3.Schema) (*Schema, error) {
	s, err := fromOpenAPI(in, nil)
	if err != nil {
		return nil, err
	}

	if err := s.Check(); err != nil {
		return nil, err
	}

	return s, nil
}

//nolint:cyclop
func fromOpenAPI(in *openapi3.Schema, path Path) (*Schema, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: %s: openapi schema is nil", ErrInvalidSchema, path)
	}

	if in.Type == nil || len(*in.Type) != 1 {
		return nil, fmt.Errorf("%w: %s: openapi schema must declare exactly one type", ErrInvalidSchema, path)
	}

	out := &Schema{
		Type: Type((*in.Type)[0]),
	}

	switch out.Type {
	case TypeObject:
		out.Properties = make(map[string]*Schema, len(in.Properties))
		out.Required = slices.Clone(in.Required)

		for _, name := range slices.Sorted(maps.Keys(in.Properties)) {
			ref := in.Properties[name]
			if ref == nil || ref.Value == nil {
				return nil, fmt.Errorf("%w: %s: property %q is unresolved", ErrInvalidSchema, path, name)
			}

			property, err := fromOpenAPI(ref.Value, path.Key(name))
			if err != nil {
				return nil, err
			}

			out.Properties[name] = property
		}
	case TypeArray:
		if in.Items == nil || in.Items.Value == nil {
			return nil, fmt.Errorf("%w: %s: array items are unresolved", ErrInvalidSchema, path)
		}

		items, err := fromOpenAPI(in.Items.Value, path.Items())
		if err != nil {
			return nil, err
		}

		out.Items = items
	case TypeString, TypeNumber, TypeInteger, TypeBoolean:
	default:
		return nil, fmt.Errorf("%w: %s: unsupported openapi type %q", ErrInvalidSchema, path, out.Type)
	}

	return out, nil
}

// ToOpenAPI converts the schema into its OpenAPI 3 equivalent.
func (s *Schema) ToOpenAPI() *openapi3.Schema {
	switch s.Type {
	case TypeObject:
		out := openapi3.NewObjectSchema()

		for name, property := range s.Properties {
			out.WithProperty(name, property.ToOpenAPI())
		}

		out.Required = slices.Clone(s.Required)

		return out
	case TypeArray:
		return openapi3.NewArraySchema().WithItems(s.Items.ToOpenAPI())
	case TypeString:
		return openapi3.NewStringSchema()
	case TypeNumber:
		return openapi3.NewFloat64Schema()
	case TypeInteger:
		return openapi3.NewIntegerSchema()
	case TypeBoolean:
		return openapi3.NewBoolSchema()
	}

	return openapi3.NewSchema()
}
