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

// Package schema validates decoded JSON values against a small declarative
// shape description: objects with typed properties and required fields,
// arrays with a single item schema, and primitive type tags.
package schema

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/spjmurray/go-util/pkg/set"
)

// Type is the type tag of a schema node.
type Type string

const (
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
)

var (
	// ErrInvalidSchema is raised when a schema violates its own structural rules.
	ErrInvalidSchema = errors.New("invalid schema")
)

// Schema describes the expected shape of a JSON value.
// Schemas are built once and never modified afterwards.  Code that hands a
// shared schema to callers returns a Clone.
type Schema struct {
	// Type is the type tag, always set.
	Type Type `json:"type"`
	// Properties maps object field names to their schemas.
	Properties map[string]*Schema `json:"properties,omitempty"`
	// Required lists object field names that must be present.
	// Every entry must also be declared in Properties.
	Required []string `json:"required,omitempty"`
	// Items is the schema applied to every array element.
	Items *Schema `json:"items,omitempty"`
}

// Object returns an object schema.
func Object(properties map[string]*Schema, required ...string) *Schema {
	return &Schema{
		Type:       TypeObject,
		Properties: properties,
		Required:   required,
	}
}

// Array returns an array schema whose elements must match items.
func Array(items *Schema) *Schema {
	return &Schema{
		Type:  TypeArray,
		Items: items,
	}
}

func String() *Schema {
	return &Schema{Type: TypeString}
}

func Number() *Schema {
	return &Schema{Type: TypeNumber}
}

func Integer() *Schema {
	return &Schema{Type: TypeInteger}
}

func Boolean() *Schema {
	return &Schema{Type: TypeBoolean}
}

// Clone returns a deep copy of the schema.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}

	out := &Schema{
		Type:     s.Type,
		Required: slices.Clone(s.Required),
		Items:    s.Items.Clone(),
	}

	if s.Properties != nil {
		out.Properties = make(map[string]*Schema, len(s.Properties))

		for name, property := range s.Properties {
			out.Properties[name] = property.Clone()
		}
	}

	return out
}

// MustCheck returns the schema if it is well formed and panics otherwise.
// It is intended for package level schema definitions.
func MustCheck(s *Schema) *Schema {
	if err := s.Check(); err != nil {
		panic(err)
	}

	return s
}

// Check verifies the schema is well formed: type tags are known, arrays have
// an item schema, primitives carry no nested schemas, and every required
// property is declared.
func (s *Schema) Check() error {
	return s.check(nil)
}

//nolint:cyclop
func (s *Schema) check(path Path) error {
	if s == nil {
		return fmt.Errorf("%w: %s: schema is nil", ErrInvalidSchema, path)
	}

	switch s.Type {
	case TypeObject:
		if s.Items != nil {
			return fmt.Errorf("%w: %s: object schema declares items", ErrInvalidSchema, path)
		}

		declared := set.New[string](slices.Collect(maps.Keys(s.Properties))...)
		required := set.New[string](s.Required...)

		var undeclared []string

		for name := range required.Difference(declared).All() {
			undeclared = append(undeclared, name)
		}

		if len(undeclared) > 0 {
			slices.Sort(undeclared)

			return fmt.Errorf("%w: %s: required properties %q are not declared", ErrInvalidSchema, path, undeclared)
		}

		for _, name := range slices.Sorted(maps.Keys(s.Properties)) {
			if err := s.Properties[name].check(path.Key(name)); err != nil {
				return err
			}
		}
	case TypeArray:
		if len(s.Properties) != 0 || len(s.Required) != 0 {
			return fmt.Errorf("%w: %s: array schema declares properties", ErrInvalidSchema, path)
		}

		if s.Items == nil {
			return fmt.Errorf("%w: %s: array schema has no items", ErrInvalidSchema, path)
		}

		return s.Items.check(path.Items())
	case TypeString, TypeNumber, TypeInteger, TypeBoolean:
		if len(s.Properties) != 0 || len(s.Required) != 0 || s.Items != nil {
			return fmt.Errorf("%w: %s: %s schema declares nested schemas", ErrInvalidSchema, path, s.Type)
		}
	default:
		return fmt.Errorf("%w: %s: unknown type %q", ErrInvalidSchema, path, s.Type)
	}

	return nil
}
