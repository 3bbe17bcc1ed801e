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
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is wrapped by a SchemaError when a value has the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrMissingRequired is wrapped by a SchemaError when a required property is absent.
	ErrMissingRequired = errors.New("missing required property")
)

// SchemaError reports the first point at which a value failed to conform to
// a schema.
//
//nolint:errname
type SchemaError struct {
	// Path locates the offending value, or for a missing property its parent object.
	Path Path
	// Expected is the type the schema declares at Path.
	Expected Type
	// Actual is the kind of value found at Path.
	Actual Kind
	// Property names the absent property when Err is ErrMissingRequired.
	Property string
	// Err is ErrTypeMismatch or ErrMissingRequired.
	Err error
}

func (e *SchemaError) Error() string {
	if errors.Is(e.Err, ErrMissingRequired) {
		return fmt.Sprintf("schema error at %s: missing required property %q", e.Path, e.Property)
	}

	return fmt.Sprintf("schema error at %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

func typeMismatch(path Path, expected Type, value any) *SchemaError {
	return &SchemaError{
		Path:     path,
		Expected: expected,
		Actual:   KindOf(value),
		Err:      ErrTypeMismatch,
	}
}

func missingRequired(path Path, property string) *SchemaError {
	return &SchemaError{
		Path:     path,
		Expected: TypeObject,
		Actual:   KindObject,
		Property: property,
		Err:      ErrMissingRequired,
	}
}
