/*
Copyright 2024-2025 the Unikorn Authors.
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

package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"

	"github.com/nscale/reqres-api-tests/pkg/schema"
)

type schemaMatcher struct {
	schema *schema.Schema
	err    *schema.SchemaError
}

// MatchSchema succeeds if the actual value conforms to the schema.  Actual
// may be decoded JSON or raw JSON bytes.
func MatchSchema(s *schema.Schema) types.GomegaMatcher {
	return &schemaMatcher{
		schema: s,
	}
}

func (m *schemaMatcher) Match(actual any) (bool, error) {
	var err error

	switch t := actual.(type) {
	case []byte:
		err = schema.ValidateJSON(t, m.schema)
	case json.RawMessage:
		err = schema.ValidateJSON(t, m.schema)
	default:
		err = m.schema.Validate(actual)
	}

	if err == nil {
		m.err = nil
		return true, nil
	}

	if errors.As(err, &m.err) {
		return false, nil
	}

	return false, fmt.Errorf("MatchSchema: %w", err)
}

func (m *schemaMatcher) FailureMessage(actual any) string {
	return format.Message(actual, "to match schema") + "\n" + m.err.Error()
}

func (m *schemaMatcher) NegatedFailureMessage(actual any) string {
	return format.Message(actual, "not to match schema")
}
