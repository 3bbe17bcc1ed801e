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
	"encoding/json"
	"math"
)

// Kind classifies a decoded JSON value.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindInvalid:
	}

	return "invalid"
}

// KindOf returns the kind of a value as produced by encoding/json when
// decoding into an interface, with or without UseNumber.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBoolean
	case float64, float32, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	}

	return KindInvalid
}

// isIntegral reports whether a numeric value has no fractional part.
func isIntegral(v any) bool {
	switch t := v.(type) {
	case float64:
		return !math.IsInf(t, 0) && t == math.Trunc(t)
	case float32:
		return isIntegral(float64(t))
	case json.Number:
		if _, err := t.Int64(); err == nil {
			return true
		}

		f, err := t.Float64()
		if err != nil {
			return false
		}

		return isIntegral(f)
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	}

	return false
}
