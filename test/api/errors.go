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
)

// UnexpectedStatusError is returned when the service answers with a status
// code other than the one the operation expects.
//
//nolint:errname
type UnexpectedStatusError struct {
	Method     string
	Path       string
	Expected   int
	StatusCode int
	Body       []byte
	TraceID    string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status code: expected %d, got %d, body: %s (trace ID: %s)", e.Expected, e.StatusCode, string(e.Body), e.TraceID)
}

// DecodeBody unmarshals the response body into out.
func (e *UnexpectedStatusError) DecodeBody(out any) error {
	if err := json.Unmarshal(e.Body, out); err != nil {
		return fmt.Errorf("unmarshaling error response: %w", err)
	}

	return nil
}

// StatusCode returns the HTTP status code carried by err, or zero when err
// does not wrap an *UnexpectedStatusError.
func StatusCode(err error) int {
	var statusErr *UnexpectedStatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}

	return 0
}
