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

// Package api provides integration test utilities for the reqres.in users API.
//
// # Separate Client Implementation
//
// The APIClient is written against the documented behaviour of the service
// rather than generated from a description of it, so each suite asserts on
// exactly what the service returns.  It provides:
//   - W3C trace context propagation for request correlation
//   - Detailed error logging with trace IDs for debugging
//   - Direct access to HTTP status codes and response bodies via
//     UnexpectedStatusError
//
// Response shapes are checked with the MatchSchema matcher, backed by the
// schemas in pkg/reqres.
//
// # Configuration
//
// Configuration is read from the environment, optionally seeded from
// test/.env.  See LoadTestConfig for the supported variables.
package api
