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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/nscale/reqres-api-tests/pkg/reqres"
)

const (
	// APIKeyHeader carries the project key reqres.in expects on every request.
	APIKeyHeader = "X-Api-Key"

	traceState = "test-automation=ginkgo"
)

type APIClient struct {
	baseURL    string
	client     *http.Client
	apiKey     string
	config     *TestConfig
	endpoints  *Endpoints
	propagator propagation.TextMapPropagator
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	return &APIClient{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		apiKey:     config.APIKey,
		config:     config,
		endpoints:  NewEndpoints(),
		propagator: propagation.TraceContext{},
	}
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceID string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s trace=%s error=%v\n", method, path, context, duration, traceID, err)
	c.logTraceContext(traceID)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceID string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s trace=%s\n", method, path, expectedStatus, actualStatus, body, traceID)
	c.logTraceContext(traceID)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceID string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", traceID)
}

// newTraceContext attaches a fresh sampled span context to the request context.
// Every request gets its own trace ID so a failure can be correlated with
// whatever the remote side recorded.
func newTraceContext(ctx context.Context) (context.Context, trace.SpanContext) {
	var (
		traceID trace.TraceID
		spanID  trace.SpanID
	)

	_, _ = rand.Read(traceID[:])
	_, _ = rand.Read(spanID[:])

	state, _ := trace.ParseTraceState(traceState)

	spanContext := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
		TraceState: state,
	})

	return trace.ContextWithSpanContext(ctx, spanContext), spanContext
}

//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, payload any, expectedStatus int) (*http.Response, []byte, error) {
	fullURL := c.baseURL + path

	var body io.Reader

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("marshaling request body: %w", err)
		}

		body = bytes.NewReader(data)
	}

	ctx, spanContext := newTraceContext(ctx)
	traceID := spanContext.TraceID().String()

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceID, err, "http request failed")
		return nil, nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, path, duration, traceID, err, fmt.Sprintf("reading response body status=%d", resp.StatusCode))
		return resp, nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s trace=%s\n", method, path, resp.StatusCode, duration, traceID)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	if expectedStatus > 0 && resp.StatusCode != expectedStatus {
		c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody), traceID)

		return resp, respBody, &UnexpectedStatusError{
			Method:     method,
			Path:       path,
			Expected:   expectedStatus,
			StatusCode: resp.StatusCode,
			Body:       respBody,
			TraceID:    traceID,
		}
	}

	return resp, respBody, nil
}

// decodeResponse unmarshals a response body into a typed value.
func decodeResponse[T any](respBody []byte, resourceType string) (*T, error) {
	var out T

	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("unmarshaling %s response: %w", resourceType, err)
	}

	return &out, nil
}

// ListUsers returns a page of users.
func (c *APIClient) ListUsers(ctx context.Context, page int) (*reqres.UserList, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, c.endpoints.ListUsers(page), nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return decodeResponse[reqres.UserList](respBody, "user list")
}

// ListUsersPayload returns a page of users as generic decoded JSON, suitable
// for schema validation.
func (c *APIClient) ListUsersPayload(ctx context.Context, page int) (any, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, c.endpoints.ListUsers(page), nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var payload any
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, fmt.Errorf("unmarshaling user list response: %w", err)
	}

	return payload, nil
}

// GetUser retrieves a specific user.
func (c *APIClient) GetUser(ctx context.Context, userID string) (*reqres.SingleUser, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, c.endpoints.GetUser(userID), nil, http.StatusOK)
	if err != nil {
		if StatusCode(err) == http.StatusNotFound {
			return nil, fmt.Errorf("user '%s' not found: %w", userID, err)
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return decodeResponse[reqres.SingleUser](respBody, "user")
}

// CreateUser creates a new user.
func (c *APIClient) CreateUser(ctx context.Context, body reqres.UserRequest) (*reqres.CreatedUser, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CreateUser(), body, http.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return decodeResponse[reqres.CreatedUser](respBody, "created user")
}

// UpdateUser replaces a user's name and job.
func (c *APIClient) UpdateUser(ctx context.Context, userID string, body reqres.UserRequest) (*reqres.UpdatedUser, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPut, c.endpoints.UpdateUser(userID), body, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return decodeResponse[reqres.UpdatedUser](respBody, "updated user")
}

func (c *APIClient) DeleteUser(ctx context.Context, userID string) error {
	//nolint:bodyclose // response body is closed in doRequest
	_, _, err := c.doRequest(ctx, http.MethodDelete, c.endpoints.DeleteUser(userID), nil, http.StatusNoContent)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}

// Login attempts to log in.  A rejected attempt is reported as an
// *UnexpectedStatusError carrying the error body.
func (c *APIClient) Login(ctx context.Context, body reqres.LoginRequest) (*reqres.LoginResponse, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPost, c.endpoints.Login(), body, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	return decodeResponse[reqres.LoginResponse](respBody, "login")
}
