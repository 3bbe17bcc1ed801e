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
	"fmt"
	"strings"

	"github.com/google/uuid"

	"k8s.io/utils/ptr"

	"github.com/nscale/reqres-api-tests/pkg/reqres"
)

const (
	// DefaultLoginEmail is the account reqres.in documents for login examples.
	DefaultLoginEmail = "eve.holt@reqres.in"

	//nolint:gosec // published example credential, not a secret
	DefaultLoginPassword = "cityslicka"
)

func generateRandomName(prefix string) string {
	id, _, _ := strings.Cut(uuid.NewString(), "-") // 8 hex characters

	return fmt.Sprintf("%s-%s", prefix, id)
}

// UserPayloadBuilder builds user create and update payloads for testing.
type UserPayloadBuilder struct {
	payload reqres.UserRequest
}

// NewUserPayload creates a new user payload builder with a unique name.
func NewUserPayload() *UserPayloadBuilder {
	return &UserPayloadBuilder{
		payload: reqres.UserRequest{
			Name: generateRandomName("testautomation"),
			Job:  "qa-automation",
		},
	}
}

// WithName sets the user name.
func (b *UserPayloadBuilder) WithName(name string) *UserPayloadBuilder {
	b.payload.Name = name
	return b
}

// WithJob sets the user job.
func (b *UserPayloadBuilder) WithJob(job string) *UserPayloadBuilder {
	b.payload.Job = job
	return b
}

// Build returns the completed user payload.
func (b *UserPayloadBuilder) Build() reqres.UserRequest {
	return b.payload
}

// LoginPayloadBuilder builds login payloads for testing.
type LoginPayloadBuilder struct {
	payload reqres.LoginRequest
}

// NewLoginPayload creates a login payload builder with working credentials.
func NewLoginPayload() *LoginPayloadBuilder {
	return &LoginPayloadBuilder{
		payload: reqres.LoginRequest{
			Email:    DefaultLoginEmail,
			Password: ptr.To(DefaultLoginPassword),
		},
	}
}

// WithEmail sets the email address.
func (b *LoginPayloadBuilder) WithEmail(email string) *LoginPayloadBuilder {
	b.payload.Email = email
	return b
}

// WithPassword sets the password.
func (b *LoginPayloadBuilder) WithPassword(password string) *LoginPayloadBuilder {
	b.payload.Password = ptr.To(password)
	return b
}

// WithoutPassword omits the password field from the request entirely.
func (b *LoginPayloadBuilder) WithoutPassword() *LoginPayloadBuilder {
	b.payload.Password = nil
	return b
}

// Build returns the completed login payload.
func (b *LoginPayloadBuilder) Build() reqres.LoginRequest {
	return b.payload
}
