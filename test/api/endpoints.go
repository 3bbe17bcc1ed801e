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
	"net/url"
	"strconv"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// User management endpoints.
func (e *Endpoints) ListUsers(page int) string {
	query := url.Values{
		"page": []string{strconv.Itoa(page)},
	}

	return "/api/users?" + query.Encode()
}

func (e *Endpoints) GetUser(userID string) string {
	return fmt.Sprintf("/api/users/%s", url.PathEscape(userID))
}

func (e *Endpoints) CreateUser() string {
	return "/api/users"
}

func (e *Endpoints) UpdateUser(userID string) string {
	return fmt.Sprintf("/api/users/%s", url.PathEscape(userID))
}

func (e *Endpoints) DeleteUser(userID string) string {
	return fmt.Sprintf("/api/users/%s", url.PathEscape(userID))
}

// Authentication endpoints.
func (e *Endpoints) Login() string {
	return "/api/login"
}
