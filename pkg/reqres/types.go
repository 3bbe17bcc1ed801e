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

// Package reqres describes the request and response bodies of the reqres.in
// users API, along with schemas for validating raw responses.
package reqres

// User is a single user record.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// Support is the advertising block attached to read responses.
type Support struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// UserList is a page of users.
type UserList struct {
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Data       []User  `json:"data"`
	Support    Support `json:"support"`
}

// SingleUser wraps a user returned by id.
type SingleUser struct {
	Data    User    `json:"data"`
	Support Support `json:"support"`
}

// UserRequest is the body used to create or update a user.
type UserRequest struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// CreatedUser echoes a UserRequest with a server assigned id.
// The id is typed loosely as the service has returned it as both a string
// and a number.
type CreatedUser struct {
	ID        any    `json:"id"`
	Name      string `json:"name"`
	Job       string `json:"job"`
	CreatedAt string `json:"createdAt"`
}

// UpdatedUser echoes a UserRequest.
type UpdatedUser struct {
	Name      string `json:"name"`
	Job       string `json:"job"`
	UpdatedAt string `json:"updatedAt"`
}

// LoginRequest is the body for a login attempt.  Password is a pointer so
// that a request can omit it entirely.
type LoginRequest struct {
	Email    string  `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the body of a rejected request.
type ErrorResponse struct {
	Error string `json:"error"`
}
