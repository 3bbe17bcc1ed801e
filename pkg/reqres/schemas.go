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

package reqres

import (
	"slices"

	"github.com/nscale/reqres-api-tests/pkg/schema"
)

//nolint:gochecknoglobals
var (
	userSchema = schema.Object(map[string]*schema.Schema{
		"id":         schema.Number(),
		"email":      schema.String(),
		"first_name": schema.String(),
		"last_name":  schema.String(),
		"avatar":     schema.String(),
	}, "id", "email", "first_name", "last_name", "avatar")

	supportSchema = schema.Object(map[string]*schema.Schema{
		"url":  schema.String(),
		"text": schema.String(),
	}, "url", "text")

	userListSchema = schema.MustCheck(schema.Object(map[string]*schema.Schema{
		"page":        schema.Number(),
		"per_page":    schema.Number(),
		"total":       schema.Number(),
		"total_pages": schema.Number(),
		"data":        schema.Array(userSchema),
		"support":     supportSchema,
	}, "page", "per_page", "total", "total_pages", "data", "support"))

	singleUserSchema = schema.MustCheck(schema.Object(map[string]*schema.Schema{
		"data":    userSchema,
		"support": supportSchema,
	}, "data", "support"))

	// The id has no stable type, see CreatedUser, so its presence is
	// asserted by callers rather than here.
	createdUserSchema = schema.MustCheck(schema.Object(map[string]*schema.Schema{
		"name":      schema.String(),
		"job":       schema.String(),
		"createdAt": schema.String(),
	}, "name", "job"))

	updatedUserSchema = schema.MustCheck(schema.Object(map[string]*schema.Schema{
		"name":      schema.String(),
		"job":       schema.String(),
		"updatedAt": schema.String(),
	}, "name", "job"))

	errorSchema = schema.MustCheck(schema.Object(map[string]*schema.Schema{
		"error": schema.String(),
	}, "error"))

	schemas = map[string]*schema.Schema{
		"users":        userListSchema,
		"user":         singleUserSchema,
		"created-user": createdUserSchema,
		"updated-user": updatedUserSchema,
		"error":        errorSchema,
	}
)

// UserListSchema describes the body of GET /api/users.
func UserListSchema() *schema.Schema {
	return userListSchema.Clone()
}

// SingleUserSchema describes the body of GET /api/users/{id}.
func SingleUserSchema() *schema.Schema {
	return singleUserSchema.Clone()
}

// CreatedUserSchema describes the body of POST /api/users.
func CreatedUserSchema() *schema.Schema {
	return createdUserSchema.Clone()
}

// UpdatedUserSchema describes the body of PUT /api/users/{id}.
func UpdatedUserSchema() *schema.Schema {
	return updatedUserSchema.Clone()
}

// ErrorSchema describes the body of a rejected request.
func ErrorSchema() *schema.Schema {
	return errorSchema.Clone()
}

// LookupSchema returns a named schema.  Like the accessors above, it hands
// out a copy so the canonical definitions stay read-only.
func LookupSchema(name string) (*schema.Schema, bool) {
	s, ok := schemas[name]
	if !ok {
		return nil, false
	}

	return s.Clone(), true
}

// SchemaNames lists the names accepted by LookupSchema.
func SchemaNames() []string {
	names := make([]string, 0, len(schemas))

	for name := range schemas {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
