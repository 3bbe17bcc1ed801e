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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gstruct"

	"github.com/nscale/reqres-api-tests/pkg/reqres"
)

// ExpectStatusError asserts err carries the given HTTP status and returns it
// for further inspection of the response body.
func ExpectStatusError(err error, statusCode int) *UnexpectedStatusError {
	GinkgoHelper()

	Expect(err).To(HaveOccurred(), "Expected HTTP %d but the request succeeded", statusCode)

	var statusErr *UnexpectedStatusError

	Expect(errors.As(err, &statusErr)).To(BeTrue(), "Expected an unexpected status error, got: %v", err)
	Expect(statusErr.StatusCode).To(Equal(statusCode), "Unexpected status code, trace ID: %s", statusErr.TraceID)

	return statusErr
}

// VerifyUserEcho verifies the service echoed the request fields back.
func VerifyUserEcho(name, job string, payload reqres.UserRequest) {
	GinkgoHelper()

	Expect(name).To(Equal(payload.Name))
	Expect(job).To(Equal(payload.Job))
}

// VerifyCreatedUser verifies a create response: echoed fields and an assigned id.
func VerifyCreatedUser(created *reqres.CreatedUser, payload reqres.UserRequest) {
	GinkgoHelper()

	Expect(created).NotTo(BeNil())
	Expect(created.ID).NotTo(BeNil(), "Created user should be assigned an id")
	VerifyUserEcho(created.Name, created.Job, payload)
}

// VerifyUserRecords verifies every raw user record carries exactly the
// documented fields with the documented types.
func VerifyUserRecords(payload any) {
	GinkgoHelper()

	Expect(payload).To(HaveKey("data"))

	users, ok := payload.(map[string]any)["data"].([]any)
	Expect(ok).To(BeTrue(), "Expected data to be an array")
	Expect(users).NotTo(BeEmpty())

	for _, user := range users {
		Expect(user).To(gstruct.MatchAllKeys(gstruct.Keys{
			"id":         BeNumerically(">", 0),
			"email":      And(BeAssignableToTypeOf(""), ContainSubstring("@")),
			"first_name": BeAssignableToTypeOf(""),
			"last_name":  BeAssignableToTypeOf(""),
			"avatar":     BeAssignableToTypeOf(""),
		}))
	}

	GinkgoWriter.Printf("Verified %d user records\n", len(users))
}
