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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gstruct"

	"github.com/nscale/reqres-api-tests/pkg/reqres"
	"github.com/nscale/reqres-api-tests/test/api"
)

var _ = Describe("Security and Authentication", func() {
	Context("When logging in", func() {
		Describe("Given a request without a password", func() {
			It("should reject the login with an error message", func() {
				_, err := client.Login(ctx, api.NewLoginPayload().
					WithEmail("test@test").
					WithoutPassword().
					Build())

				statusErr := api.ExpectStatusError(err, http.StatusBadRequest)
				Expect(statusErr.Body).To(api.MatchSchema(reqres.ErrorSchema()))

				var body map[string]any
				Expect(statusErr.DecodeBody(&body)).To(Succeed())
				Expect(body).To(gstruct.MatchKeys(gstruct.IgnoreExtras, gstruct.Keys{
					"error": Not(BeEmpty()),
				}))
				GinkgoWriter.Printf("Login rejected with: %v\n", body["error"])
			})
		})
	})
})
