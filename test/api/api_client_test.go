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

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive
	"github.com/onsi/gomega/ghttp"

	"github.com/nscale/reqres-api-tests/pkg/reqres"
	"github.com/nscale/reqres-api-tests/test/api"
)

const testAPIKey = "reqres-free-v1"

func userList() reqres.UserList {
	return reqres.UserList{
		Page:       2,
		PerPage:    6,
		Total:      12,
		TotalPages: 2,
		Data: []reqres.User{
			{ID: 7, Email: "michael.lawson@reqres.in", FirstName: "Michael", LastName: "Lawson", Avatar: "https://reqres.in/img/faces/7-image.jpg"},
		},
		Support: reqres.Support{URL: "https://contentcaddy.io", Text: "Tired of writing endless social media content?"},
	}
}

var _ = Describe("APIClient", func() {
	var (
		server *ghttp.Server
		client *api.APIClient
		ctx    context.Context
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		DeferCleanup(server.Close)

		client = api.NewAPIClientWithConfig(&api.TestConfig{
			BaseURL:        server.URL() + "/",
			APIKey:         testAPIKey,
			RequestTimeout: 5 * time.Second,
			LogRequests:    true,
			LogResponses:   true,
		})
		ctx = context.Background()
	})

	Context("When sending any request", func() {
		It("should propagate W3C trace context and the API key", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, "/api/users", "page=2"),
				ghttp.VerifyHeaderKV(api.APIKeyHeader, testAPIKey),
				ghttp.VerifyHeaderKV("Tracestate", "test-automation=ginkgo"),
				func(_ http.ResponseWriter, req *http.Request) {
					Expect(req.Header.Get("Traceparent")).To(MatchRegexp(`^00-[0-9a-f]{32}-[0-9a-f]{16}-01$`))
					Expect(req.Header.Get("Content-Type")).To(BeEmpty())
				},
				ghttp.RespondWithJSONEncoded(http.StatusOK, userList()),
			))

			_, err := client.ListUsers(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should use a fresh trace ID per request", func() {
			var traceParents []string

			record := func(_ http.ResponseWriter, req *http.Request) {
				traceParents = append(traceParents, req.Header.Get("Traceparent"))
			}

			server.AppendHandlers(
				ghttp.CombineHandlers(record, ghttp.RespondWithJSONEncoded(http.StatusOK, userList())),
				ghttp.CombineHandlers(record, ghttp.RespondWithJSONEncoded(http.StatusOK, userList())),
			)

			_, err := client.ListUsers(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			_, err = client.ListUsers(ctx, 2)
			Expect(err).NotTo(HaveOccurred())

			Expect(traceParents).To(HaveLen(2))
			Expect(traceParents[0]).NotTo(Equal(traceParents[1]))
		})

		It("should omit the API key header when none is configured", func() {
			client = api.NewAPIClientWithConfig(&api.TestConfig{BaseURL: server.URL()})

			server.AppendHandlers(ghttp.CombineHandlers(
				func(_ http.ResponseWriter, req *http.Request) {
					Expect(req.Header.Values(api.APIKeyHeader)).To(BeEmpty())
				},
				ghttp.RespondWith(http.StatusNoContent, nil),
			))

			Expect(client.DeleteUser(ctx, "2")).To(Succeed())
		})
	})

	Context("When listing users", func() {
		It("should decode the typed page", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, "/api/users", "page=2"),
				ghttp.RespondWithJSONEncoded(http.StatusOK, userList()),
			))

			users, err := client.ListUsers(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(users.Page).To(Equal(2))
			Expect(users.Data).To(HaveLen(1))
			Expect(users.Data[0].Email).To(Equal("michael.lawson@reqres.in"))
			Expect(users.Support.URL).To(Equal("https://contentcaddy.io"))
		})

		It("should return the raw payload for schema validation", func() {
			server.AppendHandlers(ghttp.RespondWithJSONEncoded(http.StatusOK, userList()))

			payload, err := client.ListUsersPayload(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(payload).To(api.MatchSchema(reqres.UserListSchema()))
			api.VerifyUserRecords(payload)
		})

		It("should fail on a body that is not JSON", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusOK, "<html></html>"))

			_, err := client.ListUsersPayload(ctx, 2)
			Expect(err).To(MatchError(ContainSubstring("unmarshaling user list response")))
		})
	})

	Context("When retrieving a user", func() {
		It("should decode the user", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, "/api/users/2"),
				ghttp.RespondWithJSONEncoded(http.StatusOK, reqres.SingleUser{
					Data: reqres.User{ID: 2, Email: "janet.weaver@reqres.in", FirstName: "Janet", LastName: "Weaver", Avatar: "a"},
				}),
			))

			user, err := client.GetUser(ctx, "2")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Data.ID).To(Equal(2))
		})

		It("should report a missing user as a 404", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, "/api/users/999"),
				ghttp.RespondWith(http.StatusNotFound, "{}"),
			))

			user, err := client.GetUser(ctx, "999")
			Expect(user).To(BeNil())
			Expect(err).To(MatchError(ContainSubstring("user '999' not found")))

			statusErr := api.ExpectStatusError(err, http.StatusNotFound)
			Expect(statusErr.Method).To(Equal(http.MethodGet))
			Expect(statusErr.Path).To(Equal("/api/users/999"))
			Expect(statusErr.TraceID).To(HaveLen(32))
			Expect(statusErr.Error()).To(ContainSubstring("got 404"))
		})

		It("should escape the user id", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				func(_ http.ResponseWriter, req *http.Request) {
					Expect(req.URL.EscapedPath()).To(Equal("/api/users/a%2Fb"))
				},
				ghttp.RespondWith(http.StatusNotFound, nil),
			))

			_, err := client.GetUser(ctx, "a/b")
			Expect(api.StatusCode(err)).To(Equal(http.StatusNotFound))
		})
	})

	Context("When creating a user", func() {
		It("should send the payload and decode the created user", func() {
			payload := api.NewUserPayload().WithName("Alice").WithJob("Engineer").Build()

			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, "/api/users"),
				ghttp.VerifyContentType("application/json"),
				ghttp.VerifyJSONRepresenting(payload),
				ghttp.RespondWithJSONEncoded(http.StatusCreated, map[string]any{
					"id":        "859",
					"name":      "Alice",
					"job":       "Engineer",
					"createdAt": "2026-10-17T09:00:00.000Z",
				}),
			))

			created, err := client.CreateUser(ctx, payload)
			Expect(err).NotTo(HaveOccurred())
			api.VerifyCreatedUser(created, payload)
			Expect(created.ID).To(Equal("859"))
		})

		It("should reject a success code other than 201", func() {
			server.AppendHandlers(ghttp.RespondWithJSONEncoded(http.StatusOK, map[string]any{"id": 1}))

			_, err := client.CreateUser(ctx, api.NewUserPayload().Build())
			api.ExpectStatusError(err, http.StatusOK)
			Expect(err).To(MatchError(ContainSubstring("creating user")))
		})
	})

	Context("When updating a user", func() {
		It("should send a PUT and decode the echo", func() {
			payload := api.NewUserPayload().WithName("Alice Updated").WithJob("Senior Engineer").Build()

			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPut, "/api/users/2"),
				ghttp.VerifyJSONRepresenting(payload),
				ghttp.RespondWithJSONEncoded(http.StatusOK, reqres.UpdatedUser{Name: payload.Name, Job: payload.Job}),
			))

			updated, err := client.UpdateUser(ctx, "2", payload)
			Expect(err).NotTo(HaveOccurred())
			api.VerifyUserEcho(updated.Name, updated.Job, payload)
		})
	})

	Context("When deleting a user", func() {
		It("should expect 204 No Content", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodDelete, "/api/users/2"),
				ghttp.RespondWith(http.StatusNoContent, nil),
			))

			Expect(client.DeleteUser(ctx, "2")).To(Succeed())
		})

		It("should fail on any other status", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusInternalServerError, "boom"))

			err := client.DeleteUser(ctx, "2")
			statusErr := api.ExpectStatusError(err, http.StatusInternalServerError)
			Expect(string(statusErr.Body)).To(Equal("boom"))
		})
	})

	Context("When logging in", func() {
		It("should omit a missing password and expose the error body", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, "/api/login"),
				ghttp.VerifyJSON(`{"email":"test@test"}`),
				ghttp.RespondWithJSONEncoded(http.StatusBadRequest, reqres.ErrorResponse{Error: "Missing password"}),
			))

			_, err := client.Login(ctx, api.NewLoginPayload().WithEmail("test@test").WithoutPassword().Build())
			statusErr := api.ExpectStatusError(err, http.StatusBadRequest)
			Expect(statusErr.Body).To(api.MatchSchema(reqres.ErrorSchema()))

			var body reqres.ErrorResponse
			Expect(statusErr.DecodeBody(&body)).To(Succeed())
			Expect(body.Error).To(Equal("Missing password"))
		})

		It("should decode the token on success", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyJSON(`{"email":"eve.holt@reqres.in","password":"cityslicka"}`),
				ghttp.RespondWithJSONEncoded(http.StatusOK, reqres.LoginResponse{Token: "QpwL5tke4Pnpja7X4"}),
			))

			response, err := client.Login(ctx, api.NewLoginPayload().Build())
			Expect(err).NotTo(HaveOccurred())
			Expect(response.Token).To(Equal("QpwL5tke4Pnpja7X4"))
		})
	})

	Context("When the service cannot be reached", func() {
		It("should return a transport error rather than a status error", func() {
			server.Close()

			_, err := client.ListUsers(ctx, 2)
			Expect(err).To(MatchError(ContainSubstring("http request failed")))
			Expect(api.StatusCode(err)).To(BeZero())
		})
	})
})

var _ = Describe("Endpoints", func() {
	endpoints := api.NewEndpoints()

	DescribeTable("should build paths",
		func(path, expected string) {
			Expect(path).To(Equal(expected))
		},
		Entry("list users", endpoints.ListUsers(2), "/api/users?page=2"),
		Entry("get user", endpoints.GetUser("999"), "/api/users/999"),
		Entry("create user", endpoints.CreateUser(), "/api/users"),
		Entry("update user", endpoints.UpdateUser("2"), "/api/users/2"),
		Entry("delete user", endpoints.DeleteUser("2"), "/api/users/2"),
		Entry("login", endpoints.Login(), "/api/login"),
	)
})

var _ = Describe("Payload builders", func() {
	It("should generate unique user names by default", func() {
		first := api.NewUserPayload().Build()
		second := api.NewUserPayload().Build()

		Expect(first.Name).To(MatchRegexp(`^testautomation-[0-9a-f]{8}$`))
		Expect(first.Name).NotTo(Equal(second.Name))
	})

	It("should default to working login credentials", func() {
		data, err := json.Marshal(api.NewLoginPayload().Build())
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(MatchJSON(`{"email":"eve.holt@reqres.in","password":"cityslicka"}`))

		data, err = json.Marshal(api.NewLoginPayload().WithPassword("secret").Build())
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(MatchJSON(`{"email":"eve.holt@reqres.in","password":"secret"}`))
	})
})
