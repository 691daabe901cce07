// Copyright 2019 Ross Light
// Copyright 2026 The workspace-client Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package graphqlhttp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hexaworks/workspace-client/graphql"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string

		method      string
		query       url.Values
		contentType string
		body        string

		want          graphql.Request
		wantErrStatus int
	}{
		{
			name:   "HEAD",
			method: http.MethodHead,
			query:  url.Values{"query": {"{me{name}}"}},
			want: graphql.Request{
				Query: "{me{name}}",
			},
		},
		{
			name:   "GET/JustQuery",
			method: http.MethodGet,
			query:  url.Values{"query": {"{me{name}}"}},
			want: graphql.Request{
				Query: "{me{name}}",
			},
		},
		{
			name:   "GET/AllFields",
			method: http.MethodGet,
			query: url.Values{
				"query":         {"query Baz{me{name}}"},
				"variables":     {`{"foo":"bar"}`},
				"operationName": {"Baz"},
			},
			want: graphql.Request{
				Query:         "query Baz{me{name}}",
				OperationName: "Baz",
				Variables: map[string]interface{}{
					"foo": "bar",
				},
			},
		},
		{
			name:   "GET/Mutation",
			method: http.MethodGet,
			query: url.Values{
				"query":     {"mutation {me{name}}"},
				"variables": {`{"foo":"bar"}`},
			},
			wantErrStatus: http.StatusBadRequest,
		},
		{
			name:   "GET/BadVariables",
			method: http.MethodGet,
			query: url.Values{
				"query":     {"{me{name}}"},
				"variables": {`["foo"]`},
			},
			wantErrStatus: http.StatusBadRequest,
		},
		{
			name:          "GET/MissingQuery",
			method:        http.MethodGet,
			wantErrStatus: http.StatusBadRequest,
		},
		{
			name:        "POST/JustQuery",
			method:      http.MethodPost,
			contentType: "application/json; charset=utf-8",
			body:        `{"query": "{me{name}}"}`,
			want: graphql.Request{
				Query: "{me{name}}",
			},
		},
		{
			name:        "POST/AllFields",
			method:      http.MethodPost,
			contentType: "application/json; charset=utf-8",
			body:        `{"query": "{me{name}}", "variables": {"foo":"bar", "n": 2}, "operationName": "Baz"}`,
			want: graphql.Request{
				Query:         "{me{name}}",
				OperationName: "Baz",
				Variables: map[string]interface{}{
					"foo": "bar",
					"n":   float64(2),
				},
			},
		},
		{
			name:        "POST/NullVariables",
			method:      http.MethodPost,
			contentType: "application/json",
			body:        `{"query": "{me{name}}", "variables": null}`,
			want: graphql.Request{
				Query: "{me{name}}",
			},
		},
		{
			name:        "POST/QueryInURL",
			method:      http.MethodPost,
			query:       url.Values{"query": {"{me{name}}"}},
			contentType: "application/json; charset=utf-8",
			body:        `{"variables": {"foo":"bar"}, "operationName": "Baz"}`,
			want: graphql.Request{
				Query:         "{me{name}}",
				OperationName: "Baz",
				Variables: map[string]interface{}{
					"foo": "bar",
				},
			},
		},
		{
			name:        "POST/QueryInBodyAndURL",
			method:      http.MethodPost,
			query:       url.Values{"query": {"{me{name}}"}},
			contentType: "application/json; charset=utf-8",
			body:        `{"query": "{your{face}}", "variables": {"foo":"bar"}, "operationName": "Baz"}`,
			want: graphql.Request{
				Query:         "{your{face}}",
				OperationName: "Baz",
				Variables: map[string]interface{}{
					"foo": "bar",
				},
			},
		},
		{
			name:        "POST/MutationAllowed",
			method:      http.MethodPost,
			contentType: "application/json",
			body:        `{"query": "mutation {me{name}}"}`,
			want: graphql.Request{
				Query: "mutation {me{name}}",
			},
		},
		{
			name:          "POST/MalformedJSON",
			method:        http.MethodPost,
			contentType:   "application/json",
			body:          `{"query": `,
			wantErrStatus: http.StatusBadRequest,
		},
		{
			name:        "POST/Form",
			method:      http.MethodPost,
			contentType: "application/x-www-form-urlencoded",
			body: url.Values{
				"query":         {"query Baz{me{name}}"},
				"operationName": {"Baz"},
				"variables":     {`{"foo":"bar"}`},
			}.Encode(),
			want: graphql.Request{
				Query:         "query Baz{me{name}}",
				OperationName: "Baz",
				Variables: map[string]interface{}{
					"foo": "bar",
				},
			},
		},
		{
			name:        "POST/GraphQLContentType",
			method:      http.MethodPost,
			contentType: "application/graphql; charset=utf-8",
			body:        "{me{name}}",
			want: graphql.Request{
				Query: "{me{name}}",
			},
		},
		{
			name:          "POST/UnknownContentType",
			method:        http.MethodPost,
			contentType:   "text/plain",
			body:          "{me{name}}",
			wantErrStatus: http.StatusUnsupportedMediaType,
		},
		{
			name:          "POST/MissingContentType",
			method:        http.MethodPost,
			body:          "{me{name}}",
			wantErrStatus: http.StatusUnsupportedMediaType,
		},
		{
			name:          "PUT",
			method:        http.MethodPut,
			query:         url.Values{"query": {"{me{name}}"}},
			wantErrStatus: http.StatusMethodNotAllowed,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := &http.Request{
				Method: test.method,
				URL: &url.URL{
					RawQuery: test.query.Encode(),
				},
				Header: make(http.Header),
				Body:   io.NopCloser(strings.NewReader(test.body)),
			}
			if test.contentType != "" {
				req.Header.Set("Content-Type", test.contentType)
			}
			got, err := Parse(req)
			if err != nil {
				if test.wantErrStatus == 0 {
					t.Fatalf("Parse error = %v; want <nil>", err)
				}
				if StatusCode(err) != test.wantErrStatus {
					t.Fatalf("Parse error = %v, status code = %d; want status code = %d", err, StatusCode(err), test.wantErrStatus)
				}
				return
			}
			if test.wantErrStatus != 0 {
				t.Fatalf("Parse(...) = %+v, <nil>; want error status code = %d", got, test.wantErrStatus)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Parse(...) (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStatusCode(t *testing.T) {
	if got := StatusCode(nil); got != http.StatusOK {
		t.Errorf("StatusCode(nil) = %d; want %d", got, http.StatusOK)
	}
	if got := StatusCode(io.ErrUnexpectedEOF); got != http.StatusInternalServerError {
		t.Errorf("StatusCode(io.ErrUnexpectedEOF) = %d; want %d", got, http.StatusInternalServerError)
	}
}

func TestHandler(t *testing.T) {
	var got graphql.Request
	h := NewHandler(func(ctx context.Context, req graphql.Request) graphql.Response {
		got = req
		return graphql.Response{
			Data: []byte(`{"me":{"name":"Ada"}}`),
		}
	})

	t.Run("OK", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":"query Me { me { name } }","operationName":"Me"}`))
		req.Header.Set("Content-Type", "application/json")
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
			t.Errorf("Content-Type = %q", ct)
		}
		if body, want := rec.Body.String(), `{"data":{"me":{"name":"Ada"}}}`; body != want {
			t.Errorf("body = %s; want %s", body, want)
		}
		want := graphql.Request{Query: "query Me { me { name } }", OperationName: "Me"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("request (-want +got):\n%s", diff)
		}
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/graphql?query=%7Bme%7D", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d; want %d", rec.Code, http.StatusMethodNotAllowed)
		}
		if allow := rec.Header().Get("Allow"); allow != "GET, HEAD, POST" {
			t.Errorf("Allow = %q; want \"GET, HEAD, POST\"", allow)
		}
	})
}
