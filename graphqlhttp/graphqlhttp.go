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

// Package graphqlhttp sends and receives GraphQL requests over HTTP as
// described in https://graphql.org/learn/serving-over-http/.
package graphqlhttp

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/hexaworks/workspace-client/graphql"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/xerrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxRequestSize is the largest request body Parse reads.
const maxRequestSize = 1 << 20 // 1 MiB

// Handler serves GraphQL HTTP requests by passing them to a function.
type Handler struct {
	serve func(context.Context, graphql.Request) graphql.Response
}

// NewHandler returns a new handler that sends parsed requests to f.
func NewHandler(f func(context.Context, graphql.Request) graphql.Response) *Handler {
	return &Handler{serve: f}
}

// ServeHTTP parses a GraphQL request and writes the response produced for it.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	gqlRequest, err := Parse(r)
	if err != nil {
		code := StatusCode(err)
		if code == http.StatusMethodNotAllowed {
			w.Header().Set("Allow", "GET, HEAD, POST")
		}
		http.Error(w, err.Error(), code)
		return
	}
	WriteResponse(w, h.serve(r.Context(), gqlRequest))
}

// Parse parses a GraphQL HTTP request. If an error is returned, StatusCode
// will return the proper HTTP status code to use. Variables are decoded as
// map[string]interface{}.
//
// Request methods may be GET, HEAD, or POST. If the method is not one of these,
// then an error is returned that will make StatusCode return
// http.StatusMethodNotAllowed. GET and HEAD requests may only carry queries.
func Parse(r *http.Request) (graphql.Request, error) {
	request := graphql.Request{
		Query: r.URL.Query().Get("query"),
	}
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if err := parseFormFields(&request, r.URL.Query().Get("operationName"), r.URL.Query().Get("variables")); err != nil {
			return graphql.Request{}, err
		}
		if typ := request.OperationType(); typ != 0 && typ != graphql.QueryOperation {
			return graphql.Request{}, &httpError{
				msg:  fmt.Sprintf("parse graphql request: %s over %s not allowed", typ, r.Method),
				code: http.StatusBadRequest,
			}
		}
	case http.MethodPost:
		rawContentType := r.Header.Get("Content-Type")
		contentType, _, err := mime.ParseMediaType(rawContentType)
		if err != nil {
			return graphql.Request{}, &httpError{
				msg:  "parse graphql request: invalid content type: " + rawContentType,
				code: http.StatusUnsupportedMediaType,
			}
		}
		switch contentType {
		case "application/json":
			var body struct {
				Query         string              `json:"query"`
				OperationName string              `json:"operationName"`
				Variables     jsoniter.RawMessage `json:"variables"`
			}
			if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestSize)).Decode(&body); err != nil {
				return graphql.Request{}, &httpError{
					msg:   "parse graphql request: ",
					code:  http.StatusBadRequest,
					cause: err,
				}
			}
			if body.Query != "" {
				request.Query = body.Query
			}
			request.OperationName = body.OperationName
			if err := decodeVariables(&request, body.Variables); err != nil {
				return graphql.Request{}, err
			}
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return graphql.Request{}, &httpError{
					msg:   "parse graphql request: ",
					code:  http.StatusBadRequest,
					cause: err,
				}
			}
			if q := r.PostForm.Get("query"); q != "" {
				request.Query = q
			}
			if err := parseFormFields(&request, r.PostForm.Get("operationName"), r.PostForm.Get("variables")); err != nil {
				return graphql.Request{}, err
			}
		case "application/graphql":
			data, err := io.ReadAll(io.LimitReader(r.Body, maxRequestSize))
			if err != nil {
				return graphql.Request{}, &httpError{
					msg:   "parse graphql request: ",
					code:  http.StatusBadRequest,
					cause: err,
				}
			}
			if len(data) > 0 {
				request.Query = string(data)
			}
			request.OperationName = r.URL.Query().Get("operationName")
		default:
			return graphql.Request{}, &httpError{
				msg:  "parse graphql request: unrecognized content type: " + contentType,
				code: http.StatusUnsupportedMediaType,
			}
		}
	default:
		return graphql.Request{}, &httpError{
			msg:  fmt.Sprintf("parse graphql request: method %s not allowed", r.Method),
			code: http.StatusMethodNotAllowed,
		}
	}
	if request.Query == "" {
		return graphql.Request{}, &httpError{
			msg:  "parse graphql request: missing query",
			code: http.StatusBadRequest,
		}
	}
	return request, nil
}

func parseFormFields(request *graphql.Request, operationName, variables string) error {
	request.OperationName = operationName
	if variables == "" {
		return nil
	}
	return decodeVariables(request, []byte(variables))
}

func decodeVariables(request *graphql.Request, data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	var vars map[string]interface{}
	if err := json.Unmarshal(data, &vars); err != nil {
		return &httpError{
			msg:   "parse graphql request: variables: ",
			code:  http.StatusBadRequest,
			cause: err,
		}
	}
	request.Variables = vars
	return nil
}

type httpError struct {
	msg   string
	code  int
	cause error
}

func (e *httpError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + e.cause.Error()
}

func (e *httpError) Unwrap() error {
	return e.cause
}

// StatusCode returns the HTTP status code an error indicates. It recognizes
// errors returned by Parse and by Client.Do for non-2xx responses.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var e *httpError
	if !xerrors.As(err, &e) {
		return http.StatusInternalServerError
	}
	return e.code
}

// WriteResponse writes a GraphQL result as an HTTP response.
func WriteResponse(w http.ResponseWriter, response graphql.Response) {
	payload, err := json.Marshal(response)
	if err != nil {
		http.Error(w, "GraphQL marshal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	if _, err := w.Write(payload); err != nil {
		return
	}
}
