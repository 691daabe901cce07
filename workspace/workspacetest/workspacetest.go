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

// Package workspacetest provides an in-process fake of the workspace API for
// tests.
package workspacetest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/hexaworks/workspace-client/graphql"
	"github.com/hexaworks/workspace-client/graphqlhttp"
	"github.com/hexaworks/workspace-client/workspace"
)

// CodeUnknownDocument is the error code returned for documents that are not
// registered in workspace.Documents.
const CodeUnknownDocument = "PERSISTED_QUERY_NOT_FOUND"

// Server is a fake workspace API. It only accepts documents registered in
// workspace.Documents, compared by exact source text, and answers each
// operation with the response registered for it.
type Server struct {
	srv *httptest.Server

	mu        sync.Mutex
	responses map[string]response
	requests  []Request
}

type response struct {
	status int
	body   graphql.Response
	data   func(vars map[string]interface{}) string
}

// Request is a request received by a Server.
type Request struct {
	OperationName string
	Variables     map[string]interface{}
	Header        http.Header
}

// NewServer starts a fake server. Call Close when done.
func NewServer() *Server {
	s := &Server{responses: make(map[string]response)}
	s.srv = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	return s
}

// URL returns the GraphQL endpoint of the server.
func (s *Server) URL() string {
	return s.srv.URL + "/graphql"
}

// Client returns an HTTP client configured for the server.
func (s *Server) Client() *http.Client {
	return s.srv.Client()
}

// Close shuts down the server.
func (s *Server) Close() {
	s.srv.Close()
}

// Handle registers the JSON value of the "data" member returned for an
// operation. It panics if data is not valid JSON.
func (s *Server) Handle(operation string, data string) {
	if !json.Valid([]byte(data)) {
		panic(fmt.Sprintf("workspacetest: invalid JSON for %s: %s", operation, data))
	}
	s.set(operation, response{
		status: http.StatusOK,
		body:   graphql.Response{Data: json.RawMessage(data)},
	})
}

// HandleFunc registers a function that computes the "data" member for an
// operation from the request's variables.
func (s *Server) HandleFunc(operation string, f func(vars map[string]interface{}) string) {
	s.set(operation, response{
		status: http.StatusOK,
		data:   f,
	})
}

// HandleErrors registers GraphQL errors returned for an operation, with null
// data.
func (s *Server) HandleErrors(operation string, errs ...*graphql.ResponseError) {
	s.set(operation, response{
		status: http.StatusOK,
		body:   graphql.Response{Errors: errs},
	})
}

// HandleStatus makes the server answer an operation with a bare HTTP status.
// It panics if code is not an error status; use Handle for successful
// answers.
func (s *Server) HandleStatus(operation string, code int) {
	if code < 400 || code > 599 {
		panic(fmt.Sprintf("workspacetest: HandleStatus(%s, %d): not an error status", operation, code))
	}
	s.set(operation, response{status: code})
}

func (s *Server) set(operation string, r response) {
	if workspace.Documents().Operation(operation) == nil {
		panic("workspacetest: unknown operation " + operation)
	}
	s.mu.Lock()
	s.responses[operation] = r
	s.mu.Unlock()
}

// Requests returns the accepted requests received so far, in order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := graphqlhttp.Parse(r)
	if err != nil {
		http.Error(w, err.Error(), graphqlhttp.StatusCode(err))
		return
	}
	doc := workspace.Documents().Lookup(req.Query)
	if doc == nil || (req.OperationName != "" && req.OperationName != doc.OperationName()) {
		payload, _ := json.Marshal(graphql.Response{
			Errors: []*graphql.ResponseError{{
				Message:    "document not in allow list",
				Extensions: map[string]interface{}{"code": CodeUnknownDocument},
			}},
		})
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		w.Write(payload)
		return
	}
	name := doc.OperationName()
	vars, _ := req.Variables.(map[string]interface{})

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		OperationName: name,
		Variables:     vars,
		Header:        r.Header.Clone(),
	})
	resp, ok := s.responses[name]
	s.mu.Unlock()

	if !ok {
		graphqlhttp.WriteResponse(w, graphql.Response{
			Errors: []*graphql.ResponseError{{Message: "workspacetest: no response registered for " + name}},
		})
		return
	}
	if resp.status != http.StatusOK {
		http.Error(w, http.StatusText(resp.status), resp.status)
		return
	}
	if resp.data != nil {
		resp.body = graphql.Response{Data: json.RawMessage(resp.data(vars))}
	}
	graphqlhttp.WriteResponse(w, resp.body)
}
