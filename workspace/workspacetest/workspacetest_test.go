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

package workspacetest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/hexaworks/workspace-client/graphql"
	"github.com/hexaworks/workspace-client/workspace"
)

func post(t *testing.T, srv *Server, body interface{}) (*http.Response, graphql.Response) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := srv.Client().Post(srv.URL(), "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var gqlResp graphql.Response
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		t.Fatal(err)
	}
	return resp, gqlResp
}

func TestServerRejectsUnknownDocuments(t *testing.T) {
	srv := NewServer()
	defer srv.Close()
	srv.Handle("Countries", `{"countries": []}`)
	source := workspace.Documents().Operation("Countries").Source()

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "Reformatted",
			body: map[string]interface{}{"query": strings.Replace(source, "  ", "\t", -1)},
		},
		{
			name: "Adhoc",
			body: map[string]interface{}{"query": "{ countries { code } }"},
		},
		{
			name: "WrongOperationName",
			body: map[string]interface{}{"query": source, "operationName": "Me"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resp, gqlResp := post(t, srv, test.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d; want %d", resp.StatusCode, http.StatusBadRequest)
			}
			if !graphql.Errors(gqlResp.Errors).HasCode(CodeUnknownDocument) {
				t.Errorf("errors = %v; want code %s", gqlResp.Errors, CodeUnknownDocument)
			}
		})
	}
	if n := len(srv.Requests()); n != 0 {
		t.Errorf("server recorded %d rejected requests", n)
	}

	resp, gqlResp := post(t, srv, map[string]interface{}{"query": source})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("registered document: status = %d; want %d", resp.StatusCode, http.StatusOK)
	}
	var data struct {
		Countries []workspace.Country `json:"countries"`
	}
	if err := json.Unmarshal(gqlResp.Data, &data); err != nil || data.Countries == nil {
		t.Errorf("data = %s; want an empty countries list", gqlResp.Data)
	}
	if reqs := srv.Requests(); len(reqs) != 1 || reqs[0].OperationName != "Countries" {
		t.Errorf("requests = %+v; want one Countries request", reqs)
	}
}

func TestServerPanicsOnBadRegistration(t *testing.T) {
	srv := NewServer()
	defer srv.Close()
	tests := []struct {
		name string
		f    func()
	}{
		{"UnknownOperation", func() { srv.Handle("Nope", `{}`) }},
		{"InvalidJSON", func() { srv.Handle("Me", `{"me":`) }},
		{"SuccessStatus", func() { srv.HandleStatus("Me", http.StatusOK) }},
		{"RedirectStatus", func() { srv.HandleStatus("Me", http.StatusFound) }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("did not panic")
				}
			}()
			test.f()
		})
	}
}
