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
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/hexaworks/workspace-client/graphql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/xerrors"
)

var fastRetry = RetryConfig{
	MaxRetries: 2,
	BaseDelay:  time.Millisecond,
	MaxDelay:   time.Millisecond,
}

type meResult struct {
	Me *struct {
		Name string `json:"name"`
	} `json:"me"`
}

func TestClientDo(t *testing.T) {
	var gotReq graphql.Request
	var gotHeader http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Clone()
		var err error
		gotReq, err = Parse(r)
		if err != nil {
			http.Error(w, err.Error(), StatusCode(err))
			return
		}
		WriteResponse(w, graphql.Response{Data: []byte(`{"me":{"name":"Ada"}}`)})
	}))
	defer srv.Close()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	c := NewClient(srv.URL, &ClientOptions{
		HTTPClient: srv.Client(),
		Header:     http.Header{"X-Workspace": {"demo"}},
		UserAgent:  "workspacectl/test",
		Logger:     logger,
	})
	var out meResult
	err := c.Do(context.Background(), graphql.Request{
		Query:         "query Me($id: ID) { me { name } }",
		OperationName: "Me",
		Variables:     map[string]interface{}{"id": "u1"},
	}, &out)
	if err != nil {
		t.Fatal(err)
	}
	if out.Me == nil || out.Me.Name != "Ada" {
		t.Errorf("out = %+v; want me.name = Ada", out)
	}
	wantReq := graphql.Request{
		Query:         "query Me($id: ID) { me { name } }",
		OperationName: "Me",
		Variables:     map[string]interface{}{"id": "u1"},
	}
	if diff := cmp.Diff(wantReq, gotReq); diff != "" {
		t.Errorf("server received (-want +got):\n%s", diff)
	}
	if got := gotHeader.Get("X-Workspace"); got != "demo" {
		t.Errorf("X-Workspace = %q; want \"demo\"", got)
	}
	if got := gotHeader.Get("User-Agent"); got != "workspacectl/test" {
		t.Errorf("User-Agent = %q; want \"workspacectl/test\"", got)
	}

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("nothing logged")
	}
	if entry.Level != logrus.DebugLevel {
		t.Errorf("log level = %v; want debug", entry.Level)
	}
	for k, want := range map[string]interface{}{"operation": "Me", "type": "query", "status": http.StatusOK, "attempts": 1} {
		if got := entry.Data[k]; got != want {
			t.Errorf("log field %s = %v; want %v", k, got, want)
		}
	}
}

func TestClientPartialData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{
			"data": {"me": {"name": "Ada"}},
			"errors": [{"message": "avatar unavailable", "path": ["me", "avatar"], "extensions": {"code": "NOT_FOUND"}}]
		}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &ClientOptions{HTTPClient: srv.Client()})
	var out meResult
	err := c.Do(context.Background(), graphql.Request{Query: "query Me { me { name } }", OperationName: "Me"}, &out)
	var errs graphql.Errors
	if !xerrors.As(err, &errs) {
		t.Fatalf("Do(...) = %v; want graphql.Errors", err)
	}
	if !errs.HasCode("NOT_FOUND") {
		t.Errorf("errors = %v; want NOT_FOUND code", errs)
	}
	if out.Me == nil || out.Me.Name != "Ada" {
		t.Errorf("partial data not decoded: %+v", out)
	}
	if got := StatusCode(err); got != http.StatusInternalServerError {
		t.Errorf("StatusCode(err) = %d; want %d", got, http.StatusInternalServerError)
	}
}

func TestClientNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data": null}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &ClientOptions{HTTPClient: srv.Client()})
	if err := c.Do(context.Background(), graphql.Request{Query: "{ me { name } }"}, nil); err == nil {
		t.Error("Do(...) = <nil>; want error for missing data")
	}
}

func TestClientRetries(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		statuses     []int
		wantAttempts int32
		wantStatus   int
		wantErr      bool
	}{
		{
			name:         "QueryRecovers",
			query:        "query Me { me { name } }",
			statuses:     []int{http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusOK},
			wantAttempts: 3,
			wantStatus:   http.StatusOK,
		},
		{
			name:         "QueryGivesUp",
			query:        "query Me { me { name } }",
			statuses:     []int{http.StatusTooManyRequests, http.StatusTooManyRequests, http.StatusTooManyRequests, http.StatusOK},
			wantAttempts: 3,
			wantStatus:   http.StatusTooManyRequests,
			wantErr:      true,
		},
		{
			name:         "MutationNotRetried",
			query:        "mutation Rename { me { name } }",
			statuses:     []int{http.StatusServiceUnavailable, http.StatusOK},
			wantAttempts: 1,
			wantStatus:   http.StatusServiceUnavailable,
			wantErr:      true,
		},
		{
			name:         "ClientErrorNotRetried",
			query:        "query Me { me { name } }",
			statuses:     []int{http.StatusUnauthorized, http.StatusOK},
			wantAttempts: 1,
			wantStatus:   http.StatusUnauthorized,
			wantErr:      true,
		},
		{
			name:         "InternalErrorNotRetried",
			query:        "query Me { me { name } }",
			statuses:     []int{http.StatusInternalServerError, http.StatusOK},
			wantAttempts: 1,
			wantStatus:   http.StatusInternalServerError,
			wantErr:      true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var attempts int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := atomic.AddInt32(&attempts, 1)
				status := test.statuses[n-1]
				if status != http.StatusOK {
					http.Error(w, http.StatusText(status), status)
					return
				}
				io.WriteString(w, `{"data":{"me":{"name":"Ada"}}}`)
			}))
			defer srv.Close()

			c := NewClient(srv.URL, &ClientOptions{
				HTTPClient: srv.Client(),
				Retry:      fastRetry,
			})
			err := c.Do(context.Background(), graphql.Request{Query: test.query}, nil)
			if got := atomic.LoadInt32(&attempts); got != test.wantAttempts {
				t.Errorf("server saw %d attempts; want %d", got, test.wantAttempts)
			}
			if (err != nil) != test.wantErr {
				t.Fatalf("Do(...) = %v; want error = %t", err, test.wantErr)
			}
			if got := StatusCode(err); got != test.wantStatus {
				t.Errorf("StatusCode(err) = %d; want %d", got, test.wantStatus)
			}
		})
	}
}

func TestClientRetriesDisabled(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		http.Error(w, "busy", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &ClientOptions{
		HTTPClient: srv.Client(),
		Retry:      RetryConfig{MaxRetries: -1},
	})
	if err := c.Do(context.Background(), graphql.Request{Query: "{ me { name } }"}, nil); err == nil {
		t.Fatal("Do(...) = <nil>; want error")
	}
	if got := atomic.LoadInt32(&attempts); got != 1 {
		t.Errorf("server saw %d attempts; want 1", got)
	}
}

func TestClientGraphQLErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"errors":[{"message":"unknown field","locations":[{"line":1,"column":10}]}]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &ClientOptions{HTTPClient: srv.Client()})
	err := c.Do(context.Background(), graphql.Request{Query: "query Me { nope }"}, nil)
	if got := StatusCode(err); got != http.StatusBadRequest {
		t.Errorf("StatusCode(err) = %d; want %d", got, http.StatusBadRequest)
	}
	var errs graphql.Errors
	if !xerrors.As(err, &errs) {
		t.Fatalf("Do(...) = %v; want graphql.Errors", err)
	}
	want := graphql.Errors{{Message: "unknown field", Locations: []graphql.Location{{Line: 1, Column: 10}}}}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Errorf("errors (-want +got):\n%s", diff)
	}
}

func TestClientContextCanceled(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		http.Error(w, "busy", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewClient(srv.URL, &ClientOptions{HTTPClient: srv.Client(), Retry: fastRetry})
	err := c.Do(ctx, graphql.Request{Query: "{ me { name } }"}, nil)
	if !xerrors.Is(err, context.Canceled) {
		t.Errorf("Do(canceled) = %v; want context.Canceled", err)
	}
	if got := atomic.LoadInt32(&attempts); got != 0 {
		t.Errorf("server saw %d attempts; want 0", got)
	}
}

func TestClientMetrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	metrics, err := NewMetrics(reg)
	if err != nil {
		t.Fatal(err)
	}
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			io.WriteString(w, `{"data":{"me":{"name":"Ada"}}}`)
			return
		}
		io.WriteString(w, `{"data":null,"errors":[{"message":"nope"}]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &ClientOptions{HTTPClient: srv.Client(), Metrics: metrics})
	req := graphql.Request{Query: "query Me { me { name } }", OperationName: "Me"}
	if err := c.Do(context.Background(), req, nil); err != nil {
		t.Fatal(err)
	}
	if err := c.Do(context.Background(), req, nil); err == nil {
		t.Fatal("second Do(...) = <nil>; want error")
	}
	if got := testutil.ToFloat64(metrics.requests.WithLabelValues("Me", outcomeSuccess)); got != 1 {
		t.Errorf("success count = %v; want 1", got)
	}
	if got := testutil.ToFloat64(metrics.requests.WithLabelValues("Me", outcomeGraphQL)); got != 1 {
		t.Errorf("graphql_error count = %v; want 1", got)
	}
	if n, err := testutil.GatherAndCount(reg, "graphql_client_operations_total"); err != nil || n != 2 {
		t.Errorf("GatherAndCount(operations_total) = %d, %v; want 2, <nil>", n, err)
	}
	if _, err := NewMetrics(reg); err == nil {
		t.Error("registering metrics twice succeeded")
	}
}
