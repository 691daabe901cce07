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
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"github.com/hexaworks/workspace-client/graphql"
	"github.com/hexaworks/workspace-client/internal/logging"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
	"golang.org/x/xerrors"
)

// maxResponseSize is the largest response body a Client reads.
const maxResponseSize = 32 << 20 // 32 MiB

// ClientOptions holds optional parameters for NewClient.
type ClientOptions struct {
	// HTTPClient is used to send requests. If nil, http.DefaultClient is used.
	// Authentication is usually configured on its transport.
	HTTPClient *http.Client
	// Header is added to every request.
	Header http.Header
	// UserAgent is sent in the User-Agent header if not empty.
	UserAgent string

	// Retry configures how failed queries are retried. Mutations are never
	// retried.
	Retry RetryConfig

	// Logger receives one entry per operation. If nil, nothing is logged.
	Logger logrus.FieldLogger
	// Metrics receives per-operation counters and latencies. May be nil.
	Metrics *Metrics
}

// Client sends GraphQL operations to a single endpoint.
// It is safe to use from multiple goroutines.
type Client struct {
	endpoint  string
	http      *http.Client
	header    http.Header
	userAgent string
	retry     retrypolicy.RetryPolicy[*http.Response]
	log       logrus.FieldLogger
	metrics   *Metrics
}

// NewClient returns a client that posts operations to the given URL.
// opts may be nil.
func NewClient(endpoint string, opts *ClientOptions) *Client {
	if opts == nil {
		opts = new(ClientOptions)
	}
	c := &Client{
		endpoint:  endpoint,
		http:      opts.HTTPClient,
		header:    opts.Header.Clone(),
		userAgent: opts.UserAgent,
		retry:     newRetryPolicy(opts.Retry),
		log:       opts.Logger,
		metrics:   opts.Metrics,
	}
	if c.http == nil {
		c.http = http.DefaultClient
	}
	if c.log == nil {
		c.log = logging.Discard()
	}
	return c
}

// Endpoint returns the URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Do sends a request and decodes the "data" member of the response into out,
// which should be a pointer to a struct matching the operation's selection
// set. out may be nil to discard the data.
//
// If the server reports GraphQL errors, then Do still decodes any partial
// data into out and returns an error that wraps graphql.Errors. If the
// server answers with a non-2xx status, StatusCode reports the status.
func (c *Client) Do(ctx context.Context, req graphql.Request, out interface{}) error {
	name := req.OperationName
	if name == "" {
		name = "anonymous"
	}
	opType := req.OperationType()
	typeName := "unknown"
	if opType != 0 {
		typeName = opType.String()
	}

	ctx, span := trace.StartSpan(ctx, "graphql."+name, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.AddAttributes(
		trace.StringAttribute("graphql.operation", name),
		trace.StringAttribute("graphql.type", typeName),
	)

	start := time.Now()
	status, attempts, err := c.do(ctx, req, opType == graphql.QueryOperation, out)
	duration := time.Since(start)

	outcome := outcomeOf(err)
	c.metrics.observe(name, outcome, attempts, duration)
	span.AddAttributes(
		trace.Int64Attribute("http.status_code", int64(status)),
		trace.Int64Attribute("graphql.attempts", int64(attempts)),
	)
	entry := c.log.WithFields(logrus.Fields{
		"operation": name,
		"type":      typeName,
		"status":    status,
		"duration":  duration,
		"attempts":  attempts,
	})
	if err != nil {
		span.SetStatus(trace.Status{Code: traceCode(outcome), Message: err.Error()})
		entry.WithError(err).Warn("graphql operation failed")
		return err
	}
	entry.Debug("graphql operation")
	return nil
}

func (c *Client) do(ctx context.Context, req graphql.Request, retryable bool, out interface{}) (status, attempts int, err error) {
	name := req.OperationName
	body, err := json.Marshal(req)
	if err != nil {
		return 0, 0, xerrors.Errorf("graphql %s: encode request: %w", name, err)
	}

	send := func() (*http.Response, error) {
		attempts++
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		for k, v := range c.header {
			httpReq.Header[k] = append([]string(nil), v...)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Accept", "application/json")
		if c.userAgent != "" {
			httpReq.Header.Set("User-Agent", c.userAgent)
		}
		resp, err := c.http.Do(httpReq)
		if err != nil {
			return nil, err
		}
		status = resp.StatusCode
		if isRetryableStatus(resp.StatusCode) {
			io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
			resp.Body.Close()
			return nil, &httpError{
				msg:  fmt.Sprintf("graphql %s: server returned %s", name, resp.Status),
				code: resp.StatusCode,
			}
		}
		return resp, nil
	}

	var resp *http.Response
	if retryable && c.retry != nil {
		resp, err = failsafe.With(c.retry).WithContext(ctx).Get(send)
	} else {
		resp, err = send()
	}
	if err != nil {
		var herr *httpError
		if xerrors.As(err, &herr) {
			return status, attempts, err
		}
		return status, attempts, xerrors.Errorf("graphql %s: %w", name, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return status, attempts, xerrors.Errorf("graphql %s: read response: %w", name, err)
	}
	var gqlResp graphql.Response
	decodeErr := json.Unmarshal(data, &gqlResp)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		herr := &httpError{
			msg:  fmt.Sprintf("graphql %s: server returned %s", name, resp.Status),
			code: resp.StatusCode,
		}
		if decodeErr == nil && len(gqlResp.Errors) > 0 {
			herr.msg += ": "
			herr.cause = graphql.Errors(gqlResp.Errors)
		}
		return status, attempts, herr
	}
	if decodeErr != nil {
		return status, attempts, xerrors.Errorf("graphql %s: decode response: %w", name, decodeErr)
	}
	if out != nil && gqlResp.HasData() {
		if err := json.Unmarshal(gqlResp.Data, out); err != nil {
			return status, attempts, xerrors.Errorf("graphql %s: decode data: %w", name, err)
		}
	}
	if len(gqlResp.Errors) > 0 {
		return status, attempts, xerrors.Errorf("graphql %s: %w", name, graphql.Errors(gqlResp.Errors))
	}
	if !gqlResp.HasData() {
		return status, attempts, xerrors.Errorf("graphql %s: response has no data", name)
	}
	return status, attempts, nil
}

// Outcomes recorded in metrics.
const (
	outcomeSuccess   = "success"
	outcomeGraphQL   = "graphql_error"
	outcomeHTTP      = "http_error"
	outcomeTransport = "transport_error"
)

func outcomeOf(err error) string {
	if err == nil {
		return outcomeSuccess
	}
	var herr *httpError
	if xerrors.As(err, &herr) {
		return outcomeHTTP
	}
	var gqlErrs graphql.Errors
	if xerrors.As(err, &gqlErrs) {
		return outcomeGraphQL
	}
	return outcomeTransport
}

func traceCode(outcome string) int32 {
	switch outcome {
	case outcomeHTTP, outcomeTransport:
		return trace.StatusCodeUnavailable
	default:
		return trace.StatusCodeUnknown
	}
}
