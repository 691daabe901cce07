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

package workspace

import (
	"context"
	"net/http"
	"time"

	"github.com/hexaworks/workspace-client/graphql"
	"github.com/hexaworks/workspace-client/graphqlhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// DefaultUserAgent is sent when Options.UserAgent is empty.
const DefaultUserAgent = "workspace-client-go"

// Options holds optional parameters for NewClient.
type Options struct {
	// HTTPClient is the base client. The bearer token is added on top of its
	// transport. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Timeout bounds each HTTP attempt. Zero means no timeout.
	Timeout   time.Duration
	UserAgent string
	Retry     graphqlhttp.RetryConfig
	Logger    logrus.FieldLogger
	Metrics   *graphqlhttp.Metrics
}

// Client calls the workspace API. It is safe to use from multiple
// goroutines.
type Client struct {
	gql *graphqlhttp.Client
}

// NewClient returns a client for the GraphQL endpoint at the given URL that
// authenticates with token as an OAuth2 bearer token. An empty token sends
// anonymous requests. opts may be nil.
func NewClient(endpoint, token string, opts *Options) *Client {
	if opts == nil {
		opts = new(Options)
	}
	base := opts.HTTPClient
	if base == nil {
		base = http.DefaultClient
	}
	httpClient := base
	if token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: token,
			TokenType:   "Bearer",
		}))
	}
	if opts.Timeout > 0 {
		c := *httpClient
		c.Timeout = opts.Timeout
		httpClient = &c
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		gql: graphqlhttp.NewClient(endpoint, &graphqlhttp.ClientOptions{
			HTTPClient: httpClient,
			UserAgent:  userAgent,
			Retry:      opts.Retry,
			Logger:     opts.Logger,
			Metrics:    opts.Metrics,
		}),
	}
}

// do sends the registered operation with the given name.
func (c *Client) do(ctx context.Context, operation string, vars interface{}, out interface{}) error {
	doc := Documents().Operation(operation)
	if doc == nil {
		panic("workspace: operation " + operation + " not registered")
	}
	return c.gql.Do(ctx, graphql.Request{
		Query:         doc.Source(),
		OperationName: operation,
		Variables:     vars,
		Document:      doc,
	}, out)
}

// PageOptions selects a page of a paginated list. Zero fields use the
// server's defaults (page 1, 15 items per page).
type PageOptions struct {
	Page    int `json:"page,omitempty"`
	PerPage int `json:"perPage,omitempty"`
}
