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
	"net/http"
	"time"

	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"golang.org/x/xerrors"
)

// Retry defaults.
const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = 100 * time.Millisecond
	DefaultMaxDelay   = 5 * time.Second
)

// RetryConfig controls retries of query operations.
type RetryConfig struct {
	// MaxRetries is the number of retries after the first attempt.
	// Zero means DefaultMaxRetries and a negative value disables retries.
	MaxRetries int
	// BaseDelay is the first backoff delay. It doubles on every retry up to
	// MaxDelay, with 10% jitter.
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

func (cfg RetryConfig) normalize() RetryConfig {
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = DefaultMaxDelay
	}
	if cfg.MaxDelay < cfg.BaseDelay {
		cfg.MaxDelay = cfg.BaseDelay
	}
	return cfg
}

// newRetryPolicy returns nil if retries are disabled.
//
//nolint:bodyclose // *http.Response is a type parameter here
func newRetryPolicy(cfg RetryConfig) retrypolicy.RetryPolicy[*http.Response] {
	cfg = cfg.normalize()
	if cfg.MaxRetries < 0 {
		return nil
	}
	return retrypolicy.NewBuilder[*http.Response]().
		WithBackoff(cfg.BaseDelay, cfg.MaxDelay).
		WithMaxRetries(cfg.MaxRetries).
		WithJitterFactor(0.1).
		HandleIf(func(_ *http.Response, err error) bool {
			return shouldRetry(err)
		}).
		ReturnLastFailure().
		Build()
}

// shouldRetry reports whether a failed attempt may be repeated. Responses
// with a retryable status are turned into errors before they get here.
func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if xerrors.Is(err, context.Canceled) || xerrors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var herr *httpError
	if xerrors.As(err, &herr) {
		return isRetryableStatus(herr.code)
	}
	return true
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
