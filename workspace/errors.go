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
	"net/http"
	"strings"

	"github.com/hexaworks/workspace-client/graphql"
	"github.com/hexaworks/workspace-client/graphqlhttp"
	"golang.org/x/xerrors"
)

// ErrNotFound is returned by queries when the requested object does not
// exist or is not visible to the user.
var ErrNotFound = xerrors.New("not found")

// Error codes shared by many mutations.
const (
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeNotFound         = "NOT_FOUND"
)

// MutationError is returned when a mutation reports success: false. Codes
// holds the values of the result's errors list.
type MutationError struct {
	Mutation string
	Codes    []string
}

func (e *MutationError) Error() string {
	if len(e.Codes) == 0 {
		return e.Mutation + ": unsuccessful"
	}
	return e.Mutation + ": " + strings.Join(e.Codes, ", ")
}

// Has reports whether code is one of e.Codes.
func (e *MutationError) Has(code string) bool {
	for _, c := range e.Codes {
		if c == code {
			return true
		}
	}
	return false
}

func mutationError[E ~string](mutation string, success bool, errs []E) error {
	if success {
		return nil
	}
	codes := make([]string, len(errs))
	for i, e := range errs {
		codes[i] = string(e)
	}
	return &MutationError{Mutation: mutation, Codes: codes}
}

// IsPermissionDenied reports whether err means the user lacks a permission,
// either as a mutation error code, a GraphQL error code or an HTTP status.
func IsPermissionDenied(err error) bool {
	if err == nil {
		return false
	}
	var merr *MutationError
	if xerrors.As(err, &merr) && merr.Has(CodePermissionDenied) {
		return true
	}
	var gqlErrs graphql.Errors
	if xerrors.As(err, &gqlErrs) && (gqlErrs.HasCode(CodePermissionDenied) || gqlErrs.HasCode("FORBIDDEN")) {
		return true
	}
	code := graphqlhttp.StatusCode(err)
	return code == http.StatusForbidden || code == http.StatusUnauthorized
}

// IsNotFound reports whether err means the target object does not exist.
// Mutation codes like "PIPELINE_NOT_FOUND" count.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if xerrors.Is(err, ErrNotFound) {
		return true
	}
	var merr *MutationError
	if xerrors.As(err, &merr) {
		for _, c := range merr.Codes {
			if c == CodeNotFound || strings.HasSuffix(c, "_"+CodeNotFound) {
				return true
			}
		}
	}
	var gqlErrs graphql.Errors
	return xerrors.As(err, &gqlErrs) && gqlErrs.HasCode(CodeNotFound)
}
