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

package graphql

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/hexaworks/workspace-client/internal/gqlang"
	"golang.org/x/xerrors"
)

// OperationType represents the keywords used to declare operations.
type OperationType int

// Types of operations.
const (
	QueryOperation OperationType = 1 + iota
	MutationOperation
	SubscriptionOperation
)

func operationTypeFromAST(typ gqlang.OperationType) OperationType {
	switch typ {
	case gqlang.Query:
		return QueryOperation
	case gqlang.Mutation:
		return MutationOperation
	case gqlang.Subscription:
		return SubscriptionOperation
	default:
		panic("unknown operation type")
	}
}

// String returns the keyword corresponding to the operation type.
func (typ OperationType) String() string {
	switch typ {
	case QueryOperation:
		return "query"
	case MutationOperation:
		return "mutation"
	case SubscriptionOperation:
		return "subscription"
	default:
		return fmt.Sprintf("OperationType(%d)", int(typ))
	}
}

// Request holds the inputs for a GraphQL operation as sent over the wire.
type Request struct {
	// Query is the GraphQL document text.
	Query string `json:"query"`
	// If OperationName is not empty, then the operation with the given name will
	// be executed. Otherwise, the query must only include a single operation.
	OperationName string `json:"operationName,omitempty"`
	// Variables specifies the values of the operation's variables. It must
	// marshal to a JSON object. Servers decode it as map[string]interface{}.
	Variables interface{} `json:"variables,omitempty"`
	// Document is the pre-parsed form of Query, if known. It is never sent.
	Document *Document `json:"-"`
}

// OperationType returns the type of the operation the request will execute
// or zero if it cannot be determined.
func (req Request) OperationType() OperationType {
	if req.Document != nil {
		return req.Document.TypeOf(req.OperationName)
	}
	doc, errs := gqlang.Parse(req.Query)
	if len(errs) > 0 {
		return 0
	}
	op := doc.FindOperation(req.OperationName)
	if op == nil {
		return 0
	}
	return operationTypeFromAST(op.Type)
}

// Response holds the output of a GraphQL operation.
type Response struct {
	// Data is the raw JSON of the "data" member. Use HasData to distinguish
	// a present object from an absent or null member.
	Data       json.RawMessage        `json:"data,omitempty"`
	Errors     []*ResponseError       `json:"errors,omitempty"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

// HasData reports whether the response carries a non-null data member.
func (resp Response) HasData() bool {
	d := bytes.TrimSpace(resp.Data)
	return len(d) > 0 && !bytes.Equal(d, []byte("null"))
}

// MarshalJSON converts the response to JSON format.
func (resp Response) MarshalJSON() ([]byte, error) {
	var buf []byte
	buf = append(buf, '{')
	if len(resp.Errors) > 0 {
		buf = append(buf, `"errors":`...)
		errorsData, err := json.Marshal(resp.Errors)
		if err != nil {
			return buf, xerrors.Errorf("marshal response: %w", err)
		}
		buf = append(buf, errorsData...)
	}
	if resp.HasData() {
		if len(resp.Errors) > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, `"data":`...)
		buf = append(buf, bytes.TrimSpace(resp.Data)...)
	}
	if len(resp.Extensions) > 0 {
		if len(buf) > 1 {
			buf = append(buf, ',')
		}
		buf = append(buf, `"extensions":`...)
		ext, err := json.Marshal(resp.Extensions)
		if err != nil {
			return buf, xerrors.Errorf("marshal response: %w", err)
		}
		buf = append(buf, ext...)
	}
	buf = append(buf, '}')
	return buf, nil
}

// ResponseError describes an error that occurred during the processing of a
// GraphQL operation.
type ResponseError struct {
	Message    string                 `json:"message"`
	Locations  []Location             `json:"locations,omitempty"`
	Path       []PathSegment          `json:"path,omitempty"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

// Error returns e.Message.
func (e *ResponseError) Error() string {
	return e.Message
}

// Code returns the string value of the "code" extension or the empty string.
func (e *ResponseError) Code() string {
	code, _ := e.Extensions["code"].(string)
	return code
}

// Errors is a non-empty list of errors returned by a GraphQL server.
type Errors []*ResponseError

// Error joins the messages of the errors, prefixing each with its path when
// present.
func (errs Errors) Error() string {
	sb := new(strings.Builder)
	for i, e := range errs {
		if i > 0 {
			sb.WriteString("; ")
		}
		if len(e.Path) > 0 {
			for j, seg := range e.Path {
				if j > 0 {
					sb.WriteByte('.')
				}
				sb.WriteString(seg.String())
			}
			sb.WriteString(": ")
		}
		sb.WriteString(e.Message)
	}
	return sb.String()
}

// HasCode reports whether any error in the list has the given "code"
// extension.
func (errs Errors) HasCode(code string) bool {
	for _, e := range errs {
		if e.Code() == code {
			return true
		}
	}
	return false
}

func toResponseError(e error) *ResponseError {
	re, ok := e.(*ResponseError)
	if ok {
		// e is a *ResponseError.
		return re
	}
	// Build a new response error.
	re = &ResponseError{
		Message: e.Error(),
	}
	unknownChain := e
	for ; e != nil; e = xerrors.Unwrap(e) {
		switch e := e.(type) {
		case *ResponseError:
			re.Locations = append(re.Locations, e.Locations...)
			re.Path = append(re.Path, e.Path...)
			unknownChain = nil // leaf
		case *fieldError:
			re.Path = append(re.Path, PathSegment{Field: e.key})
			re.Locations = append(re.Locations, e.locs...)
			unknownChain = e.Unwrap()
		}
	}
	if pos, ok := gqlang.ErrorPosition(unknownChain); ok {
		re.Locations = []Location{astPositionToLocation(pos)}
	}
	return re
}

func hasLocation(e error) bool {
	var re *ResponseError
	if xerrors.As(e, &re) && len(re.Locations) > 0 {
		return true
	}
	var fe *fieldError
	if xerrors.As(e, &fe) {
		return true
	}
	_, ok := gqlang.ErrorPos(e)
	return ok
}

type fieldError struct {
	key  string
	locs []Location
	err  error
}

func wrapFieldError(key string, loc Location, err error) error {
	if key == "" {
		panic("empty key")
	}
	if loc.Line < 1 || loc.Column < 1 {
		panic("invalid location")
	}
	var locs []Location
	if !hasLocation(err) {
		locs = []Location{loc}
	}
	return &fieldError{
		key:  key,
		locs: locs,
		err:  err,
	}
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.key, e.err)
}

func (e *fieldError) Unwrap() error {
	return e.err
}

// Location identifies a position in a GraphQL document. Line and column
// are 1-based.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func astPositionToLocation(pos gqlang.Position) Location {
	return Location{
		Line:   pos.Line,
		Column: pos.Column,
	}
}

// String returns the location in the form "line:col".
func (loc Location) String() string {
	return fmt.Sprintf("%d:%d", loc.Line, loc.Column)
}

// PathSegment identifies a field or array index in an output object.
type PathSegment struct {
	Field     string
	ListIndex int
}

// String returns the segment's index or field name as a string.
func (seg PathSegment) String() string {
	if seg.Field == "" {
		return strconv.Itoa(seg.ListIndex)
	}
	return seg.Field
}

// MarshalJSON converts the segment to a JSON integer or a JSON string.
func (seg PathSegment) MarshalJSON() ([]byte, error) {
	if seg.Field == "" {
		return strconv.AppendInt(nil, int64(seg.ListIndex), 10), nil
	}
	return json.Marshal(seg.Field)
}

// UnmarshalJSON converts JSON strings into field segments and JSON numbers into
// list index segments.
func (seg *PathSegment) UnmarshalJSON(data []byte) error {
	if !bytes.HasPrefix(data, []byte(`"`)) {
		i, err := json.Number(string(data)).Int64()
		if err != nil {
			return err
		}
		seg.ListIndex = int(i)
		return nil
	}
	err := json.Unmarshal(data, &seg.Field)
	return err
}
