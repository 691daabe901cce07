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
	"fmt"
	"sort"
	"strings"

	"github.com/hexaworks/workspace-client/internal/gqlang"
	"golang.org/x/xerrors"
)

// Document is an executable GraphQL document that has been validated against
// a schema. A Document is immutable and safe to use from multiple goroutines.
type Document struct {
	source string
	doc    *gqlang.Document
}

// Source returns the text the document was parsed from.
func (d *Document) Source() string {
	return d.source
}

// String returns the document in canonical form.
func (d *Document) String() string {
	return gqlang.Print(d.doc)
}

// Operations returns the names of the operations in the document in the order
// they appear. An anonymous operation is reported as the empty string.
func (d *Document) Operations() []string {
	var names []string
	for _, defn := range d.doc.Definitions {
		if defn.Operation != nil {
			names = append(names, defn.Operation.Name.String())
		}
	}
	return names
}

// OperationName returns the name of the document's operation if the document
// contains exactly one operation. Otherwise it returns the empty string.
func (d *Document) OperationName() string {
	ops := d.Operations()
	if len(ops) != 1 {
		return ""
	}
	return ops[0]
}

// TypeOf returns the type of the operation with the given name or zero if the
// operation does not exist. An empty name selects the lone operation.
func (d *Document) TypeOf(operationName string) OperationType {
	op := d.doc.FindOperation(operationName)
	if op == nil {
		return 0
	}
	return operationTypeFromAST(op.Type)
}

// FragmentNames returns the names of the fragments defined in the document,
// sorted lexicographically.
func (d *Document) FragmentNames() []string {
	var names []string
	for _, defn := range d.doc.Definitions {
		if defn.Fragment != nil {
			names = append(names, defn.Fragment.Name.Value)
		}
	}
	sort.Strings(names)
	return names
}

// DocumentMap is a registry of validated operations. Each operation is stored
// as a self-contained document: the operation followed by every fragment it
// transitively spreads, in name order, separated by blank lines.
//
// Clients send Document.Source() as the query text, so the map doubles as an
// allow list on the server side.
type DocumentMap struct {
	byName   map[string]*Document
	bySource map[string]*Document
	names    []string
}

// NewDocumentMap splits the given sources into operations and fragments and
// builds one document per operation. Operations must be named and names must
// be unique across all sources. Every fragment must be spread by at least one
// operation. Sources are whole files, so the per-request size limit of
// gqlang.Parse does not apply to them. Every resulting document is validated
// against schema; all problems are reported together.
func NewDocumentMap(schema *Schema, sources ...string) (*DocumentMap, error) {
	ops := make(map[string]*gqlang.Operation)
	frags := make(map[string]*gqlang.FragmentDefinition)
	fragPos := make(map[string]string)
	var errs []string
	for i, src := range sources {
		doc, parseErrs := gqlang.ParseWithLimit(src, 0)
		if len(parseErrs) > 0 {
			errs = append(errs, joinPositionedErrors(fmt.Sprintf("source #%d:", i+1), parseErrs))
			continue
		}
		for _, defn := range doc.Definitions {
			switch {
			case defn.Operation != nil:
				op := defn.Operation
				if op.Name == nil {
					errs = append(errs, fmt.Sprintf("source #%d: %v: operations must be named", i+1, op.Start.ToPosition(src)))
					continue
				}
				if ops[op.Name.Value] != nil {
					errs = append(errs, fmt.Sprintf("source #%d: %v: multiple operations named %s", i+1, op.Name.Start.ToPosition(src), op.Name.Value))
					continue
				}
				ops[op.Name.Value] = op
			case defn.Fragment != nil:
				frag := defn.Fragment
				if frags[frag.Name.Value] != nil {
					errs = append(errs, fmt.Sprintf("source #%d: %v: multiple fragments named %s", i+1, frag.Name.Start.ToPosition(src), frag.Name.Value))
					continue
				}
				frags[frag.Name.Value] = frag
				fragPos[frag.Name.Value] = fmt.Sprintf("source #%d: %v", i+1, frag.Name.Start.ToPosition(src))
			default:
				errs = append(errs, fmt.Sprintf("source #%d: %v: not an operation nor a fragment", i+1, defn.Start().ToPosition(src)))
			}
		}
	}
	if len(errs) > 0 {
		return nil, xerrors.Errorf("build document map:\n%s", strings.Join(errs, "\n"))
	}

	m := &DocumentMap{
		byName:   make(map[string]*Document, len(ops)),
		bySource: make(map[string]*Document, len(ops)),
	}
	for name := range ops {
		m.names = append(m.names, name)
	}
	sort.Strings(m.names)
	spread := make(map[string]bool)
	for _, name := range m.names {
		op := ops[name]
		used, missing := fragmentClosure(op.SelectionSet, frags)
		for _, fragName := range used {
			spread[fragName] = true
		}
		if len(missing) > 0 {
			errs = append(errs, fmt.Sprintf("operation %s: undefined fragments %s", name, strings.Join(missing, ", ")))
			continue
		}
		parts := []string{gqlang.PrintOperation(op)}
		for _, fragName := range used {
			parts = append(parts, gqlang.PrintFragment(frags[fragName]))
		}
		source := strings.Join(parts, "\n\n") + "\n"
		doc, validateErrs := schema.Validate(source)
		if len(validateErrs) > 0 {
			for _, err := range validateErrs {
				msg := err.Message
				if len(err.Locations) > 0 {
					msg = err.Locations[0].String() + ": " + msg
				}
				errs = append(errs, "operation "+name+": "+msg)
			}
			continue
		}
		m.byName[name] = doc
		m.bySource[source] = doc
	}
	unused := make([]string, 0, len(frags))
	for fragName := range frags {
		if !spread[fragName] {
			unused = append(unused, fragName)
		}
	}
	sort.Strings(unused)
	for _, fragName := range unused {
		errs = append(errs, fmt.Sprintf("%s: fragment %s is never used", fragPos[fragName], fragName))
	}
	if len(errs) > 0 {
		return nil, xerrors.Errorf("build document map:\n%s", strings.Join(errs, "\n"))
	}
	return m, nil
}

// fragmentClosure returns the sorted names of the fragments reachable from
// set and the sorted names of spread fragments that are not defined.
func fragmentClosure(set *gqlang.SelectionSet, frags map[string]*gqlang.FragmentDefinition) (used, missing []string) {
	seen := make(map[string]bool)
	var visit func(*gqlang.SelectionSet)
	visit = func(set *gqlang.SelectionSet) {
		if set == nil {
			return
		}
		for _, sel := range set.Sel {
			switch {
			case sel.Field != nil:
				visit(sel.Field.SelectionSet)
			case sel.InlineFragment != nil:
				visit(sel.InlineFragment.SelectionSet)
			case sel.FragmentSpread != nil:
				name := sel.FragmentSpread.Name.Value
				if _, done := seen[name]; done {
					continue
				}
				frag := frags[name]
				seen[name] = frag != nil
				if frag != nil {
					visit(frag.SelectionSet)
				}
			}
		}
	}
	visit(set)
	for name, ok := range seen {
		if ok {
			used = append(used, name)
		} else {
			missing = append(missing, name)
		}
	}
	sort.Strings(used)
	sort.Strings(missing)
	return used, missing
}

// Lookup returns the document whose source is exactly the given text or nil.
func (m *DocumentMap) Lookup(source string) *Document {
	return m.bySource[source]
}

// Operation returns the document for the named operation or nil.
func (m *DocumentMap) Operation(name string) *Document {
	return m.byName[name]
}

// Names returns the operation names in the map, sorted lexicographically.
func (m *DocumentMap) Names() []string {
	return append([]string(nil), m.names...)
}

// Len returns the number of operations in the map.
func (m *DocumentMap) Len() int {
	return len(m.names)
}
