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

// Package workspace is a typed client for the workspace platform's GraphQL
// API: workspaces and their members, pipelines and runs, datasets,
// connections, bucket objects, organizations and legacy DAGs.
//
// Every operation the client sends is one of the embedded documents under
// operations/, validated against the embedded schema and registered in
// Documents. The source text of each request is the canonical form from the
// document map, so servers can allow-list requests by exact text.
package workspace

import (
	"embed"
	"io/fs"
	"sort"
	"sync"

	"github.com/hexaworks/workspace-client/graphql"
	"golang.org/x/xerrors"
)

//go:embed schema.graphql
var schemaSource string

//go:embed operations/*.graphql
var operationFiles embed.FS

// SchemaSource returns the SDL of the workspace API.
func SchemaSource() string {
	return schemaSource
}

// OperationSources returns the contents of the embedded operation files,
// ordered by file name.
func OperationSources() []string {
	names, err := fs.Glob(operationFiles, "operations/*.graphql")
	if err != nil {
		panic(err)
	}
	sort.Strings(names)
	sources := make([]string, 0, len(names))
	for _, name := range names {
		data, err := operationFiles.ReadFile(name)
		if err != nil {
			panic(err)
		}
		sources = append(sources, string(data))
	}
	return sources
}

var compiled struct {
	once   sync.Once
	schema *graphql.Schema
	docs   *graphql.DocumentMap
	err    error
}

func compile() {
	compiled.once.Do(func() {
		schema, err := graphql.ParseSchema(schemaSource)
		if err != nil {
			compiled.err = xerrors.Errorf("workspace schema: %w", err)
			return
		}
		docs, err := graphql.NewDocumentMap(schema, OperationSources()...)
		if err != nil {
			compiled.err = xerrors.Errorf("workspace operations: %w", err)
			return
		}
		compiled.schema = schema
		compiled.docs = docs
	})
	if compiled.err != nil {
		panic(compiled.err)
	}
}

// Schema returns the parsed workspace schema.
func Schema() *graphql.Schema {
	compile()
	return compiled.schema
}

// Documents returns the registry of operations the client can send. It is
// built on first use and shared afterwards.
func Documents() *graphql.DocumentMap {
	compile()
	return compiled.docs
}
