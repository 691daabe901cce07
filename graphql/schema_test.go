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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSchema(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr bool
	}{
		{
			name:    "Empty",
			source:  "",
			wantErr: true,
		},
		{
			name:    "EmptyQuery",
			source:  "type Query {}",
			wantErr: true,
		},
		{
			name:    "SingleStringField",
			source:  "type Query { foo: String }",
			wantErr: false,
		},
		{
			name:    "ScalarType",
			source:  "type Query { foo: Bar }\nscalar Bar",
			wantErr: false,
		},
		{
			name:    "DuplicateTypeName",
			source:  "type Query { foo: String }\nscalar Bar\nscalar Bar",
			wantErr: true,
		},
		{
			name:    "UnknownType",
			source:  "type Query { foo: Bar }",
			wantErr: true,
		},
		{
			name:    "OperationsNotAllowed",
			source:  "type Query { foo: String }\nquery { foo }",
			wantErr: true,
		},
		{
			name:    "ReservedFieldName",
			source:  "type Query { __foo: String }",
			wantErr: true,
		},
		{
			name:    "ReservedTypeName",
			source:  "type Query { foo: String }\nscalar __Foo\n",
			wantErr: true,
		},
		{
			name:    "ScalarQuery",
			source:  "scalar Query",
			wantErr: true,
		},
		{
			name:    "BuiltinConflict",
			source:  "type Query { foo: String }\nscalar String",
			wantErr: true,
		},
		{
			name:    "DuplicateFieldName",
			source:  "type Query { foo: String, foo: String }",
			wantErr: true,
		},
		{
			name:    "Arguments",
			source:  "type Query { foo(bar: Boolean!): String }",
			wantErr: false,
		},
		{
			name:    "Arguments/UnknownType",
			source:  "type Query { foo(bar: Bar): String }",
			wantErr: true,
		},
		{
			name:    "Arguments/DuplicateNames",
			source:  "type Query { foo(bar: Boolean!, bar: Boolean!): String }",
			wantErr: true,
		},
		{
			name:    "Arguments/ReservedName",
			source:  "type Query { foo(__bar: Boolean!): String }",
			wantErr: true,
		},
		{
			name:    "Arguments/OutputType",
			source:  "type Query { foo(bar: Bar): String }\ntype Bar { xyzzy: Boolean! }",
			wantErr: true,
		},
		{
			name:    "Arguments/DefaultValue",
			source:  "type Query { foo(bar: Boolean! = true): String }",
			wantErr: false,
		},
		{
			name:    "Arguments/DefaultValue/InvalidType",
			source:  "type Query { foo(bar: Boolean! = 123): String }",
			wantErr: true,
		},
		{
			name:    "Arguments/DefaultValue/NullForNullable",
			source:  "type Query { foo(bar: Boolean = null): String }",
			wantErr: false,
		},
		{
			name:    "Arguments/DefaultValue/NullForNonNullable",
			source:  "type Query { foo(bar: Boolean! = null): String }",
			wantErr: true,
		},
		{
			name:    "Enum",
			source:  "type Query { role: WorkspaceMembershipRole! }\nenum WorkspaceMembershipRole { ADMIN EDITOR VIEWER }",
			wantErr: false,
		},
		{
			name:    "Enum/DuplicateValue",
			source:  "type Query { role: Role }\nenum Role { ADMIN ADMIN }",
			wantErr: true,
		},
		{
			name:    "Enum/DefaultValue",
			source:  "type Query { members(role: Role = VIEWER): [String!]! }\nenum Role { ADMIN VIEWER }",
			wantErr: false,
		},
		{
			name:    "Enum/DefaultValue/Unknown",
			source:  "type Query { members(role: Role = OWNER): [String!]! }\nenum Role { ADMIN VIEWER }",
			wantErr: true,
		},
		{
			name:    "InputObject/FieldDefaultsReferenceLaterTypes",
			source:  "type Query { runs(filter: RunFilter): [String] }\ninput RunFilter { status: RunStatus = queued, page: Int = 1 }\nenum RunStatus { queued running }",
			wantErr: false,
		},
		{
			name:    "InputObject/OutputFieldType",
			source:  "type Query { foo(in: In): String }\ninput In { bar: Bar }\ntype Bar { x: Int }",
			wantErr: true,
		},
		{
			name:    "FragmentsNotAllowed",
			source:  "type Query { foo: String }\nfragment F on Query { foo }",
			wantErr: true,
		},
		{
			name:    "MutationMustBeObject",
			source:  "type Query { foo: String }\nscalar Mutation",
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseSchema(test.source)
			if err != nil {
				t.Logf("Error: %v", err)
				if !test.wantErr {
					t.Fail()
				}
			} else if test.wantErr {
				t.Error("ParseSchema did not return error")
			}
		})
	}
}

func TestSchemaType(t *testing.T) {
	schema, err := ParseSchema(`
"""
Root query
"""
type Query {
  "Workspaces the user can see"
  workspaces(page: Int = 1, perPage: Int): WorkspacePage!
  legacy: String @deprecated(reason: "Use workspaces")
}

type WorkspacePage {
  items: [Workspace!]!
  totalPages: Int!
}

type Workspace {
  slug: String!
  countries: [String!]
}

enum Role { ADMIN VIEWER }

input CreateWorkspaceInput {
  name: String!
  role: Role = VIEWER
}
`)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := schema.TypeNames(), []string{"CreateWorkspaceInput", "Query", "Role", "Workspace", "WorkspacePage"}; !cmp.Equal(got, want) {
		t.Errorf("TypeNames() = %q; want %q", got, want)
	}
	if got := schema.QueryType(); got != "Query" {
		t.Errorf("QueryType() = %q; want \"Query\"", got)
	}
	if got := schema.MutationType(); got != "" {
		t.Errorf("MutationType() = %q; want \"\"", got)
	}
	if info := schema.Type("Nope"); info != nil {
		t.Errorf("Type(\"Nope\") = %+v; want nil", info)
	}

	tests := []struct {
		name string
		want *TypeInfo
	}{
		{
			name: "Query",
			want: &TypeInfo{
				Name:        "Query",
				Kind:        ObjectKind,
				Description: "Root query",
				Fields: []*FieldInfo{
					{
						Name:        "workspaces",
						Description: "Workspaces the user can see",
						Type:        &TypeRef{Name: "WorkspacePage", NonNull: true},
						Args: []*InputValueInfo{
							{Name: "page", Type: &TypeRef{Name: "Int"}, DefaultValue: "1"},
							{Name: "perPage", Type: &TypeRef{Name: "Int"}},
						},
					},
					{
						Name:              "legacy",
						Type:              &TypeRef{Name: "String"},
						DeprecationReason: "Use workspaces",
					},
				},
			},
		},
		{
			name: "Workspace",
			want: &TypeInfo{
				Name: "Workspace",
				Kind: ObjectKind,
				Fields: []*FieldInfo{
					{Name: "slug", Type: &TypeRef{Name: "String", NonNull: true}},
					{Name: "countries", Type: &TypeRef{Elem: &TypeRef{Name: "String", NonNull: true}}},
				},
			},
		},
		{
			name: "Role",
			want: &TypeInfo{
				Name:       "Role",
				Kind:       EnumKind,
				EnumValues: []string{"ADMIN", "VIEWER"},
			},
		},
		{
			name: "CreateWorkspaceInput",
			want: &TypeInfo{
				Name: "CreateWorkspaceInput",
				Kind: InputObjectKind,
				InputFields: []*InputValueInfo{
					{Name: "name", Type: &TypeRef{Name: "String", NonNull: true}},
					{Name: "role", Type: &TypeRef{Name: "Role"}, DefaultValue: "VIEWER"},
				},
			},
		},
		{
			name: "Boolean",
			want: &TypeInfo{
				Name:    "Boolean",
				Kind:    ScalarKind,
				Builtin: true,
			},
		},
	}
	for _, test := range tests {
		got := schema.Type(test.name)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Type(%q) (-want +got):\n%s", test.name, diff)
		}
	}
}

func TestTypeRefString(t *testing.T) {
	tests := []struct {
		ref  *TypeRef
		want string
	}{
		{&TypeRef{Name: "ID"}, "ID"},
		{&TypeRef{Name: "ID", NonNull: true}, "ID!"},
		{&TypeRef{Elem: &TypeRef{Name: "ID", NonNull: true}}, "[ID!]"},
		{&TypeRef{Elem: &TypeRef{Elem: &TypeRef{Name: "Int"}}, NonNull: true}, "[[Int]]!"},
	}
	for _, test := range tests {
		if got := test.ref.String(); got != test.want {
			t.Errorf("%+v.String() = %q; want %q", test.ref, got, test.want)
		}
		if got := test.ref.NamedType(); got == "" {
			t.Errorf("%+v.NamedType() = \"\"", test.ref)
		}
	}
}
