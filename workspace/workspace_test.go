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
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hexaworks/workspace-client/graphql"
	"github.com/vektah/gqlparser/v2"
	gqlast "github.com/vektah/gqlparser/v2/ast"
)

var wantQueries = []string{
	"BucketObjects",
	"Countries",
	"DAG",
	"DAGs",
	"Dataset",
	"DatasetVersionFiles",
	"Me",
	"Organizations",
	"Pipeline",
	"PipelineRun",
	"PipelineRuns",
	"Workspace",
	"WorkspaceConnections",
	"WorkspaceDatasets",
	"WorkspaceMembers",
	"WorkspacePipelines",
	"Workspaces",
}

var wantMutations = []string{
	"CreateBucketFolder",
	"CreateConnection",
	"CreateDataset",
	"CreateDatasetVersion",
	"CreateWorkspace",
	"DeleteBucketObject",
	"DeleteConnection",
	"DeleteDataset",
	"DeletePipeline",
	"DeleteWorkspace",
	"InviteWorkspaceMember",
	"PrepareObjectDownload",
	"PrepareObjectUpload",
	"RunDAG",
	"RunPipeline",
	"StopPipeline",
	"UpdateConnection",
	"UpdateWorkspace",
}

func TestDocuments(t *testing.T) {
	docs := Documents()
	if got, want := docs.Len(), len(wantQueries)+len(wantMutations); got != want {
		t.Errorf("Documents().Len() = %d; want %d", got, want)
	}
	for _, name := range wantQueries {
		doc := docs.Operation(name)
		if doc == nil {
			t.Errorf("query %s not registered", name)
			continue
		}
		if got := doc.TypeOf(name); got != graphql.QueryOperation {
			t.Errorf("%s is a %v; want query", name, got)
		}
	}
	for _, name := range wantMutations {
		doc := docs.Operation(name)
		if doc == nil {
			t.Errorf("mutation %s not registered", name)
			continue
		}
		if got := doc.TypeOf(name); got != graphql.MutationOperation {
			t.Errorf("%s is a %v; want mutation", name, got)
		}
	}
	for _, name := range docs.Names() {
		doc := docs.Operation(name)
		if docs.Lookup(doc.Source()) != doc {
			t.Errorf("Lookup(%s source) did not return the %s document", name, name)
		}
		if !strings.HasSuffix(doc.Source(), "}\n") {
			t.Errorf("%s source does not end with a closing brace and newline", name)
		}
	}
}

func TestDocumentsAreReproducible(t *testing.T) {
	schema, err := graphql.ParseSchema(SchemaSource())
	if err != nil {
		t.Fatal(err)
	}
	sources := OperationSources()
	// Feed the files in reverse to make sure input order does not matter.
	for i, j := 0, len(sources)-1; i < j; i, j = i+1, j-1 {
		sources[i], sources[j] = sources[j], sources[i]
	}
	again, err := graphql.NewDocumentMap(schema, sources...)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Documents().Names(), again.Names()); diff != "" {
		t.Fatalf("names (-want +got):\n%s", diff)
	}
	for _, name := range again.Names() {
		want := Documents().Operation(name).Source()
		if got := again.Operation(name).Source(); got != want {
			t.Errorf("%s source differs between builds (-want +got):\n%s", name, cmp.Diff(want, got))
		}
	}
}

func TestDocumentFragments(t *testing.T) {
	tests := []struct {
		operation string
		want      []string
	}{
		{"Countries", nil},
		{"Me", []string{"UserParts"}},
		{"PipelineRuns", []string{"PipelineRunParts", "UserParts"}},
		{"Dataset", []string{"DatasetParts", "DatasetVersionParts", "UserParts"}},
		{"RunDAG", []string{"DAGRunParts"}},
	}
	for _, test := range tests {
		got := Documents().Operation(test.operation).FragmentNames()
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%s fragments (-want +got):\n%s", test.operation, diff)
		}
	}
}

// TestDocumentsAgainstReferenceParser checks the schema and every document
// with an independent GraphQL implementation.
func TestDocumentsAgainstReferenceParser(t *testing.T) {
	schema, err := gqlparser.LoadSchema(&gqlast.Source{Name: "schema.graphql", Input: SchemaSource()})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range Documents().Names() {
		if _, errs := gqlparser.LoadQuery(schema, Documents().Operation(name).Source()); len(errs) > 0 {
			t.Errorf("%s: %v", name, errs)
		}
	}
}

func TestSchemaTypes(t *testing.T) {
	schema := Schema()
	if got := schema.MutationType(); got != "Mutation" {
		t.Errorf("MutationType() = %q; want \"Mutation\"", got)
	}
	role := schema.Type("WorkspaceMembershipRole")
	if role == nil {
		t.Fatal("WorkspaceMembershipRole missing")
	}
	var values []string
	for _, v := range workspaceMembershipRoleValues {
		values = append(values, string(v))
	}
	if diff := cmp.Diff(role.EnumValues, values); diff != "" {
		t.Errorf("WorkspaceMembershipRole values (-schema +go):\n%s", diff)
	}
	// Every mutation result carries a success flag and an error enum list.
	for _, f := range schema.Type("Mutation").Fields {
		result := schema.Type(f.Type.NamedType())
		if result.Field("success") == nil {
			t.Errorf("%s has no success field", result.Name)
		}
		errField := result.Field("errors")
		if errField == nil {
			t.Errorf("%s has no errors field", result.Name)
			continue
		}
		if enum := schema.Type(errField.Type.NamedType()); enum == nil || enum.Kind != graphql.EnumKind {
			t.Errorf("%s.errors is %v; want a list of enum values", result.Name, errField.Type)
		}
	}
}

func TestEnumUnmarshal(t *testing.T) {
	var run struct {
		Status  PipelineRunStatus   `json:"status"`
		Trigger *PipelineRunTrigger `json:"trigger"`
	}
	if err := json.Unmarshal([]byte(`{"status":"running","trigger":"webhook"}`), &run); err != nil {
		t.Fatal(err)
	}
	if run.Status != PipelineRunStatusRunning {
		t.Errorf("Status = %q; want %q", run.Status, PipelineRunStatusRunning)
	}
	if run.Trigger == nil || *run.Trigger != PipelineRunTriggerWebhook {
		t.Errorf("Trigger = %v; want %q", run.Trigger, PipelineRunTriggerWebhook)
	}
	if err := json.Unmarshal([]byte(`{"status":"exploded"}`), &run); err == nil {
		t.Error("unknown status accepted")
	}
	if ConnectionType("MYSQL").Valid() {
		t.Error(`ConnectionType("MYSQL").Valid() = true`)
	}
	if !ConnectionTypeDHIS2.Valid() {
		t.Error("ConnectionTypeDHIS2.Valid() = false")
	}
}

func TestBigInt(t *testing.T) {
	tests := []struct {
		json    string
		want    BigInt
		wantErr bool
	}{
		{json: `42`, want: 42},
		{json: `"9007199254740993"`, want: 9007199254740993},
		{json: `"-7"`, want: -7},
		{json: `1.5`, wantErr: true},
		{json: `"ten"`, wantErr: true},
	}
	for _, test := range tests {
		var got BigInt
		err := json.Unmarshal([]byte(test.json), &got)
		if test.wantErr {
			if err == nil {
				t.Errorf("Unmarshal(%s) = %d, <nil>; want error", test.json, got)
			}
			continue
		}
		if err != nil || got != test.want {
			t.Errorf("Unmarshal(%s) = %d, %v; want %d, <nil>", test.json, got, err, test.want)
		}
	}
	data, err := json.Marshal(BigInt(9007199254740993))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `"9007199254740993"`; got != want {
		t.Errorf("Marshal = %s; want %s", got, want)
	}
}

func TestInputEncoding(t *testing.T) {
	name := "Renamed"
	got, err := json.Marshal(inputVars{UpdateWorkspaceInput{Slug: "demo", Name: &name}})
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"input":{"slug":"demo","name":"Renamed"}}`; string(got) != want {
		t.Errorf("Marshal = %s; want %s", got, want)
	}
}
