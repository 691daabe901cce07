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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func execute(t *testing.T, args ...string) (string, *test.Hook, error) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	var out bytes.Buffer
	cmd := newCommand(&out, logger)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), hook, err
}

func TestGenerateToStdout(t *testing.T) {
	out, _, err := execute(t, "--package", "wsql")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"// Code generated by workspaceql-gen. DO NOT EDIT.",
		"package wsql",
		`"github.com/google/uuid"`,
		"type MeResult struct",
		"type RunPipelineVariables struct",
		"var Documents = map[string]string{",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
	again, _, err := execute(t, "--package", "wsql")
	if err != nil {
		t.Fatal(err)
	}
	if out != again {
		t.Error("two runs produced different output")
	}
}

func TestCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspaceql.go")
	if _, hook, err := execute(t, "--out", path); err != nil {
		t.Fatal(err)
	} else if entry := hook.LastEntry(); entry == nil || entry.Data["file"] != path {
		t.Errorf("last log entry = %v; want one naming %s", entry, path)
	}
	if _, _, err := execute(t, "--out", path, "--check"); err != nil {
		t.Errorf("--check on fresh output: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, append(data, "// edited\n"...), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err = execute(t, "--out", path, "--check")
	if err == nil || !strings.Contains(err.Error(), "out of date") {
		t.Errorf("--check on edited output: error = %v; want out of date", err)
	}

	if _, _, err := execute(t, "--check"); err == nil {
		t.Error("--check without --out succeeded")
	}
}

func TestCustomSources(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "schema.graphql")
	ops := filepath.Join(dir, "ops.graphql")
	writeFile(t, schema, "scalar Money\ntype Query { balance: Money! }\n")
	writeFile(t, ops, "query Balance { balance }\n")

	out, _, err := execute(t, "--schema", schema, "--scalar", "Money=math/big.Float", ops)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"math/big"`, "Balance big.Float", "type BalanceResult struct"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}

	if _, _, err := execute(t, "--schema", schema, "--scalar", "Money", ops); err == nil {
		t.Error("malformed --scalar accepted")
	}
	writeFile(t, ops, "query Balance { nope }\n")
	if _, _, err := execute(t, "--schema", schema, ops); err == nil {
		t.Error("invalid operation accepted")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
