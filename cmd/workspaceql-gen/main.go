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

// workspaceql-gen generates Go types for the workspace GraphQL operations.
//
// By default it reads the schema and operations embedded in the workspace
// package. With --check it compares its output to an existing file and fails
// if the file is stale.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/hexaworks/workspace-client/codegen"
	"github.com/hexaworks/workspace-client/graphql"
	"github.com/hexaworks/workspace-client/internal/logging"
	"github.com/hexaworks/workspace-client/workspace"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

const generatorName = "workspaceql-gen"

// defaultScalars maps the workspace schema's custom scalars to Go types.
var defaultScalars = map[string]string{
	"BigInt":   "github.com/hexaworks/workspace-client/workspace.BigInt",
	"DateTime": "time.Time",
	"JSON":     "encoding/json.RawMessage",
	"UUID":     "github.com/google/uuid.UUID",
}

type options struct {
	schemaFile     string
	operationFiles []string
	outFile        string
	pkg            string
	scalars        []string
	check          bool
}

func main() {
	logger := logging.NewLoggerWithService("workspaceql-gen")
	if err := newCommand(os.Stdout, logger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, generatorName+":", err)
		os.Exit(1)
	}
}

func newCommand(stdout io.Writer, logger logrus.FieldLogger) *cobra.Command {
	opts := new(options)
	cmd := &cobra.Command{
		Use:           generatorName + " [flags] [OPERATION_FILE...]",
		Short:         "Generate Go types for GraphQL operations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.operationFiles = args
			return run(stdout, logger, opts)
		},
	}
	cmd.Flags().StringVar(&opts.schemaFile, "schema", "", "schema file (default: embedded workspace schema)")
	cmd.Flags().StringVarP(&opts.outFile, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.pkg, "package", "workspaceql", "package name of the generated code")
	cmd.Flags().StringArrayVar(&opts.scalars, "scalar", nil, "custom scalar mapping as NAME=import/path.Type (repeatable)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "fail if the output file is not up to date")
	return cmd
}

func run(stdout io.Writer, logger logrus.FieldLogger, opts *options) error {
	schemaSource := workspace.SchemaSource()
	if opts.schemaFile != "" {
		data, err := os.ReadFile(opts.schemaFile)
		if err != nil {
			return err
		}
		schemaSource = string(data)
	}
	schema, err := graphql.ParseSchema(schemaSource)
	if err != nil {
		return xerrors.Errorf("parse schema: %w", err)
	}

	sources := workspace.OperationSources()
	if len(opts.operationFiles) > 0 {
		files := append([]string(nil), opts.operationFiles...)
		sort.Strings(files)
		sources = sources[:0:0]
		for _, f := range files {
			data, err := os.ReadFile(f)
			if err != nil {
				return err
			}
			sources = append(sources, string(data))
		}
	}
	docs, err := graphql.NewDocumentMap(schema, sources...)
	if err != nil {
		return xerrors.Errorf("load operations: %w", err)
	}

	scalars := make(map[string]string)
	if opts.schemaFile == "" {
		for k, v := range defaultScalars {
			scalars[k] = v
		}
	}
	for _, s := range opts.scalars {
		name, typ, ok := strings.Cut(s, "=")
		if !ok {
			return xerrors.Errorf("scalar mapping %q is not of the form NAME=TYPE", s)
		}
		scalars[name] = typ
	}

	src, err := codegen.Generate(schema, docs, codegen.Config{
		Package:   opts.pkg,
		Scalars:   scalars,
		Generator: generatorName,
	})
	if err != nil {
		return err
	}
	log := logger.WithFields(logrus.Fields{
		"operations": docs.Len(),
		"bytes":      len(src),
	})

	switch {
	case opts.check:
		if opts.outFile == "" {
			return xerrors.New("--check requires --out")
		}
		existing, err := os.ReadFile(opts.outFile)
		if err != nil {
			return err
		}
		if !bytes.Equal(existing, src) {
			return xerrors.Errorf("%s is out of date; rerun %s", opts.outFile, generatorName)
		}
		log.WithField("file", opts.outFile).Debug("Generated code is up to date")
		return nil
	case opts.outFile == "":
		_, err := stdout.Write(src)
		return err
	default:
		if err := os.WriteFile(opts.outFile, src, 0o644); err != nil {
			return err
		}
		log.WithField("file", opts.outFile).Info("Wrote generated code")
		return nil
	}
}
