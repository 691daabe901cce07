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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"text/tabwriter"
	"time"

	"github.com/hexaworks/workspace-client/graphqlhttp"
	"github.com/hexaworks/workspace-client/internal/config"
	"github.com/hexaworks/workspace-client/workspace"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// Environment variables read by workspacectl. Flags take precedence.
const (
	envURL        = "WORKSPACE_API_URL"
	envToken      = "WORKSPACE_API_TOKEN"
	envMaxRetries = "WORKSPACE_API_MAX_RETRIES"
	envTimeout    = "WORKSPACE_API_TIMEOUT"
)

const (
	defaultEndpoint = "https://api.workspaces.hexaworks.io/graphql/"
	defaultTimeout  = 30 * time.Second
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type app struct {
	out    io.Writer
	logger *logrus.Logger
	// httpClient overrides the base HTTP client. Tests point it at a fake
	// server.
	httpClient *http.Client

	endpoint   string
	token      string
	format     string
	maxRetries int
	timeout    time.Duration

	client *workspace.Client
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "workspacectl",
		Short:         "Command-line client for the workspace API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.endpoint, "endpoint", "", "GraphQL endpoint URL (env "+envURL+")")
	flags.StringVar(&a.token, "token", "", "API token (env "+envToken+")")
	flags.StringVarP(&a.format, "output", "o", formatText, "output format: text|json|yaml")
	flags.IntVar(&a.maxRetries, "max-retries", 0, "retries for failed queries, 0 disables (env "+envMaxRetries+")")
	flags.DurationVar(&a.timeout, "timeout", 0, "timeout per HTTP attempt (env "+envTimeout+")")

	root.AddCommand(newMeCmd(a))
	root.AddCommand(newWorkspacesCmd(a))
	root.AddCommand(newPipelinesCmd(a))
	root.AddCommand(newRunsCmd(a))
	root.AddCommand(newDatasetsCmd(a))
	root.AddCommand(newConnectionsCmd(a))
	root.AddCommand(newObjectsCmd(a))
	root.AddCommand(newDocumentsCmd(a))
	return root
}

// configure fills the settings not given as flags from the environment.
func (a *app) configure(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if !flags.Changed("endpoint") {
		a.endpoint = config.GetEnv(envURL, defaultEndpoint)
	}
	if !flags.Changed("token") {
		a.token = config.GetEnv(envToken, "")
	}
	if !flags.Changed("max-retries") {
		n, err := config.GetEnvInt(envMaxRetries, graphqlhttp.DefaultMaxRetries)
		if err != nil {
			return err
		}
		a.maxRetries = n
	}
	if !flags.Changed("timeout") {
		d, err := config.GetEnvDuration(envTimeout, defaultTimeout)
		if err != nil {
			return err
		}
		a.timeout = d
	}
	switch a.format {
	case formatText, formatJSON, formatYAML:
	default:
		return xerrors.Errorf("unknown output format %q", a.format)
	}
	if a.maxRetries < 0 {
		return xerrors.Errorf("max retries must not be negative")
	}
	a.logger.WithFields(logrus.Fields{
		"endpoint":    a.endpoint,
		"max_retries": a.maxRetries,
		"timeout":     a.timeout,
	}).Debug("Configured client")
	return nil
}

// api returns the workspace client, creating it on first use.
func (a *app) api() *workspace.Client {
	if a.client != nil {
		return a.client
	}
	retries := a.maxRetries
	if retries == 0 {
		retries = -1
	}
	if a.token == "" {
		a.logger.Warn("No API token set; sending anonymous requests")
	}
	a.client = workspace.NewClient(a.endpoint, a.token, &workspace.Options{
		HTTPClient: a.httpClient,
		Timeout:    a.timeout,
		Retry:      graphqlhttp.RetryConfig{MaxRetries: retries},
		Logger:     a.logger,
	})
	return a.client
}

// print writes v in the selected format. text renders the text format.
func (a *app) print(v interface{}, text func(w io.Writer) error) error {
	switch a.format {
	case formatJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		// Round-trip through JSON so that the json tags name the keys.
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic interface{}
		if err := json.Unmarshal(data, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	default:
		tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		if err := text(tw); err != nil {
			return err
		}
		return tw.Flush()
	}
}

func row(w io.Writer, cols ...interface{}) {
	for i, c := range cols {
		if i > 0 {
			io.WriteString(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	io.WriteString(w, "\n")
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}
