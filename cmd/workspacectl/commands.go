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
	"io"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/hexaworks/workspace-client/workspace"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func parseID(kind, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, xerrors.Errorf("invalid %s ID %q: %w", kind, s, err)
	}
	return id, nil
}

func addPageFlags(cmd *cobra.Command, page *workspace.PageOptions) {
	cmd.Flags().IntVar(&page.Page, "page", 0, "page number, starting at 1")
	cmd.Flags().IntVar(&page.PerPage, "per-page", 0, "items per page")
}

func newMeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			me, err := a.api().Me(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(me, func(w io.Writer) error {
				if me.User == nil {
					row(w, "anonymous")
					return nil
				}
				row(w, "ID", me.User.ID)
				row(w, "EMAIL", me.User.Email)
				row(w, "NAME", me.User.DisplayName)
				return nil
			})
		},
	}
}

func newWorkspacesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "workspaces", Short: "Manage workspaces"}
	cmd.AddCommand(newWorkspacesListCmd(a))
	cmd.AddCommand(newWorkspacesGetCmd(a))
	cmd.AddCommand(newWorkspacesCreateCmd(a))
	return cmd
}

func printWorkspaces(a *app, list []workspace.Workspace) error {
	return a.print(list, func(w io.Writer) error {
		row(w, "SLUG", "NAME", "CREATED")
		for _, ws := range list {
			row(w, ws.Slug, ws.Name, formatTime(&ws.CreatedAt))
		}
		return nil
	})
}

func newWorkspacesListCmd(a *app) *cobra.Command {
	var (
		query string
		all   bool
		page  workspace.PageOptions
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workspaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				if query != "" {
					return xerrors.New("--all cannot be combined with --query")
				}
				list, err := a.api().AllWorkspaces(cmd.Context(), page.PerPage)
				if err != nil {
					return err
				}
				return printWorkspaces(a, list)
			}
			p, err := a.api().Workspaces(cmd.Context(), query, page)
			if err != nil {
				return err
			}
			return printWorkspaces(a, p.Items)
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "filter by name")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page")
	addPageFlags(cmd, &page)
	return cmd
}

func newWorkspacesGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get SLUG",
		Short: "Show a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.api().Workspace(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(ws, func(w io.Writer) error {
				row(w, "SLUG", ws.Slug)
				row(w, "NAME", ws.Name)
				row(w, "DESCRIPTION", deref(ws.Description))
				row(w, "DOCKER IMAGE", deref(ws.DockerImage))
				var codes []string
				for _, c := range ws.Countries {
					codes = append(codes, c.Code)
				}
				row(w, "COUNTRIES", strings.Join(codes, ","))
				row(w, "CREATED", formatTime(&ws.CreatedAt))
				return nil
			})
		},
	}
}

func newWorkspacesCreateCmd(a *app) *cobra.Command {
	var (
		input     workspace.CreateWorkspaceInput
		countries []string
		orgID     string
	)
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Name = args[0]
			for _, code := range countries {
				input.Countries = append(input.Countries, workspace.CountryInput{Code: strings.ToUpper(code)})
			}
			if orgID != "" {
				id, err := parseID("organization", orgID)
				if err != nil {
					return err
				}
				input.OrganizationID = &id
			}
			ws, err := a.api().CreateWorkspace(cmd.Context(), input)
			if err != nil {
				return err
			}
			return a.print(ws, func(w io.Writer) error {
				row(w, "Created workspace", ws.Slug)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&input.Description, "description", "", "workspace description")
	cmd.Flags().StringSliceVar(&countries, "country", nil, "ISO country code (repeatable)")
	cmd.Flags().StringVar(&orgID, "organization", "", "organization ID")
	cmd.Flags().BoolVar(&input.LoadSampleData, "sample-data", false, "load sample data")
	return cmd
}

func newPipelinesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "pipelines", Short: "List and run pipelines"}
	cmd.AddCommand(newPipelinesListCmd(a))
	cmd.AddCommand(newPipelinesRunCmd(a))
	return cmd
}

func newPipelinesListCmd(a *app) *cobra.Command {
	var (
		search string
		page   workspace.PageOptions
	)
	cmd := &cobra.Command{
		Use:   "list WORKSPACE",
		Short: "List the pipelines of a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.api().WorkspacePipelines(cmd.Context(), args[0], search, page)
			if err != nil {
				return err
			}
			return a.print(p, func(w io.Writer) error {
				row(w, "ID", "CODE", "NAME", "TYPE")
				for _, pl := range p.Items {
					row(w, pl.ID, pl.Code, deref(pl.Name), pl.Type)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by code or name")
	addPageFlags(cmd, &page)
	return cmd
}

// parseParams turns k=v pairs into a JSON object. Values that parse as JSON
// keep their type; anything else is a string.
func parseParams(params []string) (json.RawMessage, error) {
	if len(params) == 0 {
		return nil, nil
	}
	obj := make(map[string]interface{}, len(params))
	for _, p := range params {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, xerrors.Errorf("parameter %q is not of the form key=value", p)
		}
		var parsed interface{}
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			parsed = v
		}
		obj[k] = parsed
	}
	return json.Marshal(obj)
}

func newPipelinesRunCmd(a *app) *cobra.Command {
	var (
		params    []string
		versionID string
		notify    bool
	)
	cmd := &cobra.Command{
		Use:   "run PIPELINE_ID",
		Short: "Start a pipeline run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("pipeline", args[0])
			if err != nil {
				return err
			}
			input := workspace.RunPipelineInput{ID: id, SendMailNotifications: notify}
			if versionID != "" {
				v, err := parseID("version", versionID)
				if err != nil {
					return err
				}
				input.VersionID = &v
			}
			if input.Config, err = parseParams(params); err != nil {
				return err
			}
			run, err := a.api().RunPipeline(cmd.Context(), input)
			if err != nil {
				return err
			}
			return a.print(run, func(w io.Writer) error {
				row(w, "RUN", run.ID)
				row(w, "STATUS", run.Status)
				return nil
			})
		},
	}
	cmd.Flags().StringArrayVar(&params, "param", nil, "pipeline parameter as key=value (repeatable)")
	cmd.Flags().StringVar(&versionID, "version", "", "pipeline version ID (default: latest)")
	cmd.Flags().BoolVar(&notify, "notify", false, "send mail notifications")
	return cmd
}

func newRunsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "runs", Short: "Inspect pipeline runs"}
	cmd.AddCommand(&cobra.Command{
		Use:   "get RUN_ID",
		Short: "Show a pipeline run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("run", args[0])
			if err != nil {
				return err
			}
			run, err := a.api().PipelineRun(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.print(run, func(w io.Writer) error {
				row(w, "RUN", run.ID)
				row(w, "PIPELINE", run.Pipeline.Code)
				row(w, "STATUS", run.Status)
				row(w, "PROGRESS", run.Progress)
				row(w, "EXECUTED", formatTime(run.ExecutionDate))
				for _, o := range run.Outputs {
					row(w, "OUTPUT", o.URI)
				}
				return nil
			})
		},
	})
	return cmd
}

func newDatasetsCmd(a *app) *cobra.Command {
	var (
		query string
		page  workspace.PageOptions
	)
	list := &cobra.Command{
		Use:   "list WORKSPACE",
		Short: "List the datasets linked to a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.api().WorkspaceDatasets(cmd.Context(), args[0], query, page)
			if err != nil {
				return err
			}
			return a.print(p, func(w io.Writer) error {
				row(w, "ID", "SLUG", "NAME", "UPDATED")
				for _, link := range p.Items {
					ds := link.Dataset
					updated := ds.UpdatedAt
					if updated == nil {
						updated = &ds.CreatedAt
					}
					row(w, ds.ID, ds.Slug, ds.Name, formatTime(updated))
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&query, "query", "", "filter by name")
	addPageFlags(list, &page)
	cmd := &cobra.Command{Use: "datasets", Short: "Inspect datasets"}
	cmd.AddCommand(list)
	return cmd
}

func newConnectionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "connections", Short: "Inspect workspace connections"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list WORKSPACE",
		Short: "List the connections of a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conns, err := a.api().WorkspaceConnections(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(conns, func(w io.Writer) error {
				row(w, "SLUG", "NAME", "TYPE", "FIELDS")
				for _, c := range conns {
					var codes []string
					for _, f := range c.Fields {
						codes = append(codes, f.Code)
					}
					sort.Strings(codes)
					row(w, c.Slug, c.Name, c.Type, strings.Join(codes, ","))
				}
				return nil
			})
		},
	})
	return cmd
}

func newObjectsCmd(a *app) *cobra.Command {
	var opts workspace.BucketObjectsOptions
	list := &cobra.Command{
		Use:   "list WORKSPACE",
		Short: "List the objects in a workspace bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.api().BucketObjects(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return a.print(p, func(w io.Writer) error {
				row(w, "TYPE", "PATH", "SIZE", "UPDATED")
				for _, o := range p.Items {
					size := "-"
					if o.Size != nil {
						size = o.Size.String()
					}
					row(w, o.Type, o.Path, size, formatTime(o.UpdatedAt))
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&opts.Prefix, "prefix", "", "directory to list, like data/raw/")
	list.Flags().StringVar(&opts.Query, "query", "", "filter by name")
	list.Flags().BoolVar(&opts.IncludeHidden, "include-hidden", false, "list dotfiles")
	addPageFlags(list, &opts.PageOptions)
	cmd := &cobra.Command{Use: "objects", Short: "Browse workspace buckets"}
	cmd.AddCommand(list)
	return cmd
}

func newDocumentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "documents", Short: "Inspect the registered GraphQL documents"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List operation names and types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs := workspace.Documents()
			type entry struct {
				Name      string   `json:"name"`
				Type      string   `json:"type"`
				Fragments []string `json:"fragments,omitempty"`
			}
			var entries []entry
			for _, name := range docs.Names() {
				doc := docs.Operation(name)
				entries = append(entries, entry{
					Name:      name,
					Type:      doc.TypeOf(name).String(),
					Fragments: doc.FragmentNames(),
				})
			}
			return a.print(entries, func(w io.Writer) error {
				row(w, "NAME", "TYPE", "FRAGMENTS")
				for _, e := range entries {
					row(w, e.Name, e.Type, strings.Join(e.Fragments, ","))
				}
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "print NAME",
		Short: "Print the exact source sent for an operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := workspace.Documents().Operation(args[0])
			if doc == nil {
				return xerrors.Errorf("no operation named %q", args[0])
			}
			_, err := io.WriteString(a.out, doc.Source())
			return err
		},
	})
	return cmd
}
