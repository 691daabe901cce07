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
	"context"

	"github.com/google/uuid"
	"golang.org/x/xerrors"
)

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*Me, error) {
	var data struct {
		Me Me `json:"me"`
	}
	if err := c.do(ctx, "Me", nil, &data); err != nil {
		return nil, err
	}
	return &data.Me, nil
}

// Workspaces returns a page of the workspaces visible to the user, optionally
// filtered by a search query.
func (c *Client) Workspaces(ctx context.Context, query string, page PageOptions) (*WorkspacePage, error) {
	vars := struct {
		Query string `json:"query,omitempty"`
		PageOptions
	}{query, page}
	var data struct {
		Workspaces WorkspacePage `json:"workspaces"`
	}
	if err := c.do(ctx, "Workspaces", vars, &data); err != nil {
		return nil, err
	}
	return &data.Workspaces, nil
}

// AllWorkspaces fetches every workspace visible to the user, perPage at a
// time.
func (c *Client) AllWorkspaces(ctx context.Context, perPage int) ([]Workspace, error) {
	var all []Workspace
	for page := 1; ; page++ {
		p, err := c.Workspaces(ctx, "", PageOptions{Page: page, PerPage: perPage})
		if err != nil {
			return nil, xerrors.Errorf("all workspaces: page %d: %w", page, err)
		}
		all = append(all, p.Items...)
		if len(p.Items) == 0 || p.PageNumber >= p.TotalPages {
			return all, nil
		}
	}
}

type slugVars struct {
	Slug string `json:"slug"`
}

type idVars struct {
	ID uuid.UUID `json:"id"`
}

type slugPageVars struct {
	Slug string `json:"slug"`
	PageOptions
}

type idPageVars struct {
	ID uuid.UUID `json:"id"`
	PageOptions
}

// Workspace returns the workspace with the given slug. It returns an error
// satisfying IsNotFound if there is no such workspace.
func (c *Client) Workspace(ctx context.Context, slug string) (*Workspace, error) {
	var data struct {
		Workspace *Workspace `json:"workspace"`
	}
	if err := c.do(ctx, "Workspace", slugVars{slug}, &data); err != nil {
		return nil, err
	}
	if data.Workspace == nil {
		return nil, xerrors.Errorf("workspace %q: %w", slug, ErrNotFound)
	}
	return data.Workspace, nil
}

// WorkspaceMembers returns a page of a workspace's memberships.
func (c *Client) WorkspaceMembers(ctx context.Context, slug string, page PageOptions) (*WorkspaceMembershipPage, error) {
	var data struct {
		Workspace *Workspace `json:"workspace"`
	}
	if err := c.do(ctx, "WorkspaceMembers", slugPageVars{slug, page}, &data); err != nil {
		return nil, err
	}
	if data.Workspace == nil {
		return nil, xerrors.Errorf("workspace %q: %w", slug, ErrNotFound)
	}
	return &data.Workspace.Members, nil
}

// WorkspacePipelines returns a page of a workspace's pipelines, optionally
// filtered by a search string.
func (c *Client) WorkspacePipelines(ctx context.Context, slug, search string, page PageOptions) (*PipelinePage, error) {
	vars := struct {
		Slug   string `json:"slug"`
		Search string `json:"search,omitempty"`
		PageOptions
	}{slug, search, page}
	var data struct {
		Workspace *Workspace `json:"workspace"`
	}
	if err := c.do(ctx, "WorkspacePipelines", vars, &data); err != nil {
		return nil, err
	}
	if data.Workspace == nil {
		return nil, xerrors.Errorf("workspace %q: %w", slug, ErrNotFound)
	}
	return &data.Workspace.Pipelines, nil
}

// Pipeline returns a pipeline with its current version and parameters.
func (c *Client) Pipeline(ctx context.Context, id uuid.UUID) (*Pipeline, error) {
	var data struct {
		Pipeline *Pipeline `json:"pipeline"`
	}
	if err := c.do(ctx, "Pipeline", idVars{id}, &data); err != nil {
		return nil, err
	}
	if data.Pipeline == nil {
		return nil, xerrors.Errorf("pipeline %v: %w", id, ErrNotFound)
	}
	return data.Pipeline, nil
}

// PipelineRuns returns a page of a pipeline's runs, most recent first.
func (c *Client) PipelineRuns(ctx context.Context, pipelineID uuid.UUID, page PageOptions) (*PipelineRunPage, error) {
	var data struct {
		Pipeline *Pipeline `json:"pipeline"`
	}
	if err := c.do(ctx, "PipelineRuns", idPageVars{pipelineID, page}, &data); err != nil {
		return nil, err
	}
	if data.Pipeline == nil {
		return nil, xerrors.Errorf("pipeline %v: %w", pipelineID, ErrNotFound)
	}
	return &data.Pipeline.Runs, nil
}

// PipelineRun returns a run with its logs, outputs and messages.
func (c *Client) PipelineRun(ctx context.Context, id uuid.UUID) (*PipelineRun, error) {
	var data struct {
		PipelineRun *PipelineRun `json:"pipelineRun"`
	}
	if err := c.do(ctx, "PipelineRun", idVars{id}, &data); err != nil {
		return nil, err
	}
	if data.PipelineRun == nil {
		return nil, xerrors.Errorf("pipeline run %v: %w", id, ErrNotFound)
	}
	return data.PipelineRun, nil
}

// WorkspaceDatasets returns a page of the datasets linked to a workspace.
func (c *Client) WorkspaceDatasets(ctx context.Context, slug, query string, page PageOptions) (*DatasetLinkPage, error) {
	vars := struct {
		Slug  string `json:"slug"`
		Query string `json:"query,omitempty"`
		PageOptions
	}{slug, query, page}
	var data struct {
		Workspace *Workspace `json:"workspace"`
	}
	if err := c.do(ctx, "WorkspaceDatasets", vars, &data); err != nil {
		return nil, err
	}
	if data.Workspace == nil {
		return nil, xerrors.Errorf("workspace %q: %w", slug, ErrNotFound)
	}
	return &data.Workspace.Datasets, nil
}

// Dataset returns a dataset with its latest version and a page of versions.
func (c *Client) Dataset(ctx context.Context, id uuid.UUID, versions PageOptions) (*Dataset, error) {
	vars := struct {
		ID              uuid.UUID `json:"id"`
		VersionsPage    int       `json:"versionsPage,omitempty"`
		VersionsPerPage int       `json:"versionsPerPage,omitempty"`
	}{id, versions.Page, versions.PerPage}
	var data struct {
		Dataset *Dataset `json:"dataset"`
	}
	if err := c.do(ctx, "Dataset", vars, &data); err != nil {
		return nil, err
	}
	if data.Dataset == nil {
		return nil, xerrors.Errorf("dataset %v: %w", id, ErrNotFound)
	}
	return data.Dataset, nil
}

// DatasetVersionFiles returns a page of the files in a dataset version.
func (c *Client) DatasetVersionFiles(ctx context.Context, versionID uuid.UUID, page PageOptions) (*DatasetVersionFilePage, error) {
	var data struct {
		DatasetVersion *DatasetVersion `json:"datasetVersion"`
	}
	if err := c.do(ctx, "DatasetVersionFiles", idPageVars{versionID, page}, &data); err != nil {
		return nil, err
	}
	if data.DatasetVersion == nil {
		return nil, xerrors.Errorf("dataset version %v: %w", versionID, ErrNotFound)
	}
	return &data.DatasetVersion.Files, nil
}

// WorkspaceConnections returns the connections of a workspace.
func (c *Client) WorkspaceConnections(ctx context.Context, slug string) ([]Connection, error) {
	var data struct {
		Workspace *Workspace `json:"workspace"`
	}
	if err := c.do(ctx, "WorkspaceConnections", slugVars{slug}, &data); err != nil {
		return nil, err
	}
	if data.Workspace == nil {
		return nil, xerrors.Errorf("workspace %q: %w", slug, ErrNotFound)
	}
	return data.Workspace.Connections, nil
}

// BucketObjectsOptions filters a bucket listing.
type BucketObjectsOptions struct {
	// Prefix restricts the listing to a directory, like "data/raw/".
	Prefix string
	Query  string
	// IncludeHidden lists files whose name starts with a dot.
	IncludeHidden bool
	PageOptions
}

// BucketObjects lists the objects in a workspace bucket.
func (c *Client) BucketObjects(ctx context.Context, slug string, opts BucketObjectsOptions) (*BucketObjectPage, error) {
	vars := struct {
		Slug              string `json:"slug"`
		Prefix            string `json:"prefix,omitempty"`
		Query             string `json:"query,omitempty"`
		IgnoreHiddenFiles bool   `json:"ignoreHiddenFiles"`
		PageOptions
	}{slug, opts.Prefix, opts.Query, !opts.IncludeHidden, opts.PageOptions}
	var data struct {
		Workspace *Workspace `json:"workspace"`
	}
	if err := c.do(ctx, "BucketObjects", vars, &data); err != nil {
		return nil, err
	}
	if data.Workspace == nil {
		return nil, xerrors.Errorf("workspace %q: %w", slug, ErrNotFound)
	}
	return &data.Workspace.Bucket.Objects, nil
}

// Organizations returns the organizations the user belongs to.
func (c *Client) Organizations(ctx context.Context) ([]Organization, error) {
	var data struct {
		Organizations []Organization `json:"organizations"`
	}
	if err := c.do(ctx, "Organizations", nil, &data); err != nil {
		return nil, err
	}
	return data.Organizations, nil
}

// DAGs returns a page of legacy DAGs.
func (c *Client) DAGs(ctx context.Context, page PageOptions) (*DAGPage, error) {
	var data struct {
		DAGs DAGPage `json:"dags"`
	}
	if err := c.do(ctx, "DAGs", page, &data); err != nil {
		return nil, err
	}
	return &data.DAGs, nil
}

// DAG returns a legacy DAG with a page of its runs.
func (c *Client) DAG(ctx context.Context, id uuid.UUID, runs PageOptions) (*DAG, error) {
	var data struct {
		DAG *DAG `json:"dag"`
	}
	if err := c.do(ctx, "DAG", idPageVars{id, runs}, &data); err != nil {
		return nil, err
	}
	if data.DAG == nil {
		return nil, xerrors.Errorf("dag %v: %w", id, ErrNotFound)
	}
	return data.DAG, nil
}

// Countries returns the countries a workspace can be tagged with.
func (c *Client) Countries(ctx context.Context) ([]Country, error) {
	var data struct {
		Countries []Country `json:"countries"`
	}
	if err := c.do(ctx, "Countries", nil, &data); err != nil {
		return nil, err
	}
	return data.Countries, nil
}
