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

	"github.com/google/uuid"
)

// Input types mirror the input objects of the workspace schema. Optional
// fields are omitted from the request when they hold their zero value, so
// the server applies its defaults.

type CountryInput struct {
	Code string `json:"code"`
}

type CreateWorkspaceInput struct {
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Countries      []CountryInput `json:"countries,omitempty"`
	OrganizationID *uuid.UUID     `json:"organizationId,omitempty"`
	LoadSampleData bool           `json:"loadSampleData,omitempty"`
}

// UpdateWorkspaceInput changes the fields that are set. A nil Countries
// keeps the current countries.
type UpdateWorkspaceInput struct {
	Slug        string         `json:"slug"`
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Countries   []CountryInput `json:"countries,omitempty"`
	DockerImage *string        `json:"dockerImage,omitempty"`
}

type DeleteWorkspaceInput struct {
	Slug string `json:"slug"`
}

type InviteWorkspaceMemberInput struct {
	WorkspaceSlug string `json:"workspaceSlug"`
	UserEmail     string `json:"userEmail"`
	// Role defaults to WorkspaceMembershipRoleViewer on the server.
	Role WorkspaceMembershipRole `json:"role,omitempty"`
}

type RunPipelineInput struct {
	ID        uuid.UUID  `json:"id"`
	VersionID *uuid.UUID `json:"versionId,omitempty"`
	// Config maps parameter codes to values. It must encode to a JSON object.
	Config                json.RawMessage `json:"config"`
	SendMailNotifications bool            `json:"sendMailNotifications,omitempty"`
}

type StopPipelineInput struct {
	RunID uuid.UUID `json:"runId"`
}

type DeletePipelineInput struct {
	ID uuid.UUID `json:"id"`
}

type CreateDatasetInput struct {
	WorkspaceSlug string `json:"workspaceSlug"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
}

type CreateDatasetVersionInput struct {
	DatasetID uuid.UUID `json:"datasetId"`
	Name      string    `json:"name"`
	Changelog string    `json:"changelog,omitempty"`
}

type DeleteDatasetInput struct {
	ID uuid.UUID `json:"id"`
}

type ConnectionFieldInput struct {
	Code   string  `json:"code"`
	Value  *string `json:"value,omitempty"`
	Secret bool    `json:"secret"`
}

type CreateConnectionInput struct {
	WorkspaceSlug string                 `json:"workspaceSlug"`
	Name          string                 `json:"name"`
	Slug          string                 `json:"slug,omitempty"`
	Description   string                 `json:"description,omitempty"`
	Type          ConnectionType         `json:"type"`
	Fields        []ConnectionFieldInput `json:"fields,omitempty"`
}

type UpdateConnectionInput struct {
	ID          uuid.UUID              `json:"id"`
	Name        *string                `json:"name,omitempty"`
	Slug        *string                `json:"slug,omitempty"`
	Description *string                `json:"description,omitempty"`
	Fields      []ConnectionFieldInput `json:"fields,omitempty"`
}

type DeleteConnectionInput struct {
	ID uuid.UUID `json:"id"`
}

type PrepareObjectUploadInput struct {
	WorkspaceSlug string `json:"workspaceSlug"`
	ObjectKey     string `json:"objectKey"`
	ContentType   string `json:"contentType,omitempty"`
}

type PrepareObjectDownloadInput struct {
	WorkspaceSlug string `json:"workspaceSlug"`
	ObjectKey     string `json:"objectKey"`
}

type CreateBucketFolderInput struct {
	WorkspaceSlug string `json:"workspaceSlug"`
	FolderKey     string `json:"folderKey"`
}

type DeleteBucketObjectInput struct {
	WorkspaceSlug string `json:"workspaceSlug"`
	ObjectKey     string `json:"objectKey"`
}

type RunDAGInput struct {
	DagID  uuid.UUID       `json:"dagId"`
	Config json.RawMessage `json:"config"`
}
