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
	"time"

	"github.com/google/uuid"
)

// The types in this file mirror the object types of the workspace schema.
// Operations select subsets of their fields, so fields an operation does
// not select are left as zero values. Nullable object fields are pointers.

// Me is the authenticated user and their global permissions.
type Me struct {
	User        *User         `json:"user"`
	Features    []Feature     `json:"features"`
	Permissions MePermissions `json:"permissions"`
}

// Feature is a feature flag enabled for the user.
type Feature struct {
	Code   string          `json:"code"`
	Config json.RawMessage `json:"config"`
}

// MePermissions are the user's global permissions.
type MePermissions struct {
	CreateWorkspace bool `json:"createWorkspace"`
	AdminPanel      bool `json:"adminPanel"`
	SuperUser       bool `json:"superUser"`
}

// User is a platform account.
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   *string   `json:"firstName"`
	LastName    *string   `json:"lastName"`
	DisplayName string    `json:"displayName"`
	Language    string    `json:"language"`
	Avatar      Avatar    `json:"avatar"`
	DateJoined  time.Time `json:"dateJoined"`
}

type Avatar struct {
	Initials string `json:"initials"`
	Color    string `json:"color"`
}

type Organization struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	URL         string    `json:"url"`
	ContactInfo string    `json:"contactInfo"`
}

// Country is identified by its ISO 3166-1 alpha-2 code.
type Country struct {
	Code   string `json:"code"`
	Alpha3 string `json:"alpha3"`
	Name   string `json:"name"`
	Flag   string `json:"flag"`
}

// Workspace groups the pipelines, datasets, connections and files of a team.
type Workspace struct {
	Slug         string                  `json:"slug"`
	Name         string                  `json:"name"`
	Description  *string                 `json:"description"`
	DockerImage  *string                 `json:"dockerImage"`
	Countries    []Country               `json:"countries"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    *time.Time              `json:"updatedAt"`
	CreatedBy    User                    `json:"createdBy"`
	Organization *Organization           `json:"organization"`
	Permissions  WorkspacePermissions    `json:"permissions"`
	Members      WorkspaceMembershipPage `json:"members"`
	Pipelines    PipelinePage            `json:"pipelines"`
	Datasets     DatasetLinkPage         `json:"datasets"`
	Connections  []Connection            `json:"connections"`
	Bucket       Bucket                  `json:"bucket"`
}

type WorkspacePermissions struct {
	Update               bool `json:"update"`
	Delete               bool `json:"delete"`
	ManageMembers        bool `json:"manageMembers"`
	LaunchNotebookServer bool `json:"launchNotebookServer"`
	CreateObject         bool `json:"createObject"`
	DeleteObject         bool `json:"deleteObject"`
	CreateDataset        bool `json:"createDataset"`
	CreatePipeline       bool `json:"createPipeline"`
	CreateConnection     bool `json:"createConnection"`
}

// WorkspacePage is one page of workspaces.
type WorkspacePage struct {
	Items      []Workspace `json:"items"`
	PageNumber int         `json:"pageNumber"`
	TotalPages int         `json:"totalPages"`
	TotalItems int         `json:"totalItems"`
}

type WorkspaceMembership struct {
	ID        uuid.UUID               `json:"id"`
	Role      WorkspaceMembershipRole `json:"role"`
	User      User                    `json:"user"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt *time.Time              `json:"updatedAt"`
}

type WorkspaceMembershipPage struct {
	Items      []WorkspaceMembership `json:"items"`
	PageNumber int                   `json:"pageNumber"`
	TotalPages int                   `json:"totalPages"`
	TotalItems int                   `json:"totalItems"`
}

// Bucket is the object storage attached to a workspace.
type Bucket struct {
	Name    string           `json:"name"`
	Objects BucketObjectPage `json:"objects"`
}

// BucketObject is a file or a directory in a workspace bucket.
type BucketObject struct {
	Key       string           `json:"key"`
	Name      string           `json:"name"`
	Path      string           `json:"path"`
	Size      *BigInt          `json:"size"`
	UpdatedAt *time.Time       `json:"updatedAt"`
	Type      BucketObjectType `json:"type"`
}

// BucketObjectPage is one page of a bucket listing. Bucket listings do not
// report a total count.
type BucketObjectPage struct {
	Items           []BucketObject `json:"items"`
	PageNumber      int            `json:"pageNumber"`
	HasNextPage     bool           `json:"hasNextPage"`
	HasPreviousPage bool           `json:"hasPreviousPage"`
}

// Pipeline is a versioned data processing job in a workspace.
type Pipeline struct {
	ID             uuid.UUID           `json:"id"`
	Code           string              `json:"code"`
	Name           *string             `json:"name"`
	Description    *string             `json:"description"`
	Type           PipelineType        `json:"type"`
	Schedule       *string             `json:"schedule"`
	Config         json.RawMessage     `json:"config"`
	WebhookEnabled bool                `json:"webhookEnabled"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      *time.Time          `json:"updatedAt"`
	Workspace      Workspace           `json:"workspace"`
	CurrentVersion *PipelineVersion    `json:"currentVersion"`
	Permissions    PipelinePermissions `json:"permissions"`
	Runs           PipelineRunPage     `json:"runs"`
}

type PipelinePermissions struct {
	Update       bool `json:"update"`
	Delete       bool `json:"delete"`
	Run          bool `json:"run"`
	Schedule     bool `json:"schedule"`
	StopPipeline bool `json:"stopPipeline"`
}

type PipelinePage struct {
	Items      []Pipeline `json:"items"`
	PageNumber int        `json:"pageNumber"`
	TotalPages int        `json:"totalPages"`
	TotalItems int        `json:"totalItems"`
}

type PipelineVersion struct {
	ID              uuid.UUID           `json:"id"`
	VersionNumber   int                 `json:"versionNumber"`
	Name            *string             `json:"name"`
	Description     *string             `json:"description"`
	IsLatestVersion bool                `json:"isLatestVersion"`
	CreatedAt       time.Time           `json:"createdAt"`
	User            *User               `json:"user"`
	Parameters      []PipelineParameter `json:"parameters"`
}

// PipelineParameter describes one input of a pipeline version.
type PipelineParameter struct {
	Code     string            `json:"code"`
	Name     string            `json:"name"`
	Type     ParameterType     `json:"type"`
	Help     *string           `json:"help"`
	Required bool              `json:"required"`
	Multiple bool              `json:"multiple"`
	Choices  []json.RawMessage `json:"choices"`
	Default  json.RawMessage   `json:"default"`
}

// PipelineRun is one execution of a pipeline version.
type PipelineRun struct {
	ID            uuid.UUID           `json:"id"`
	Status        PipelineRunStatus   `json:"status"`
	TriggerMode   *PipelineRunTrigger `json:"triggerMode"`
	ExecutionDate *time.Time          `json:"executionDate"`
	// Duration is in seconds.
	Duration              *int                 `json:"duration"`
	Progress              int                  `json:"progress"`
	Config                json.RawMessage      `json:"config"`
	Logs                  *string              `json:"logs"`
	Timeout               *int                 `json:"timeout"`
	SendMailNotifications bool                 `json:"sendMailNotifications"`
	Pipeline              Pipeline             `json:"pipeline"`
	Version               *PipelineVersion     `json:"version"`
	User                  *User                `json:"user"`
	StoppedBy             *User                `json:"stoppedBy"`
	Outputs               []PipelineRunOutput  `json:"outputs"`
	Messages              []PipelineRunMessage `json:"messages"`
}

// Finished reports whether the run reached a final status.
func (run *PipelineRun) Finished() bool {
	switch run.Status {
	case PipelineRunStatusSuccess, PipelineRunStatusFailed, PipelineRunStatusStopped:
		return true
	default:
		return false
	}
}

type PipelineRunOutput struct {
	Name *string `json:"name"`
	Type string  `json:"type"`
	URI  string  `json:"uri"`
}

type PipelineRunMessage struct {
	Message   string          `json:"message"`
	Priority  MessagePriority `json:"priority"`
	Timestamp *time.Time      `json:"timestamp"`
}

type PipelineRunPage struct {
	Items      []PipelineRun `json:"items"`
	PageNumber int           `json:"pageNumber"`
	TotalPages int           `json:"totalPages"`
	TotalItems int           `json:"totalItems"`
}

// DAG is a legacy Airflow pipeline.
type DAG struct {
	ID          uuid.UUID  `json:"id"`
	ExternalID  string     `json:"externalId"`
	Label       string     `json:"label"`
	Description *string    `json:"description"`
	Schedule    *string    `json:"schedule"`
	FormCode    *string    `json:"formCode"`
	Runs        DAGRunPage `json:"runs"`
}

type DAGRun struct {
	ID            uuid.UUID       `json:"id"`
	ExternalID    *string         `json:"externalId"`
	Status        DAGRunStatus    `json:"status"`
	TriggerMode   *DAGRunTrigger  `json:"triggerMode"`
	ExecutionDate *time.Time      `json:"executionDate"`
	Duration      *int            `json:"duration"`
	Progress      int             `json:"progress"`
	Config        json.RawMessage `json:"config"`
	User          *User           `json:"user"`
}

type DAGPage struct {
	Items      []DAG `json:"items"`
	PageNumber int   `json:"pageNumber"`
	TotalPages int   `json:"totalPages"`
	TotalItems int   `json:"totalItems"`
}

type DAGRunPage struct {
	Items      []DAGRun `json:"items"`
	PageNumber int      `json:"pageNumber"`
	TotalPages int      `json:"totalPages"`
	TotalItems int      `json:"totalItems"`
}

// Dataset is a versioned collection of files.
type Dataset struct {
	ID            uuid.UUID          `json:"id"`
	Slug          string             `json:"slug"`
	Name          string             `json:"name"`
	Description   *string            `json:"description"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     *time.Time         `json:"updatedAt"`
	CreatedBy     *User              `json:"createdBy"`
	Workspace     *Workspace         `json:"workspace"`
	Permissions   DatasetPermissions `json:"permissions"`
	LatestVersion *DatasetVersion    `json:"latestVersion"`
	Versions      DatasetVersionPage `json:"versions"`
}

type DatasetPermissions struct {
	Update        bool `json:"update"`
	Delete        bool `json:"delete"`
	CreateVersion bool `json:"createVersion"`
}

// DatasetLink makes a dataset visible in a workspace.
type DatasetLink struct {
	ID        uuid.UUID `json:"id"`
	Dataset   Dataset   `json:"dataset"`
	Workspace Workspace `json:"workspace"`
	CreatedAt time.Time `json:"createdAt"`
}

type DatasetLinkPage struct {
	Items      []DatasetLink `json:"items"`
	PageNumber int           `json:"pageNumber"`
	TotalPages int           `json:"totalPages"`
	TotalItems int           `json:"totalItems"`
}

type DatasetVersion struct {
	ID        uuid.UUID              `json:"id"`
	Name      string                 `json:"name"`
	Changelog *string                `json:"changelog"`
	CreatedAt time.Time              `json:"createdAt"`
	CreatedBy *User                  `json:"createdBy"`
	Dataset   Dataset                `json:"dataset"`
	Files     DatasetVersionFilePage `json:"files"`
}

type DatasetVersionPage struct {
	Items      []DatasetVersion `json:"items"`
	PageNumber int              `json:"pageNumber"`
	TotalPages int              `json:"totalPages"`
	TotalItems int              `json:"totalItems"`
}

type DatasetVersionFile struct {
	ID          uuid.UUID `json:"id"`
	URI         string    `json:"uri"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Size        BigInt    `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
}

type DatasetVersionFilePage struct {
	Items      []DatasetVersionFile `json:"items"`
	PageNumber int                  `json:"pageNumber"`
	TotalPages int                  `json:"totalPages"`
	TotalItems int                  `json:"totalItems"`
}

// Connection holds the credentials of an external data source.
type Connection struct {
	ID          uuid.UUID             `json:"id"`
	Slug        string                `json:"slug"`
	Name        string                `json:"name"`
	Description *string               `json:"description"`
	Type        ConnectionType        `json:"type"`
	Fields      []ConnectionField     `json:"fields"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   *time.Time            `json:"updatedAt"`
	User        *User                 `json:"user"`
	Permissions ConnectionPermissions `json:"permissions"`
}

type ConnectionField struct {
	Code string `json:"code"`
	// Value is nil for secrets the user cannot read.
	Value     *string    `json:"value"`
	Secret    bool       `json:"secret"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

type ConnectionPermissions struct {
	Update bool `json:"update"`
	Delete bool `json:"delete"`
}
