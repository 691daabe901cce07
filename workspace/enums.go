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
	"slices"

	"golang.org/x/xerrors"
)

// unmarshalEnum stores text in *v if it is one of values.
func unmarshalEnum[T ~string](v *T, typeName string, values []T, text []byte) error {
	x := T(text)
	if !slices.Contains(values, x) {
		return xerrors.Errorf("unmarshal %s: unknown value %q", typeName, text)
	}
	*v = x
	return nil
}

// WorkspaceMembershipRole is the role of a user in a workspace.
type WorkspaceMembershipRole string

// WorkspaceMembershipRole values.
const (
	WorkspaceMembershipRoleAdmin  WorkspaceMembershipRole = "ADMIN"
	WorkspaceMembershipRoleEditor WorkspaceMembershipRole = "EDITOR"
	WorkspaceMembershipRoleViewer WorkspaceMembershipRole = "VIEWER"
)

var workspaceMembershipRoleValues = []WorkspaceMembershipRole{
	WorkspaceMembershipRoleAdmin,
	WorkspaceMembershipRoleEditor,
	WorkspaceMembershipRoleViewer,
}

// Valid reports whether w is a known value.
func (w WorkspaceMembershipRole) Valid() bool {
	return slices.Contains(workspaceMembershipRoleValues, w)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (w *WorkspaceMembershipRole) UnmarshalText(text []byte) error {
	return unmarshalEnum(w, "WorkspaceMembershipRole", workspaceMembershipRoleValues, text)
}

// BucketObjectType tells files and directories apart in a workspace bucket.
type BucketObjectType string

// BucketObjectType values.
const (
	BucketObjectTypeFile      BucketObjectType = "FILE"
	BucketObjectTypeDirectory BucketObjectType = "DIRECTORY"
)

var bucketObjectTypeValues = []BucketObjectType{
	BucketObjectTypeFile,
	BucketObjectTypeDirectory,
}

// Valid reports whether b is a known value.
func (b BucketObjectType) Valid() bool {
	return slices.Contains(bucketObjectTypeValues, b)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (b *BucketObjectType) UnmarshalText(text []byte) error {
	return unmarshalEnum(b, "BucketObjectType", bucketObjectTypeValues, text)
}

// PipelineType is the packaging of a pipeline.
type PipelineType string

// PipelineType values.
const (
	PipelineTypeNotebook PipelineType = "notebook"
	PipelineTypeZipFile  PipelineType = "zipFile"
)

var pipelineTypeValues = []PipelineType{
	PipelineTypeNotebook,
	PipelineTypeZipFile,
}

// Valid reports whether p is a known value.
func (p PipelineType) Valid() bool {
	return slices.Contains(pipelineTypeValues, p)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (p *PipelineType) UnmarshalText(text []byte) error {
	return unmarshalEnum(p, "PipelineType", pipelineTypeValues, text)
}

// ParameterType is the type of a pipeline parameter.
type ParameterType string

// ParameterType values.
const (
	ParameterTypeBool       ParameterType = "bool"
	ParameterTypeConnection ParameterType = "connection"
	ParameterTypeDataset    ParameterType = "dataset"
	ParameterTypeFloat      ParameterType = "float"
	ParameterTypeInt        ParameterType = "int"
	ParameterTypeStr        ParameterType = "str"
)

var parameterTypeValues = []ParameterType{
	ParameterTypeBool,
	ParameterTypeConnection,
	ParameterTypeDataset,
	ParameterTypeFloat,
	ParameterTypeInt,
	ParameterTypeStr,
}

// Valid reports whether p is a known value.
func (p ParameterType) Valid() bool {
	return slices.Contains(parameterTypeValues, p)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (p *ParameterType) UnmarshalText(text []byte) error {
	return unmarshalEnum(p, "ParameterType", parameterTypeValues, text)
}

// PipelineRunStatus is the state of a pipeline run.
type PipelineRunStatus string

// PipelineRunStatus values.
const (
	PipelineRunStatusQueued      PipelineRunStatus = "queued"
	PipelineRunStatusRunning     PipelineRunStatus = "running"
	PipelineRunStatusSuccess     PipelineRunStatus = "success"
	PipelineRunStatusFailed      PipelineRunStatus = "failed"
	PipelineRunStatusStopped     PipelineRunStatus = "stopped"
	PipelineRunStatusTerminating PipelineRunStatus = "terminating"
)

var pipelineRunStatusValues = []PipelineRunStatus{
	PipelineRunStatusQueued,
	PipelineRunStatusRunning,
	PipelineRunStatusSuccess,
	PipelineRunStatusFailed,
	PipelineRunStatusStopped,
	PipelineRunStatusTerminating,
}

// Valid reports whether p is a known value.
func (p PipelineRunStatus) Valid() bool {
	return slices.Contains(pipelineRunStatusValues, p)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (p *PipelineRunStatus) UnmarshalText(text []byte) error {
	return unmarshalEnum(p, "PipelineRunStatus", pipelineRunStatusValues, text)
}

// PipelineRunTrigger records what started a pipeline run.
type PipelineRunTrigger string

// PipelineRunTrigger values.
const (
	PipelineRunTriggerManual    PipelineRunTrigger = "manual"
	PipelineRunTriggerScheduled PipelineRunTrigger = "scheduled"
	PipelineRunTriggerWebhook   PipelineRunTrigger = "webhook"
)

var pipelineRunTriggerValues = []PipelineRunTrigger{
	PipelineRunTriggerManual,
	PipelineRunTriggerScheduled,
	PipelineRunTriggerWebhook,
}

// Valid reports whether p is a known value.
func (p PipelineRunTrigger) Valid() bool {
	return slices.Contains(pipelineRunTriggerValues, p)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (p *PipelineRunTrigger) UnmarshalText(text []byte) error {
	return unmarshalEnum(p, "PipelineRunTrigger", pipelineRunTriggerValues, text)
}

// MessagePriority is the severity of a message emitted by a pipeline run.
type MessagePriority string

// MessagePriority values.
const (
	MessagePriorityDebug    MessagePriority = "DEBUG"
	MessagePriorityInfo     MessagePriority = "INFO"
	MessagePriorityWarning  MessagePriority = "WARNING"
	MessagePriorityError    MessagePriority = "ERROR"
	MessagePriorityCritical MessagePriority = "CRITICAL"
)

var messagePriorityValues = []MessagePriority{
	MessagePriorityDebug,
	MessagePriorityInfo,
	MessagePriorityWarning,
	MessagePriorityError,
	MessagePriorityCritical,
}

// Valid reports whether m is a known value.
func (m MessagePriority) Valid() bool {
	return slices.Contains(messagePriorityValues, m)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (m *MessagePriority) UnmarshalText(text []byte) error {
	return unmarshalEnum(m, "MessagePriority", messagePriorityValues, text)
}

// DAGRunStatus is the state of a DAG run.
type DAGRunStatus string

// DAGRunStatus values.
const (
	DAGRunStatusQueued  DAGRunStatus = "queued"
	DAGRunStatusRunning DAGRunStatus = "running"
	DAGRunStatusSuccess DAGRunStatus = "success"
	DAGRunStatusFailed  DAGRunStatus = "failed"
)

var dAGRunStatusValues = []DAGRunStatus{
	DAGRunStatusQueued,
	DAGRunStatusRunning,
	DAGRunStatusSuccess,
	DAGRunStatusFailed,
}

// Valid reports whether d is a known value.
func (d DAGRunStatus) Valid() bool {
	return slices.Contains(dAGRunStatusValues, d)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (d *DAGRunStatus) UnmarshalText(text []byte) error {
	return unmarshalEnum(d, "DAGRunStatus", dAGRunStatusValues, text)
}

// DAGRunTrigger records what started a DAG run.
type DAGRunTrigger string

// DAGRunTrigger values.
const (
	DAGRunTriggerManual    DAGRunTrigger = "MANUAL"
	DAGRunTriggerScheduled DAGRunTrigger = "SCHEDULED"
)

var dAGRunTriggerValues = []DAGRunTrigger{
	DAGRunTriggerManual,
	DAGRunTriggerScheduled,
}

// Valid reports whether d is a known value.
func (d DAGRunTrigger) Valid() bool {
	return slices.Contains(dAGRunTriggerValues, d)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (d *DAGRunTrigger) UnmarshalText(text []byte) error {
	return unmarshalEnum(d, "DAGRunTrigger", dAGRunTriggerValues, text)
}

// ConnectionType is the kind of external system a connection points to.
type ConnectionType string

// ConnectionType values.
const (
	ConnectionTypeCustom     ConnectionType = "CUSTOM"
	ConnectionTypeDHIS2      ConnectionType = "DHIS2"
	ConnectionTypeGCS        ConnectionType = "GCS"
	ConnectionTypeIaso       ConnectionType = "IASO"
	ConnectionTypePostgreSQL ConnectionType = "POSTGRESQL"
	ConnectionTypeS3         ConnectionType = "S3"
)

var connectionTypeValues = []ConnectionType{
	ConnectionTypeCustom,
	ConnectionTypeDHIS2,
	ConnectionTypeGCS,
	ConnectionTypeIaso,
	ConnectionTypePostgreSQL,
	ConnectionTypeS3,
}

// Valid reports whether c is a known value.
func (c ConnectionType) Valid() bool {
	return slices.Contains(connectionTypeValues, c)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (c *ConnectionType) UnmarshalText(text []byte) error {
	return unmarshalEnum(c, "ConnectionType", connectionTypeValues, text)
}

// CreateWorkspaceError lists the reasons a createWorkspace mutation can fail.
type CreateWorkspaceError string

// CreateWorkspaceError values.
const (
	CreateWorkspaceErrorInvalidSlug      CreateWorkspaceError = "INVALID_SLUG"
	CreateWorkspaceErrorPermissionDenied CreateWorkspaceError = "PERMISSION_DENIED"
)

var createWorkspaceErrorValues = []CreateWorkspaceError{
	CreateWorkspaceErrorInvalidSlug,
	CreateWorkspaceErrorPermissionDenied,
}

// Valid reports whether c is a known value.
func (c CreateWorkspaceError) Valid() bool {
	return slices.Contains(createWorkspaceErrorValues, c)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (c *CreateWorkspaceError) UnmarshalText(text []byte) error {
	return unmarshalEnum(c, "CreateWorkspaceError", createWorkspaceErrorValues, text)
}

// UpdateWorkspaceError lists the reasons a updateWorkspace mutation can fail.
type UpdateWorkspaceError string

// UpdateWorkspaceError values.
const (
	UpdateWorkspaceErrorNotFound         UpdateWorkspaceError = "NOT_FOUND"
	UpdateWorkspaceErrorPermissionDenied UpdateWorkspaceError = "PERMISSION_DENIED"
)

var updateWorkspaceErrorValues = []UpdateWorkspaceError{
	UpdateWorkspaceErrorNotFound,
	UpdateWorkspaceErrorPermissionDenied,
}

// Valid reports whether u is a known value.
func (u UpdateWorkspaceError) Valid() bool {
	return slices.Contains(updateWorkspaceErrorValues, u)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (u *UpdateWorkspaceError) UnmarshalText(text []byte) error {
	return unmarshalEnum(u, "UpdateWorkspaceError", updateWorkspaceErrorValues, text)
}

// DeleteWorkspaceError lists the reasons a deleteWorkspace mutation can fail.
type DeleteWorkspaceError string

// DeleteWorkspaceError values.
const (
	DeleteWorkspaceErrorNotFound         DeleteWorkspaceError = "NOT_FOUND"
	DeleteWorkspaceErrorPermissionDenied DeleteWorkspaceError = "PERMISSION_DENIED"
)

var deleteWorkspaceErrorValues = []DeleteWorkspaceError{
	DeleteWorkspaceErrorNotFound,
	DeleteWorkspaceErrorPermissionDenied,
}

// Valid reports whether d is a known value.
func (d DeleteWorkspaceError) Valid() bool {
	return slices.Contains(deleteWorkspaceErrorValues, d)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (d *DeleteWorkspaceError) UnmarshalText(text []byte) error {
	return unmarshalEnum(d, "DeleteWorkspaceError", deleteWorkspaceErrorValues, text)
}

// InviteWorkspaceMemberError lists the reasons a inviteWorkspaceMember mutation can fail.
type InviteWorkspaceMemberError string

// InviteWorkspaceMemberError values.
const (
	InviteWorkspaceMemberErrorAlreadyExists     InviteWorkspaceMemberError = "ALREADY_EXISTS"
	InviteWorkspaceMemberErrorPermissionDenied  InviteWorkspaceMemberError = "PERMISSION_DENIED"
	InviteWorkspaceMemberErrorUserNotFound      InviteWorkspaceMemberError = "USER_NOT_FOUND"
	InviteWorkspaceMemberErrorWorkspaceNotFound InviteWorkspaceMemberError = "WORKSPACE_NOT_FOUND"
)

var inviteWorkspaceMemberErrorValues = []InviteWorkspaceMemberError{
	InviteWorkspaceMemberErrorAlreadyExists,
	InviteWorkspaceMemberErrorPermissionDenied,
	InviteWorkspaceMemberErrorUserNotFound,
	InviteWorkspaceMemberErrorWorkspaceNotFound,
}

// Valid reports whether i is a known value.
func (i InviteWorkspaceMemberError) Valid() bool {
	return slices.Contains(inviteWorkspaceMemberErrorValues, i)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (i *InviteWorkspaceMemberError) UnmarshalText(text []byte) error {
	return unmarshalEnum(i, "InviteWorkspaceMemberError", inviteWorkspaceMemberErrorValues, text)
}

// RunPipelineError lists the reasons a runPipeline mutation can fail.
type RunPipelineError string

// RunPipelineError values.
const (
	RunPipelineErrorPipelineNotFound        RunPipelineError = "PIPELINE_NOT_FOUND"
	RunPipelineErrorPipelineVersionNotFound RunPipelineError = "PIPELINE_VERSION_NOT_FOUND"
	RunPipelineErrorInvalidConfig           RunPipelineError = "INVALID_CONFIG"
	RunPipelineErrorPermissionDenied        RunPipelineError = "PERMISSION_DENIED"
)

var runPipelineErrorValues = []RunPipelineError{
	RunPipelineErrorPipelineNotFound,
	RunPipelineErrorPipelineVersionNotFound,
	RunPipelineErrorInvalidConfig,
	RunPipelineErrorPermissionDenied,
}

// Valid reports whether r is a known value.
func (r RunPipelineError) Valid() bool {
	return slices.Contains(runPipelineErrorValues, r)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (r *RunPipelineError) UnmarshalText(text []byte) error {
	return unmarshalEnum(r, "RunPipelineError", runPipelineErrorValues, text)
}

// StopPipelineError lists the reasons a stopPipeline mutation can fail.
type StopPipelineError string

// StopPipelineError values.
const (
	StopPipelineErrorPipelineNotFound StopPipelineError = "PIPELINE_NOT_FOUND"
	StopPipelineErrorPermissionDenied StopPipelineError = "PERMISSION_DENIED"
)

var stopPipelineErrorValues = []StopPipelineError{
	StopPipelineErrorPipelineNotFound,
	StopPipelineErrorPermissionDenied,
}

// Valid reports whether s is a known value.
func (s StopPipelineError) Valid() bool {
	return slices.Contains(stopPipelineErrorValues, s)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (s *StopPipelineError) UnmarshalText(text []byte) error {
	return unmarshalEnum(s, "StopPipelineError", stopPipelineErrorValues, text)
}

// DeletePipelineError lists the reasons a deletePipeline mutation can fail.
type DeletePipelineError string

// DeletePipelineError values.
const (
	DeletePipelineErrorPipelineNotFound DeletePipelineError = "PIPELINE_NOT_FOUND"
	DeletePipelineErrorPermissionDenied DeletePipelineError = "PERMISSION_DENIED"
)

var deletePipelineErrorValues = []DeletePipelineError{
	DeletePipelineErrorPipelineNotFound,
	DeletePipelineErrorPermissionDenied,
}

// Valid reports whether d is a known value.
func (d DeletePipelineError) Valid() bool {
	return slices.Contains(deletePipelineErrorValues, d)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (d *DeletePipelineError) UnmarshalText(text []byte) error {
	return unmarshalEnum(d, "DeletePipelineError", deletePipelineErrorValues, text)
}

// CreateDatasetError lists the reasons a createDataset mutation can fail.
type CreateDatasetError string

// CreateDatasetError values.
const (
	CreateDatasetErrorWorkspaceNotFound CreateDatasetError = "WORKSPACE_NOT_FOUND"
	CreateDatasetErrorPermissionDenied  CreateDatasetError = "PERMISSION_DENIED"
)

var createDatasetErrorValues = []CreateDatasetError{
	CreateDatasetErrorWorkspaceNotFound,
	CreateDatasetErrorPermissionDenied,
}

// Valid reports whether c is a known value.
func (c CreateDatasetError) Valid() bool {
	return slices.Contains(createDatasetErrorValues, c)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (c *CreateDatasetError) UnmarshalText(text []byte) error {
	return unmarshalEnum(c, "CreateDatasetError", createDatasetErrorValues, text)
}

// CreateDatasetVersionError lists the reasons a createDatasetVersion mutation can fail.
type CreateDatasetVersionError string

// CreateDatasetVersionError values.
const (
	CreateDatasetVersionErrorDatasetNotFound  CreateDatasetVersionError = "DATASET_NOT_FOUND"
	CreateDatasetVersionErrorDuplicateName    CreateDatasetVersionError = "DUPLICATE_NAME"
	CreateDatasetVersionErrorPermissionDenied CreateDatasetVersionError = "PERMISSION_DENIED"
)

var createDatasetVersionErrorValues = []CreateDatasetVersionError{
	CreateDatasetVersionErrorDatasetNotFound,
	CreateDatasetVersionErrorDuplicateName,
	CreateDatasetVersionErrorPermissionDenied,
}

// Valid reports whether c is a known value.
func (c CreateDatasetVersionError) Valid() bool {
	return slices.Contains(createDatasetVersionErrorValues, c)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (c *CreateDatasetVersionError) UnmarshalText(text []byte) error {
	return unmarshalEnum(c, "CreateDatasetVersionError", createDatasetVersionErrorValues, text)
}

// DeleteDatasetError lists the reasons a deleteDataset mutation can fail.
type DeleteDatasetError string

// DeleteDatasetError values.
const (
	DeleteDatasetErrorDatasetNotFound  DeleteDatasetError = "DATASET_NOT_FOUND"
	DeleteDatasetErrorPermissionDenied DeleteDatasetError = "PERMISSION_DENIED"
)

var deleteDatasetErrorValues = []DeleteDatasetError{
	DeleteDatasetErrorDatasetNotFound,
	DeleteDatasetErrorPermissionDenied,
}

// Valid reports whether d is a known value.
func (d DeleteDatasetError) Valid() bool {
	return slices.Contains(deleteDatasetErrorValues, d)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (d *DeleteDatasetError) UnmarshalText(text []byte) error {
	return unmarshalEnum(d, "DeleteDatasetError", deleteDatasetErrorValues, text)
}

// CreateConnectionError lists the reasons a createConnection mutation can fail.
type CreateConnectionError string

// CreateConnectionError values.
const (
	CreateConnectionErrorInvalidSlug       CreateConnectionError = "INVALID_SLUG"
	CreateConnectionErrorWorkspaceNotFound CreateConnectionError = "WORKSPACE_NOT_FOUND"
	CreateConnectionErrorPermissionDenied  CreateConnectionError = "PERMISSION_DENIED"
)

var createConnectionErrorValues = []CreateConnectionError{
	CreateConnectionErrorInvalidSlug,
	CreateConnectionErrorWorkspaceNotFound,
	CreateConnectionErrorPermissionDenied,
}

// Valid reports whether c is a known value.
func (c CreateConnectionError) Valid() bool {
	return slices.Contains(createConnectionErrorValues, c)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (c *CreateConnectionError) UnmarshalText(text []byte) error {
	return unmarshalEnum(c, "CreateConnectionError", createConnectionErrorValues, text)
}

// UpdateConnectionError lists the reasons a updateConnection mutation can fail.
type UpdateConnectionError string

// UpdateConnectionError values.
const (
	UpdateConnectionErrorNotFound         UpdateConnectionError = "NOT_FOUND"
	UpdateConnectionErrorInvalidSlug      UpdateConnectionError = "INVALID_SLUG"
	UpdateConnectionErrorPermissionDenied UpdateConnectionError = "PERMISSION_DENIED"
)

var updateConnectionErrorValues = []UpdateConnectionError{
	UpdateConnectionErrorNotFound,
	UpdateConnectionErrorInvalidSlug,
	UpdateConnectionErrorPermissionDenied,
}

// Valid reports whether u is a known value.
func (u UpdateConnectionError) Valid() bool {
	return slices.Contains(updateConnectionErrorValues, u)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (u *UpdateConnectionError) UnmarshalText(text []byte) error {
	return unmarshalEnum(u, "UpdateConnectionError", updateConnectionErrorValues, text)
}

// DeleteConnectionError lists the reasons a deleteConnection mutation can fail.
type DeleteConnectionError string

// DeleteConnectionError values.
const (
	DeleteConnectionErrorNotFound         DeleteConnectionError = "NOT_FOUND"
	DeleteConnectionErrorPermissionDenied DeleteConnectionError = "PERMISSION_DENIED"
)

var deleteConnectionErrorValues = []DeleteConnectionError{
	DeleteConnectionErrorNotFound,
	DeleteConnectionErrorPermissionDenied,
}

// Valid reports whether d is a known value.
func (d DeleteConnectionError) Valid() bool {
	return slices.Contains(deleteConnectionErrorValues, d)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (d *DeleteConnectionError) UnmarshalText(text []byte) error {
	return unmarshalEnum(d, "DeleteConnectionError", deleteConnectionErrorValues, text)
}

// PrepareObjectUploadError lists the reasons a prepareObjectUpload mutation can fail.
type PrepareObjectUploadError string

// PrepareObjectUploadError values.
const (
	PrepareObjectUploadErrorPermissionDenied PrepareObjectUploadError = "PERMISSION_DENIED"
)

var prepareObjectUploadErrorValues = []PrepareObjectUploadError{
	PrepareObjectUploadErrorPermissionDenied,
}

// Valid reports whether p is a known value.
func (p PrepareObjectUploadError) Valid() bool {
	return slices.Contains(prepareObjectUploadErrorValues, p)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (p *PrepareObjectUploadError) UnmarshalText(text []byte) error {
	return unmarshalEnum(p, "PrepareObjectUploadError", prepareObjectUploadErrorValues, text)
}

// PrepareObjectDownloadError lists the reasons a prepareObjectDownload mutation can fail.
type PrepareObjectDownloadError string

// PrepareObjectDownloadError values.
const (
	PrepareObjectDownloadErrorNotFound         PrepareObjectDownloadError = "NOT_FOUND"
	PrepareObjectDownloadErrorPermissionDenied PrepareObjectDownloadError = "PERMISSION_DENIED"
)

var prepareObjectDownloadErrorValues = []PrepareObjectDownloadError{
	PrepareObjectDownloadErrorNotFound,
	PrepareObjectDownloadErrorPermissionDenied,
}

// Valid reports whether p is a known value.
func (p PrepareObjectDownloadError) Valid() bool {
	return slices.Contains(prepareObjectDownloadErrorValues, p)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (p *PrepareObjectDownloadError) UnmarshalText(text []byte) error {
	return unmarshalEnum(p, "PrepareObjectDownloadError", prepareObjectDownloadErrorValues, text)
}

// CreateBucketFolderError lists the reasons a createBucketFolder mutation can fail.
type CreateBucketFolderError string

// CreateBucketFolderError values.
const (
	CreateBucketFolderErrorAlreadyExists    CreateBucketFolderError = "ALREADY_EXISTS"
	CreateBucketFolderErrorNotFound         CreateBucketFolderError = "NOT_FOUND"
	CreateBucketFolderErrorPermissionDenied CreateBucketFolderError = "PERMISSION_DENIED"
)

var createBucketFolderErrorValues = []CreateBucketFolderError{
	CreateBucketFolderErrorAlreadyExists,
	CreateBucketFolderErrorNotFound,
	CreateBucketFolderErrorPermissionDenied,
}

// Valid reports whether c is a known value.
func (c CreateBucketFolderError) Valid() bool {
	return slices.Contains(createBucketFolderErrorValues, c)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (c *CreateBucketFolderError) UnmarshalText(text []byte) error {
	return unmarshalEnum(c, "CreateBucketFolderError", createBucketFolderErrorValues, text)
}

// DeleteBucketObjectError lists the reasons a deleteBucketObject mutation can fail.
type DeleteBucketObjectError string

// DeleteBucketObjectError values.
const (
	DeleteBucketObjectErrorNotFound         DeleteBucketObjectError = "NOT_FOUND"
	DeleteBucketObjectErrorPermissionDenied DeleteBucketObjectError = "PERMISSION_DENIED"
)

var deleteBucketObjectErrorValues = []DeleteBucketObjectError{
	DeleteBucketObjectErrorNotFound,
	DeleteBucketObjectErrorPermissionDenied,
}

// Valid reports whether d is a known value.
func (d DeleteBucketObjectError) Valid() bool {
	return slices.Contains(deleteBucketObjectErrorValues, d)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (d *DeleteBucketObjectError) UnmarshalText(text []byte) error {
	return unmarshalEnum(d, "DeleteBucketObjectError", deleteBucketObjectErrorValues, text)
}

// RunDAGError lists the reasons a runDAG mutation can fail.
type RunDAGError string

// RunDAGError values.
const (
	RunDAGErrorDAGNotFound   RunDAGError = "DAG_NOT_FOUND"
	RunDAGErrorInvalidConfig RunDAGError = "INVALID_CONFIG"
)

var runDAGErrorValues = []RunDAGError{
	RunDAGErrorDAGNotFound,
	RunDAGErrorInvalidConfig,
}

// Valid reports whether r is a known value.
func (r RunDAGError) Valid() bool {
	return slices.Contains(runDAGErrorValues, r)
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are an error.
func (r *RunDAGError) UnmarshalText(text []byte) error {
	return unmarshalEnum(r, "RunDAGError", runDAGErrorValues, text)
}
