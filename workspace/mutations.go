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
	"encoding/json"
)

// Mutation results report failures in their errors list rather than as
// GraphQL errors. The client methods turn an unsuccessful result into a
// *MutationError.

var emptyObject = json.RawMessage("{}")

// CreateWorkspaceResult is the payload of the createWorkspace mutation.
type CreateWorkspaceResult struct {
	Success   bool                   `json:"success"`
	Errors    []CreateWorkspaceError `json:"errors"`
	Workspace *Workspace             `json:"workspace"`
}

// CreateWorkspace creates a workspace and returns it.
func (c *Client) CreateWorkspace(ctx context.Context, input CreateWorkspaceInput) (*Workspace, error) {
	var data struct {
		Result CreateWorkspaceResult `json:"createWorkspace"`
	}
	if err := c.do(ctx, "CreateWorkspace", inputVars{input}, &data); err != nil {
		return nil, err
	}
	if err := mutationError("createWorkspace", data.Result.Success, data.Result.Errors); err != nil {
		return nil, err
	}
	return data.Result.Workspace, nil
}

// UpdateWorkspaceResult is the payload of the updateWorkspace mutation.
type UpdateWorkspaceResult struct {
	Success   bool                   `json:"success"`
	Errors    []UpdateWorkspaceError `json:"errors"`
	Workspace *Workspace             `json:"workspace"`
}

// UpdateWorkspace changes the set fields of a workspace.
func (c *Client) UpdateWorkspace(ctx context.Context, input UpdateWorkspaceInput) (*Workspace, error) {
	var data struct {
		Result UpdateWorkspaceResult `json:"updateWorkspace"`
	}
	if err := c.do(ctx, "UpdateWorkspace", inputVars{input}, &data); err != nil {
		return nil, err
	}
	if err := mutationError("updateWorkspace", data.Result.Success, data.Result.Errors); err != nil {
		return nil, err
	}
	return data.Result.Workspace, nil
}

// DeleteWorkspaceResult is the payload of the deleteWorkspace mutation.
type DeleteWorkspaceResult struct {
	Success bool                   `json:"success"`
	Errors  []DeleteWorkspaceError `json:"errors"`
}

// DeleteWorkspace deletes a workspace and everything in it.
func (c *Client) DeleteWorkspace(ctx context.Context, input DeleteWorkspaceInput) error {
	var data struct {
		Result DeleteWorkspaceResult `json:"deleteWorkspace"`
	}
	if err := c.do(ctx, "DeleteWorkspace", inputVars{input}, &data); err != nil {
		return err
	}
	return mutationError("deleteWorkspace", data.Result.Success, data.Result.Errors)
}

// InviteWorkspaceMemberResult is the payload of the inviteWorkspaceMember mutation.
type InviteWorkspaceMemberResult struct {
	Success             bool                         `json:"success"`
	Errors              []InviteWorkspaceMemberError `json:"errors"`
	WorkspaceMembership *WorkspaceMembership         `json:"workspaceMembership"`
}

// InviteWorkspaceMember adds a user to a workspace.
func (c *Client) InviteWorkspaceMember(ctx context.Context, input InviteWorkspaceMemberInput) (*WorkspaceMembership, error) {
	var data struct {
		Result InviteWorkspaceMemberResult `json:"inviteWorkspaceMember"`
	}
	if err := c.do(ctx, "InviteWorkspaceMember", inputVars{input}, &data); err != nil {
		return nil, err
	}
	if err := mutationError("inviteWorkspaceMember", data.Result.Success, data.Result.Errors); err != nil {
		return nil, err
	}
	return data.Result.WorkspaceMembership, nil
}

// RunPipelineResult is the payload of the runPipeline mutation.
type RunPipelineResult struct {
	Success bool               `json:"success"`
	Errors  []RunPipelineError `json:"errors"`
	Run     *PipelineRun       `json:"run"`
}

// RunPipeline starts a pipeline run. A nil Config is sent as an empty object.
func (c *Client) RunPipeline(ctx context.Context, input RunPipelineInput) (*PipelineRun, error) {
	if input.Config == nil {
		input.Config = emptyObject
	}
	var data struct {
		Result RunPipelineResult `json:"runPipeline"`
	}
	if err := c.do(ctx, "RunPipeline", inputVars{input}, &data); err != nil {
		return nil, err
	}
	if err := mutationError("runPipeline", data.Result.Success, data.Result.Errors); err != nil {
		return nil, err
	}
	return data.Result.Run, nil
}

// StopPipelineResult is the payload of the stopPipeline mutation.
type StopPipelineResult struct {
	Success bool                `json:"success"`
	Errors  []StopPipelineError `json:"errors"`
}

// StopPipeline asks the platform to stop a run.
func (c *Client) StopPipeline(ctx context.Context, input StopPipelineInput) error {
	var data struct {
		Result StopPipelineResult `json:"stopPipeline"`
	}
	if err := c.do(ctx, "StopPipeline", inputVars{input}, &data); err != nil {
		return err
	}
	return mutationError("stopPipeline", data.Result.Success, data.Result.Errors)
}

// DeletePipelineResult is the payload of the deletePipeline mutation.
type DeletePipelineResult struct {
	Success bool                  `json:"success"`
	Errors  []DeletePipelineError `json:"errors"`
}

// DeletePipeline deletes a pipeline with all its versions and runs.
func (c *Client) DeletePipeline(ctx context.Context, input DeletePipelineInput) error {
	var data struct {
		Result DeletePipelineResult `json:"deletePipeline"`
	}
	if err := c.do(ctx, "DeletePipeline", inputVars{input}, &data); err != nil {
		return err
	}
	return mutationError("deletePipeline", data.Result.Success, data.Result.Errors)
}

// CreateDatasetResult is the payload of the createDataset mutation.
type CreateDatasetResult struct {
	Success bool                 `json:"success"`
	Errors  []CreateDatasetError `json:"errors"`
	Dataset *Dataset             `json:"dataset"`
	Link    *DatasetLink         `json:"link"`
}

// CreateDataset creates a dataset linked to a workspace.
func (c *Client) CreateDataset(ctx context.Context, input CreateDatasetInput) (*Dataset, error) {
	var data struct {
		Result CreateDatasetResult `json:"createDataset"`
	}
	if err := c.do(ctx, "CreateDataset", inputVars{input}, &data); err != nil {
		return nil, err
	}
	if err := mutationError("createDataset", data.Result.Success, data.Result.Errors); err != nil {
		return nil, err
	}
	return data.Result.Dataset, nil
}

// CreateDatasetVersionResult is the payload of the createDatasetVersion mutation.
type CreateDatasetVersionResult struct {
	Success bool                        `json:"success"`
	Errors  []CreateDatasetVersionError `json:"errors"`
	Version *DatasetVersion             `json:"version"`
}

// CreateDatasetVersion adds a version to a dataset.
func (c *Client) CreateDatasetVersion(ctx context.Context, input CreateDatasetVersionInput) (*DatasetVersion, error) {
	var data struct {
		Result CreateDatasetVersionResult `json:"createDatasetVersion"`
	}
	if err := c.do(ctx, "CreateDatasetVersion", inputVars{input}, &data); err != nil {
		return nil, err
	}
	if err := mutationError("createDatasetVersion", data.Result.Success, data.Result.Errors); err != nil {
		return nil, err
	}
	return data.Result.Version, nil
}

// DeleteDatasetResult is the payload of the deleteDataset mutation.
type DeleteDatasetResult struct {
	Success bool                 `json:"success"`
	Errors  []DeleteDatasetError `json:"errors"`
}

// DeleteDataset deletes a dataset.
func (c *Client) DeleteDataset(ctx context.Context, input DeleteDatasetInput) error {
	var data struct {
		Result DeleteDatasetResult `json:"deleteDataset"`
	}
	if err := c.do(ctx, "DeleteDataset", inputVars{input}, &data); err != nil {
		return err
	}
	return mutationError("deleteDataset", data.Result.Success, data.Result.Errors)
}

// CreateConnectionResult is the payload of the createConnection mutation.
type CreateConnectionResult struct {
	Success    bool                    `json:"success"`
	Errors     []CreateConnectionError `json:"errors"`
	Connection *Connection             `json:"connection"`
}

// CreateConnection stores a new connection in a workspace.
func (c *Client) CreateConnection(ctx context.Context, input CreateConnectionInput) (*Connection, error) {
	var data struct {
		Result CreateConnectionResult `json:"createConnection"`
	}
	if err := c.do(ctx, "CreateConnection", inputVars{input}, &data); err != nil {
		return nil, err
	}
	if err := mutationError("createConnection", data.Result.Success, data.Result.Errors); err != nil {
		return nil, err
	}
	return data.Result.Connection, nil
}

// UpdateConnectionResult is the payload of the updateConnection mutation.
type UpdateConnectionResult struct {
	Success    bool                    `json:"success"`
	Errors     []UpdateConnectionError `json:"errors"`
	Connection *Connection             `json:"connection"`
}

// UpdateConnection changes the set fields of a connection.
func (c *Client) UpdateConnection(ctx context.Context, input UpdateConnectionInput) (*Connection, error) {
	var data struct {
		Result UpdateConnectionResult `json:"updateConnection"`
	}
	if err := c.do(ctx, "UpdateConnection", inputVars{input}, &data); err != nil {
		return nil, err
	}
	if err := mutationError("updateConnection", data.Result.Success, data.Result.Errors); err != nil {
		return nil, err
	}
	return data.Result.Connection, nil
}

// DeleteConnectionResult is the payload of the deleteConnection mutation.
type DeleteConnectionResult struct {
	Success bool                    `json:"success"`
	Errors  []DeleteConnectionError `json:"errors"`
}

// DeleteConnection deletes a connection.
func (c *Client) DeleteConnection(ctx context.Context, input DeleteConnectionInput) error {
	var data struct {
		Result DeleteConnectionResult `json:"deleteConnection"`
	}
	if err := c.do(ctx, "DeleteConnection", inputVars{input}, &data); err != nil {
		return err
	}
	return mutationError("deleteConnection", data.Result.Success, data.Result.Errors)
}

// PrepareObjectUploadResult is the payload of the prepareObjectUpload mutation.
type PrepareObjectUploadResult struct {
	Success   bool                       `json:"success"`
	Errors    []PrepareObjectUploadError `json:"errors"`
	UploadURL *string                    `json:"uploadUrl"`
}

// PrepareObjectUpload returns a signed URL to PUT an object into a workspace bucket.
func (c *Client) PrepareObjectUpload(ctx context.Context, input PrepareObjectUploadInput) (string, error) {
	var data struct {
		Result PrepareObjectUploadResult `json:"prepareObjectUpload"`
	}
	if err := c.do(ctx, "PrepareObjectUpload", inputVars{input}, &data); err != nil {
		return "", err
	}
	if err := mutationError("prepareObjectUpload", data.Result.Success, data.Result.Errors); err != nil {
		return "", err
	}
	if data.Result.UploadURL == nil {
		return "", nil
	}
	return *data.Result.UploadURL, nil
}

// PrepareObjectDownloadResult is the payload of the prepareObjectDownload mutation.
type PrepareObjectDownloadResult struct {
	Success     bool                         `json:"success"`
	Errors      []PrepareObjectDownloadError `json:"errors"`
	DownloadURL *string                      `json:"downloadUrl"`
}

// PrepareObjectDownload returns a signed URL to GET an object from a workspace bucket.
func (c *Client) PrepareObjectDownload(ctx context.Context, input PrepareObjectDownloadInput) (string, error) {
	var data struct {
		Result PrepareObjectDownloadResult `json:"prepareObjectDownload"`
	}
	if err := c.do(ctx, "PrepareObjectDownload", inputVars{input}, &data); err != nil {
		return "", err
	}
	if err := mutationError("prepareObjectDownload", data.Result.Success, data.Result.Errors); err != nil {
		return "", err
	}
	if data.Result.DownloadURL == nil {
		return "", nil
	}
	return *data.Result.DownloadURL, nil
}

// CreateBucketFolderResult is the payload of the createBucketFolder mutation.
type CreateBucketFolderResult struct {
	Success bool                      `json:"success"`
	Errors  []CreateBucketFolderError `json:"errors"`
	Folder  *BucketObject             `json:"folder"`
}

// CreateBucketFolder creates a directory in a workspace bucket.
func (c *Client) CreateBucketFolder(ctx context.Context, input CreateBucketFolderInput) (*BucketObject, error) {
	var data struct {
		Result CreateBucketFolderResult `json:"createBucketFolder"`
	}
	if err := c.do(ctx, "CreateBucketFolder", inputVars{input}, &data); err != nil {
		return nil, err
	}
	if err := mutationError("createBucketFolder", data.Result.Success, data.Result.Errors); err != nil {
		return nil, err
	}
	return data.Result.Folder, nil
}

// DeleteBucketObjectResult is the payload of the deleteBucketObject mutation.
type DeleteBucketObjectResult struct {
	Success bool                      `json:"success"`
	Errors  []DeleteBucketObjectError `json:"errors"`
}

// DeleteBucketObject deletes a file or a directory from a workspace bucket.
func (c *Client) DeleteBucketObject(ctx context.Context, input DeleteBucketObjectInput) error {
	var data struct {
		Result DeleteBucketObjectResult `json:"deleteBucketObject"`
	}
	if err := c.do(ctx, "DeleteBucketObject", inputVars{input}, &data); err != nil {
		return err
	}
	return mutationError("deleteBucketObject", data.Result.Success, data.Result.Errors)
}

// RunDAGResult is the payload of the runDAG mutation.
type RunDAGResult struct {
	Success bool          `json:"success"`
	Errors  []RunDAGError `json:"errors"`
	DAG     *DAG          `json:"dag"`
	DAGRun  *DAGRun       `json:"dagRun"`
}

// RunDAG triggers a run of a legacy DAG.
func (c *Client) RunDAG(ctx context.Context, input RunDAGInput) (*DAGRun, error) {
	if input.Config == nil {
		input.Config = emptyObject
	}
	var data struct {
		Result RunDAGResult `json:"runDAG"`
	}
	if err := c.do(ctx, "RunDAG", inputVars{input}, &data); err != nil {
		return nil, err
	}
	if err := mutationError("runDAG", data.Result.Success, data.Result.Errors); err != nil {
		return nil, err
	}
	return data.Result.DAGRun, nil
}

// inputVars holds the single $input variable every mutation takes.
type inputVars struct {
	Input interface{} `json:"input"`
}
