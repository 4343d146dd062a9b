package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jonathan/job-finder/internal/types"
)

// Apply submits an application for a job. The request is validated locally
// before any network call; a missing CV or job ID never reaches the wire.
func (c *Client) Apply(ctx context.Context, req types.ApplyRequest) (*types.Application, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var app types.Application
	if err := c.do(ctx, "apply", http.MethodPost, "/api/applications", nil, req, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// GetUserApplications lists the authenticated user's applications.
func (c *Client) GetUserApplications(ctx context.Context) ([]types.Application, error) {
	var apps []types.Application
	if err := c.do(ctx, "get user applications", http.MethodGet, "/api/applications/user", nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// GetAppliedJobs lists the postings the user has already applied to.
func (c *Client) GetAppliedJobs(ctx context.Context) ([]types.Job, error) {
	var jobs []types.Job
	if err := c.do(ctx, "get applied jobs", http.MethodGet, "/api/applications/applied", nil, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetApplicationStatus lists the user's applications with their current
// review status.
func (c *Client) GetApplicationStatus(ctx context.Context) ([]types.Application, error) {
	var apps []types.Application
	if err := c.do(ctx, "get application status", http.MethodGet, "/api/applications/status", nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateApplicationStatus moves an application through the review pipeline.
// Only the job's poster is authorized; anyone else gets a server rejection.
func (c *Client) UpdateApplicationStatus(ctx context.Context, applicationID string, status types.ApplicationStatus) (*types.Application, error) {
	req := types.UpdateStatusRequest{Status: status}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var app types.Application
	path := "/api/applications/" + url.PathEscape(applicationID) + "/status"
	if err := c.do(ctx, "update application status", http.MethodPut, path, nil, req, &app); err != nil {
		return nil, err
	}
	return &app, nil
}
