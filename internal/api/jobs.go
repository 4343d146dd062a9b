package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jonathan/job-finder/internal/types"
)

// SearchParams are the query parameters for the server-side job search.
// Zero-value fields are omitted from the query.
type SearchParams struct {
	Keyword   string
	Location  string
	JobType   string
	SalaryMin *float64
	SalaryMax *float64
}

func (p SearchParams) query() url.Values {
	q := url.Values{}
	if p.Keyword != "" {
		q.Set("keyword", p.Keyword)
	}
	if p.Location != "" {
		q.Set("location", p.Location)
	}
	if p.JobType != "" {
		q.Set("jobType", p.JobType)
	}
	if p.SalaryMin != nil {
		q.Set("salaryMin", strconv.FormatFloat(*p.SalaryMin, 'f', -1, 64))
	}
	if p.SalaryMax != nil {
		q.Set("salaryMax", strconv.FormatFloat(*p.SalaryMax, 'f', -1, 64))
	}
	return q
}

// GetJobs fetches every open posting.
func (c *Client) GetJobs(ctx context.Context) ([]types.Job, error) {
	var jobs []types.Job
	if err := c.do(ctx, "get jobs", http.MethodGet, "/api/jobs", nil, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetPostedJobs fetches the postings owned by the authenticated employer.
func (c *Client) GetPostedJobs(ctx context.Context) ([]types.Job, error) {
	q := url.Values{"posted": []string{"true"}}
	var jobs []types.Job
	if err := c.do(ctx, "get posted jobs", http.MethodGet, "/api/jobs", q, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// SearchJobs runs a server-side search. An empty result is not an error.
func (c *Client) SearchJobs(ctx context.Context, params SearchParams) ([]types.Job, error) {
	var jobs []types.Job
	if err := c.do(ctx, "search jobs", http.MethodGet, "/api/jobs/search", params.query(), nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob fetches a single posting by ID.
func (c *Client) GetJob(ctx context.Context, jobID string) (*types.Job, error) {
	var job types.Job
	if err := c.do(ctx, "get job", http.MethodGet, "/api/jobs/"+url.PathEscape(jobID), nil, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// PostJob creates a posting and returns the stored record.
func (c *Client) PostJob(ctx context.Context, job types.Job) (*types.Job, error) {
	job.ID = ""
	var created types.Job
	if err := c.do(ctx, "post job", http.MethodPost, "/api/jobs", nil, job, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateJob overwrites a posting. The server applies the body as-is; there
// is no versioning.
func (c *Client) UpdateJob(ctx context.Context, jobID string, job types.Job) (*types.Job, error) {
	var updated types.Job
	if err := c.do(ctx, "update job", http.MethodPut, "/api/jobs/"+url.PathEscape(jobID), nil, job, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteJob removes a posting.
func (c *Client) DeleteJob(ctx context.Context, jobID string) error {
	return c.do(ctx, "delete job", http.MethodDelete, "/api/jobs/"+url.PathEscape(jobID), nil, nil, nil)
}

// GetCandidates lists the applicants for one of the employer's postings.
func (c *Client) GetCandidates(ctx context.Context, jobID string) ([]types.Candidate, error) {
	var candidates []types.Candidate
	if err := c.do(ctx, "get candidates", http.MethodGet, "/api/jobs/"+url.PathEscape(jobID)+"/candidates", nil, nil, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}
