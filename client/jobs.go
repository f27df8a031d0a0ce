package client

import (
	"context"
	"fmt"
	"net/http"
)

// GetJobs lists jobs matching the filter, ordered by title.
func (c *Client) GetJobs(ctx context.Context, filter JobFilter) ([]Job, error) {
	var res struct {
		Jobs []Job `json:"jobs"`
	}
	if err := c.do(ctx, http.MethodGet, "/jobs", filter.query(), nil, &res); err != nil {
		return nil, err
	}
	return res.Jobs, nil
}

// GetJob fetches one job by id, with its company attached.
func (c *Client) GetJob(ctx context.Context, id int) (*Job, error) {
	var res struct {
		Job *Job `json:"job"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/jobs/%d", id), nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Job, nil
}

// CreateJob creates a job listing. Requires an admin token.
func (c *Client) CreateJob(ctx context.Context, input JobInput) (*Job, error) {
	var res struct {
		Job *Job `json:"job"`
	}
	if err := c.do(ctx, http.MethodPost, "/jobs", nil, input, &res); err != nil {
		return nil, err
	}
	return res.Job, nil
}

// UpdateJob patches the provided fields of a job. Requires an admin token.
func (c *Client) UpdateJob(ctx context.Context, id int, patch JobPatch) (*Job, error) {
	var res struct {
		Job *Job `json:"job"`
	}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/jobs/%d", id), nil, patch, &res); err != nil {
		return nil, err
	}
	return res.Job, nil
}

// DeleteJob deletes a job by id. Requires an admin token.
func (c *Client) DeleteJob(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/jobs/%d", id), nil, nil, nil)
}
