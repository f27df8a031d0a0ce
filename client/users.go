package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetUsers lists all users, ordered by username. Requires an admin token.
func (c *Client) GetUsers(ctx context.Context) ([]User, error) {
	var res struct {
		Users []User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Users, nil
}

// GetUser fetches one user by username, with their applications attached.
// Requires the user's own token or an admin token.
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	var res struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), nil, nil, &res); err != nil {
		return nil, err
	}
	return res.User, nil
}

// UpdateUser patches the provided fields of a user profile. Requires the
// user's own token or an admin token.
func (c *Client) UpdateUser(ctx context.Context, username string, patch UserPatch) (*User, error) {
	var res struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(username), nil, patch, &res); err != nil {
		return nil, err
	}
	return res.User, nil
}

// DeleteUser deletes a user by username. Requires the user's own token or
// an admin token.
func (c *Client) DeleteUser(ctx context.Context, username string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(username), nil, nil, nil)
}

// ApplyToJob records username's application to a job. An empty status lets
// the server default it to "applied". Requires the user's own token or an
// admin token.
func (c *Client) ApplyToJob(ctx context.Context, username string, jobID int, status string) error {
	path := fmt.Sprintf("/users/%s/jobs/%d", url.PathEscape(username), jobID)

	var body any
	if status != "" {
		body = struct {
			Status string `json:"status"`
		}{Status: status}
	}
	return c.do(ctx, http.MethodPost, path, nil, body, nil)
}
