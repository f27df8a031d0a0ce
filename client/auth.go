package client

import (
	"context"
	"net/http"
)

// Login exchanges a username/password pair for a bearer token. The token is
// returned, not stored; pass it to WithToken to make authenticated calls.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	var res struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/token", nil, body, &res); err != nil {
		return "", err
	}
	return res.Token, nil
}

// Signup registers a new account and returns its bearer token.
func (c *Client) Signup(ctx context.Context, input SignupInput) (string, error) {
	var res struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, input, &res); err != nil {
		return "", err
	}
	return res.Token, nil
}
