// Package client is the consumer-side wrapper over the job board HTTP API.
// It exposes one method per endpoint, sends data as query parameters on GET
// and as a JSON body otherwise, and attaches a bearer token when the client
// carries one. Every non-2xx response is normalized into an *APIError
// holding the list of human-readable messages from the error envelope.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client calls the job board API at a fixed base URL. The token is part of
// the client value itself; use WithToken to derive a client for another
// identity instead of mutating shared state.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New returns an unauthenticated client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// NewWithToken returns a client that presents token as its bearer credential.
func NewWithToken(baseURL, token string) *Client {
	c := New(baseURL)
	c.token = token
	return c
}

// WithToken returns a copy of the client carrying token as its credential.
// The receiver is left untouched, so one base client can serve any number
// of logged-in identities concurrently.
func (c *Client) WithToken(token string) *Client {
	derived := *c
	derived.token = token
	return &derived
}

// APIError is any non-2xx response from the API, flattened into its status
// code and the message strings from the error envelope. There is always at
// least one message.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

// do runs one request against the API. query is appended to the URL, body
// (when non-nil) is JSON-encoded, and a 2xx response is decoded into out
// (when non-nil). Any other status is returned as an *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request for %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("build request for %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeAPIError(res)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response for %s %s: %w", method, path, err)
	}
	return nil
}

// decodeAPIError reads a failed response into an *APIError. The envelope's
// message field may be a single string or a list; both come back as a list,
// and an unreadable body falls back to the standard status text so callers
// always have something to show.
func decodeAPIError(res *http.Response) error {
	apiErr := &APIError{StatusCode: res.StatusCode}

	var envelope struct {
		Error struct {
			Message json.RawMessage `json:"message"`
			Status  int             `json:"status"`
		} `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil || len(envelope.Error.Message) == 0 {
		apiErr.Messages = []string{http.StatusText(res.StatusCode)}
		return apiErr
	}

	var single string
	if err := json.Unmarshal(envelope.Error.Message, &single); err == nil {
		apiErr.Messages = []string{single}
		return apiErr
	}
	var many []string
	if err := json.Unmarshal(envelope.Error.Message, &many); err == nil && len(many) > 0 {
		apiErr.Messages = many
		return apiErr
	}

	apiErr.Messages = []string{string(envelope.Error.Message)}
	return apiErr
}
