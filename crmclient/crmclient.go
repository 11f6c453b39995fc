// Package crmclient is a typed HTTP client for the CRM API. Every operation
// issues exactly one request — no retries, no deduplication — and routes any
// failure through a single normalization step before returning it.
package crmclient

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds each request. The system this replaces configured no
// timeout at all and could hang a screen forever; set Timeout to zero on the
// HTTP client to restore that behavior.
const DefaultTimeout = 10 * time.Second

// Client talks to one API server under its /api base path.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Session    *Session
}

// New creates a client. baseURL should include the /api base path, e.g.
// "http://localhost:5000/api". session may be nil for anonymous use.
func New(baseURL string, session *Session) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		Session:    session,
	}
}

func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: err.Error()}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Session != nil {
		if token := c.Session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		// Request went out, nothing came back
		return &APIError{Message: "no response from server"}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Message: err.Error()}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return normalizeResponseError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return &APIError{Message: err.Error()}
		}
	}
	return nil
}
