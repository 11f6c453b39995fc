package crmclient

import (
	"net/http"

	"crmpro-backend/models"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult mirrors the login response body.
type LoginResult struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
	Token   string      `json:"token"`
}

func (c *Client) Register(creds Credentials) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.do(http.MethodPost, "/users/register", creds, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Login authenticates and, when a session is configured, persists the
// returned token through it.
func (c *Client) Login(creds Credentials) (*LoginResult, error) {
	var out LoginResult
	if err := c.do(http.MethodPost, "/users/login", creds, &out); err != nil {
		return nil, err
	}
	if c.Session != nil && out.Token != "" {
		if err := c.Session.SetToken(out.Token); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

// Logout tears the session down locally; the server keeps no session state.
func (c *Client) Logout() error {
	if c.Session == nil {
		return nil
	}
	return c.Session.Clear()
}
