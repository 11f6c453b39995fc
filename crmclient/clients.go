package crmclient

import (
	"fmt"
	"net/http"

	"crmpro-backend/models"
)

// ClientInput carries the fields for creating or partially updating a
// client record; empty fields are omitted from update payloads.
type ClientInput struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

func (c *Client) CreateClient(input ClientInput) (*models.Client, error) {
	var out models.Client
	if err := c.do(http.MethodPost, "/clients", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetClients() ([]models.Client, error) {
	var out []models.Client
	if err := c.do(http.MethodGet, "/clients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetClientByID(id uint) (*models.Client, error) {
	var out models.Client
	if err := c.do(http.MethodGet, fmt.Sprintf("/clients/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateClient(id uint, input ClientInput) (*models.Client, error) {
	var out models.Client
	if err := c.do(http.MethodPut, fmt.Sprintf("/clients/%d", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteClient(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/clients/%d", id), nil, nil)
}
