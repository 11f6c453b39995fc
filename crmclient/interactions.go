package crmclient

import (
	"fmt"
	"net/http"

	"crmpro-backend/models"
)

type InteractionInput struct {
	ClientID uint   `json:"clientId"`
	Type     string `json:"type"`
	Notes    string `json:"notes,omitempty"`
	Date     string `json:"date"`
}

func (c *Client) CreateInteraction(input InteractionInput) (*models.Interaction, error) {
	var out models.Interaction
	if err := c.do(http.MethodPost, "/interactions", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetInteractions(clientID uint) ([]models.Interaction, error) {
	var out []models.Interaction
	if err := c.do(http.MethodGet, fmt.Sprintf("/interactions/%d", clientID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteInteraction(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/interactions/%d", id), nil, nil)
}
