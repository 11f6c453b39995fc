package crmclient

import (
	"fmt"
	"net/http"

	"crmpro-backend/models"
)

type NoteInput struct {
	ClientID uint   `json:"clientId"`
	Content  string `json:"content"`
}

func (c *Client) CreateNote(input NoteInput) (*models.Note, error) {
	var out models.Note
	if err := c.do(http.MethodPost, "/notes", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetNotes(clientID uint) ([]models.Note, error) {
	var out []models.Note
	if err := c.do(http.MethodGet, fmt.Sprintf("/notes/%d", clientID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteNote(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/notes/%d", id), nil, nil)
}
