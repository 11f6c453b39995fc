package crmclient

import (
	"fmt"
	"net/http"

	"crmpro-backend/models"
)

type OrderInput struct {
	ClientID     uint     `json:"clientId"`
	OrderDetails string   `json:"orderDetails"`
	TotalAmount  *float64 `json:"totalAmount"`
}

func (c *Client) CreateOrder(input OrderInput) (*models.Order, error) {
	var out models.Order
	if err := c.do(http.MethodPost, "/orders", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetOrders(clientID uint) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(http.MethodGet, fmt.Sprintf("/orders/%d", clientID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteOrder(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil, nil)
}
