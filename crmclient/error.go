package crmclient

import (
	"encoding/json"
)

// APIError is the single normalized error every operation returns on
// failure. StatusCode is zero when no response arrived.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// normalizeResponseError prefers the structured {message} body the server
// sends for every failure; anything else degrades to a generic message.
func normalizeResponseError(status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &APIError{StatusCode: status, Message: payload.Message}
	}
	return &APIError{StatusCode: status, Message: "server error"}
}
