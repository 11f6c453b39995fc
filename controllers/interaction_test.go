package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"crmpro-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInteraction(t *testing.T) {
	r := setupRouter(t)
	client := createClient(t, r, "Ann", "ann@x.com", "123")

	w := doRequest(t, r, http.MethodPost, "/api/interactions", gin.H{
		"clientId": client.ID,
		"type":     "call",
		"notes":    "hi",
		"date":     "2024-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var interaction models.Interaction
	decodeBody(t, w, &interaction)
	assert.NotZero(t, interaction.ID)
	assert.Equal(t, client.ID, interaction.ClientID)
	assert.Equal(t, "call", interaction.Type)
	assert.Equal(t, "hi", interaction.Notes)
	assert.Equal(t, 2024, interaction.Date.Year())
}

func TestCreateInteractionUnknownClient(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/interactions", gin.H{
		"clientId": 42,
		"type":     "call",
		"date":     "2024-01-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestCreateInteractionMissingFields(t *testing.T) {
	r := setupRouter(t)
	client := createClient(t, r, "Ann", "ann@x.com", "123")

	cases := []struct {
		name string
		body gin.H
	}{
		{"no client", gin.H{"type": "call", "date": "2024-01-01"}},
		{"no type", gin.H{"clientId": client.ID, "date": "2024-01-01"}},
		{"no date", gin.H{"clientId": client.ID, "type": "call"}},
		{"bad date", gin.H{"clientId": client.ID, "type": "call", "date": "yesterday"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodPost, "/api/interactions", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetInteractionsScopedToOwner(t *testing.T) {
	r := setupRouter(t)
	ann := createClient(t, r, "Ann", "ann@x.com", "1")
	bob := createClient(t, r, "Bob", "bob@x.com", "2")

	// Interleave creation so a missing filter would mix owners
	for i, owner := range []uint{ann.ID, bob.ID, ann.ID, bob.ID, ann.ID} {
		w := doRequest(t, r, http.MethodPost, "/api/interactions", gin.H{
			"clientId": owner,
			"type":     fmt.Sprintf("call-%d", i),
			"date":     "2024-01-01",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/interactions/%d", ann.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var interactions []models.Interaction
	decodeBody(t, w, &interactions)
	require.Len(t, interactions, 3)
	for _, interaction := range interactions {
		assert.Equal(t, ann.ID, interaction.ClientID)
	}
}

func TestGetInteractionsInvalidOwnerID(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/interactions/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "owner id required")
}

func TestDeleteInteraction(t *testing.T) {
	r := setupRouter(t)
	client := createClient(t, r, "Ann", "ann@x.com", "123")

	w := doRequest(t, r, http.MethodPost, "/api/interactions", gin.H{
		"clientId": client.ID,
		"type":     "call",
		"date":     "2024-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var interaction models.Interaction
	decodeBody(t, w, &interaction)

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/interactions/%d", interaction.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/interactions/%d", interaction.ID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
