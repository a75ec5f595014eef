package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pacoyass/cantina/internal/models"
	"github.com/pacoyass/cantina/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactPayload() map[string]any {
	return map[string]any{
		"name":    "Sofia",
		"email":   "sofia@example.com",
		"phone":   "+212622222222",
		"subject": "Private event",
		"message": "Do you host birthday parties?",
	}
}

func TestCreateContact(t *testing.T) {
	r := setupTest(t)

	t.Run("valid submission", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/contact", contactPayload())
		assertStatus(t, w, http.StatusCreated)

		body := decodeBody(t, w)
		assert.Equal(t, "Contact form submitted successfully", body["message"])
		assert.NotZero(t, body["id"])

		var stored models.ContactMessage
		require.NoError(t, database.DB.First(&stored).Error)
		assert.Equal(t, "Private event", stored.Subject)
		assert.False(t, stored.IsRead)
	})

	t.Run("invalid email", func(t *testing.T) {
		payload := contactPayload()
		payload["email"] = "not-an-email"
		w := doRequest(t, r, http.MethodPost, "/api/contact", payload)
		assertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("missing subject", func(t *testing.T) {
		payload := contactPayload()
		delete(payload, "subject")
		w := doRequest(t, r, http.MethodPost, "/api/contact", payload)
		assertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("phone is optional", func(t *testing.T) {
		payload := contactPayload()
		delete(payload, "phone")
		w := doRequest(t, r, http.MethodPost, "/api/contact", payload)
		assertStatus(t, w, http.StatusCreated)
	})
}

func TestListContactMessages(t *testing.T) {
	r := setupTest(t)

	for i := 0; i < 25; i++ {
		require.NoError(t, database.DB.Create(&models.ContactMessage{
			Name:    fmt.Sprintf("Guest %d", i),
			Email:   fmt.Sprintf("guest%d@example.com", i),
			Subject: "Hello",
			Message: "Hi there",
		}).Error)
	}

	t.Run("paginated", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/contact?page=2&limit=10", nil)
		assertStatus(t, w, http.StatusOK)

		body := decodeBody(t, w)
		assert.Len(t, body["data"], 10)

		pagination := body["pagination"].(map[string]any)
		assert.Equal(t, 2.0, pagination["page"])
		assert.Equal(t, 10.0, pagination["limit"])
		assert.Equal(t, 25.0, pagination["total"])
		assert.Equal(t, 3.0, pagination["pages"])
	})

	t.Run("unread filter", func(t *testing.T) {
		var first models.ContactMessage
		require.NoError(t, database.DB.First(&first).Error)
		w := doRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/contact/%d/read", first.ID), nil)
		assertStatus(t, w, http.StatusOK)

		w = doRequest(t, r, http.MethodGet, "/api/contact?unread=true&limit=100", nil)
		assertStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		assert.Len(t, body["data"], 24)
	})
}

func TestMarkRead(t *testing.T) {
	r := setupTest(t)

	message := models.ContactMessage{Name: "Sofia", Email: "sofia@example.com", Subject: "Hi", Message: "Hello"}
	require.NoError(t, database.DB.Create(&message).Error)

	t.Run("marks as read", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/contact/%d/read", message.ID), nil)
		assertStatus(t, w, http.StatusOK)
		assert.Equal(t, true, decodeBody(t, w)["is_read"])
	})

	t.Run("unknown message is 404", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPatch, "/api/contact/999/read", nil)
		assertStatus(t, w, http.StatusNotFound)
	})
}
