package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/pacoyass/cantina/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMenu(t *testing.T) {
	r := setupTest(t)

	desserts := createCategory(t, "Desserts", 2)
	tacos := createCategory(t, "Tacos", 1)
	createMenuItem(t, tacos.ID, "Fish Tacos", 52)
	createMenuItem(t, tacos.ID, "Carnitas Tacos", 45)
	createMenuItem(t, desserts.ID, "Churros", 35)
	createMenuItem(t, tacos.ID, "86'd Tacos", 40, func(m *models.MenuItem) { m.IsAvailable = false })

	w := doRequest(t, r, http.MethodGet, "/api/menu", nil)
	assertStatus(t, w, http.StatusOK)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 2)

	assert.Equal(t, "Tacos", categories[0].Name, "categories come back in display order")
	assert.Equal(t, "Desserts", categories[1].Name)

	require.Len(t, categories[0].MenuItems, 2, "unavailable items are hidden")
	assert.Equal(t, "Carnitas Tacos", categories[0].MenuItems[0].Name, "items sorted by name")
}

func TestGetByCategory(t *testing.T) {
	r := setupTest(t)
	tacos := createCategory(t, "Tacos", 1)
	createMenuItem(t, tacos.ID, "Fish Tacos", 52)

	t.Run("known category", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/menu/category/%d", tacos.ID), nil)
		assertStatus(t, w, http.StatusOK)

		var items []models.MenuItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		require.Len(t, items, 1)
		require.NotNil(t, items[0].Category)
		assert.Equal(t, "Tacos", items[0].Category.Name)
	})

	t.Run("unknown category", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/menu/category/999", nil)
		assertStatus(t, w, http.StatusNotFound)
	})
}

func TestGetSpecials(t *testing.T) {
	r := setupTest(t)
	specials := createCategory(t, "Weekend Specials", 1)
	createMenuItem(t, specials.ID, "Pollo a la Brasa", 150, func(m *models.MenuItem) { m.IsSpecial = true })
	createMenuItem(t, specials.ID, "Retired Special", 99, func(m *models.MenuItem) {
		m.IsSpecial = true
		m.IsAvailable = false
	})
	createMenuItem(t, specials.ID, "Ordinary Dish", 60)

	w := doRequest(t, r, http.MethodGet, "/api/menu/specials", nil)
	assertStatus(t, w, http.StatusOK)

	var items []models.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Pollo a la Brasa", items[0].Name)
}

func TestGetItem(t *testing.T) {
	r := setupTest(t)
	tacos := createCategory(t, "Tacos", 1)
	item := createMenuItem(t, tacos.ID, "Fish Tacos", 52)

	t.Run("known item", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/menu/item/%d", item.ID), nil)
		assertStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		assert.Equal(t, "Fish Tacos", body["name"])
		assert.Equal(t, 52.0, body["price"])
	})

	t.Run("unknown item", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/menu/item/999", nil)
		assertStatus(t, w, http.StatusNotFound)
	})
}

func TestHealth(t *testing.T) {
	r := setupTest(t)
	w := doRequest(t, r, http.MethodGet, "/api/health", nil)
	assertStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	assert.Equal(t, "OK", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}
