package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pacoyass/cantina/config"
	"github.com/pacoyass/cantina/internal/models"
	"github.com/pacoyass/cantina/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTest gives each test its own in-memory database and a router with the
// API routes mounted. Email delivery stays disabled because no EMAIL_HOST is
// configured.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
		&models.ContactMessage{},
		&models.Subscriber{},
	))
	database.DB = db

	config.AppConfig = &config.Config{
		Site: models.SiteInfo{Name: "Cantina Mariachi"},
		Restaurant: config.RestaurantConfig{
			Email:   "staff@example.com",
			Address: "12 Boulevard de la Corniche",
			Phone:   "+212 522 00 00 00",
		},
	}

	r := gin.New()
	RegisterAPIRoutes(r)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createCategory(t *testing.T, name string, order int) models.Category {
	t.Helper()
	category := models.Category{Name: name, DisplayOrder: order}
	require.NoError(t, database.DB.Create(&category).Error)
	return category
}

func createMenuItem(t *testing.T, categoryID uint, name string, price float64, mutate ...func(*models.MenuItem)) models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		Name:        name,
		Price:       price,
		CategoryID:  categoryID,
		IsAvailable: true,
	}
	for _, m := range mutate {
		m(&item)
	}
	require.NoError(t, database.DB.Create(&item).Error)
	return item
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
