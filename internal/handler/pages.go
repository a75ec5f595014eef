package handler

import (
	"net/http"

	"github.com/pacoyass/cantina/config"
	"github.com/pacoyass/cantina/internal/models"
	"github.com/pacoyass/cantina/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PageHandler serves the server-rendered marketing pages. Everything here
// reads the same tables as the API; only the presentation differs.
type PageHandler struct{}

func menuByCategory() ([]models.Category, error) {
	var categories []models.Category
	err := database.DB.
		Preload("MenuItems", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_available = ?", true).Order("name asc")
		}).
		Order("display_order asc").
		Find(&categories).Error
	return categories, err
}

func (h *PageHandler) Home(c *gin.Context) {
	var specials []models.MenuItem
	if err := database.DB.Where("is_special = ? AND is_available = ?", true, true).Find(&specials).Error; err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Site":     config.AppConfig.Site,
		"Specials": specials,
	})
}

func (h *PageHandler) Menu(c *gin.Context) {
	categories, err := menuByCategory()
	if err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.HTML(http.StatusOK, "menu.html", gin.H{
		"Site":       config.AppConfig.Site,
		"Categories": categories,
	})
}

func (h *PageHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"Site": config.AppConfig.Site,
	})
}

func (h *PageHandler) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Site": config.AppConfig.Site,
	})
}

func (h *PageHandler) Order(c *gin.Context) {
	categories, err := menuByCategory()
	if err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.HTML(http.StatusOK, "order.html", gin.H{
		"Site":       config.AppConfig.Site,
		"Categories": categories,
	})
}

func (h *PageHandler) Reservations(c *gin.Context) {
	c.HTML(http.StatusOK, "reservations.html", gin.H{
		"Site":      config.AppConfig.Site,
		"TimeSlots": timeSlots,
		"MaxParty":  maxPartySize,
	})
}
