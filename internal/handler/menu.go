package handler

import (
	"errors"
	"net/http"

	"github.com/pacoyass/cantina/internal/models"
	"github.com/pacoyass/cantina/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuHandler struct{}

// GetMenu returns every category in display order with its available items.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	var categories []models.Category
	err := database.DB.
		Preload("MenuItems", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_available = ?", true).Order("name asc")
		}).
		Order("display_order asc").
		Find(&categories).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *MenuHandler) GetByCategory(c *gin.Context) {
	id := c.Param("id")

	var category models.Category
	if err := database.DB.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu items"})
		return
	}

	var items []models.MenuItem
	err := database.DB.
		Preload("Category").
		Where("category_id = ? AND is_available = ?", category.ID, true).
		Order("name asc").
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetSpecials returns the available items flagged as specials (the weekend
// Pollo a la Brasa and friends).
func (h *MenuHandler) GetSpecials(c *gin.Context) {
	var items []models.MenuItem
	err := database.DB.
		Preload("Category").
		Where("is_special = ? AND is_available = ?", true, true).
		Order("name asc").
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch special items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) GetItem(c *gin.Context) {
	id := c.Param("id")

	var item models.MenuItem
	if err := database.DB.Preload("Category").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu item"})
		return
	}
	c.JSON(http.StatusOK, item)
}
