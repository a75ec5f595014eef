package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/pacoyass/cantina/internal/mailer"
	"github.com/pacoyass/cantina/internal/models"
	"github.com/pacoyass/cantina/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactHandler struct{}

type CreateContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit contact form"})
		return
	}

	// Emails are best-effort; the message is already stored.
	if err := mailer.SendContactNotification(message); err != nil {
		log.Printf("Failed to send contact notification: %v", err)
	}
	if err := mailer.SendContactConfirmation(message); err != nil {
		log.Printf("Failed to send contact confirmation to %s: %v", message.Email, err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Contact form submitted successfully",
		"id":      message.ID,
	})
}

// ListContactMessages is the staff view: newest first, optionally unread only.
func (h *ContactHandler) ListContactMessages(c *gin.Context) {
	page, limit, offset := paginationParams(c, 20)

	query := database.DB.Model(&models.ContactMessage{})
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact messages"})
		return
	}

	var messages []models.ContactMessage
	if err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       messages,
		"pagination": paginationMeta(page, limit, total),
	})
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")

	var message models.ContactMessage
	if err := database.DB.First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark message as read"})
		return
	}

	if err := database.DB.Model(&message).Update("is_read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark message as read"})
		return
	}
	c.JSON(http.StatusOK, message)
}
