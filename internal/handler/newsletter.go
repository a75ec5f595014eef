package handler

import (
	"errors"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/pacoyass/cantina/internal/mailer"
	"github.com/pacoyass/cantina/internal/models"
	"github.com/pacoyass/cantina/pkg/database"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	broadcastBatchSize = 10
	broadcastPause     = time.Second // keeps the mail relay happy
)

type NewsletterHandler struct{}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Subscriber
	err := database.DB.First(&existing, "email = ?", req.Email).Error
	switch {
	case err == nil && existing.IsActive:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already subscribed"})
		return

	case err == nil:
		// Dormant subscription comes back to life.
		if err := database.DB.Model(&existing).Updates(map[string]any{
			"is_active": true,
			"name":      req.Name,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe to newsletter"})
			return
		}

		if err := mailer.SendWelcome(existing.Email, req.Name, true); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", existing.Email, err)
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Successfully resubscribed to newsletter",
			"subscription": existing,
		})
		return

	case !errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe to newsletter"})
		return
	}

	subscriber := models.Subscriber{
		Email:    req.Email,
		Name:     req.Name,
		IsActive: true,
	}
	if err := database.DB.Create(&subscriber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe to newsletter"})
		return
	}

	if err := mailer.SendWelcome(subscriber.Email, subscriber.Name, false); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", subscriber.Email, err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Successfully subscribed to newsletter",
		"subscription": subscriber,
	})
}

func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var subscriber models.Subscriber
	if err := database.DB.First(&subscriber, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Email not found in newsletter list"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsubscribe from newsletter"})
		return
	}

	if err := database.DB.Model(&subscriber).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsubscribe from newsletter"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Successfully unsubscribed from newsletter",
		"subscription": subscriber,
	})
}

func (h *NewsletterHandler) ListSubscribers(c *gin.Context) {
	page, limit, offset := paginationParams(c, 50)

	query := database.DB.Model(&models.Subscriber{})
	switch c.Query("active") {
	case "true":
		query = query.Where("is_active = ?", true)
	case "false":
		query = query.Where("is_active = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch newsletter subscribers"})
		return
	}

	var subscribers []models.Subscriber
	if err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&subscribers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch newsletter subscribers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       subscribers,
		"pagination": paginationMeta(page, limit, total),
	})
}

type SendNewsletterRequest struct {
	Subject string `json:"subject" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (h *NewsletterHandler) SendNewsletter(c *gin.Context) {
	var req SendNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var subscribers []models.Subscriber
	if err := database.DB.Where("is_active = ?", true).Find(&subscribers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send newsletter"})
		return
	}
	if len(subscribers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active subscribers found"})
		return
	}

	sent, failed := dispatchNewsletter(subscribers, func(to string) error {
		return mailer.SendNewsletter(to, req.Subject, req.Content)
	})

	c.JSON(http.StatusOK, gin.H{
		"message":           "Newsletter sent",
		"total_subscribers": len(subscribers),
		"sent_count":        sent,
		"error_count":       failed,
	})
}

// dispatchNewsletter fans the send out in fixed-size batches with a pause
// between them. One recipient failing never stops the run; failures are
// counted and logged.
func dispatchNewsletter(subscribers []models.Subscriber, send func(to string) error) (sent, failed int) {
	var sentCount, errorCount int64

	for start := 0; start < len(subscribers); start += broadcastBatchSize {
		end := start + broadcastBatchSize
		if end > len(subscribers) {
			end = len(subscribers)
		}

		g := new(errgroup.Group)
		for _, subscriber := range subscribers[start:end] {
			subscriber := subscriber
			g.Go(func() error {
				if err := send(subscriber.Email); err != nil {
					log.Printf("Failed to send newsletter to %s: %v", subscriber.Email, err)
					atomic.AddInt64(&errorCount, 1)
					return nil
				}
				atomic.AddInt64(&sentCount, 1)
				return nil
			})
		}
		g.Wait()

		if end < len(subscribers) {
			time.Sleep(broadcastPause)
		}
	}

	return int(sentCount), int(errorCount)
}
