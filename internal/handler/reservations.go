package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/pacoyass/cantina/internal/mailer"
	"github.com/pacoyass/cantina/internal/models"
	"github.com/pacoyass/cantina/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Bookable sittings: lunch and dinner service.
var timeSlots = []string{
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"19:00", "19:30", "20:00", "20:30", "21:00", "21:30", "22:00",
}

const (
	slotCapacity = 10 // tables per sitting
	minPartySize = 1
	maxPartySize = 12
)

type ReservationHandler struct{}

func isValidSlot(t string) bool {
	for _, slot := range timeSlots {
		if slot == t {
			return true
		}
	}
	return false
}

// beforeToday compares dates only; a reservation for later today is fine.
func beforeToday(date time.Time) bool {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return date.Before(today)
}

func activeStatuses() []models.ReservationStatus {
	return []models.ReservationStatus{models.ReservationStatusPending, models.ReservationStatusConfirmed}
}

type CreateReservationRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	PartySize     int    `json:"party_size" binding:"required"`
	Notes         string `json:"notes"`
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.PartySize < minPartySize || req.PartySize > maxPartySize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Party size must be between 1 and 12"})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be in YYYY-MM-DD format"})
		return
	}
	if beforeToday(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reservation date must be in the future"})
		return
	}

	if !isValidSlot(req.Time) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time slot"})
		return
	}

	tx := database.DB.Begin()

	var existing int64
	err = tx.Model(&models.Reservation{}).
		Where("date = ? AND time = ? AND status IN ?", date, req.Time, activeStatuses()).
		Count(&existing).Error
	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation"})
		return
	}
	if existing >= slotCapacity {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Time slot is fully booked"})
		return
	}

	reservation := models.Reservation{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Date:          date,
		Time:          req.Time,
		PartySize:     req.PartySize,
		Status:        models.ReservationStatusPending,
		Notes:         req.Notes,
	}
	if err := tx.Create(&reservation).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation"})
		return
	}

	tx.Commit()

	if err := mailer.SendReservationConfirmation(reservation); err != nil {
		log.Printf("Failed to send reservation confirmation to %s: %v", reservation.CustomerEmail, err)
	}

	c.JSON(http.StatusCreated, reservation)
}

func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id := c.Param("id")

	var reservation models.Reservation
	if err := database.DB.First(&reservation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reservation"})
		return
	}
	c.JSON(http.StatusOK, reservation)
}

func (h *ReservationHandler) UpdateReservationStatus(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Status models.ReservationStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var reservation models.Reservation
	if err := database.DB.First(&reservation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reservation status"})
		return
	}

	if err := database.DB.Model(&reservation).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reservation status"})
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// GetAvailability reports remaining capacity per slot for one date.
func (h *ReservationHandler) GetAvailability(c *gin.Context) {
	date, err := time.ParseInLocation("2006-01-02", c.Param("date"), time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be in YYYY-MM-DD format"})
		return
	}

	type slotCount struct {
		Time  string
		Count int64
	}
	var counts []slotCount
	err = database.DB.Model(&models.Reservation{}).
		Select("time, count(*) as count").
		Where("date = ? AND status IN ?", date, activeStatuses()).
		Group("time").
		Scan(&counts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability"})
		return
	}

	booked := make(map[string]int64, len(counts))
	for _, sc := range counts {
		booked[sc.Time] = sc.Count
	}

	availability := make([]gin.H, 0, len(timeSlots))
	for _, slot := range timeSlots {
		remaining := slotCapacity - booked[slot]
		if remaining < 0 {
			remaining = 0
		}
		availability = append(availability, gin.H{
			"time":      slot,
			"available": booked[slot] < slotCapacity,
			"remaining": remaining,
		})
	}
	c.JSON(http.StatusOK, availability)
}
