package handler

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/pacoyass/cantina/internal/mailer"
	"github.com/pacoyass/cantina/internal/models"
	"github.com/pacoyass/cantina/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	taxRate           = 0.20 // flat VAT on the subtotal
	deliveryFee       = 15.00
	orderNumberPrefix = "CM"
)

type OrderHandler struct{}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// orderTotals derives tax, delivery fee and grand total from a subtotal.
// The fee applies to delivery orders only.
func orderTotals(subtotal float64, orderType models.OrderType) (tax, fee, total float64) {
	tax = round2(subtotal * taxRate)
	if orderType == models.OrderTypeDelivery {
		fee = deliveryFee
	}
	total = round2(subtotal + tax + fee)
	return tax, fee, total
}

// generateOrderNumber derives the public order number from the creation time
// in milliseconds. Two orders in the same millisecond would collide; at this
// restaurant's volume that has never been worth a sequence table.
func generateOrderNumber() string {
	return fmt.Sprintf("%s%d", orderNumberPrefix, time.Now().UnixMilli())
}

type OrderItemRequest struct {
	MenuItemID uint   `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	Notes      string `json:"notes"`
}

type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name" binding:"required"`
	CustomerEmail   string             `json:"customer_email" binding:"required,email"`
	CustomerPhone   string             `json:"customer_phone" binding:"required"`
	Type            models.OrderType   `json:"type" binding:"required"`
	Notes           string             `json:"notes"`
	DeliveryAddress string             `json:"delivery_address"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !req.Type.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order type must be TAKEOUT or DELIVERY"})
		return
	}

	tx := database.DB.Begin()

	// Prices come from the catalog, never from the client. An unknown item
	// aborts the whole order.
	var subtotal float64
	orderItems := make([]models.OrderItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		var menuItem models.MenuItem
		if err := tx.First(&menuItem, "id = ?", itemReq.MenuItemID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Menu item %d not found", itemReq.MenuItemID)})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		subtotal += menuItem.Price * float64(itemReq.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   itemReq.Quantity,
			Price:      menuItem.Price,
			Notes:      itemReq.Notes,
		})
	}

	subtotal = round2(subtotal)
	tax, fee, total := orderTotals(subtotal, req.Type)

	order := models.Order{
		OrderNumber:     generateOrderNumber(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Type:            req.Type,
		Status:          models.OrderStatusPending,
		Subtotal:        subtotal,
		Tax:             tax,
		DeliveryFee:     fee,
		Total:           total,
		Notes:           req.Notes,
		DeliveryAddress: req.DeliveryAddress,
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	for i := range orderItems {
		orderItems[i].OrderID = order.ID
		if err := tx.Create(&orderItems[i]).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add order item"})
			return
		}
	}

	tx.Commit()

	var created models.Order
	if err := database.DB.Preload("OrderItems.MenuItem").First(&created, order.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	if err := mailer.SendOrderConfirmation(created); err != nil {
		log.Printf("Failed to send order confirmation for %s: %v", created.OrderNumber, err)
	}

	c.JSON(http.StatusCreated, created)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	var order models.Order
	err := database.DB.
		Preload("OrderItems.MenuItem.Category").
		First(&order, "order_number = ?", orderNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetOrderStatus(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	var order models.Order
	if err := database.DB.First(&order, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           order.ID,
		"order_number": order.OrderNumber,
		"status":       order.Status,
		"created_at":   order.CreatedAt,
		"updated_at":   order.UpdatedAt,
	})
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var order models.Order
	if err := database.DB.First(&order, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	if err := database.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	var updated models.Order
	if err := database.DB.Preload("OrderItems.MenuItem").First(&updated, order.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
