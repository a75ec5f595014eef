package models

import (
	"time"
)

type OrderType string

const (
	OrderTypeTakeout  OrderType = "TAKEOUT"
	OrderTypeDelivery OrderType = "DELIVERY"
)

func (t OrderType) IsValid() bool {
	return t == OrderTypeTakeout || t == OrderTypeDelivery
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderNumber     string      `gorm:"size:50;unique;not null" json:"order_number"`
	CustomerName    string      `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail   string      `gorm:"size:255;not null" json:"customer_email"`
	CustomerPhone   string      `gorm:"size:20;not null" json:"customer_phone"`
	Type            OrderType   `gorm:"size:20;not null" json:"type"`
	Status          OrderStatus `gorm:"size:20;default:'PENDING'" json:"status"`
	Subtotal        float64     `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Tax             float64     `gorm:"type:decimal(10,2);not null" json:"tax"`
	DeliveryFee     float64     `gorm:"type:decimal(10,2);default:0.00" json:"delivery_fee"`
	Total           float64     `gorm:"type:decimal(10,2);not null" json:"total"`
	Notes           string      `gorm:"type:text" json:"notes"`
	DeliveryAddress string      `gorm:"type:text" json:"delivery_address"`
	OrderItems      []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `json:"order_id"`
	MenuItemID uint      `json:"menu_item_id"`
	MenuItem   *MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Price      float64   `gorm:"type:decimal(10,2);not null" json:"price"` // unit price captured at order time
	Notes      string    `gorm:"type:text" json:"notes"`
}
