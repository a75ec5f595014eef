package models

import (
	"time"
)

type Category struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:100;unique;not null" json:"name"`
	Description  string     `gorm:"type:text" json:"description"`
	DisplayOrder int        `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
	MenuItems    []MenuItem `gorm:"foreignKey:CategoryID" json:"menu_items,omitempty"`
}

type MenuItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:150;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Price        float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Image        string    `gorm:"size:255" json:"image"`
	IsAvailable  bool      `gorm:"default:true" json:"is_available"`
	IsVegetarian bool      `gorm:"default:false" json:"is_vegetarian"`
	IsVegan      bool      `gorm:"default:false" json:"is_vegan"`
	IsSpecial    bool      `gorm:"default:false" json:"is_special"`
	CategoryID   uint      `json:"category_id"`
	Category     *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
