package models

import (
	"time"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled:
		return true
	}
	return false
}

type Reservation struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	CustomerName  string            `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string            `gorm:"size:255;not null" json:"customer_email"`
	CustomerPhone string            `gorm:"size:20;not null" json:"customer_phone"`
	Date          time.Time         `gorm:"type:date;not null;index:idx_reservation_slot" json:"date"`
	Time          string            `gorm:"size:5;not null;index:idx_reservation_slot" json:"time"`
	PartySize     int               `gorm:"not null" json:"party_size"`
	Status        ReservationStatus `gorm:"size:20;default:'PENDING'" json:"status"`
	Notes         string            `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
