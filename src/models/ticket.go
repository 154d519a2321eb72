package models

import (
	"etix/src/types"
	"time"
)

type Ticket struct {
	ID       uint `gorm:"primarykey" json:"id"`
	UserID   uint `gorm:"index" json:"user_id,omitempty"`
	EventID  uint `gorm:"index" json:"event_id,omitempty"`
	Quantity uint `gorm:"default:1" json:"quantity"`
	// One row per seat: Quantity stays 1 so every seat carries its own
	// scannable code.
	Status       types.TicketStatus `gorm:"default:'valid'" json:"status,omitempty"`
	QRCode       string             `json:"qr_code,omitempty"`
	PurchaseDate time.Time          `json:"purchase_date,omitempty"`
	UsedAt       *time.Time         `json:"used_at,omitempty"`
	CheckedInBy  *uint              `json:"checked_in_by,omitempty"`

	Event   Event    `json:"event,omitempty"`
	User    User     `json:"user,omitempty"`
	Payment *Payment `json:"payment,omitempty"`

	types.Timestamps
}
