package models

import (
	"etix/src/types"
	"time"
)

type User struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Name          string    `json:"name,omitempty"`
	Email         string    `gorm:"uniqueIndex" json:"email,omitempty"`
	Role          string    `gorm:"default:'user'" json:"role,omitempty"`
	UID           string    `json:"uid,omitempty"`
	EmailVerified bool      `json:"email_verified,omitempty"`
	VerifiedAt    time.Time `json:"verified_at,omitempty"`

	Tickets  []Ticket  `gorm:"foreignKey:user_id" json:"tickets,omitempty"`
	Payments []Payment `gorm:"foreignKey:user_id" json:"payments,omitempty"`

	types.Timestamps
}
