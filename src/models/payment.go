package models

import (
	"etix/src/types"
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID            uuid.UUID           `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID        uint                `gorm:"index" json:"user_id,omitempty"`
	EventID       uint                `json:"event_id,omitempty"`
	TicketID      uint                `gorm:"index" json:"ticket_id,omitempty"`
	Amount        float64             `json:"amount"`
	PaymentMethod string              `gorm:"default:'card'" json:"payment_method,omitempty"`
	PaymentStatus types.PaymentStatus `gorm:"default:'pending'" json:"payment_status,omitempty"`
	TransactionID string              `gorm:"uniqueIndex" json:"transaction_id,omitempty"`
	PaymentDate   time.Time           `json:"payment_date,omitempty"`

	Ticket Ticket `json:"ticket,omitempty"`
	User   User   `json:"-"`

	types.Timestamps
}
