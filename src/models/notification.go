package models

import (
	"etix/src/types"

	"github.com/google/uuid"
)

type Notification struct {
	ID              uuid.UUID   `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID          uint        `gorm:"index" json:"user_id,omitempty"`
	Title           string      `json:"title"`
	Message         string      `json:"message"`
	Type            string      `json:"type"`
	RelatedEventID  *uint       `json:"related_event_id,omitempty"`
	RelatedTicketID *uint       `json:"related_ticket_id,omitempty"`
	Data            types.JSONB `gorm:"type:jsonb" json:"data,omitempty"`
	Read            bool        `json:"read"`

	types.Timestamps
}
