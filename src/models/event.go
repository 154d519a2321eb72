package models

import (
	"etix/src/types"
	"time"
)

type Event struct {
	ID           uint              `gorm:"primarykey" json:"id"`
	Title        string            `json:"title,omitempty"`
	Slug         string            `gorm:"index" json:"slug,omitempty"`
	About        *string           `json:"about,omitempty"`
	Location     string            `json:"location,omitempty"`
	DateTime     time.Time         `json:"date_time,omitempty"`
	Price        float64           `json:"price"`
	TotalTickets uint              `json:"total_tickets"`
	TicketsSold  uint              `json:"tickets_sold"`
	Status       types.EventStatus `gorm:"default:'upcoming'" json:"status,omitempty"`
	IsPublished  bool              `json:"is_published"`
	CreatedBy    uint              `json:"created_by,omitempty"`

	Creator User     `gorm:"foreignKey:created_by" json:"-"`
	Tickets []Ticket `json:"tickets,omitempty"`

	types.Timestamps
}

// Available reports the remaining sellable capacity.
func (e *Event) Available() uint {
	if e.TicketsSold > e.TotalTickets {
		return 0
	}
	return e.TotalTickets - e.TicketsSold
}
