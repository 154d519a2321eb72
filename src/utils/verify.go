package utils

import (
	"errors"
	"etix/src/db"
	"etix/src/models"
	"etix/src/types"
	"log"
	"time"

	"gorm.io/gorm"
)

// VerificationReceipt is returned to the scanning staff member after a
// successful redemption.
type VerificationReceipt struct {
	TicketID   uint      `json:"ticket_id"`
	EventTitle string    `json:"event_title"`
	OwnerName  string    `json:"owner_name"`
	UsedAt     time.Time `json:"used_at"`
}

// VerifyTicket redeems a scanned QR payload. The VALID to USED write is
// conditioned on the status still being VALID at write time, so two
// simultaneous scans of the same ticket resolve to one success and one
// already-used failure.
func VerifyTicket(qrData string, actorId uint) (*VerificationReceipt, error) {
	eventId, ticketId, err := ParseQRPayload(qrData)
	if err != nil {
		return nil, err
	}

	var receipt *VerificationReceipt
	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var ticket models.Ticket
		if err := tx.
			Where(&models.Ticket{ID: ticketId, EventID: eventId}).
			First(&ticket).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrTicketNotFound
			}
			return err
		}
		switch ticket.Status {
		case types.TICKET_USED:
			return types.ErrTicketAlreadyUsed
		case types.TICKET_CANCELLED, types.TICKET_REFUNDED:
			return &types.TicketVoidedError{Status: ticket.Status}
		}

		now := time.Now()
		res := tx.
			Model(&models.Ticket{}).
			Where("id = ? AND event_id = ? AND status = ?", ticketId, eventId, types.TICKET_VALID).
			Updates(map[string]any{
				"status":        types.TICKET_USED,
				"used_at":       now,
				"checked_in_by": actorId,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the race to a concurrent scan.
			return types.ErrTicketAlreadyUsed
		}

		var event models.Event
		if err := tx.Where(&models.Event{ID: eventId}).First(&event).Error; err != nil {
			return err
		}
		var owner models.User
		if err := tx.Where(&models.User{ID: ticket.UserID}).First(&owner).Error; err != nil {
			return err
		}
		receipt = &VerificationReceipt{
			TicketID:   ticket.ID,
			EventTitle: event.Title,
			OwnerName:  owner.Name,
			UsedAt:     now,
		}
		return nil
	})
	if err != nil {
		log.Printf("Error verifying Ticket [%d]: %s\n", ticketId, err.Error())
		return nil, err
	}
	return receipt, nil
}
