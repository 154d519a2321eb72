package utils

import (
	"errors"
	"etix/src/db"
	"etix/src/models"
	"etix/src/models/scopes"
	"etix/src/types"
	"log"
	"time"

	"gorm.io/gorm"
)

// PurchaseTickets turns a purchase request into one ticket row per seat,
// each with its own QR code and payment record. Ticket rows, payment rows
// and the inventory update commit or roll back together.
func PurchaseTickets(userId uint, params *types.PurchaseTicketsRequestBody) ([]models.Ticket, error) {
	if params.Quantity < 1 {
		return nil, types.ErrInvalidQuantity
	}
	paymentMethod := params.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "card"
	}

	var event models.Event
	created := make([]models.Ticket, 0, params.Quantity)
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where(&models.Event{ID: params.EventID}).
			First(&event).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrEventNotFound
			}
			return err
		}
		if !event.IsPublished || event.Status == types.EVENT_CANCELLED || event.Status == types.EVENT_COMPLETED {
			return types.ErrEventNotOnSale
		}
		if err := ReserveSeats(tx, event.ID, uint(params.Quantity)); err != nil {
			return err
		}
		now := time.Now()
		for range params.Quantity {
			ticket := models.Ticket{
				UserID:       userId,
				EventID:      event.ID,
				Quantity:     1,
				Status:       types.TICKET_VALID,
				PurchaseDate: now,
			}
			if err := tx.Create(&ticket).Error; err != nil {
				return err
			}
			qrc, err := EncodeTicketQR(BuildQRPayload(event.ID, ticket.ID))
			if err != nil {
				return err
			}
			if err := tx.
				Model(&models.Ticket{}).
				Where(&models.Ticket{ID: ticket.ID}).
				Update("qr_code", qrc).
				Error; err != nil {
				return err
			}
			ticket.QRCode = qrc
			payment := models.Payment{
				UserID:        userId,
				EventID:       event.ID,
				TicketID:      ticket.ID,
				Amount:        event.Price,
				PaymentMethod: paymentMethod,
				PaymentStatus: types.PAYMENT_SUCCESS,
				TransactionID: NewTransactionID(),
				PaymentDate:   now,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
			ticket.Payment = &payment
			created = append(created, ticket)
		}
		return nil
	})
	if err != nil {
		log.Printf("PurchaseTickets failed: %s\n", err.Error())
		return nil, err
	}

	EmitTicketConfirmation(userId, &event, created)
	return created, nil
}

func GetOwnTickets(userId uint) ([]models.Ticket, error) {
	var tickets []models.Ticket
	db := db.GetDb()
	err := db.
		Scopes(scopes.OwnedBy(userId)).
		Preload("Event").
		Order("created_at desc").
		Limit(100).
		Find(&tickets).
		Error
	return tickets, err
}

func GetTicket(id uint) (*models.Ticket, error) {
	var ticket models.Ticket
	db := db.GetDb()
	if err := db.
		Scopes(scopes.WithID(id)).
		Preload("Event").
		Preload("Payment").
		First(&ticket).
		Error; err != nil {
		return nil, types.ErrTicketNotFound
	}
	return &ticket, nil
}

// UpdateTicketStatus is the admin override. It bypasses the scan state
// machine but still keeps the inventory invariant: leaving VALID for a
// voided state hands the seat back.
func UpdateTicketStatus(id uint, newStatus types.TicketStatus) (*models.Ticket, error) {
	var ticket models.Ticket
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(&models.Ticket{ID: id}).First(&ticket).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrTicketNotFound
			}
			return err
		}
		if ticket.Status == newStatus {
			return nil
		}
		if err := tx.
			Model(&models.Ticket{}).
			Where(&models.Ticket{ID: id}).
			Update("status", newStatus).
			Error; err != nil {
			return err
		}
		if ticket.Status == types.TICKET_VALID &&
			(newStatus == types.TICKET_CANCELLED || newStatus == types.TICKET_REFUNDED) {
			if err := ReleaseSeats(tx, ticket.EventID, ticket.Quantity); err != nil {
				return err
			}
		}
		ticket.Status = newStatus
		return nil
	})
	if err != nil {
		log.Printf("Error updating status for Ticket [%d]: %s\n", id, err.Error())
		return nil, err
	}
	return &ticket, nil
}

// DeleteTicket removes a ticket and releases its seat when the ticket was
// still VALID.
func DeleteTicket(id uint) error {
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var ticket models.Ticket
		if err := tx.Where(&models.Ticket{ID: id}).First(&ticket).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrTicketNotFound
			}
			return err
		}
		if err := tx.Delete(&models.Ticket{}, id).Error; err != nil {
			return err
		}
		if ticket.Status == types.TICKET_VALID {
			if err := ReleaseSeats(tx, ticket.EventID, ticket.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error deleting Ticket [%d]: %s\n", id, err.Error())
	}
	return err
}
