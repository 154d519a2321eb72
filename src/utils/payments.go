package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"etix/src/db"
	"etix/src/models"
	"etix/src/models/scopes"
	"etix/src/types"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewTransactionID generates a human-readable transaction reference,
// e.g. TXN-20260828-9F3A21B4.
func NewTransactionID() string {
	b := make([]byte, 4)
	rand.Read(b)
	return fmt.Sprintf("TXN-%s-%s", time.Now().Format("20060102"), strings.ToUpper(hex.EncodeToString(b)))
}

// CreatePayment is the explicit payment path: the row starts out PENDING and
// awaits external confirmation via UpdatePaymentStatus.
func CreatePayment(userId uint, params *types.CreatePaymentRequestBody) (*models.Payment, error) {
	txnId := params.TransactionID
	if txnId == "" {
		txnId = NewTransactionID()
	}
	var payment models.Payment
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var ticket models.Ticket
		if err := tx.Where(&models.Ticket{ID: params.TicketID}).First(&ticket).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrTicketNotFound
			}
			return err
		}
		if ticket.UserID != userId {
			return types.ErrTicketNotFound
		}
		payment = models.Payment{
			UserID:        userId,
			EventID:       ticket.EventID,
			TicketID:      ticket.ID,
			Amount:        params.Amount,
			PaymentMethod: params.PaymentMethod,
			PaymentStatus: types.PAYMENT_PENDING,
			TransactionID: txnId,
			PaymentDate:   time.Now(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("Error creating Payment for Ticket [%d]: %s\n", params.TicketID, err.Error())
		return nil, err
	}
	return &payment, nil
}

// UpdatePaymentStatus settles a payment and propagates the outcome to the
// linked ticket: SUCCESS makes the ticket VALID, REFUNDED voids it and hands
// its seat back. A USED ticket is never resurrected.
func UpdatePaymentStatus(id uuid.UUID, status types.PaymentStatus) (*models.Payment, error) {
	var payment models.Payment
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(&models.Payment{ID: id}).First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrPaymentNotFound
			}
			return err
		}
		var ticket models.Ticket
		if err := tx.Where(&models.Ticket{ID: payment.TicketID}).First(&ticket).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrTicketNotFound
			}
			return err
		}
		if err := tx.
			Model(&models.Payment{}).
			Where(&models.Payment{ID: id}).
			Update("payment_status", status).
			Error; err != nil {
			return err
		}
		payment.PaymentStatus = status

		switch status {
		case types.PAYMENT_SUCCESS:
			if err := tx.
				Model(&models.Ticket{}).
				Where("id = ? AND status <> ?", ticket.ID, types.TICKET_USED).
				Update("status", types.TICKET_VALID).
				Error; err != nil {
				return err
			}
		case types.PAYMENT_REFUNDED:
			if err := tx.
				Model(&models.Ticket{}).
				Where("id = ? AND status <> ?", ticket.ID, types.TICKET_USED).
				Update("status", types.TICKET_REFUNDED).
				Error; err != nil {
				return err
			}
			if ticket.Status == types.TICKET_VALID {
				if err := ReleaseSeats(tx, ticket.EventID, ticket.Quantity); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error updating status for Payment [%s]: %s\n", id.String(), err.Error())
		return nil, err
	}
	return &payment, nil
}

func GetOwnPayments(userId uint) ([]models.Payment, error) {
	var payments []models.Payment
	db := db.GetDb()
	err := db.
		Scopes(scopes.OwnedBy(userId)).
		Preload("Ticket").
		Order("created_at desc").
		Limit(100).
		Find(&payments).
		Error
	return payments, err
}
