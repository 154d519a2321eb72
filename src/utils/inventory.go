package utils

import (
	"etix/src/models"
	"etix/src/types"
	"log"

	"gorm.io/gorm"
)

// ReserveSeats takes qty seats from the event's capacity as part of the
// caller's transaction. The guard lives in the UPDATE itself so two
// concurrent purchases can never both pass a stale availability check: the
// row either has room at write time or the statement matches nothing.
func ReserveSeats(tx *gorm.DB, eventId uint, qty uint) error {
	res := tx.
		Model(&models.Event{}).
		Where("id = ? AND tickets_sold + ? <= total_tickets", eventId, qty).
		UpdateColumn("tickets_sold", gorm.Expr("tickets_sold + ?", qty))
	if res.Error != nil {
		log.Printf("Error reserving seats for Event [%d]: %s\n", eventId, res.Error.Error())
		return res.Error
	}
	if res.RowsAffected == 0 {
		return types.ErrInsufficientInventory
	}
	return nil
}

// ReleaseSeats returns qty seats to the event, floored at zero.
func ReleaseSeats(tx *gorm.DB, eventId uint, qty uint) error {
	res := tx.
		Model(&models.Event{}).
		Where("id = ?", eventId).
		UpdateColumn("tickets_sold", gorm.Expr("GREATEST(tickets_sold - ?, 0)", qty))
	if res.Error != nil {
		log.Printf("Error releasing seats for Event [%d]: %s\n", eventId, res.Error.Error())
		return res.Error
	}
	return nil
}
