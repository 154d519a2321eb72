package utils

import (
	"etix/src/db"
	"etix/src/models"
	"etix/src/models/scopes"
	"etix/src/types"
	"fmt"
	"log"
)

// EmitTicketConfirmation records a purchase-confirmation notification for
// the buyer. Best-effort: runs detached from the request, and a failure is
// logged but never reaches the caller of PurchaseTickets.
func EmitTicketConfirmation(userId uint, event *models.Event, tickets []models.Ticket) {
	if len(tickets) == 0 {
		return
	}
	go func() {
		message := fmt.Sprintf("Your ticket for %s is confirmed", event.Title)
		if len(tickets) > 1 {
			message = fmt.Sprintf("Your %d tickets for %s are confirmed", len(tickets), event.Title)
		}
		ticketIds := make([]uint, 0, len(tickets))
		for _, t := range tickets {
			ticketIds = append(ticketIds, t.ID)
		}
		notification := models.Notification{
			UserID:          userId,
			Title:           "Ticket confirmed",
			Message:         message,
			Type:            types.NOTIFICATION_TICKET_CONFIRMATION,
			RelatedEventID:  &event.ID,
			RelatedTicketID: &tickets[0].ID,
			Data: types.JSONB{
				"event_title": event.Title,
				"ticket_ids":  ticketIds,
			},
		}
		db := db.GetDb()
		if err := db.Create(&notification).Error; err != nil {
			log.Printf("Error creating Notification for User [%d]: %s\n", userId, err.Error())
		}
	}()
}

func GetOwnNotifications(userId uint) ([]models.Notification, error) {
	var notifications []models.Notification
	db := db.GetDb()
	err := db.
		Scopes(scopes.OwnedBy(userId)).
		Order("created_at desc").
		Limit(50).
		Find(&notifications).
		Error
	return notifications, err
}
