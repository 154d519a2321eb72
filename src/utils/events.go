package utils

import (
	"errors"
	"etix/src/config"
	"etix/src/db"
	"etix/src/models"
	"etix/src/models/scopes"
	"etix/src/types"
	"log"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func CreateNewEvent(params *types.CreateEventRequestBody, creatorId uint) (uint, error) {
	dateTime, err := time.Parse(config.TIME_PARSE_FORMAT, params.DateTime)
	if err != nil {
		log.Printf("Error parsing date_time: %s\n", err.Error())
		return 0, err
	}
	event := models.Event{
		Title:        params.Title,
		Slug:         slug.Make(params.Title),
		About:        &params.Description,
		Location:     params.Location,
		DateTime:     dateTime,
		Price:        params.Price,
		TotalTickets: params.TotalTickets,
		Status:       types.EVENT_UPCOMING,
		IsPublished:  params.Publish,
		CreatedBy:    creatorId,
	}

	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return event.ID, nil
}

func GetEvent(id uint) (*models.Event, error) {
	var event models.Event
	db := db.GetDb()
	if err := db.Scopes(scopes.WithID(id)).First(&event).Error; err != nil {
		return nil, types.ErrEventNotFound
	}
	return &event, nil
}

func ListEvents(includeUnpublished bool) ([]models.Event, error) {
	var events []models.Event
	db := db.GetDb()
	tx := db.Model(&models.Event{})
	if !includeUnpublished {
		tx = tx.Scopes(scopes.Published)
	}
	err := tx.
		Order("date_time asc").
		Limit(100).
		Find(&events).
		Error
	return events, err
}

func PublishEvent(id uint) error {
	db := db.GetDb()
	res := db.
		Model(&models.Event{}).
		Where("id = ?", id).
		Update("is_published", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return types.ErrEventNotFound
	}
	return nil
}

func CancelEvent(id uint) error {
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.Where(&models.Event{ID: id}).First(&event).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrEventNotFound
			}
			return err
		}
		if event.Status == types.EVENT_COMPLETED {
			return errors.New("completed events cannot be cancelled")
		}
		if err := tx.
			Model(&models.Event{}).
			Where(&models.Event{ID: id}).
			Update("status", types.EVENT_CANCELLED).
			Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("Error cancelling Event [%d]: %s\n", id, err.Error())
	}
	return err
}

// CompleteElapsedEvents sweeps events whose date has passed to COMPLETED.
// Runs on the scheduler, see boot.InitScheduler.
func CompleteElapsedEvents() {
	db := db.GetDb()
	res := db.
		Model(&models.Event{}).
		Where("date_time < ? AND status IN (?)", time.Now(), []types.EventStatus{
			types.EVENT_UPCOMING,
			types.EVENT_ONGOING,
		}).
		Update("status", types.EVENT_COMPLETED)
	if res.Error != nil {
		log.Printf("Error completing elapsed events: %s\n", res.Error.Error())
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("Marked %d events as completed\n", res.RowsAffected)
	}
}
