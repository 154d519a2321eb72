package utils

import (
	"etix/src/db"
	"etix/src/types"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPublishEventNotFound(t *testing.T) {
	gormDB, mock := newMockDB()
	db.NewDB(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "events" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := PublishEvent(99)
	assert.ErrorIs(t, err, types.ErrEventNotFound)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCancelCompletedEvent(t *testing.T) {
	gormDB, mock := newMockDB()
	db.NewDB(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "title", "status"}).
			AddRow(1, "Summer Gala", "completed"))
	mock.ExpectRollback()

	err := CancelEvent(1)
	assert.NotNil(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCompleteElapsedEvents(t *testing.T) {
	gormDB, mock := newMockDB()
	db.NewDB(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "events" SET`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	CompleteElapsedEvents()
	assert.Nil(t, mock.ExpectationsWereMet())
}
