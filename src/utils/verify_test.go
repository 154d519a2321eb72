package utils

import (
	"etix/src/db"
	"etix/src/types"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestVerifyTicketMalformedPayload(t *testing.T) {
	gormDB, mock := newMockDB()
	db.NewDB(gormDB)

	// parsing fails before any row is touched
	receipt, err := VerifyTicket("garbage", 7)
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, types.ErrInvalidQRFormat)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestVerifyTicketNotFound(t *testing.T) {
	gormDB, mock := newMockDB()
	db.NewDB(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "tickets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "event_id", "quantity", "status"}))
	mock.ExpectRollback()

	receipt, err := VerifyTicket("event:1|ticket:99", 7)
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, types.ErrTicketNotFound)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestVerifyTicketAlreadyUsed(t *testing.T) {
	gormDB, mock := newMockDB()
	db.NewDB(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "tickets"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "user_id", "event_id", "quantity", "status"}).
			AddRow(3, 5, 1, 1, "used"))
	mock.ExpectRollback()

	receipt, err := VerifyTicket("event:1|ticket:3", 7)
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, types.ErrTicketAlreadyUsed)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestVerifyTicketVoided(t *testing.T) {
	gormDB, mock := newMockDB()
	db.NewDB(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "tickets"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "user_id", "event_id", "quantity", "status"}).
			AddRow(3, 5, 1, 1, "refunded"))
	mock.ExpectRollback()

	receipt, err := VerifyTicket("event:1|ticket:3", 7)
	assert.Nil(t, receipt)
	var voided *types.TicketVoidedError
	assert.ErrorAs(t, err, &voided)
	assert.Equal(t, types.TICKET_REFUNDED, voided.Status)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestVerifyTicketSuccess(t *testing.T) {
	gormDB, mock := newMockDB()
	db.NewDB(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "tickets"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "user_id", "event_id", "quantity", "status"}).
			AddRow(3, 5, 1, 1, "valid"))
	mock.ExpectExec(`UPDATE "tickets" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "title"}).
			AddRow(1, "Summer Gala"))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "name"}).
			AddRow(5, "Jane Doe"))
	mock.ExpectCommit()

	receipt, err := VerifyTicket("event:1|ticket:3", 7)
	assert.Nil(t, err)
	assert.NotNil(t, receipt)
	assert.Equal(t, uint(3), receipt.TicketID)
	assert.Equal(t, "Summer Gala", receipt.EventTitle)
	assert.Equal(t, "Jane Doe", receipt.OwnerName)
	assert.False(t, receipt.UsedAt.IsZero())
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestVerifyTicketLostRace(t *testing.T) {
	gormDB, mock := newMockDB()
	db.NewDB(gormDB)

	// a concurrent scan flipped the status between the read and the write
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "tickets"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "user_id", "event_id", "quantity", "status"}).
			AddRow(3, 5, 1, 1, "valid"))
	mock.ExpectExec(`UPDATE "tickets" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	receipt, err := VerifyTicket("event:1|ticket:3", 7)
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, types.ErrTicketAlreadyUsed)
	assert.Nil(t, mock.ExpectationsWereMet())
}
