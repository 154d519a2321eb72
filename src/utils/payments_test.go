package utils

import (
	"etix/src/db"
	"etix/src/types"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewTransactionID(t *testing.T) {
	pattern := regexp.MustCompile(`^TXN-\d{8}-[0-9A-F]{8}$`)
	seen := map[string]bool{}
	for range 10 {
		id := NewTransactionID()
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "duplicate transaction id: %s", id)
		seen[id] = true
	}
}

func TestUpdatePaymentStatusNotFound(t *testing.T) {
	gormDB, mock := newMockDB()
	db.NewDB(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	payment, err := UpdatePaymentStatus(uuid.New(), types.PAYMENT_SUCCESS)
	assert.Nil(t, payment)
	assert.ErrorIs(t, err, types.ErrPaymentNotFound)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestUpdatePaymentStatusRefundReleasesSeat(t *testing.T) {
	gormDB, mock := newMockDB()
	db.NewDB(gormDB)

	paymentId := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payments"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "user_id", "event_id", "ticket_id", "payment_status"}).
			AddRow(paymentId.String(), 5, 1, 3, "success"))
	mock.ExpectQuery(`SELECT \* FROM "tickets"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "user_id", "event_id", "quantity", "status"}).
			AddRow(3, 5, 1, 1, "valid"))
	mock.ExpectExec(`UPDATE "payments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "tickets" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "events" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	payment, err := UpdatePaymentStatus(paymentId, types.PAYMENT_REFUNDED)
	assert.Nil(t, err)
	assert.Equal(t, types.PAYMENT_REFUNDED, payment.PaymentStatus)
	assert.Nil(t, mock.ExpectationsWereMet())
}
