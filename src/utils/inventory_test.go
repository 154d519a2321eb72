package utils

import (
	"etix/src/types"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestReserveSeats(t *testing.T) {
	gormDB, mock := newMockDB()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "events" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := ReserveSeats(gormDB, 1, 2)
	assert.Nil(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestReserveSeatsInsufficientInventory(t *testing.T) {
	gormDB, mock := newMockDB()

	// the conditional update matches no row when capacity is exhausted
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "events" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := ReserveSeats(gormDB, 1, 5)
	assert.ErrorIs(t, err, types.ErrInsufficientInventory)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestReleaseSeats(t *testing.T) {
	gormDB, mock := newMockDB()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "events" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := ReleaseSeats(gormDB, 1, 1)
	assert.Nil(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}
