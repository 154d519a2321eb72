package types

import (
	"errors"
	"fmt"
)

// Business failures surfaced by the ticketing core. Handlers map these to
// response codes; anything else is treated as a persistence failure.
var (
	ErrEventNotFound         = errors.New("event not found")
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrInvalidQuantity       = errors.New("quantity must be a positive integer")
	ErrInsufficientInventory = errors.New("not enough tickets available")
	ErrInvalidQRFormat       = errors.New("invalid QR code format")
	ErrTicketAlreadyUsed     = errors.New("ticket has already been used")
	ErrEventNotOnSale        = errors.New("event is not open for ticket sales")
	ErrPaymentNotFound       = errors.New("payment not found")
)

// TicketVoidedError reports a scan against a cancelled or refunded ticket.
type TicketVoidedError struct {
	Status TicketStatus
}

func (e *TicketVoidedError) Error() string {
	return fmt.Sprintf("ticket is %s and can no longer be used", e.Status)
}
