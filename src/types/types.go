package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

type EventStatus string

const (
	EVENT_UPCOMING  EventStatus = "upcoming"
	EVENT_ONGOING   EventStatus = "ongoing"
	EVENT_COMPLETED EventStatus = "completed"
	EVENT_CANCELLED EventStatus = "cancelled"
)

type TicketStatus string

const (
	TICKET_VALID     TicketStatus = "valid"
	TICKET_USED      TicketStatus = "used"
	TICKET_CANCELLED TicketStatus = "cancelled"
	TICKET_REFUNDED  TicketStatus = "refunded"
)

type PaymentStatus string

const (
	PAYMENT_PENDING  PaymentStatus = "pending"
	PAYMENT_SUCCESS  PaymentStatus = "success"
	PAYMENT_FAILED   PaymentStatus = "failed"
	PAYMENT_REFUNDED PaymentStatus = "refunded"
)

const (
	ROLE_USER  = "user"
	ROLE_STAFF = "staff"
	ROLE_ADMIN = "admin"
)

const (
	NOTIFICATION_TICKET_CONFIRMATION = "TICKET_CONFIRMATION"
)

type Claims struct {
	Role string `json:"role"`
	UID  string `json:"uid"`
	jwt.RegisteredClaims
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type PurchaseTicketsRequestBody struct {
	EventID       uint   `json:"event_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,min=1,max=10"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

type VerifyTicketRequestBody struct {
	QRData string `json:"qr_data" binding:"required"`
}

type UpdateTicketStatusRequestBody struct {
	Status TicketStatus `json:"status" binding:"required,oneof=valid used cancelled refunded"`
}

type CreateEventRequestBody struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description,omitempty"`
	Location     string  `json:"location,omitempty"`
	DateTime     string  `json:"date_time" binding:"required,bookabledate" time_format:"2006-01-02 15:04:05 -07:00"`
	Price        float64 `json:"price" binding:"min=0"`
	TotalTickets uint    `json:"total_tickets" binding:"required,min=1"`
	Publish      bool    `json:"publish,omitempty"`
}

type CreatePaymentRequestBody struct {
	TicketID      uint    `json:"ticket_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,min=0"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	TransactionID string  `json:"transaction_id,omitempty"`
}

type UpdatePaymentStatusRequestBody struct {
	Status PaymentStatus `json:"status" binding:"required,oneof=pending success failed refunded"`
}
