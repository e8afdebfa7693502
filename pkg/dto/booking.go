package dto

import (
	"time"

	"github.com/google/uuid"
)

// BookingCreate is the payload for inserting a confirmed booking.
// TransactionRef is the idempotency key: at most one booking row may
// reference a given payment transaction.
type BookingCreate struct {
	ID             uuid.UUID
	BookingRef     string
	FlightRef      string
	UserRef        string
	PassengerCount int
	TotalAmount    int64
	Currency       string
	PaymentStatus  string
	BookingStatus  string
	PaymentMethod  string
	TransactionRef string
	BookingDate    time.Time
}

// BookingRead is a read-optimized view of a stored booking.
type BookingRead struct {
	ID             uuid.UUID
	BookingRef     string
	FlightRef      string
	UserRef        string
	PassengerCount int
	TotalAmount    int64
	Currency       string
	PaymentStatus  string
	BookingStatus  string
	PaymentMethod  string
	TransactionRef string
	BookingDate    time.Time
	CreatedAt      time.Time
}
