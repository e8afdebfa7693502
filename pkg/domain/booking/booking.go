// Package booking holds the domain model for confirmed reservations.
// A booking exists if and only if its payment transaction was approved.
package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/vuelasur/booking/pkg/money"
)

// RefPrefix starts every booking reference (BK-<YYYYMMDD>-<HEX8>).
const RefPrefix = "BK"

// Statuses of a finalized booking. Bookings are written once and never
// mutated by this service; cancellation lives elsewhere.
const (
	PaymentStatusPaid = "paid"
	StatusConfirmed   = "confirmed"
)

// Booking is a confirmed reservation created from an approved payment
// transaction. TransactionRef back-links to the transaction's order
// reference; at most one booking exists per order reference.
type Booking struct {
	ID             uuid.UUID
	BookingRef     string
	FlightRef      string
	UserRef        string
	PassengerCount int
	TotalAmount    *money.Money
	PaymentStatus  string
	BookingStatus  string
	PaymentMethod  string
	TransactionRef string
	BookingDate    time.Time
	CreatedAt      time.Time
}
