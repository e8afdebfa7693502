package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is the persisted record of a confirmed reservation. The
// unique index on TransactionRef guarantees at most one booking per
// approved payment transaction; a second insert for the same order
// reference is skipped.
type Booking struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	BookingRef     string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	FlightRef      string    `gorm:"type:varchar(64)"`
	UserRef        string    `gorm:"type:varchar(64)"`
	PassengerCount int       `gorm:"not null;default:1"`
	TotalAmount    int64     `gorm:"not null"`
	Currency       string    `gorm:"type:varchar(3);not null;default:'CLP'"`
	PaymentStatus  string    `gorm:"type:varchar(16);not null;default:'paid'"`
	BookingStatus  string    `gorm:"type:varchar(16);not null;default:'confirmed'"`
	PaymentMethod  string    `gorm:"type:varchar(32);not null;default:'webpay'"`
	TransactionRef string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	BookingDate    time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for the Booking model.
func (Booking) TableName() string { return "bookings" }
