package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is the persisted record of one payment attempt. OrderRef
// is the join key to the gateway-side transaction identified by Token;
// its unique index enforces one row per order reference.
type Transaction struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderRef       string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Token          string    `gorm:"type:varchar(128);index"`
	SessionID      string    `gorm:"type:varchar(64)"`
	BaseAmount     int64     `gorm:"not null"`
	TaxAmount      int64     `gorm:"not null"`
	TotalAmount    int64     `gorm:"not null"`
	Currency       string    `gorm:"type:varchar(3);not null;default:'CLP'"`
	FlightRef      string    `gorm:"type:varchar(64)"`
	UserRef        string    `gorm:"type:varchar(64)"`
	PassengerCount int       `gorm:"not null;default:1"`
	Status         string    `gorm:"type:varchar(16);not null;default:'pending'"`
	PaymentMethod  string    `gorm:"type:varchar(32);not null;default:'webpay'"`

	// Confirmation metadata, NULL until a confirmation attempt is recorded.
	AuthorizationCode *string `gorm:"type:varchar(16)"`
	ResponseCode      *int
	TransactionDate   *string `gorm:"type:varchar(40)"`
	AccountingDate    *string `gorm:"type:varchar(8)"`
	CardNumber        *string `gorm:"type:varchar(24)"`
	Installments      *int
	PaymentType       *string `gorm:"type:varchar(64)"`

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConfirmedAt *time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string { return "payment_transactions" }
