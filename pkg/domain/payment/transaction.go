// Package payment holds the domain model for card payment transactions:
// the transaction lifecycle, amount and tax rules, and the translation of
// gateway result codes.
package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/vuelasur/booking/pkg/money"
)

// Status is the lifecycle state of a payment transaction.
// A transaction starts pending and moves exactly once to approved or
// rejected when the gateway confirmation is recorded.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsTerminal reports whether no further status transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Method tags the payment rail a transaction was collected on.
const Method = "webpay"

// Transaction is one attempt to collect payment for a booking.
// The order reference is globally unique and immutable; it correlates the
// stored row with the gateway-side transaction identified by Token.
type Transaction struct {
	ID             uuid.UUID
	OrderRef       string
	Token          string
	SessionID      string
	BaseAmount     *money.Money
	TaxAmount      *money.Money
	TotalAmount    *money.Money
	FlightRef      string
	UserRef        string
	PassengerCount int
	Status         Status
	Confirmation   *Confirmation
	CreatedAt      time.Time
	ConfirmedAt    *time.Time
}

// Confirmation carries the gateway metadata recorded on every
// confirmation attempt, terminal or not.
type Confirmation struct {
	AuthorizationCode string
	ResponseCode      int
	TransactionDate   string
	AccountingDate    string
	CardNumber        string
	Installments      int
	PaymentType       string
}

// CardLastFour returns the last four digits of the masked card number,
// or "" when no card detail was reported.
func (c *Confirmation) CardLastFour() string {
	if c == nil || len(c.CardNumber) < 4 {
		return ""
	}
	return c.CardNumber[len(c.CardNumber)-4:]
}
