// Package dto defines the data-transfer structs exchanged between the
// service layer and the persistence layer.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// TransactionCreate is the payload for inserting a new payment
// transaction row. Amounts are whole units of Currency.
type TransactionCreate struct {
	ID             uuid.UUID
	OrderRef       string
	Token          string
	SessionID      string
	BaseAmount     int64
	TaxAmount      int64
	TotalAmount    int64
	Currency       string
	FlightRef      string
	UserRef        string
	PassengerCount int
	Status         string
	PaymentMethod  string
}

// TransactionConfirmUpdate carries the fixed column set written when a
// gateway confirmation attempt is recorded. Pointer fields stay NULL
// when the gateway omitted them.
type TransactionConfirmUpdate struct {
	Status            string
	AuthorizationCode *string
	ResponseCode      *int
	TransactionDate   *string
	AccountingDate    *string
	CardNumber        *string
	Installments      *int
	PaymentType       *string
	ConfirmedAt       time.Time
}

// TransactionRead is a read-optimized view of a stored transaction.
type TransactionRead struct {
	ID                uuid.UUID
	OrderRef          string
	Token             string
	SessionID         string
	BaseAmount        int64
	TaxAmount         int64
	TotalAmount       int64
	Currency          string
	FlightRef         string
	UserRef           string
	PassengerCount    int
	Status            string
	PaymentMethod     string
	AuthorizationCode *string
	ResponseCode      *int
	TransactionDate   *string
	AccountingDate    *string
	CardNumber        *string
	Installments      *int
	PaymentType       *string
	CreatedAt         time.Time
	ConfirmedAt       *time.Time
}
