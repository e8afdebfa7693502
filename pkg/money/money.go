// Package money provides a value object for monetary amounts.
//
// Amounts are stored as integers in the smallest unit of their currency.
// The Chilean peso has no fractional unit, so a CLP amount is a whole
// number of pesos. All arithmetic requires matching currencies.
package money

import (
	"encoding/json"
	"fmt"
)

var (
	// ErrNegativeAmount is returned when an amount must be non-negative.
	ErrNegativeAmount = fmt.Errorf("amount must not be negative")

	// ErrInvalidCurrency is returned for malformed or unknown currency codes.
	ErrInvalidCurrency = fmt.Errorf("invalid currency code")

	// ErrMismatchedCurrencies is returned when combining different currencies.
	ErrMismatchedCurrencies = fmt.Errorf("mismatched currencies")
)

// Code is a 3-letter ISO 4217 currency code.
type Code string

// Currency codes used by the platform.
const (
	CLP Code = "CLP"
	USD Code = "USD"
)

// IsValid reports whether the code is three uppercase ASCII letters.
func (c Code) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	return c[0] >= 'A' && c[0] <= 'Z' &&
		c[1] >= 'A' && c[1] <= 'Z' &&
		c[2] >= 'A' && c[2] <= 'Z'
}

// String returns the string representation of the currency code.
func (c Code) String() string { return string(c) }

// Currency is a monetary unit together with its decimal places.
type Currency struct {
	Code     Code
	Decimals int
}

// IsValid checks the code and decimal range.
func (c Currency) IsValid() bool {
	return c.Code.IsValid() && c.Decimals >= 0 && c.Decimals <= 8
}

// String returns the currency code as a string.
func (c Currency) String() string { return string(c.Code) }

// Currency instances used by the platform.
var (
	// CLPCurrency has no decimal places; one peso is the smallest unit.
	CLPCurrency = Currency{Code: CLP, Decimals: 0}
	USDCurrency = Currency{Code: USD, Decimals: 2}
)

// DefaultCurrency is the currency assumed when none is given.
var DefaultCurrency = CLPCurrency

// ToCurrency resolves a Code to its Currency definition.
func (c Code) ToCurrency() Currency {
	switch c {
	case CLP:
		return CLPCurrency
	case USD:
		return USDCurrency
	default:
		return Currency{Code: c, Decimals: 2}
	}
}

// Money is a monetary value in a specific currency.
// Invariants:
//   - Amount is stored in the smallest currency unit.
//   - Currency must be valid.
//   - Arithmetic requires matching currencies.
type Money struct {
	amount   int64
	currency Currency
}

// New creates a Money value from an amount in the smallest currency unit.
func New(amount int64, currency Currency) (*Money, error) {
	if !currency.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCurrency, currency)
	}
	return &Money{amount: amount, currency: currency}, nil
}

// NewCLP creates a Money value of whole Chilean pesos.
func NewCLP(pesos int64) *Money {
	return &Money{amount: pesos, currency: CLPCurrency}
}

// Must creates a Money value and panics on an invalid currency.
func Must(amount int64, currency Currency) *Money {
	m, err := New(amount, currency)
	if err != nil {
		panic(fmt.Sprintf("money.Must(%d, %v): %v", amount, currency, err))
	}
	return m
}

// Zero creates a zero-valued Money in the given currency.
func Zero(currency Currency) *Money {
	return &Money{amount: 0, currency: currency}
}

// Amount returns the amount in the smallest currency unit.
func (m *Money) Amount() int64 { return m.amount }

// Currency returns the currency of the value.
func (m *Money) Currency() Currency { return m.currency }

// CurrencyCode returns the currency code of the value.
func (m *Money) CurrencyCode() Code { return m.currency.Code }

// IsNegative reports whether the amount is below zero.
func (m *Money) IsNegative() bool { return m != nil && m.amount < 0 }

// IsZero reports whether the value is nil or zero.
func (m *Money) IsZero() bool { return m == nil || m.amount == 0 }

// IsSameCurrency reports whether both values share a currency.
func (m *Money) IsSameCurrency(other *Money) bool {
	return m.currency == other.currency
}

// Equals reports whether both values have equal currency and amount.
func (m *Money) Equals(other *Money) bool {
	if m == nil || other == nil {
		return false
	}
	return m.currency == other.currency && m.amount == other.amount
}

// Add returns the sum of both values.
// Invariants enforced:
//   - Currencies must match.
func (m *Money) Add(other *Money) (*Money, error) {
	if !m.IsSameCurrency(other) {
		return nil, fmt.Errorf("%w: %s and %s",
			ErrMismatchedCurrencies, m.currency.Code, other.currency.Code)
	}
	return &Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract returns the difference of both values; the result may be negative.
// Invariants enforced:
//   - Currencies must match.
func (m *Money) Subtract(other *Money) (*Money, error) {
	if !m.IsSameCurrency(other) {
		return nil, fmt.Errorf("%w: %s and %s",
			ErrMismatchedCurrencies, m.currency.Code, other.currency.Code)
	}
	return &Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// MulFrac multiplies the amount by num/den using integer arithmetic,
// truncating toward zero. den must be positive.
func (m *Money) MulFrac(num, den int64) (*Money, error) {
	if den <= 0 {
		return nil, fmt.Errorf("denominator must be positive")
	}
	return &Money{amount: m.amount * num / den, currency: m.currency}, nil
}

// String renders the value with the currency's decimal places.
func (m *Money) String() string {
	if m.currency.Decimals == 0 {
		return fmt.Sprintf("%d %s", m.amount, m.currency.Code)
	}
	div := int64(1)
	for i := 0; i < m.currency.Decimals; i++ {
		div *= 10
	}
	return fmt.Sprintf("%d.%0*d %s",
		m.amount/div, m.currency.Decimals, m.amount%div, m.currency.Code)
}

// MarshalJSON implements json.Marshaler.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"amount":   m.amount,
		"currency": m.currency.Code,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Money) UnmarshalJSON(data []byte) error {
	var aux struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	currency := Code(aux.Currency).ToCurrency()
	if !currency.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidCurrency, aux.Currency)
	}
	m.amount = aux.Amount
	m.currency = currency
	return nil
}
