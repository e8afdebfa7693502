// Package provider defines the interfaces for external collaborators:
// the payment gateway (see the payment subpackage), the confirmation
// notifier, the secret source and the response cache.
package provider

import "context"

// BookingConfirmation is the payload delivered when a booking is
// finalized.
type BookingConfirmation struct {
	BookingRef string `json:"booking_ref"`
	OrderRef   string `json:"order_ref"`
	UserRef    string `json:"user_ref"`
	FlightRef  string `json:"flight_ref"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
}

// Notifier delivers booking confirmations best-effort. Callers log and
// swallow its errors; a failed notification never affects payment or
// booking state.
type Notifier interface {
	BookingConfirmed(ctx context.Context, confirmation BookingConfirmation) error
}
