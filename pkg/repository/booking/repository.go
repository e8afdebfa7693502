// Package booking declares the persistence contract for confirmed
// bookings.
package booking

import (
	"context"

	"github.com/vuelasur/booking/pkg/dto"
)

// Repository persists booking rows.
//
// Insert is idempotent on the transaction reference: a row already
// referencing the same payment transaction makes the insert a no-op,
// reported through the returned inserted flag. This is the guard
// against duplicate finalization of a single approved payment.
type Repository interface {
	Insert(ctx context.Context, create dto.BookingCreate) (inserted bool, err error)
	GetByTransactionRef(ctx context.Context, transactionRef string) (*dto.BookingRead, error)
}
