// Package transaction declares the persistence contract for payment
// transactions. The store is the single source of truth for payment
// state; exactly one row exists per order reference.
package transaction

import (
	"context"

	"github.com/vuelasur/booking/pkg/dto"
)

// Repository persists payment transaction rows.
//
// Insert fails with domain.ErrDuplicateOrderRef when the order
// reference already exists. UpdateByOrderRef and GetByOrderRef fail
// with domain.ErrNotFound when no row matches. All statements are
// fixed and parameterized; column sets are never built from caller
// input.
type Repository interface {
	Insert(ctx context.Context, create dto.TransactionCreate) error
	UpdateByOrderRef(ctx context.Context, orderRef string, update dto.TransactionConfirmUpdate) error
	GetByOrderRef(ctx context.Context, orderRef string) (*dto.TransactionRead, error)
}
