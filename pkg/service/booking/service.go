// Package booking implements the booking finalizer: converting an
// approved payment transaction into a confirmed booking record.
package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vuelasur/booking/pkg/domain"
	bookingdomain "github.com/vuelasur/booking/pkg/domain/booking"
	"github.com/vuelasur/booking/pkg/domain/payment"
	"github.com/vuelasur/booking/pkg/dto"
	"github.com/vuelasur/booking/pkg/provider"
	bookingrepo "github.com/vuelasur/booking/pkg/repository/booking"
	transactionrepo "github.com/vuelasur/booking/pkg/repository/transaction"
)

// Service finalizes approved payment transactions into bookings.
type Service struct {
	transactions transactionrepo.Repository
	bookings     bookingrepo.Repository
	notifier     provider.Notifier
	logger       *slog.Logger
	now          func() time.Time
}

// New creates a booking finalizer.
func New(
	transactions transactionrepo.Repository,
	bookings bookingrepo.Repository,
	notifier provider.Notifier,
	logger *slog.Logger,
) *Service {
	return &Service{
		transactions: transactions,
		bookings:     bookings,
		notifier:     notifier,
		logger:       logger.With("service", "booking"),
		now:          time.Now,
	}
}

// Finalize creates the booking for an approved transaction. The booking
// store's uniqueness guard on the transaction reference makes a repeat
// call for the same order reference a no-op success: the existing
// booking is returned and no second notification is sent.
func (s *Service) Finalize(ctx context.Context, orderRef string) (*dto.BookingRead, error) {
	tx, err := s.transactions.GetByOrderRef(ctx, orderRef)
	if err != nil {
		return nil, fmt.Errorf("load transaction %s: %w", orderRef, err)
	}

	create := dto.BookingCreate{
		ID:             uuid.New(),
		BookingRef:     domain.NewReference(bookingdomain.RefPrefix, s.now()),
		FlightRef:      tx.FlightRef,
		UserRef:        tx.UserRef,
		PassengerCount: tx.PassengerCount,
		TotalAmount:    tx.TotalAmount,
		Currency:       tx.Currency,
		PaymentStatus:  bookingdomain.PaymentStatusPaid,
		BookingStatus:  bookingdomain.StatusConfirmed,
		PaymentMethod:  payment.Method,
		TransactionRef: tx.OrderRef,
		BookingDate:    s.now(),
	}

	inserted, err := s.bookings.Insert(ctx, create)
	if err != nil {
		return nil, fmt.Errorf("insert booking for %s: %w", orderRef, err)
	}
	if !inserted {
		s.logger.Info("Booking already exists, skipping",
			"order_ref", orderRef)
		return s.bookings.GetByTransactionRef(ctx, orderRef)
	}

	s.logger.Info("Booking confirmed",
		"booking_ref", create.BookingRef,
		"order_ref", orderRef,
		"total_amount", create.TotalAmount)

	s.notify(ctx, create)

	return s.bookings.GetByTransactionRef(ctx, orderRef)
}

// notify delivers the confirmation best-effort; failures are logged
// and swallowed.
func (s *Service) notify(ctx context.Context, create dto.BookingCreate) {
	err := s.notifier.BookingConfirmed(ctx, provider.BookingConfirmation{
		BookingRef: create.BookingRef,
		OrderRef:   create.TransactionRef,
		UserRef:    create.UserRef,
		FlightRef:  create.FlightRef,
		Amount:     create.TotalAmount,
		Currency:   create.Currency,
	})
	if err != nil {
		s.logger.Error("Booking confirmation notification failed",
			"booking_ref", create.BookingRef, "error", err)
	}
}
