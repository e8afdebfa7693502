package notifier

import (
	"context"
	"log/slog"

	"github.com/vuelasur/booking/pkg/provider"
)

// NoopNotifier is wired when Kafka is disabled; it only logs.
type NoopNotifier struct {
	logger *slog.Logger
}

// NewNoop creates a NoopNotifier.
func NewNoop(logger *slog.Logger) *NoopNotifier {
	return &NoopNotifier{logger: logger}
}

var _ provider.Notifier = (*NoopNotifier)(nil)

// BookingConfirmed implements provider.Notifier.
func (n *NoopNotifier) BookingConfirmed(
	_ context.Context,
	confirmation provider.BookingConfirmation,
) error {
	n.logger.Info("Booking confirmation (notifier disabled)",
		"booking_ref", confirmation.BookingRef,
		"order_ref", confirmation.OrderRef)
	return nil
}
