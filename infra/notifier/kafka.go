// Package notifier delivers booking confirmations to downstream
// consumers. Delivery is best-effort: failures are logged by callers
// and never affect payment or booking state.
package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/segmentio/kafka-go"
	"github.com/vuelasur/booking/pkg/config"
	"github.com/vuelasur/booking/pkg/provider"
)

// KafkaNotifier publishes booking confirmations as JSON messages keyed
// by booking reference.
type KafkaNotifier struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafka creates a notifier writing to the configured topic.
func NewKafka(cfg config.Kafka, logger *slog.Logger) *KafkaNotifier {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(cfg.Brokers, ",")...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		Async:                  false,
	}
	return &KafkaNotifier{writer: writer, logger: logger}
}

var _ provider.Notifier = (*KafkaNotifier)(nil)

// BookingConfirmed implements provider.Notifier.
func (n *KafkaNotifier) BookingConfirmed(
	ctx context.Context,
	confirmation provider.BookingConfirmation,
) error {
	value, err := json.Marshal(confirmation)
	if err != nil {
		return err
	}
	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(confirmation.BookingRef),
		Value: value,
	})
	if err != nil {
		return err
	}
	n.logger.Info("📨 Booking confirmation published",
		"booking_ref", confirmation.BookingRef,
		"order_ref", confirmation.OrderRef)
	return nil
}

// Close flushes and closes the underlying writer.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
