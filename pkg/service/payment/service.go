// Package payment implements the payment orchestrator: the pipeline
// that creates a gateway transaction, persists it, confirms it and
// hands approved transactions to the booking finalizer.
//
// A rejected payment is a normal terminal outcome, not an error: both
// Create and Confirm report expected failures through their result's
// Success flag and Err cause rather than a returned error.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vuelasur/booking/pkg/domain"
	paymentdomain "github.com/vuelasur/booking/pkg/domain/payment"
	"github.com/vuelasur/booking/pkg/dto"
	"github.com/vuelasur/booking/pkg/money"
	paymentprovider "github.com/vuelasur/booking/pkg/provider/payment"
	transactionrepo "github.com/vuelasur/booking/pkg/repository/transaction"
)

// Finalizer converts an approved transaction into a confirmed booking.
// Satisfied by *booking.Service.
type Finalizer interface {
	Finalize(ctx context.Context, orderRef string) (*dto.BookingRead, error)
}

// Config carries the orchestrator's reference and redirect settings.
type Config struct {
	OrderRefPrefix   string
	DefaultReturnURL string
}

// Service coordinates the gateway client and the transaction store.
type Service struct {
	gateway      paymentprovider.Gateway
	transactions transactionrepo.Repository
	finalizer    Finalizer
	cfg          Config
	logger       *slog.Logger
	now          func() time.Time
}

// New creates a payment orchestrator.
func New(
	gateway paymentprovider.Gateway,
	transactions transactionrepo.Repository,
	finalizer Finalizer,
	cfg Config,
	logger *slog.Logger,
) *Service {
	if cfg.OrderRefPrefix == "" {
		cfg.OrderRefPrefix = "VS"
	}
	return &Service{
		gateway:      gateway,
		transactions: transactions,
		finalizer:    finalizer,
		cfg:          cfg,
		logger:       logger.With("service", "payment"),
		now:          time.Now,
	}
}

// CreateInput is the request to open a payment. Amount is the base fare
// in whole pesos; nil means the caller omitted it.
type CreateInput struct {
	Amount         *int64
	FlightRef      string
	UserRef        string
	PassengerCount int
	SessionID      string
	ReturnURL      string
}

// CreateResult is the outcome of Create. When Success is false, Err
// carries the cause and nothing was persisted.
type CreateResult struct {
	Success       bool
	TransactionID string
	PaymentURL    string
	Token         string
	Amount        int64
	Currency      string
	Err           error
}

// Create opens a gateway transaction for the IVA-inclusive total and
// persists the pending row. The gateway call comes first: its token is
// the correlation key, so a gateway failure aborts before any durable
// write.
func (s *Service) Create(ctx context.Context, input CreateInput) *CreateResult {
	if input.Amount == nil || *input.Amount < 0 {
		return &CreateResult{Err: fmt.Errorf(
			"%w: amount must be present and non-negative", domain.ErrInvalidRequest)}
	}

	quote, err := paymentdomain.QuoteCLP(*input.Amount)
	if err != nil {
		return &CreateResult{Err: fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)}
	}

	orderRef := domain.NewReference(s.cfg.OrderRefPrefix, s.now())
	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = domain.NewSessionID()
	}
	returnURL := input.ReturnURL
	if returnURL == "" {
		returnURL = s.cfg.DefaultReturnURL
	}

	created, err := s.gateway.Create(ctx, &paymentprovider.CreateRequest{
		BuyOrder:  orderRef,
		SessionID: sessionID,
		Amount:    quote.Total.Amount(),
		ReturnURL: returnURL,
	})
	if err != nil {
		s.logger.Error("Gateway transaction creation failed",
			"order_ref", orderRef, "error", err)
		return &CreateResult{Err: err}
	}

	passengers := input.PassengerCount
	if passengers <= 0 {
		passengers = 1
	}
	err = s.transactions.Insert(ctx, dto.TransactionCreate{
		ID:             uuid.New(),
		OrderRef:       orderRef,
		Token:          created.Token,
		SessionID:      sessionID,
		BaseAmount:     quote.Base.Amount(),
		TaxAmount:      quote.Tax.Amount(),
		TotalAmount:    quote.Total.Amount(),
		Currency:       money.CLP.String(),
		FlightRef:      input.FlightRef,
		UserRef:        input.UserRef,
		PassengerCount: passengers,
		Status:         string(paymentdomain.StatusPending),
		PaymentMethod:  paymentdomain.Method,
	})
	if err != nil {
		// The gateway-side transaction is now orphaned; there is no
		// reconciliation job, so leave both references in the log.
		s.logger.Warn("Transaction row insert failed, gateway transaction orphaned",
			"order_ref", orderRef, "token", created.Token, "error", err)
		return &CreateResult{Err: err}
	}

	s.logger.Info("Payment transaction created",
		"order_ref", orderRef,
		"total_amount", quote.Total.Amount(),
		"currency", money.CLP)
	return &CreateResult{
		Success:       true,
		TransactionID: orderRef,
		PaymentURL:    created.URL,
		Token:         created.Token,
		Amount:        quote.Total.Amount(),
		Currency:      money.CLP.String(),
	}
}

// CardInfo is the traveler-facing view of the confirmed card.
type CardInfo struct {
	LastFour string
	CardType string
}

// ConfirmResult is the outcome of Confirm. Status reports the terminal
// or still-pending classification; Success is false only for gateway
// or store failures, never for a rejected payment.
type ConfirmResult struct {
	Success         bool
	TransactionID   string
	Status          paymentdomain.Status
	Amount          int64
	AuthCode        string
	CardInfo        CardInfo
	TransactionDate string
	Installments    int
	Err             error
}

// Confirm commits the gateway transaction for token and records the
// outcome. Metadata is written on every attempt, terminal or not, so
// each confirmation leaves a trace. An approved payment triggers one
// finalizer invocation; finalizer failure is logged and never surfaces,
// because the charge has already been authorized.
func (s *Service) Confirm(ctx context.Context, token string) *ConfirmResult {
	confirmed, err := s.gateway.Confirm(ctx, token)
	if err != nil {
		s.logger.Error("Gateway confirmation failed", "error", err)
		return &ConfirmResult{Err: err}
	}

	status := paymentdomain.Classify(confirmed.Status, confirmed.ResponseCode)
	paymentType := paymentdomain.PaymentTypeDescription(confirmed.PaymentTypeCode)

	update := dto.TransactionConfirmUpdate{
		Status:            string(status),
		AuthorizationCode: nonEmpty(confirmed.AuthorizationCode),
		ResponseCode:      &confirmed.ResponseCode,
		TransactionDate:   nonEmpty(confirmed.TransactionDate),
		AccountingDate:    nonEmpty(confirmed.AccountingDate),
		CardNumber:        nonEmpty(confirmed.CardDetail.CardNumber),
		Installments:      &confirmed.InstallmentsNum,
		PaymentType:       &paymentType,
		ConfirmedAt:       s.now(),
	}
	if err := s.transactions.UpdateByOrderRef(ctx, confirmed.BuyOrder, update); err != nil {
		s.logger.Error("Transaction status update failed",
			"order_ref", confirmed.BuyOrder, "error", err)
		return &ConfirmResult{Err: err}
	}

	s.logger.Info("Payment confirmation recorded",
		"order_ref", confirmed.BuyOrder,
		"status", status,
		"response_code", confirmed.ResponseCode)

	if status == paymentdomain.StatusApproved {
		if _, err := s.finalizer.Finalize(ctx, confirmed.BuyOrder); err != nil {
			// The money has moved; a finalization failure must not turn
			// this confirmation into a payment failure.
			s.logger.Error("Booking finalization failed after approved payment",
				"order_ref", confirmed.BuyOrder, "error", err)
		}
	}

	conf := paymentdomain.Confirmation{CardNumber: confirmed.CardDetail.CardNumber}
	return &ConfirmResult{
		Success:       true,
		TransactionID: confirmed.BuyOrder,
		Status:        status,
		Amount:        confirmed.Amount,
		AuthCode:      confirmed.AuthorizationCode,
		CardInfo: CardInfo{
			LastFour: conf.CardLastFour(),
			CardType: paymentType,
		},
		TransactionDate: confirmed.TransactionDate,
		Installments:    confirmed.InstallmentsNum,
	}
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
