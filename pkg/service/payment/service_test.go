package payment

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vuelasur/booking/pkg/domain"
	paymentdomain "github.com/vuelasur/booking/pkg/domain/payment"
	"github.com/vuelasur/booking/pkg/dto"
	paymentprovider "github.com/vuelasur/booking/pkg/provider/payment"
)

type mockGateway struct {
	mu          sync.Mutex
	createCalls []*paymentprovider.CreateRequest
	createResp  *paymentprovider.CreateResponse
	createErr   error
	confirmResp *paymentprovider.ConfirmResponse
	confirmErr  error
}

func (m *mockGateway) Create(
	_ context.Context,
	req *paymentprovider.CreateRequest,
) (*paymentprovider.CreateResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls = append(m.createCalls, req)
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.createResp, nil
}

func (m *mockGateway) Confirm(
	context.Context,
	string,
) (*paymentprovider.ConfirmResponse, error) {
	if m.confirmErr != nil {
		return nil, m.confirmErr
	}
	return m.confirmResp, nil
}

type mockTransactionRepo struct {
	mu        sync.Mutex
	inserts   []dto.TransactionCreate
	insertErr error
	updates   map[string]dto.TransactionConfirmUpdate
	updateErr error
}

func (m *mockTransactionRepo) Insert(_ context.Context, create dto.TransactionCreate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserts = append(m.inserts, create)
	return nil
}

func (m *mockTransactionRepo) UpdateByOrderRef(
	_ context.Context,
	orderRef string,
	update dto.TransactionConfirmUpdate,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	if m.updates == nil {
		m.updates = make(map[string]dto.TransactionConfirmUpdate)
	}
	m.updates[orderRef] = update
	return nil
}

func (m *mockTransactionRepo) GetByOrderRef(context.Context, string) (*dto.TransactionRead, error) {
	return nil, domain.ErrNotFound
}

type mockFinalizer struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (m *mockFinalizer) Finalize(_ context.Context, orderRef string) (*dto.BookingRead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, orderRef)
	if m.err != nil {
		return nil, m.err
	}
	return &dto.BookingRead{BookingRef: "BK-20250114-AAAA0001", TransactionRef: orderRef}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newService(
	gateway *mockGateway,
	repo *mockTransactionRepo,
	finalizer *mockFinalizer,
) *Service {
	return New(gateway, repo, finalizer, Config{
		OrderRefPrefix:   "VS",
		DefaultReturnURL: "http://localhost:3000/payments/return",
	}, testLogger())
}

func amount(v int64) *int64 { return &v }

func authorizedResponse(buyOrder string) *paymentprovider.ConfirmResponse {
	return &paymentprovider.ConfirmResponse{
		Amount:            11900,
		Status:            paymentdomain.GatewayStatusAuthorized,
		BuyOrder:          buyOrder,
		CardDetail:        paymentprovider.CardDetail{CardNumber: "XXXXXXXXXXXX6623"},
		AccountingDate:    "0114",
		TransactionDate:   "2025-01-14T21:04:20.000Z",
		AuthorizationCode: "1213",
		PaymentTypeCode:   "VN",
		ResponseCode:      0,
		InstallmentsNum:   3,
	}
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	gateway := &mockGateway{createResp: &paymentprovider.CreateResponse{
		Token: "tok-123",
		URL:   "https://webpay3gint.transbank.cl/webpayserver/initTransaction",
	}}
	repo := &mockTransactionRepo{}
	svc := newService(gateway, repo, &mockFinalizer{})

	result := svc.Create(context.Background(), CreateInput{
		Amount:         amount(10000),
		FlightRef:      "flight-42",
		UserRef:        "user-7",
		PassengerCount: 2,
	})

	require.True(t, result.Success)
	assert.Regexp(t, `^VS-\d{8}-[0-9A-F]{8}$`, result.TransactionID)
	assert.Equal(t, int64(11900), result.Amount)
	assert.Equal(t, "CLP", result.Currency)
	assert.Equal(t, "tok-123", result.Token)

	require.Len(t, gateway.createCalls, 1)
	assert.Equal(t, int64(11900), gateway.createCalls[0].Amount)
	assert.NotEmpty(t, gateway.createCalls[0].SessionID)
	assert.Equal(t, "http://localhost:3000/payments/return", gateway.createCalls[0].ReturnURL)

	require.Len(t, repo.inserts, 1)
	row := repo.inserts[0]
	assert.Equal(t, result.TransactionID, row.OrderRef)
	assert.Equal(t, int64(10000), row.BaseAmount)
	assert.Equal(t, int64(1900), row.TaxAmount)
	assert.Equal(t, int64(11900), row.TotalAmount)
	assert.Equal(t, "pending", row.Status)
	assert.Equal(t, "webpay", row.PaymentMethod)
	assert.Equal(t, 2, row.PassengerCount)
}

func TestCreate_MissingAmount(t *testing.T) {
	t.Parallel()

	gateway := &mockGateway{}
	repo := &mockTransactionRepo{}
	svc := newService(gateway, repo, &mockFinalizer{})

	result := svc.Create(context.Background(), CreateInput{})
	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Err, domain.ErrInvalidRequest)
	assert.Empty(t, gateway.createCalls)
	assert.Empty(t, repo.inserts)
}

func TestCreate_NegativeAmount(t *testing.T) {
	t.Parallel()

	gateway := &mockGateway{}
	repo := &mockTransactionRepo{}
	svc := newService(gateway, repo, &mockFinalizer{})

	result := svc.Create(context.Background(), CreateInput{Amount: amount(-100)})
	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Err, domain.ErrInvalidRequest)
	assert.Empty(t, gateway.createCalls)
}

func TestCreate_GatewayFailureWritesNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"gateway unavailable", domain.ErrGatewayUnavailable},
		{"gateway protocol error", domain.ErrGatewayProtocol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gateway := &mockGateway{createErr: tt.err}
			repo := &mockTransactionRepo{}
			svc := newService(gateway, repo, &mockFinalizer{})

			result := svc.Create(context.Background(), CreateInput{Amount: amount(10000)})
			assert.False(t, result.Success)
			assert.ErrorIs(t, result.Err, tt.err)
			assert.Empty(t, repo.inserts, "no row may be written when the gateway fails")
		})
	}
}

func TestCreate_DuplicateOrderRef(t *testing.T) {
	t.Parallel()

	gateway := &mockGateway{createResp: &paymentprovider.CreateResponse{
		Token: "tok-orphan", URL: "https://gateway/init",
	}}
	repo := &mockTransactionRepo{insertErr: domain.ErrDuplicateOrderRef}
	svc := newService(gateway, repo, &mockFinalizer{})

	result := svc.Create(context.Background(), CreateInput{Amount: amount(10000)})
	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Err, domain.ErrDuplicateOrderRef)
}

func TestConfirm_ApprovedFinalizesOnce(t *testing.T) {
	t.Parallel()

	gateway := &mockGateway{confirmResp: authorizedResponse("VS-20250114-3F2A9C01")}
	repo := &mockTransactionRepo{}
	finalizer := &mockFinalizer{}
	svc := newService(gateway, repo, finalizer)

	result := svc.Confirm(context.Background(), "tok-123")
	require.True(t, result.Success)
	assert.Equal(t, paymentdomain.StatusApproved, result.Status)
	assert.Equal(t, "VS-20250114-3F2A9C01", result.TransactionID)
	assert.Equal(t, int64(11900), result.Amount)
	assert.Equal(t, "1213", result.AuthCode)
	assert.Equal(t, "6623", result.CardInfo.LastFour)
	assert.Equal(t, "Tarjeta de Crédito", result.CardInfo.CardType)
	assert.Equal(t, 3, result.Installments)

	update, ok := repo.updates["VS-20250114-3F2A9C01"]
	require.True(t, ok)
	assert.Equal(t, "approved", update.Status)
	require.NotNil(t, update.AuthorizationCode)
	assert.Equal(t, "1213", *update.AuthorizationCode)

	assert.Equal(t, []string{"VS-20250114-3F2A9C01"}, finalizer.calls)
}

func TestConfirm_RejectedDoesNotFinalize(t *testing.T) {
	t.Parallel()

	resp := authorizedResponse("VS-20250114-3F2A9C01")
	resp.Status = paymentdomain.GatewayStatusFailed
	resp.ResponseCode = -1
	gateway := &mockGateway{confirmResp: resp}
	repo := &mockTransactionRepo{}
	finalizer := &mockFinalizer{}
	svc := newService(gateway, repo, finalizer)

	result := svc.Confirm(context.Background(), "tok-123")
	require.True(t, result.Success)
	assert.Equal(t, paymentdomain.StatusRejected, result.Status)
	assert.Equal(t, "rejected", repo.updates["VS-20250114-3F2A9C01"].Status)
	assert.Empty(t, finalizer.calls)
}

func TestConfirm_IntermediateStateStaysPending(t *testing.T) {
	t.Parallel()

	resp := authorizedResponse("VS-20250114-3F2A9C01")
	resp.Status = "INITIALIZED"
	gateway := &mockGateway{confirmResp: resp}
	repo := &mockTransactionRepo{}
	finalizer := &mockFinalizer{}
	svc := newService(gateway, repo, finalizer)

	result := svc.Confirm(context.Background(), "tok-123")
	require.True(t, result.Success)
	assert.Equal(t, paymentdomain.StatusPending, result.Status)
	// The attempt's metadata is still recorded.
	assert.Equal(t, "pending", repo.updates["VS-20250114-3F2A9C01"].Status)
	assert.Empty(t, finalizer.calls)
}

func TestConfirm_FinalizerFailureDoesNotChangeOutcome(t *testing.T) {
	t.Parallel()

	gateway := &mockGateway{confirmResp: authorizedResponse("VS-20250114-3F2A9C01")}
	repo := &mockTransactionRepo{}
	finalizer := &mockFinalizer{err: errors.New("booking store down")}
	svc := newService(gateway, repo, finalizer)

	result := svc.Confirm(context.Background(), "tok-123")
	require.True(t, result.Success)
	assert.Equal(t, paymentdomain.StatusApproved, result.Status)
	assert.Len(t, finalizer.calls, 1)
}

func TestConfirm_GatewayFailure(t *testing.T) {
	t.Parallel()

	gateway := &mockGateway{confirmErr: domain.ErrGatewayUnavailable}
	repo := &mockTransactionRepo{}
	svc := newService(gateway, repo, &mockFinalizer{})

	result := svc.Confirm(context.Background(), "tok-123")
	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Err, domain.ErrGatewayUnavailable)
	assert.Empty(t, repo.updates)
}

func TestConfirm_UpdateNotFound(t *testing.T) {
	t.Parallel()

	gateway := &mockGateway{confirmResp: authorizedResponse("VS-20250114-FFFFFFFF")}
	repo := &mockTransactionRepo{updateErr: domain.ErrNotFound}
	finalizer := &mockFinalizer{}
	svc := newService(gateway, repo, finalizer)

	result := svc.Confirm(context.Background(), "tok-123")
	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Err, domain.ErrNotFound)
	assert.Empty(t, finalizer.calls)
}
