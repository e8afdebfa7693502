package webpay

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vuelasur/booking/pkg/config"
	"github.com/vuelasur/booking/pkg/domain"
	"github.com/vuelasur/booking/pkg/provider"
	"github.com/vuelasur/booking/pkg/provider/payment"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(serverURL string, timeout time.Duration) *Client {
	return New(
		config.Webpay{BaseUrl: serverURL, HTTPTimeout: timeout},
		provider.GatewayCredentials{
			CommerceCode: "597055555532",
			ApiKey:       "test-api-key",
		},
		testLogger(),
	)
}

func TestClient_Create(t *testing.T) {
	t.Parallel()

	var gotHeaders http.Header
	var gotPayload createPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, transactionsPath, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_ = json.NewEncoder(w).Encode(createReply{
			Token: "e9d555262db0f989e49d724b4db0b0af367cc415cffc27d1389ae9d1",
			URL:   "https://webpay3gint.transbank.cl/webpayserver/initTransaction",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5*time.Second)
	resp, err := client.Create(context.Background(), &payment.CreateRequest{
		BuyOrder:  "VS-20250114-3F2A9C01",
		SessionID: "session-1",
		Amount:    11900,
		ReturnURL: "http://localhost:3000/payments/return",
	})
	require.NoError(t, err)

	assert.Equal(t, "597055555532", gotHeaders.Get("Tbk-Api-Key-Id"))
	assert.Equal(t, "test-api-key", gotHeaders.Get("Tbk-Api-Key-Secret"))
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.Equal(t, "VS-20250114-3F2A9C01", gotPayload.BuyOrder)
	assert.Equal(t, int64(11900), gotPayload.Amount)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.URL)
}

func TestClient_Create_MissingFields(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "only-token"})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5*time.Second)
	_, err := client.Create(context.Background(), &payment.CreateRequest{
		BuyOrder: "VS-20250114-3F2A9C01",
		Amount:   11900,
	})
	assert.ErrorIs(t, err, domain.ErrGatewayProtocol)
}

func TestClient_Create_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error_message":"Invalid value for parameter: amount"}`, http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5*time.Second)
	_, err := client.Create(context.Background(), &payment.CreateRequest{
		BuyOrder: "VS-20250114-3F2A9C01",
		Amount:   11900,
	})
	assert.ErrorIs(t, err, domain.ErrGatewayProtocol)
}

func TestClient_Create_Timeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 20*time.Millisecond)
	_, err := client.Create(context.Background(), &payment.CreateRequest{
		BuyOrder: "VS-20250114-3F2A9C01",
		Amount:   11900,
	})
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

func TestClient_Confirm(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, transactionsPath+"/tok-123", r.URL.Path)
		_ = json.NewEncoder(w).Encode(payment.ConfirmResponse{
			VCI:               "TSY",
			Amount:            11900,
			Status:            "AUTHORIZED",
			BuyOrder:          "VS-20250114-3F2A9C01",
			SessionID:         "session-1",
			CardDetail:        payment.CardDetail{CardNumber: "XXXXXXXXXXXX6623"},
			AccountingDate:    "0114",
			TransactionDate:   "2025-01-14T21:04:20.000Z",
			AuthorizationCode: "1213",
			PaymentTypeCode:   "VN",
			ResponseCode:      0,
			InstallmentsNum:   0,
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5*time.Second)
	resp, err := client.Confirm(context.Background(), "tok-123")
	require.NoError(t, err)

	assert.Equal(t, "AUTHORIZED", resp.Status)
	assert.Equal(t, "VS-20250114-3F2A9C01", resp.BuyOrder)
	assert.Equal(t, 0, resp.ResponseCode)
	assert.Equal(t, "XXXXXXXXXXXX6623", resp.CardDetail.CardNumber)
}

func TestClient_Confirm_EmptyToken(t *testing.T) {
	t.Parallel()

	client := newTestClient("http://localhost:1", time.Second)
	_, err := client.Confirm(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestClient_Confirm_MissingFields(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"amount": 11900})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5*time.Second)
	_, err := client.Confirm(context.Background(), "tok-123")
	assert.ErrorIs(t, err, domain.ErrGatewayProtocol)
}
