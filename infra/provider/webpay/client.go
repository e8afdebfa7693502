// Package webpay is the HTTP client for the Webpay Plus REST gateway.
// Each operation is a single outbound request with a fixed timeout;
// retry policy belongs to the caller.
package webpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vuelasur/booking/pkg/config"
	"github.com/vuelasur/booking/pkg/domain"
	"github.com/vuelasur/booking/pkg/provider"
	"github.com/vuelasur/booking/pkg/provider/payment"
)

const (
	transactionsPath = "/rswebpaytransaction/api/webpay/v1.2/transactions"

	headerApiKeyID     = "Tbk-Api-Key-Id"
	headerApiKeySecret = "Tbk-Api-Key-Secret"
)

// Client implements payment.Gateway against the Webpay Plus REST API.
type Client struct {
	baseURL     string
	credentials provider.GatewayCredentials
	httpClient  *http.Client
	logger      *slog.Logger
}

// New creates a Webpay client from config and resolved credentials.
func New(
	cfg config.Webpay,
	credentials provider.GatewayCredentials,
	logger *slog.Logger,
) *Client {
	return &Client{
		baseURL:     cfg.BaseUrl,
		credentials: credentials,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

var _ payment.Gateway = (*Client)(nil)

type createPayload struct {
	BuyOrder  string `json:"buy_order"`
	SessionID string `json:"session_id"`
	Amount    int64  `json:"amount"`
	ReturnURL string `json:"return_url"`
}

type createReply struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// Create implements payment.Gateway.
func (c *Client) Create(
	ctx context.Context,
	req *payment.CreateRequest,
) (*payment.CreateResponse, error) {
	payload := createPayload{
		BuyOrder:  req.BuyOrder,
		SessionID: req.SessionID,
		Amount:    req.Amount,
		ReturnURL: req.ReturnURL,
	}

	var reply createReply
	if err := c.call(ctx, http.MethodPost, transactionsPath, &payload, &reply); err != nil {
		return nil, err
	}
	if reply.Token == "" || reply.URL == "" {
		c.logger.Error("💳 Gateway create response missing url or token",
			"buy_order", req.BuyOrder)
		return nil, fmt.Errorf("%w: create response missing url or token",
			domain.ErrGatewayProtocol)
	}

	c.logger.Info("💳 Gateway transaction created",
		"buy_order", req.BuyOrder, "amount", req.Amount)
	return &payment.CreateResponse{Token: reply.Token, URL: reply.URL}, nil
}

// Confirm implements payment.Gateway.
func (c *Client) Confirm(
	ctx context.Context,
	token string,
) (*payment.ConfirmResponse, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty gateway token", domain.ErrInvalidRequest)
	}

	var reply payment.ConfirmResponse
	path := transactionsPath + "/" + token
	if err := c.call(ctx, http.MethodPut, path, nil, &reply); err != nil {
		return nil, err
	}
	if reply.BuyOrder == "" || reply.Status == "" {
		c.logger.Error("💳 Gateway confirm response missing buy_order or status")
		return nil, fmt.Errorf("%w: confirm response missing buy_order or status",
			domain.ErrGatewayProtocol)
	}

	c.logger.Info("💳 Gateway transaction confirmed",
		"buy_order", reply.BuyOrder,
		"status", reply.Status,
		"response_code", reply.ResponseCode)
	return &reply, nil
}

// call issues one request with the merchant headers and decodes the
// reply into out. Transport failures map to ErrGatewayUnavailable;
// non-2xx statuses and undecodable bodies map to ErrGatewayProtocol.
func (c *Client) call(
	ctx context.Context,
	method, path string,
	payload, out any,
) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal gateway payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set(headerApiKeyID, c.credentials.CommerceCode)
	req.Header.Set(headerApiKeySecret, c.credentials.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("💳 Gateway request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("💳 Gateway returned non-success status",
			"method", method, "path", path,
			"status", resp.StatusCode, "body", string(respBody))
		return fmt.Errorf("%w: status %d", domain.ErrGatewayProtocol, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrGatewayProtocol, err)
	}
	return nil
}
