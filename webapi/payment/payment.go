// Package payment exposes the payment action endpoint: a single POST
// route dispatching on the action field, mirroring the checkout
// frontend's contract.
package payment

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vuelasur/booking/pkg/config"
	paymentsvc "github.com/vuelasur/booking/pkg/service/payment"
	"github.com/vuelasur/booking/webapi/common"
)

// Request is the action-dispatch body of POST /payments.
type Request struct {
	Action      string       `json:"action" validate:"required,oneof=create confirm"`
	PaymentData *PaymentData `json:"payment_data"`
	Token       string       `json:"token"`
}

// PaymentData carries the create-action fields. Amount is a pointer so
// an omitted amount is distinguishable from zero.
type PaymentData struct {
	Amount         *int64 `json:"amount"`
	FlightID       string `json:"flight_id"`
	UserID         string `json:"user_id"`
	PassengerCount int    `json:"passenger_count"`
	SessionID      string `json:"session_id"`
	ReturnURL      string `json:"return_url"`
}

// CreateResponse is the body returned for a successful create action.
type CreateResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	PaymentURL    string `json:"payment_url"`
	Token         string `json:"token"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
}

// CardInfo is the confirmed card summary inside ConfirmResponse.
type CardInfo struct {
	LastFour string `json:"last_four"`
	CardType string `json:"card_type"`
}

// ConfirmResponse is the body returned for a confirm action.
type ConfirmResponse struct {
	Success           bool     `json:"success"`
	TransactionID     string   `json:"transaction_id"`
	Status            string   `json:"status"`
	Amount            int64    `json:"amount"`
	AuthorizationCode string   `json:"authorization_code"`
	CardInfo          CardInfo `json:"card_info"`
	TransactionDate   string   `json:"transaction_date"`
	Installments      int      `json:"installments"`
}

// Routes registers the payment endpoint.
func Routes(app *fiber.App, svc *paymentsvc.Service, cfg *config.App) {
	app.Post("/payments", Actions(svc, cfg))
}

// Actions returns the POST /payments handler.
// @Summary Create or confirm a Webpay payment
// @Description Dispatches on the action field: "create" opens a gateway transaction for the IVA-inclusive total, "confirm" commits it and finalizes the booking when approved
// @Tags payments
// @Accept json
// @Produce json
// @Param request body Request true "Payment action"
// @Success 200 {object} ConfirmResponse
// @Failure 400 {object} common.ErrorBody
// @Failure 500 {object} common.ErrorBody
// @Router /payments [post]
func Actions(svc *paymentsvc.Service, cfg *config.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := common.BindAndValidate[Request](c, cfg.Debug)
		if req == nil {
			return err
		}

		switch req.Action {
		case "create":
			return create(c, svc, cfg, req)
		default:
			return confirm(c, svc, cfg, req)
		}
	}
}

func create(
	c *fiber.Ctx,
	svc *paymentsvc.Service,
	cfg *config.App,
	req *Request,
) error {
	input := paymentsvc.CreateInput{}
	if data := req.PaymentData; data != nil {
		input = paymentsvc.CreateInput{
			Amount:         data.Amount,
			FlightRef:      data.FlightID,
			UserRef:        data.UserID,
			PassengerCount: data.PassengerCount,
			SessionID:      data.SessionID,
			ReturnURL:      data.ReturnURL,
		}
	}

	result := svc.Create(c.Context(), input)
	if !result.Success {
		return common.ErrorResponseJSON(
			c,
			common.ErrorToStatusCode(result.Err),
			common.ErrorToTitle(result.Err),
			result.Err,
			cfg.Debug,
		)
	}

	return c.JSON(CreateResponse{
		Success:       true,
		TransactionID: result.TransactionID,
		PaymentURL:    result.PaymentURL,
		Token:         result.Token,
		Amount:        result.Amount,
		Currency:      result.Currency,
	})
}

func confirm(
	c *fiber.Ctx,
	svc *paymentsvc.Service,
	cfg *config.App,
	req *Request,
) error {
	if req.Token == "" {
		return common.ErrorResponseJSON(
			c,
			fiber.StatusBadRequest,
			"Invalid request",
			fiber.NewError(fiber.StatusBadRequest, "token is required for confirm"),
			cfg.Debug,
		)
	}

	result := svc.Confirm(c.Context(), req.Token)
	if !result.Success {
		return common.ErrorResponseJSON(
			c,
			common.ErrorToStatusCode(result.Err),
			common.ErrorToTitle(result.Err),
			result.Err,
			cfg.Debug,
		)
	}

	return c.JSON(ConfirmResponse{
		Success:           true,
		TransactionID:     result.TransactionID,
		Status:            string(result.Status),
		Amount:            result.Amount,
		AuthorizationCode: result.AuthCode,
		CardInfo: CardInfo{
			LastFour: result.CardInfo.LastFour,
			CardType: result.CardInfo.CardType,
		},
		TransactionDate: result.TransactionDate,
		Installments:    result.Installments,
	})
}
