package payment

// CreateRequest holds the parameters for Gateway.Create.
// Amount is a whole number of pesos; the gateway rejects fractions.
type CreateRequest struct {
	BuyOrder  string
	SessionID string
	Amount    int64
	ReturnURL string
}

// CreateResponse is the gateway's answer to Create.
type CreateResponse struct {
	Token string
	URL   string
}

// CardDetail carries the masked card number reported on confirmation.
type CardDetail struct {
	CardNumber string `json:"card_number"`
}

// ConfirmResponse is the gateway's answer to Confirm. Fields mirror the
// gateway's wire format; classification into the transaction status
// machine is the orchestrator's job.
type ConfirmResponse struct {
	VCI               string     `json:"vci"`
	Amount            int64      `json:"amount"`
	Status            string     `json:"status"`
	BuyOrder          string     `json:"buy_order"`
	SessionID         string     `json:"session_id"`
	CardDetail        CardDetail `json:"card_detail"`
	AccountingDate    string     `json:"accounting_date"`
	TransactionDate   string     `json:"transaction_date"`
	AuthorizationCode string     `json:"authorization_code"`
	PaymentTypeCode   string     `json:"payment_type_code"`
	ResponseCode      int        `json:"response_code"`
	InstallmentsNum   int        `json:"installments_number"`
}
