package payment

import "fmt"

// Gateway result sentinels. A confirmation is approved only when the
// gateway reports the authorized status together with response code 0;
// a failed status rejects the transaction; anything else leaves it
// pending (an intermediate state, not an error).
const (
	GatewayStatusAuthorized = "AUTHORIZED"
	GatewayStatusFailed     = "FAILED"
	GatewayResponseOK       = 0
)

// Classify maps a gateway confirmation outcome onto the transaction
// status machine.
func Classify(gatewayStatus string, responseCode int) Status {
	switch {
	case gatewayStatus == GatewayStatusAuthorized && responseCode == GatewayResponseOK:
		return StatusApproved
	case gatewayStatus == GatewayStatusFailed:
		return StatusRejected
	default:
		return StatusPending
	}
}

// paymentTypes maps the gateway's card brand / installment codes to the
// descriptions shown to travelers.
var paymentTypes = map[string]string{
	"VD": "Tarjeta de Débito",
	"VN": "Tarjeta de Crédito",
	"VC": "Tarjeta de Crédito",
	"SI": "Sin Interés",
	"S2": "2 cuotas sin interés",
	"S3": "3 cuotas sin interés",
	"N2": "2 cuotas con interés",
	"N3": "3 cuotas con interés",
	"N4": "4 cuotas con interés",
}

// PaymentTypeDescription translates a gateway payment type code. Codes
// outside the fixed table render as "Type <code>".
func PaymentTypeDescription(code string) string {
	if desc, ok := paymentTypes[code]; ok {
		return desc
	}
	return fmt.Sprintf("Type %s", code)
}
