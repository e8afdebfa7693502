// Package payment defines the contract with the external card-payment
// gateway. The gateway owns no local state; every call is one outbound
// request with a fixed timeout and no retries.
package payment

import (
	"context"
)

// Gateway is the card-payment authorization service.
//
// Implementations signal domain.ErrGatewayUnavailable on network or
// timeout failures and domain.ErrGatewayProtocol on a non-success HTTP
// status or a payload missing expected fields.
type Gateway interface {
	// Create opens a gateway-side transaction and returns the token and
	// redirect URL the traveler completes payment at.
	Create(ctx context.Context, req *CreateRequest) (*CreateResponse, error)

	// Confirm commits a gateway-side transaction previously created with
	// Create and returns its outcome.
	Confirm(ctx context.Context, token string) (*ConfirmResponse, error)
}
