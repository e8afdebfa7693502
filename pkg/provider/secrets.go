package provider

// GatewayCredentials authenticate the merchant against the payment
// gateway.
type GatewayCredentials struct {
	CommerceCode string
	ApiKey       string
}

// SecretSource resolves gateway credentials for the running environment.
type SecretSource interface {
	GatewayCredentials() (*GatewayCredentials, error)
}
