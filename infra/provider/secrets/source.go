// Package secrets resolves merchant credentials for the payment
// gateway from configuration.
package secrets

import (
	"errors"
	"log/slog"

	"github.com/vuelasur/booking/pkg/config"
	"github.com/vuelasur/booking/pkg/provider"
)

// Published Webpay Plus test commerce, valid only against the
// integration endpoint.
const (
	integrationEnv          = "integration"
	integrationCommerceCode = "597055555532"
	integrationApiKey       = "579B532A7440BB0C9079DED94D31EA1615BACEB56610332264630D42D0A36B1C"
)

// ErrMissingCredentials is returned when no gateway credentials are
// configured outside the integration environment.
var ErrMissingCredentials = errors.New("gateway credentials are not configured")

// EnvSource resolves gateway credentials from the loaded configuration.
// In the integration environment, missing credentials fall back to the
// published Webpay test commerce.
type EnvSource struct {
	cfg    config.Webpay
	appEnv string
	logger *slog.Logger
}

// New creates an EnvSource for the given environment.
func New(cfg config.Webpay, appEnv string, logger *slog.Logger) *EnvSource {
	return &EnvSource{cfg: cfg, appEnv: appEnv, logger: logger}
}

var _ provider.SecretSource = (*EnvSource)(nil)

// GatewayCredentials implements provider.SecretSource.
func (s *EnvSource) GatewayCredentials() (*provider.GatewayCredentials, error) {
	if s.cfg.CommerceCode != "" && s.cfg.ApiKey != "" {
		return &provider.GatewayCredentials{
			CommerceCode: s.cfg.CommerceCode,
			ApiKey:       s.cfg.ApiKey,
		}, nil
	}
	if s.appEnv == integrationEnv {
		s.logger.Warn("Using fallback Webpay integration credentials")
		return &provider.GatewayCredentials{
			CommerceCode: integrationCommerceCode,
			ApiKey:       integrationApiKey,
		}, nil
	}
	return nil, ErrMissingCredentials
}
