// Package initializer builds the application dependency graph from
// loaded configuration.
package initializer

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vuelasur/booking/infra"
	infracache "github.com/vuelasur/booking/infra/cache"
	infranotifier "github.com/vuelasur/booking/infra/notifier"
	"github.com/vuelasur/booking/infra/provider/secrets"
	"github.com/vuelasur/booking/infra/provider/webpay"
	bookingrepo "github.com/vuelasur/booking/infra/repository/booking"
	flightrepo "github.com/vuelasur/booking/infra/repository/flight"
	transactionrepo "github.com/vuelasur/booking/infra/repository/transaction"
	"github.com/vuelasur/booking/pkg/app"
	"github.com/vuelasur/booking/pkg/config"
	"github.com/vuelasur/booking/pkg/provider"
)

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	// Initialize database
	db, err := infra.NewDBConnection(*cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	if err := infra.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	deps.Transactions = transactionrepo.New(db)
	deps.Bookings = bookingrepo.New(db)
	deps.Flights = flightrepo.New(db)

	// Initialize payment gateway with resolved credentials
	secretSource := secrets.New(*cfg.Webpay, cfg.Env, logger)
	credentials, err := secretSource.GatewayCredentials()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve gateway credentials: %w", err)
	}
	deps.Gateway = webpay.New(*cfg.Webpay, *credentials, logger)

	// Initialize flight cache
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		opt.PoolSize = cfg.Redis.PoolSize
		opt.DialTimeout = cfg.Redis.DialTimeout
		opt.ReadTimeout = cfg.Redis.ReadTimeout
		opt.WriteTimeout = cfg.Redis.WriteTimeout
		deps.Cache = infracache.NewRedisCacheWithOptions(
			opt,
			cfg.Redis.KeyPrefix,
			logger,
		)
	} else {
		logger.Warn("Redis URL not set; flight search caching disabled")
	}

	// Initialize booking notifier
	var notifier provider.Notifier
	if cfg.Kafka.Enabled {
		notifier = infranotifier.NewKafka(*cfg.Kafka, logger)
	} else {
		notifier = infranotifier.NewNoop(logger)
	}
	deps.Notifier = notifier

	return deps, nil
}
