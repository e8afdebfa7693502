// Package app wires the service layer from its dependencies.
package app

import (
	"log/slog"

	"github.com/vuelasur/booking/pkg/config"
	"github.com/vuelasur/booking/pkg/provider"
	paymentprovider "github.com/vuelasur/booking/pkg/provider/payment"
	bookingrepo "github.com/vuelasur/booking/pkg/repository/booking"
	flightrepo "github.com/vuelasur/booking/pkg/repository/flight"
	transactionrepo "github.com/vuelasur/booking/pkg/repository/transaction"
	bookingsvc "github.com/vuelasur/booking/pkg/service/booking"
	flightsvc "github.com/vuelasur/booking/pkg/service/flight"
	paymentsvc "github.com/vuelasur/booking/pkg/service/payment"
)

// Deps contains the externally constructed dependencies the services
// are built from. Every handle is passed in explicitly; nothing is
// resolved from package globals.
type Deps struct {
	Transactions transactionrepo.Repository
	Bookings     bookingrepo.Repository
	Flights      flightrepo.Repository
	Gateway      paymentprovider.Gateway
	Notifier     provider.Notifier
	Cache        provider.Cache
	Logger       *slog.Logger
}

// App holds the assembled services.
type App struct {
	Deps           *Deps
	Config         *config.App
	PaymentService *paymentsvc.Service
	BookingService *bookingsvc.Service
	FlightService  *flightsvc.Service
}

// New assembles the application from its dependencies.
func New(deps *Deps, cfg *config.App) *App {
	bookingService := bookingsvc.New(
		deps.Transactions,
		deps.Bookings,
		deps.Notifier,
		deps.Logger,
	)
	paymentService := paymentsvc.New(
		deps.Gateway,
		deps.Transactions,
		bookingService,
		paymentsvc.Config{
			OrderRefPrefix:   cfg.OrderRefPrefix,
			DefaultReturnURL: cfg.Webpay.ReturnUrl,
		},
		deps.Logger,
	)
	flightService := flightsvc.New(
		deps.Flights,
		deps.Cache,
		cfg.Redis.CacheTTL,
		deps.Logger,
	)

	return &App{
		Deps:           deps,
		Config:         cfg,
		PaymentService: paymentService,
		BookingService: bookingService,
		FlightService:  flightService,
	}
}
