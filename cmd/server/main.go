package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"

	_ "github.com/vuelasur/booking/docs"
	"github.com/vuelasur/booking/infra/initializer"
	"github.com/vuelasur/booking/pkg/app"
	"github.com/vuelasur/booking/pkg/config"
	"github.com/vuelasur/booking/webapi"
)

// @title VuelaSur Booking API
// @version 1.0.0
// @description Flight search and Webpay payment API for the VuelaSur booking platform
// @contact.name Plataforma VuelaSur
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	app := app.New(deps, cfg)
	fiberApp := webapi.SetupApp(app)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	slog.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)

	return fiberApp.Listen(addr)
}
