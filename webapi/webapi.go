// Package webapi provides the HTTP surface of the booking backend.
// It is organized into sub-packages per endpoint:
// - payment: the Webpay create/confirm action endpoint
// - flight: the flight search, popular-routes and price-trends endpoint
package webapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"github.com/vuelasur/booking/pkg/app"
	"github.com/vuelasur/booking/webapi/common"
	flightweb "github.com/vuelasur/booking/webapi/flight"
	paymentweb "github.com/vuelasur/booking/webapi/payment"
)

// SetupApp initializes Fiber with the middleware stack and routes.
func SetupApp(app *app.App) *fiber.App {
	cfg := app.Config

	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
				return common.ErrorResponseJSON(
					c, fiberErr.Code, fiberErr.Message, err, cfg.Debug)
			}
			return common.ErrorResponseJSON(
				c, fiber.StatusInternalServerError, "Internal server error",
				err, cfg.Debug)
		},
	})

	// The checkout frontend is served from a separate origin.
	fiberApp.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Rate limiting keyed by X-Forwarded-For when behind a proxy,
	// falling back to X-Real-IP and then the direct IP.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				// Take the first IP in the chain
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(
				c,
				fiber.StatusTooManyRequests,
				"Too many requests",
				errors.New("rate limit exceeded"),
				cfg.Debug,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get(
		"/",
		func(c *fiber.Ctx) error {
			return c.SendString("VuelaSur booking API is running! ✈️")
		},
	)

	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	paymentweb.Routes(fiberApp, app.PaymentService, cfg)
	flightweb.Routes(fiberApp, app.FlightService, cfg)
	return fiberApp
}
