// Command webpay_smoketest creates one transaction against the Webpay
// integration environment and prints the redirect URL. With a token
// argument it confirms the transaction instead, so a full
// create-pay-confirm cycle can be walked by hand.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/vuelasur/booking/infra/provider/secrets"
	"github.com/vuelasur/booking/infra/provider/webpay"
	"github.com/vuelasur/booking/pkg/config"
	"github.com/vuelasur/booking/pkg/domain"
	paymentprovider "github.com/vuelasur/booking/pkg/provider/payment"
)

func main() {
	if err := run(); err != nil {
		color.Red("smoketest failed: %v", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Webpay{
		BaseUrl:      envOr("WEBPAY_BASE_URL", "https://webpay3gint.transbank.cl"),
		CommerceCode: os.Getenv("WEBPAY_COMMERCE_CODE"),
		ReturnUrl:    envOr("WEBPAY_RETURN_URL", "http://localhost:3000/payments/return"),
		HTTPTimeout:  30 * time.Second,
	}

	// A commerce code given without an API key means the key should be
	// prompted for instead of read from the environment.
	if cfg.CommerceCode != "" {
		cfg.ApiKey = os.Getenv("WEBPAY_API_KEY")
		if cfg.ApiKey == "" {
			fmt.Fprint(os.Stderr, "Webpay API key: ")
			raw, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return fmt.Errorf("read API key: %w", err)
			}
			cfg.ApiKey = strings.TrimSpace(string(raw))
		}
	}

	credentials, err := secrets.New(cfg, "integration", logger).GatewayCredentials()
	if err != nil {
		return err
	}
	client := webpay.New(cfg, *credentials, logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if len(os.Args) > 1 {
		return confirm(ctx, client, os.Args[1])
	}
	return create(ctx, client)
}

func create(ctx context.Context, client *webpay.Client) error {
	amount, err := strconv.ParseInt(envOr("WEBPAY_AMOUNT", "11900"), 10, 64)
	if err != nil {
		return fmt.Errorf("parse WEBPAY_AMOUNT: %w", err)
	}

	created, err := client.Create(ctx, &paymentprovider.CreateRequest{
		BuyOrder:  domain.NewReference("VS", time.Now()),
		SessionID: domain.NewSessionID(),
		Amount:    amount,
		ReturnURL: envOr("WEBPAY_RETURN_URL", "http://localhost:3000/payments/return"),
	})
	if err != nil {
		return err
	}

	color.Green("transaction created")
	fmt.Printf("token: %s\n", created.Token)
	fmt.Printf("pay at: %s?token_ws=%s\n", created.URL, created.Token)
	color.Cyan("rerun with the token as argument after paying to confirm")
	return nil
}

func confirm(ctx context.Context, client *webpay.Client, token string) error {
	confirmed, err := client.Confirm(ctx, token)
	if err != nil {
		return err
	}

	if confirmed.Status == "AUTHORIZED" && confirmed.ResponseCode == 0 {
		color.Green("payment approved")
	} else {
		color.Yellow("payment not approved")
	}
	fmt.Printf("buy order: %s\n", confirmed.BuyOrder)
	fmt.Printf("status: %s response_code: %d\n", confirmed.Status, confirmed.ResponseCode)
	fmt.Printf("authorization: %s card: %s\n",
		confirmed.AuthorizationCode, confirmed.CardDetail.CardNumber)
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
