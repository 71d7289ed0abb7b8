package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
)

/*
Service address: RUN_ADDRESS or -a.
Database DSN: DATABASE_URI or -d.
Issuing API base URL: ISSUER_API_URL or -i.
Webhook verification key file: WEBHOOK_KEY_PATH or -k.
Everything else comes from the environment only.
*/

type ServerConfig struct {
	RunAddress       string `env:"RUN_ADDRESS"`
	DatabaseDSN      string `env:"DATABASE_URI"`
	IssuerURL        string `env:"ISSUER_API_URL"`
	IssuerUsername   string `env:"ISSUER_USERNAME"`
	IssuerPassword   string `env:"ISSUER_PASSWORD"`
	IssuerMerchantID string `env:"ISSUER_MERCHANT_ID"`
	IssuerTerminalID string `env:"ISSUER_TERMINAL_ID"`
	IssuerCashierID  string `env:"ISSUER_CASHIER_ID" envDefault:"001"`

	WebhookKeyPath   string `env:"WEBHOOK_KEY_PATH"`
	WebhookAlgorithm string `env:"WEBHOOK_ALGORITHM" envDefault:"HS256"`
	FrontendURL      string `env:"FRONTEND_URL" envDefault:"*"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	StatusPollInterval       time.Duration `env:"STATUS_POLL_INTERVAL" envDefault:"0s"`
	ReconcileProtectTerminal bool          `env:"RECONCILE_PROTECT_TERMINAL" envDefault:"false"`
}

func NewConfig(args []string) (*ServerConfig, error) {
	var params ServerConfig
	err := env.Parse(&params)
	if err != nil {
		return nil, err
	}

	var commandLineParams ServerConfig

	flags := flag.NewFlagSet("giftbroker", flag.ContinueOnError)
	flags.StringVar(&commandLineParams.RunAddress, "a", "localhost:3000", "Base address to listen on")
	flags.StringVar(&commandLineParams.DatabaseDSN, "d", "postgres://postgres@localhost:5432/giftcards?sslmode=disable", "Database DSN")
	flags.StringVar(&commandLineParams.IssuerURL, "i", "https://api.wsrg.example/api", "Issuing API base URL")
	flags.StringVar(&commandLineParams.WebhookKeyPath, "k", "DH-TS_pk.pem", "Webhook verification key file")
	err = flags.Parse(args)
	if err != nil {
		return nil, err
	}

	if params.RunAddress == "" {
		params.RunAddress = commandLineParams.RunAddress
	}
	if params.DatabaseDSN == "" {
		params.DatabaseDSN = commandLineParams.DatabaseDSN
	}
	if params.IssuerURL == "" {
		params.IssuerURL = commandLineParams.IssuerURL
	}
	if params.WebhookKeyPath == "" {
		params.WebhookKeyPath = commandLineParams.WebhookKeyPath
	}

	return &params, nil
}
