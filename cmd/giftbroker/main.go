package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/wellywell/giftbroker/internal/auth"
	"github.com/wellywell/giftbroker/internal/compress"
	"github.com/wellywell/giftbroker/internal/config"
	"github.com/wellywell/giftbroker/internal/db"
	"github.com/wellywell/giftbroker/internal/handlers"
	"github.com/wellywell/giftbroker/internal/issuer"
	"github.com/wellywell/giftbroker/internal/metrics"
	"github.com/wellywell/giftbroker/internal/order"
	"github.com/wellywell/giftbroker/internal/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	conf, err := config.NewConfig(os.Args[1:])
	if err != nil {
		logger.Fatal(err)
	}

	if err := setupLogger(conf.LogLevel, conf.LogFormat); err != nil {
		logger.Fatal(err)
	}

	key, err := auth.LoadKey(conf.WebhookKeyPath, conf.WebhookAlgorithm)
	if err != nil {
		logger.Fatalf("Could not load webhook key: %s", err.Error())
	}
	logger.Infof("Webhook tokens verified with %s", key.Algorithm())

	database, err := db.NewDatabase(conf.DatabaseDSN)
	if err != nil {
		logger.Fatalf("Could not connect to database: %s", err.Error())
	}
	defer database.Close()

	collectors := metrics.New()

	client := issuer.NewClient(conf.IssuerURL, issuer.Credentials{
		Username:   conf.IssuerUsername,
		Password:   conf.IssuerPassword,
		MerchantID: conf.IssuerMerchantID,
		TerminalID: conf.IssuerTerminalID,
		CashierID:  conf.IssuerCashierID,
	}, collectors)

	opts := []order.Option{order.WithRecorder(collectors)}
	if conf.ReconcileProtectTerminal {
		logger.Info("Completed orders with cards are protected from older statuses")
		opts = append(opts, order.WithGuard(order.TerminalGuard{}))
	}
	reconciler := order.NewReconciler(database, opts...)
	service := order.NewService(client, database, reconciler)

	handlerSet := handlers.NewHandlerSet(auth.NewVerifier(key), reconciler, service, client, database, collectors)
	r := router.NewRouter(conf, handlerSet, collectors.Handler(),
		&router.RequestLogger{Observer: collectors}, compress.RequestUngzipper{})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if conf.StatusPollInterval > 0 {
		logger.Infof("Polling in-progress orders every %s", conf.StatusPollInterval)
		order.StartPoller(ctx, conf.StatusPollInterval, database, client, reconciler)
	}

	go func() {
		logger.Infof("Gift card broker listening on %s", conf.RunAddress)
		if err := r.ListenAndServe(); err != nil {
			logger.Errorf("Server stopped: %s", err.Error())
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := r.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Graceful shutdown failed: %s", err.Error())
	}
}

func setupLogger(level string, format string) error {
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)
	if format == "json" {
		logger.SetFormatter(&logger.JSONFormatter{})
	} else {
		logger.SetFormatter(&logger.TextFormatter{FullTimestamp: true})
	}
	return nil
}
