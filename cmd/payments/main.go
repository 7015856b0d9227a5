package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arnac-io/chatpay/internal/config"
	"github.com/arnac-io/chatpay/pkg/actor"
	"github.com/arnac-io/chatpay/pkg/app"
	"github.com/arnac-io/chatpay/pkg/dispatcher"
	"github.com/arnac-io/chatpay/pkg/files"
	"github.com/arnac-io/chatpay/pkg/payments"
	"github.com/arnac-io/chatpay/pkg/sentry"
	"github.com/arnac-io/chatpay/pkg/updates"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := app.Logger(cfg.App.LogLevel)

	if err := sentry.Init(cfg.App.SentryDSN); err != nil {
		log.Fatal("sentry init", zap.Error(err))
	}
	defer sentry.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := dispatcher.New(cfg.Backend.URL,
		dispatcher.WithLogger(log),
		dispatcher.WithToken(cfg.Backend.Token),
		dispatcher.WithTimeout(cfg.Backend.Timeout),
		dispatcher.WithRetry(cfg.Backend.RetryAttempts, dispatcher.DefaultRetryDelay),
		dispatcher.WithRateLimit(cfg.Backend.RateLimit))
	session := actor.New(log)
	r := &responder{
		ctx:       ctx,
		logger:    log,
		lang:      cfg.App.Language,
		countries: cfg.Payments.ShippingCountries,
		options:   cfg.Payments.ShippingOptions,
	}
	h := payments.NewHandler(d, session, files.NewManager(cfg.Payments.FilesCacheSize, log),
		payments.WithLogger(log),
		payments.WithLanguage(cfg.App.Language),
		payments.WithUpdateHandler(r),
		payments.WithPaymentForms(cfg.Payments.PaymentFormsCacheSize, cfg.Payments.PaymentFormTTL))
	r.answerer = h

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		session.Run(ctx)
		return nil
	})
	g.Go(func() error {
		return app.ServeMetrics(ctx, cfg.App.MetricsPort, log)
	})
	g.Go(func() error {
		return updates.NewListener(cfg.Backend.UpdatesURL, cfg.Backend.Token, h, log).Run(ctx)
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err := multierr.Combine(err, d.Close()); err != nil {
		log.Error("payments responder stopped", zap.Error(err))
		os.Exit(1)
	}
}
