package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/time/rate"

	"storefront/internal/adapter/gateway"
	httpadapter "storefront/internal/adapter/http"
	"storefront/internal/adapter/postgres"
	"storefront/internal/adapter/usecase"
	"storefront/internal/adapter/worker"
	"storefront/internal/config"
	"storefront/internal/db"
)

// main is the entry point of the storefront reconciliation service. It
// loads configuration, optionally runs database migrations and seeds demo
// data, wires repositories, the gateway client and use cases, then starts
// the HTTP server and the campaign sync worker. On receiving a termination
// signal it gracefully shuts both down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	if cfg.Gateway.ServerKey == "" {
		logger.Warn("GATEWAY_SERVER_KEY is empty, every payment notification will be rejected")
	}
	if cfg.IsProduction() && cfg.Cron.Secret == "" {
		logger.Warn("CRON_SECRET is empty, the sync endpoint will reject every request")
	}

	if cfg.Psql.RunMigrations {
		version, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied", slog.Uint64("version", uint64(version)))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	campaigns := usecase.NewCampaignUseCase(postgres.NewCampaignRepository(pool), logger)
	payments := usecase.NewPaymentUseCase(
		postgres.NewOrderRepository(pool),
		postgres.NewNotificationRepository(pool),
		gateway.NewClient(cfg.Gateway),
		usecase.PaymentOptions{
			ServerKey:          cfg.Gateway.ServerKey,
			RequireFraudAccept: cfg.Gateway.RequireFraudAccept,
		},
		logger,
	)

	var limiter *rate.Limiter
	if cfg.Webhook.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Webhook.RateLimit), cfg.Webhook.Burst)
	}
	handler := httpadapter.NewHandler(campaigns, payments, httpadapter.Options{
		CronSecret:      cfg.Cron.Secret,
		RequireCronAuth: cfg.IsProduction(),
		WebhookLimiter:  limiter,
	}, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	if cfg.Cron.SyncInterval > 0 {
		go worker.NewCampaignSync(campaigns, cfg.Cron.SyncInterval, logger).Run(ctx)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		cancel()
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
