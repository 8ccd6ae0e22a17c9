package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payout-gateway/config"
	httpHandler "payout-gateway/internal/adapter/http/handler"
	"payout-gateway/internal/adapter/notifier/redisnotifier"
	"payout-gateway/internal/adapter/provider/flutterwave"
	"payout-gateway/internal/adapter/provider/stripe"
	redisStorage "payout-gateway/internal/adapter/storage/redis"
	"payout-gateway/internal/core/ports"
	"payout-gateway/internal/service"
	"payout-gateway/pkg/logger"

	"github.com/shopspring/decimal"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Payout Gateway")

	ctx := context.Background()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize payment providers
	cardProvider := stripe.NewClient(cfg.Stripe, &http.Client{Timeout: cfg.Stripe.Timeout}, log)
	transferProvider := flutterwave.NewClient(cfg.Flutterwave, &http.Client{Timeout: cfg.Flutterwave.Timeout}, log)

	// Initialize notifier
	notifier := redisnotifier.New(rdb, cfg.Notifier.Channel)

	// Initialize business services
	withdrawalSvc := service.NewWithdrawalService(cardProvider, transferProvider, notifier, cfg.Withdrawal.Currency, log)

	demoBalance, err := decimal.NewFromString(cfg.Withdrawal.DemoBalance)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.Withdrawal.DemoBalance).Msg("Invalid demo balance")
	}
	balanceSvc := service.NewDemoBalanceService(demoBalance)

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WithdrawalSvc:  withdrawalSvc,
		BalanceSvc:     balanceSvc,
		Currency:       cfg.Withdrawal.Currency,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
