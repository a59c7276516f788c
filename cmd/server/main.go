package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/avalonpay/bankledger/internal/adapter/http"
	"github.com/avalonpay/bankledger/internal/adapter/http/handler"
	"github.com/avalonpay/bankledger/internal/adapter/http/middleware"
	"github.com/avalonpay/bankledger/internal/adapter/repository/memory"
	redisRepo "github.com/avalonpay/bankledger/internal/adapter/repository/redis"
	"github.com/avalonpay/bankledger/internal/infrastructure/config"
	"github.com/avalonpay/bankledger/internal/infrastructure/logger"
	"github.com/avalonpay/bankledger/internal/infrastructure/metrics"
	"github.com/avalonpay/bankledger/internal/infrastructure/redis"
	"github.com/avalonpay/bankledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to Redis when configured; idempotency caching is optional
	var idempotencyStore usecase.IdempotencyStore
	healthHandler := handler.NewHealthHandler(nil)

	if cfg.RedisURL != "" {
		redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		appLogger.Info().Msg("connected to redis")

		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		healthHandler = handler.NewHealthHandler(redisClient)
	}

	// Initialize the in-memory ledger and generators
	store := memory.NewLedgerStore()
	numberGen := memory.NewAccountNumberGenerator()
	idGen := memory.NewULIDGenerator()

	// Initialize use cases
	accountUC := usecase.NewAccountUseCase(store, numberGen)
	transactionUC := usecase.NewTransactionUseCase(store, idGen)
	ledgerUC := usecase.NewLedgerUseCase(store)

	// Initialize handlers
	m := metrics.New()
	accountHandler := handler.NewAccountHandler(accountUC, m)
	transactionHandler := handler.NewTransactionHandler(transactionUC, m)
	ledgerHandler := handler.NewLedgerHandler(ledgerUC)

	// Optional per-IP rate limiting
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimitPerSecond > 0 {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

		// Drop idle per-IP limiters so the map does not grow unbounded.
		go func() {
			ticker := time.NewTicker(time.Hour)
			defer ticker.Stop()
			for range ticker.C {
				rateLimiter.Reset()
			}
		}()
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:     accountHandler,
		TransactionHandler: transactionHandler,
		LedgerHandler:      ledgerHandler,
		HealthHandler:      healthHandler,
		Logger:             appLogger,
		IdempotencyStore:   idempotencyStore,
		RateLimiter:        rateLimiter,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
