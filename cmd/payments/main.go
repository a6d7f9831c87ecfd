package main

import (
	"context"
	"log"
	"time"

	"github.com/hatynka/storefront/internal/pkg/config"
	"github.com/hatynka/storefront/internal/pkg/database"
	"github.com/hatynka/storefront/internal/pkg/health"
	"github.com/hatynka/storefront/internal/pkg/liqpay"
	"github.com/hatynka/storefront/internal/pkg/logger"
	"github.com/hatynka/storefront/internal/pkg/middleware"
	"github.com/hatynka/storefront/internal/pkg/nats"
	nrpkg "github.com/hatynka/storefront/internal/pkg/newrelic"
	"github.com/hatynka/storefront/internal/pkg/server"
	"github.com/hatynka/storefront/migrations"
	"github.com/hatynka/storefront/services/payments/gateway"
	"github.com/hatynka/storefront/services/payments/handler"
	"github.com/hatynka/storefront/services/payments/repository"
	"github.com/hatynka/storefront/services/payments/usecase"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
)

func main() {
	appName := "payments-service"
	configPath := "config/payments.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	if configs.Database.AutoMigrate {
		applied, err := postgresClient.Migrate(context.Background(), migrations.FS)
		if err != nil {
			zapLogger.Fatal("Failed to apply migrations", logger.Err(err))
		}
		logger.Info("Migrations applied", logger.Int("files", len(applied)))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	logger.Info("NATS client initialized",
		logger.String("url", configs.NATS.URL),
		logger.Bool("connected", natsClient.IsConnected()))

	liqpayClient := liqpay.NewClient(configs.LiqPay)
	if !liqpayClient.Configured() {
		// initiation and callbacks answer with a configuration error until keys are set
		logger.Warn("LiqPay keys are not configured")
	}
	logger.Info("LiqPay client initialized",
		logger.Bool("sandbox", liqpayClient.Sandbox()),
		logger.String("checkout_url", liqpayClient.CheckoutURL()))

	// Initialize repository and lock
	paymentRepo := repository.NewPaymentRepository(configs, postgresClient.GetDB())
	orderLocker := repository.NewOrderLocker(redisClient, configs.Payments.OrderLockTTL)

	// Initialize gateway
	paymentGW := gateway.NewPaymentGW(natsClient)

	// Initialize usecase
	paymentUC := usecase.NewPaymentUC(configs, paymentRepo, orderLocker, paymentGW, liqpayClient)

	// Initialize handlers
	paymentHandler := handler.NewHandler(paymentUC, redisClient.GetClient(), configs)

	e := echo.New()
	e.HideBanner = true

	// Panic recovery first, then tracing so every request has a transaction
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	paymentHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	srv.OnShutdown(func(context.Context) error {
		zapLogger.Info("Closing NATS connection...")
		natsClient.Close()
		return nil
	})
	srv.OnShutdown(func(context.Context) error {
		zapLogger.Info("Closing Redis connection...")
		return redisClient.Close()
	})
	srv.OnShutdown(func(context.Context) error {
		zapLogger.Info("Closing PostgreSQL connection...")
		return postgresClient.Close()
	})
	if nrApp != nil {
		srv.OnShutdown(func(context.Context) error {
			zapLogger.Info("Shutting down New Relic...")
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
