package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kasozi/talentpay/internal/pkg/config"
	"github.com/kasozi/talentpay/internal/pkg/database"
	"github.com/kasozi/talentpay/internal/pkg/health"
	"github.com/kasozi/talentpay/internal/pkg/logger"
	"github.com/kasozi/talentpay/internal/pkg/middleware"
	natspkg "github.com/kasozi/talentpay/internal/pkg/nats"
	nrpkg "github.com/kasozi/talentpay/internal/pkg/newrelic"
	"github.com/kasozi/talentpay/internal/pkg/server"
	"github.com/kasozi/talentpay/services/payments/gateway"
	"github.com/kasozi/talentpay/services/payments/handler"
	httpHandler "github.com/kasozi/talentpay/services/payments/handler/http"
	"github.com/kasozi/talentpay/services/payments/repository"
	"github.com/kasozi/talentpay/services/payments/usecase"
)

func main() {
	appName := "payments-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/payments.env")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and the application logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	transactionRepo := repository.NewTransactionRepo(postgresClient.GetDB())
	mirrorRepo := repository.NewMirrorRepo(redisClient)

	// Initialize gateways
	providerGW := gateway.NewIoTecClient(configs.IoTec)
	notificationGW := gateway.NewNotificationClient(natsClient)

	// Side-effect queue decouples notification and mirror writes from the
	// request path
	sideEffects := usecase.NewSideEffectQueue(mirrorRepo, notificationGW, zapLogger)
	defer sideEffects.Close()

	// Initialize use case
	paymentUC := usecase.NewPaymentUC(configs, transactionRepo, mirrorRepo, providerGW, sideEffects)

	// Initialize handlers
	paymentHandler := httpHandler.NewPaymentHandler(paymentUC)
	Handler := handler.NewHandler(paymentHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	Handler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", zap.Error(err))
	}
}
