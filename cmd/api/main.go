package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ridenaija/ridenaija/internal/pkg/config"
	"github.com/ridenaija/ridenaija/internal/pkg/database"
	"github.com/ridenaija/ridenaija/internal/pkg/health"
	"github.com/ridenaija/ridenaija/internal/pkg/logger"
	"github.com/ridenaija/ridenaija/internal/pkg/middleware"
	"github.com/ridenaija/ridenaija/internal/pkg/nats"
	nrpkg "github.com/ridenaija/ridenaija/internal/pkg/newrelic"
	"github.com/ridenaija/ridenaija/internal/pkg/server"
	bookingsgateway "github.com/ridenaija/ridenaija/services/bookings/gateway"
	bookingshandler "github.com/ridenaija/ridenaija/services/bookings/handler"
	bookingshttp "github.com/ridenaija/ridenaija/services/bookings/handler/http"
	bookingsnats "github.com/ridenaija/ridenaija/services/bookings/handler/nats"
	bookingsrepo "github.com/ridenaija/ridenaija/services/bookings/repository"
	bookingsusecase "github.com/ridenaija/ridenaija/services/bookings/usecase"
	tripshandler "github.com/ridenaija/ridenaija/services/trips/handler"
	tripshttp "github.com/ridenaija/ridenaija/services/trips/handler/http"
	tripsrepo "github.com/ridenaija/ridenaija/services/trips/repository"
	tripsusecase "github.com/ridenaija/ridenaija/services/trips/usecase"
	usershandler "github.com/ridenaija/ridenaija/services/users/handler"
	usershttp "github.com/ridenaija/ridenaija/services/users/handler/http"
	usersrepo "github.com/ridenaija/ridenaija/services/users/repository"
	usersusecase "github.com/ridenaija/ridenaija/services/users/usecase"
)

func main() {
	appName := "ridenaija-api"
	configPath := "config/api.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	if !natsClient.IsConnected() {
		zapLogger.Fatal("NATS client not connected")
	}

	db := postgresClient.GetDB()

	// Initialize repositories
	userRepo := usersrepo.NewUserRepo(configs, db)
	tripRepo := tripsrepo.NewTripRepo(configs, db)
	bookingRepo := bookingsrepo.NewBookingRepo(configs, db)

	// Initialize gateway
	bookingGW := bookingsgateway.NewBookingGW(natsClient)

	// Initialize usecases
	userUC := usersusecase.NewUserUC(userRepo, configs)
	tripUC := tripsusecase.NewTripUC(tripRepo, configs)
	bookingUC := bookingsusecase.NewBookingUC(bookingRepo, bookingGW, configs, zapLogger)

	// Initialize handlers
	authHandler := usershttp.NewAuthHandler(userUC)
	userHandler := usershttp.NewUserHandler(userUC)
	tripHandler := tripshttp.NewTripHandler(tripUC)
	bookingHandler := bookingshttp.NewBookingHandler(bookingUC)
	natsHandler := bookingsnats.NewNatsHandler(bookingUC, natsClient)

	usersHandler := usershandler.NewHandler(authHandler, userHandler, configs)
	tripsHandler := tripshandler.NewHandler(tripHandler, configs)
	bookingsHandler := bookingshandler.NewHandler(bookingHandler, natsHandler, configs)
	defer bookingsHandler.Close()

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	usersHandler.RegisterRoutes(e)
	tripsHandler.RegisterRoutes(e)
	if err := bookingsHandler.RegisterRoutes(e, redisClient.GetClient()); err != nil {
		zapLogger.Fatal("Failed to register booking routes", logger.Err(err))
	}

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger,
		configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	if err := srv.Start(); err != nil {
		zapLogger.Error("Server exited with error", logger.Err(err))
	}

	if nrApp != nil {
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
