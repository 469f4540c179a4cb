package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/streetcab/dispatch/internal/pkg/config"
	"github.com/streetcab/dispatch/internal/pkg/database"
	"github.com/streetcab/dispatch/internal/pkg/health"
	"github.com/streetcab/dispatch/internal/pkg/logger"
	natspkg "github.com/streetcab/dispatch/internal/pkg/nats"
	"github.com/streetcab/dispatch/internal/pkg/scheduler"
	"github.com/streetcab/dispatch/internal/pkg/server"
	wspkg "github.com/streetcab/dispatch/internal/pkg/websocket"
	"github.com/streetcab/dispatch/services/dispatch/gateway"
	"github.com/streetcab/dispatch/services/dispatch/handler"
	"github.com/streetcab/dispatch/services/dispatch/repository"
	"github.com/streetcab/dispatch/services/dispatch/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repositories
	geoRepo := repository.NewGeoRepository(redisClient)
	presenceRepo := repository.NewPresenceRepository(redisClient, time.Duration(configs.Dispatch.SocketBindingTTLSec)*time.Second)
	claimRepo := repository.NewClaimRepository(redisClient, time.Duration(configs.Dispatch.ClaimTTLSec)*time.Second)
	orderRepo := repository.NewOrderRepository(postgresClient.GetDB())
	licenseRepo := repository.NewLicenseRepository(postgresClient.GetDB())

	// Initialize gateway
	dispatchGW := gateway.NewDispatchGW(natsClient)

	// Initialize WebSocket manager
	wsManager := wspkg.NewManager(configs.JWT)

	// Initialize usecases
	dispatchUC := usecase.NewDispatchUC(configs, geoRepo, presenceRepo, claimRepo, orderRepo, licenseRepo, dispatchGW)
	sweeperUC := usecase.NewSweeperUC(configs, dispatchUC, geoRepo, presenceRepo, orderRepo, wsManager, dispatchGW)

	// Initialize handlers
	h := handler.NewHandler(dispatchUC, dispatchUC, dispatchUC, natsClient, wsManager)

	// Initialize NATS consumers
	if err := h.InitNATSConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Register periodic sweeps
	sched := scheduler.New(30 * time.Second)
	sched.Register(scheduler.Task{
		Name:     "expire-pending-orders",
		Interval: time.Duration(configs.Dispatch.OrderSweepSec) * time.Second,
		Run:      sweeperUC.ExpirePendingOrders,
	})
	sched.Register(scheduler.Task{
		Name:     "reconcile-sockets",
		Interval: time.Duration(configs.Dispatch.SocketSweepSec) * time.Second,
		Run:      sweeperUC.ReconcileSockets,
	})
	sched.Register(scheduler.Task{
		Name:     "purge-stale-positions",
		Interval: time.Duration(configs.Dispatch.StaleSweepSec) * time.Second,
		Run:      sweeperUC.PurgeStalePositions,
	})
	sched.Start()

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	// Register component cleanup
	shutdownMgr := server.NewShutdownManager()
	shutdownMgr.Register(func(ctx context.Context) error {
		sched.Stop()
		return nil
	})

	// Start server and block until shutdown
	srv := server.NewGracefulServer(e, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		logger.Error("Server exited with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownMgr.Shutdown(shutdownCtx); err != nil {
		logger.Error("Component shutdown finished with errors", logger.Err(err))
	}
}
