package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	matchUseCase "github.com/parlayhq/wager-engine/internal/domain/usecase/match"
	settlementUseCase "github.com/parlayhq/wager-engine/internal/domain/usecase/settlement"
	userUseCase "github.com/parlayhq/wager-engine/internal/domain/usecase/user"
	wagerUseCase "github.com/parlayhq/wager-engine/internal/domain/usecase/wager"
	walletUseCase "github.com/parlayhq/wager-engine/internal/domain/usecase/wallet"

	cacheport "github.com/parlayhq/wager-engine/internal/domain/port/cache"
	coreport "github.com/parlayhq/wager-engine/internal/domain/port/core"
	eventport "github.com/parlayhq/wager-engine/internal/domain/port/events"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/api/handler"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/api/routes"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/cache"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/database"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/database/migration"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/events"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/logger"
	"github.com/parlayhq/wager-engine/internal/infrastructure/adapter/metrics"
	timeProvider "github.com/parlayhq/wager-engine/internal/infrastructure/adapter/time"
	"github.com/parlayhq/wager-engine/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay / time.Second),
	}
	if err := dbConfig.Validate(); err != nil {
		appLogger.Error("Invalid database configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	uow := dbManager.CreateUnitOfWork()

	// Match cache
	var matchCache cacheport.MatchCache
	if cfg.Redis.Enabled {
		redisClient, err := cache.ConnectRedis(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			appLogger.Error("Failed to connect to Redis", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer func() { _ = redisClient.Close() }()
		matchCache = cache.NewRedisMatchCache(redisClient, appLogger)
	} else {
		matchCache = cache.NewNoopMatchCache()
	}

	// Event publisher
	var publisher eventport.Publisher
	if cfg.Kafka.Enabled {
		writer := events.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		kafkaPublisher := events.NewKafkaPublisher(writer, appLogger)
		defer func() { _ = writer.Close() }()
		publisher = kafkaPublisher
	} else {
		publisher = events.NewNoopPublisher()
	}

	// Metrics
	var appMetrics coreport.Metrics
	var metricsServer *metrics.Server
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		appMetrics = metrics.NewPrometheusMetrics(registry)
		healthCheck := func(ctx context.Context) error {
			sqlDB, err := dbManager.DB().DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
		metricsServer = metrics.NewServer(cfg.Metrics.Addr, registry, healthCheck, appLogger)
		go metricsServer.Start()
	} else {
		appMetrics = metrics.NewNoopMetrics()
	}

	// Use cases
	wagerService := wagerUseCase.NewService(uow, tp, appLogger, appMetrics, publisher, wagerUseCase.Config{
		MinStakeCents: cfg.Wager.MinStakeCents,
		MaxStakeCents: cfg.Wager.MaxStakeCents,
		BettingCutoff: cfg.Wager.BettingCutoff,
		CancelCutoff:  cfg.Wager.CancelCutoff,
	})
	settlementService := settlementUseCase.NewService(uow, matchCache, tp, appLogger, appMetrics, publisher)
	matchService := matchUseCase.NewService(uow, matchCache, tp, appLogger, matchUseCase.Config{
		Retention: time.Duration(cfg.Wager.RetentionDays) * 24 * time.Hour,
		ActiveTTL: cfg.Wager.ActiveCacheTTL,
	})
	walletService := walletUseCase.NewService(uow, tp, appLogger, walletUseCase.Config{
		MinDepositCents:  cfg.Wager.MinDepositCents,
		MinWithdrawCents: cfg.Wager.MinWithdrawCents,
	})
	userService := userUseCase.NewService(uow, tp, appLogger, userUseCase.Config{
		InitialBalance: cfg.Wager.InitialBalance,
	})

	// Seed default accounts
	if err := migration.SeedDefaultUsers(context.Background(), userService); err != nil {
		appLogger.Error("Failed to seed default users", map[string]any{"error": err.Error()})
	}

	// API handlers
	betHandler := handler.NewBetHandler(wagerService, appLogger)
	matchHandler := handler.NewMatchHandler(matchService, settlementService, appLogger)
	walletHandler := handler.NewWalletHandler(walletService, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)

	// Router
	router := gin.New()
	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	routes.SetupMiddlewares(router, appLogger, limiter)
	routes.SetupRoutes(router, betHandler, matchHandler, walletHandler, userHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	if metricsServer != nil {
		if err := metricsServer.Shutdown(ctx); err != nil {
			appLogger.Error("Metrics server forced to shutdown", map[string]any{"error": err.Error()})
		}
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username")
	}
	if cfg.Database.Password == "" {
		missingConfigs = append(missingConfigs, "database.password")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missingConfigs, ", "))
	}

	return nil
}
