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
	"time"

	"bakery/cmd"
	httpadapter "bakery/internal/adapters/in/http"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/metrics"
	"bakery/internal/telemetry"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.opentelemetry.io/otel"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := telemetry.NewLogger(os.Stdout, telemetry.ParseLevel(configs.LogLevel))
	slog.SetDefault(logger)

	tel, err := telemetry.Initialize(ctx, configs.Telemetry())
	if err != nil {
		log.Fatalf("Error initializing telemetry: %v", err)
	}

	m, err := metrics.NewMetrics(otel.GetMeterProvider().Meter(configs.ServiceName))
	if err != nil {
		log.Fatalf("Error creating metrics: %v", err)
	}

	if err = postgres.Migrate(configs.DSN(), configs.MigrationsPath); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	locker, closeLocker, err := cmd.NewOrderLocker(ctx, configs)
	if err != nil {
		log.Fatalf("Error creating order locker: %v", err)
	}
	publisher, closePublisher := cmd.NewStateChangePublisher(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, locker, publisher, logger, m)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	e, err := newWebServer(app)
	if err != nil {
		log.Fatalf("Error creating web server: %v", err)
	}

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", startErr)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	jobManager.StopAll()

	if err = closePublisher(); err != nil {
		logger.Error("Closing publisher failed", "error", err)
	}
	if err = closeLocker(); err != nil {
		logger.Error("Closing locker failed", "error", err)
	}
	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
	if err = tel.Shutdown(shutdownCtx); err != nil {
		logger.Error("Telemetry shutdown failed", "error", err)
	}
}

func newWebServer(app cmd.CompositionRoot) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	if err := httpadapter.Register(e, app.CreateServer()); err != nil {
		return nil, err
	}

	return e, nil
}
