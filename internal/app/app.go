package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"factory-monitoring/internal/aggregators"
	internalhttp "factory-monitoring/internal/http"
	"factory-monitoring/internal/ingestors"
	"factory-monitoring/internal/shared/clocks"
	"factory-monitoring/internal/shared/configs"
	"factory-monitoring/internal/shared/loggers"
	"factory-monitoring/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config     *configs.Config
	appLogger  loggers.Logger
	server     *http.Server
	eventStore stores.EventStore
}

// New creates and initializes a new App instance.
func New(ctx context.Context, config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "factory-monitoring").
		Logger()

	// Initialize event store
	eventStore, err := newEventStore(ctx, config.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event store: %w", err)
	}

	// Initialize raw batch archive
	batchArchive, err := newBatchArchive(ctx, config.Archive)
	if err != nil {
		_ = eventStore.Close()
		return nil, fmt.Errorf("failed to initialize batch archive: %w", err)
	}

	// Initialize services
	ingestionService := ingestors.NewIngestionService(eventStore, batchArchive, clocks.NewSystemClock(), ingestors.IngestionOptions{
		MaxDurationMs:      config.Ingestion.MaxDurationMs,
		FutureTolerance:    config.Ingestion.FutureTolerance,
		BatchTimeout:       config.Ingestion.BatchTimeout,
		MaxConflictRetries: config.Store.MaxConflictRetries,
	})
	aggregationService := aggregators.NewAggregationService(eventStore, aggregators.AggregationOptions{
		HealthyThreshold: config.Aggregation.HealthyThreshold,
	})

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, aggregationService, batchArchive, internalhttp.RouterOptions{
		MaxBatchBytes:   config.Ingestion.MaxBatchBytes,
		DefaultTopLimit: config.Aggregation.DefaultTopLimit,
	}, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:     config,
		appLogger:  appLogger,
		server:     server,
		eventStore: eventStore,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting factory-monitoring service on port %d (log_level=%s, store=%s, archive=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Store.Driver,
			app.config.Archive.Driver)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Stop accepting requests and drain in-flight batches
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Release the event store
	if err := app.eventStore.Close(); err != nil {
		return fmt.Errorf("event store close failed: %w", err)
	}
	app.appLogger.Info().Msg("Event store closed")

	return nil
}
