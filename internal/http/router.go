package http

import (
	"net/http"

	"factory-monitoring/internal/aggregators"
	"factory-monitoring/internal/ingestors"
	"factory-monitoring/internal/shared/loggers"
	"factory-monitoring/internal/shared/metrics"
	"factory-monitoring/internal/stores"

	"github.com/go-chi/chi/v5"
)

type RouterOptions struct {
	MaxBatchBytes   int64
	DefaultTopLimit int
}

// NewRouter creates and configures the HTTP router. batchArchive may be nil.
func NewRouter(
	ingestionService ingestors.IngestionService,
	aggregationService aggregators.AggregationService,
	batchArchive stores.BatchArchiveStore,
	opts RouterOptions,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	ingestEventsHandler := NewIngestEventsHandler(ingestionService, opts.MaxBatchBytes)
	statsHandler := NewStatsHandler(aggregationService)
	topDefectLinesHandler := NewTopDefectLinesHandler(aggregationService, opts.DefaultTopLimit)
	getBatchHandler := NewGetBatchHandler(batchArchive)

	// Routes
	router.Route("/api", func(r chi.Router) {
		r.Post("/events/batch", errorHandlingAdapter(ingestEventsHandler))
		r.Get("/stats", errorHandlingAdapter(statsHandler))
		r.Get("/stats/top-defect-lines", errorHandlingAdapter(topDefectLinesHandler))
		r.Get("/batches/{batchId}", errorHandlingAdapter(getBatchHandler))
		r.Get("/health", errorHandlingAdapter(NewHealthHandler()))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
