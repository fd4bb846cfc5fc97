package ingestors

import (
	"context"
	"errors"
	"strings"
	"time"

	"factory-monitoring/internal/models"
	"factory-monitoring/internal/shared/clocks"
	"factory-monitoring/internal/shared/loggers"
	"factory-monitoring/internal/shared/metrics"
	"factory-monitoring/internal/shared/svcerrors"
	"factory-monitoring/internal/shared/ulid"
	"factory-monitoring/internal/stores"
)

const DefaultMaxConflictRetries = 3

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// Ingest classifies every candidate as accepted, deduped, updated or
	// rejected and commits the writes of the whole batch at once. batchID may
	// be empty, in which case one is generated.
	Ingest(ctx context.Context, batchID string, candidates []*models.CandidateEvent) (*models.IngestResult, error)
}

type IngestionOptions struct {
	MaxDurationMs      int64
	FutureTolerance    time.Duration
	BatchTimeout       time.Duration
	MaxConflictRetries int
}

type ingestionService struct {
	eventStore   stores.EventStore
	batchArchive stores.BatchArchiveStore
	clock        clocks.Clock
	validator    *eventValidator

	batchTimeout time.Duration
	maxRetries   int
}

// NewIngestionService builds the ingestion engine. batchArchive may be nil
// when raw batches are not kept.
func NewIngestionService(eventStore stores.EventStore, batchArchive stores.BatchArchiveStore, clock clocks.Clock, opts IngestionOptions) IngestionService {
	maxRetries := opts.MaxConflictRetries
	if maxRetries < 0 {
		maxRetries = DefaultMaxConflictRetries
	}
	return &ingestionService{
		eventStore:   eventStore,
		batchArchive: batchArchive,
		clock:        clock,
		validator:    newEventValidator(opts.MaxDurationMs, opts.FutureTolerance),
		batchTimeout: opts.BatchTimeout,
		maxRetries:   maxRetries,
	}
}

func (s *ingestionService) Ingest(ctx context.Context, batchID string, candidates []*models.CandidateEvent) (*models.IngestResult, error) {
	result, err := s.ingest(ctx, batchID, candidates)
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			metricBatchIngestedTotal.WithLabelValues(svcErr.Code).Inc()
		}
		return nil, err
	}

	recordOutcomes(result)
	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return result, nil
}

func (s *ingestionService) ingest(ctx context.Context, batchID string, candidates []*models.CandidateEvent) (*models.IngestResult, error) {
	if len(candidates) == 0 {
		return nil, errValidationFailed("events cannot be empty", nil)
	}

	if s.batchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.batchTimeout)
		defer cancel()
	}

	// One receipt instant per batch. Store engines keep microseconds, so the
	// comparison against a stored receipt must happen at that precision too.
	now := s.clock.Now().UTC().Truncate(time.Microsecond)

	batchID = strings.TrimSpace(batchID)
	if batchID == "" {
		batchID = ulid.NewULIDAt(now)
	}

	logger := loggers.Ctx(ctx).With().Str(loggers.FieldBatchID, batchID).Logger()
	logger.Debug().Int(loggers.FieldBatchSize, len(candidates)).Msg("started ingesting batch")

	if err := s.archive(ctx, batchID, now, candidates); err != nil {
		return nil, err
	}

	result := models.NewIngestResult(batchID)
	valid := make([]*models.Event, 0, len(candidates))
	repeats := make(map[string]int, len(candidates))
	for _, c := range candidates {
		if rejection := s.validator.validate(c, now); rejection != nil {
			result.Reject(rejection.EventID, rejection.Reason, rejection.Detail)
			continue
		}
		// The first occurrence of an id is received at now. Only repeats of the
		// same id step forward, so they resolve in batch order.
		k := repeats[c.ID]
		repeats[c.ID] = k + 1
		valid = append(valid, c.ToEvent(now.Add(time.Duration(k)*time.Microsecond)))
	}

	if len(valid) > 0 {
		resolution, err := s.writeWithRetry(ctx, &logger, valid)
		if err != nil {
			return nil, err
		}
		result.Accepted = resolution.accepted
		result.Deduped = resolution.deduped
		result.Updated = resolution.updated
		result.StaleDropped = resolution.staleDropped
	}

	logger.Debug().
		Int("accepted", result.Accepted).
		Int("deduped", result.Deduped).
		Int("updated", result.Updated).
		Int("rejected", result.Rejected).
		Msg("finished ingesting batch")
	return result, nil
}

func (s *ingestionService) archive(ctx context.Context, batchID string, now time.Time, candidates []*models.CandidateEvent) error {
	if s.batchArchive == nil {
		return nil
	}
	err := s.batchArchive.Put(ctx, &models.EventBatch{BatchID: batchID, ReceivedAt: now, Events: candidates})
	switch {
	case err == nil, errors.Is(err, stores.ErrEventBatchAlreadyExist):
		return nil
	case isDeadline(ctx, err):
		return errBatchDeadlineExceeded(err)
	default:
		return errInternalBatchArchiveFailed(err)
	}
}

// writeWithRetry runs lookup, resolution and both bulk writes as one
// transaction. A conflict means a concurrent batch committed one of our ids
// first; the next attempt re-reads and resolves against that winner with the
// same receipt instant.
func (s *ingestionService) writeWithRetry(ctx context.Context, logger *loggers.Logger, events []*models.Event) (*batchResolution, error) {
	ids := uniqueIDs(events)

	for attempt := 0; ; attempt++ {
		var resolution *batchResolution
		err := s.eventStore.WithinTx(ctx, func(tx stores.EventTx) error {
			existing, err := tx.FindByIDs(ctx, ids)
			if err != nil {
				return err
			}
			resolution = resolveBatch(events, existing)

			if len(resolution.inserts) > 0 {
				if err := tx.InsertAll(ctx, resolution.inserts); err != nil {
					return err
				}
			}
			if len(resolution.updates) > 0 {
				if err := tx.UpdateAll(ctx, resolution.updates); err != nil {
					return err
				}
			}
			return nil
		})

		switch {
		case err == nil:
			return resolution, nil
		case isDeadline(ctx, err):
			return nil, errBatchDeadlineExceeded(err)
		case !errors.Is(err, stores.ErrEventConflict):
			return nil, errInternalEventStoreFailed(err)
		case attempt >= s.maxRetries:
			return nil, errInternalConflictRetriesExhausted(err)
		}

		metricConflictRetriesTotal.WithLabelValues().Inc()
		logger.Warn().Err(err).Int(loggers.FieldAttempt, attempt+1).Msg("event write conflict, retrying batch")
	}
}

// isDeadline reports whether the batch ran out of time or its caller went away.
func isDeadline(ctx context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		ctx.Err() != nil
}
