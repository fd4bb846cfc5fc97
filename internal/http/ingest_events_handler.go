package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"factory-monitoring/internal/ingestors"
	"factory-monitoring/internal/models"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type ingestEventsHandler struct {
	ingestionService ingestors.IngestionService
	maxBatchBytes    int64
}

func NewIngestEventsHandler(ingestionService ingestors.IngestionService, maxBatchBytes int64) AppHttpHandler {
	return &ingestEventsHandler{
		ingestionService: ingestionService,
		maxBatchBytes:    maxBatchBytes,
	}
}

// Handle processes POST /api/events/batch requests.
func (h *ingestEventsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	key := idempotencyKey(r)
	if err := validate.Var(key, idempotencyKeyRule); err != nil {
		return errRequestInvalid("invalid Idempotency-Key: at most 128 printable characters without slashes", err)
	}

	candidates, err := h.decodeBatch(w, r)
	if err != nil {
		return err
	}

	result, err := h.ingestionService.Ingest(r.Context(), key, candidates)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, result)
	return nil
}

func (h *ingestEventsHandler) decodeBatch(w http.ResponseWriter, r *http.Request) ([]*models.CandidateEvent, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, errRequestInvalid("empty request body", nil)
	}
	body := http.MaxBytesReader(w, r.Body, h.maxBatchBytes)

	var events []*eventRequest
	if err := json.NewDecoder(body).Decode(&events); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, errRequestInvalid(fmt.Sprintf("batch too large: must be <= %d bytes", h.maxBatchBytes), err)
		}
		return nil, errRequestInvalid("invalid json: expected an array of events", err)
	}

	candidates := make([]*models.CandidateEvent, 0, len(events))
	for i, e := range events {
		if e == nil {
			return nil, errRequestInvalid(fmt.Sprintf("item at index %d: event is null", i), nil)
		}
		if err := validate.Struct(e); err != nil {
			return nil, errRequestInvalid(validationMessage(fmt.Sprintf("item at index %d", i), err), err)
		}
		candidates = append(candidates, e.toCandidate())
	}
	return candidates, nil
}
