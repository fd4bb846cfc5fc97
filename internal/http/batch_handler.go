package http

import (
	"errors"
	"net/http"

	"factory-monitoring/internal/stores"

	"github.com/go-chi/chi/v5"
)

type getBatchHandler struct {
	batchArchive stores.BatchArchiveStore
}

// NewGetBatchHandler serves archived raw batches. batchArchive may be nil when
// archiving is disabled, in which case every lookup is a not-found.
func NewGetBatchHandler(batchArchive stores.BatchArchiveStore) AppHttpHandler {
	return &getBatchHandler{batchArchive: batchArchive}
}

// Handle processes GET /api/batches/{batchId} requests.
func (h *getBatchHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	batchID := chi.URLParam(r, "batchId")
	if err := validate.Var(batchID, "required,"+batchKeyRule); err != nil {
		return errRequestInvalid("invalid batch id", err)
	}
	if h.batchArchive == nil {
		return errBatchNotFound(batchID, nil)
	}

	batch, err := h.batchArchive.Get(r.Context(), batchID)
	if err != nil {
		if errors.Is(err, stores.ErrEventBatchNotFound) {
			return errBatchNotFound(batchID, err)
		}
		return errInternalBatchArchiveFailed(err)
	}

	writeJSON(w, http.StatusOK, batch)
	return nil
}
