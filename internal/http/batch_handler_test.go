package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"factory-monitoring/internal/models"
	"factory-monitoring/internal/shared/svcerrors"
	"factory-monitoring/internal/stores"
	storemocks "factory-monitoring/internal/stores/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func serveBatch(t *testing.T, handler AppHttpHandler, batchID string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	var handlerErr error
	router := chi.NewRouter()
	router.Get("/api/batches/{batchId}", func(w http.ResponseWriter, r *http.Request) {
		handlerErr = handler.Handle(w, r)
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/batches/"+batchID, nil))
	return rr, handlerErr
}

func TestGetBatchHandler_Handle_Found(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockArchive := storemocks.NewMockBatchArchiveStore(ctrl)
	mockArchive.EXPECT().
		Get(gomock.Any(), "B-1").
		Return(&models.EventBatch{
			BatchID:    "B-1",
			ReceivedAt: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
			Events:     []*models.CandidateEvent{},
		}, nil)

	rr, err := serveBatch(t, NewGetBatchHandler(mockArchive), "B-1")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"batchId":"B-1","receivedAt":"2026-01-15T12:00:00Z","events":[]}`, rr.Body.String())
}

func TestGetBatchHandler_Handle_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockArchive := storemocks.NewMockBatchArchiveStore(ctrl)
	mockArchive.EXPECT().
		Get(gomock.Any(), "B-404").
		Return(nil, stores.ErrEventBatchNotFound)

	_, err := serveBatch(t, NewGetBatchHandler(mockArchive), "B-404")

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "API_1001", svcErr.Code)
	assert.Equal(t, http.StatusNotFound, svcErr.HttpStatusCode)
}

func TestGetBatchHandler_Handle_NoArchiveConfigured(t *testing.T) {
	t.Parallel()

	_, err := serveBatch(t, NewGetBatchHandler(nil), "B-1")

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "API_1001", svcErr.Code)
}

func TestGetBatchHandler_Handle_ArchiveFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cause := errors.New("bucket unreachable")
	mockArchive := storemocks.NewMockBatchArchiveStore(ctrl)
	mockArchive.EXPECT().
		Get(gomock.Any(), "B-1").
		Return(nil, cause)

	_, err := serveBatch(t, NewGetBatchHandler(mockArchive), "B-1")

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "API_9000", svcErr.Code)
	assert.ErrorIs(t, err, cause)
}

func TestHealthHandler_Handle(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	err := NewHealthHandler().Handle(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"UP"}`, rr.Body.String())
}
