package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"factory-monitoring/internal/models"
	"factory-monitoring/internal/shared/filestorages"
)

var (
	ErrEventBatchAlreadyExist = errors.New("event batch already exists")
	ErrEventBatchNotFound     = errors.New("event batch not found")
)

// BatchArchiveStore keeps the raw form of every ingestion request, keyed by
// batch id. Put is create-if-absent, so a redelivered batch with the same
// idempotency key leaves the first archived copy untouched.
//
// Example scenario:
//   - Request A and Request B both carry Idempotency-Key "batch-123"
//   - Request A's Put succeeds → raw batch archived
//   - Request B's Put fails with ErrEventBatchAlreadyExist → the archive keeps A's payload,
//     while B's events still go through per-event dedup
//
//go:generate mockgen -source=batch_archive_store.go -destination=./mocks/batch_archive_store_mock.go -package=mocks
type BatchArchiveStore interface {
	Put(ctx context.Context, batch *models.EventBatch) error
	Get(ctx context.Context, batchID string) (*models.EventBatch, error)
}

type batchArchiveStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewBatchArchiveStore(fileStorage filestorages.FileStorage) BatchArchiveStore {
	return &batchArchiveStore{fileStorage: fileStorage, dir: "raw-batches"}
}

func (s *batchArchiveStore) key(batchID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, batchID)
}

func (s *batchArchiveStore) Put(ctx context.Context, batch *models.EventBatch) error {
	jsonData, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to marshal event batch: %w", err)
	}

	_, err = s.fileStorage.Put(ctx, s.key(batch.BatchID), bytes.NewReader(jsonData), filestorages.PutOptions{
		AllowOverwrite: false,
		ContentType:    "application/json",
	})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrEventBatchAlreadyExist
		}
		return fmt.Errorf("failed to put event batch: %w", err)
	}
	return nil
}

func (s *batchArchiveStore) Get(ctx context.Context, batchID string) (*models.EventBatch, error) {
	rc, err := s.fileStorage.Get(ctx, s.key(batchID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrEventBatchNotFound
		}
		return nil, fmt.Errorf("failed to get event batch: %w", err)
	}
	defer rc.Close()

	var batch models.EventBatch
	if err := json.NewDecoder(rc).Decode(&batch); err != nil {
		return nil, fmt.Errorf("failed to decode event batch: %w", err)
	}
	return &batch, nil
}
