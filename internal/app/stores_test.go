package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"factory-monitoring/internal/models"
	"factory-monitoring/internal/shared/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventStore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  func(t *testing.T) configs.StoreConfig
	}{
		{
			name: "memory",
			cfg: func(t *testing.T) configs.StoreConfig {
				return configs.StoreConfig{Driver: configs.StoreDriverMemory}
			},
		},
		{
			name: "sqlite",
			cfg: func(t *testing.T) configs.StoreConfig {
				return configs.StoreConfig{Driver: configs.StoreDriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "events.db")}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store, err := newEventStore(context.Background(), tt.cfg(t))
			require.NoError(t, err)
			t.Cleanup(func() { _ = store.Close() })

			event := &models.Event{
				ID:         "E-1",
				OccurredAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
				ReceivedAt: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
				SubjectID:  "M-001",
				DurationMs: 1000,
			}
			require.NoError(t, store.InsertAll(context.Background(), []*models.Event{event}))

			found, err := store.FindByID(context.Background(), "E-1")
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, "M-001", found.SubjectID)
		})
	}
}

func TestNewEventStore_UnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := newEventStore(context.Background(), configs.StoreConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, `unknown store driver "oracle"`)
}

func TestNewBatchArchive(t *testing.T) {
	t.Parallel()

	archive, err := newBatchArchive(context.Background(), configs.ArchiveConfig{Driver: configs.ArchiveDriverNone})
	require.NoError(t, err)
	assert.Nil(t, archive)

	archive, err = newBatchArchive(context.Background(), configs.ArchiveConfig{Driver: configs.ArchiveDriverFile, RootDir: t.TempDir()})
	require.NoError(t, err)
	require.NotNil(t, archive)

	batch := &models.EventBatch{BatchID: "B-1", ReceivedAt: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC), Events: []*models.CandidateEvent{}}
	require.NoError(t, archive.Put(context.Background(), batch))
	got, err := archive.Get(context.Background(), "B-1")
	require.NoError(t, err)
	assert.Equal(t, "B-1", got.BatchID)

	_, err = newBatchArchive(context.Background(), configs.ArchiveConfig{Driver: configs.ArchiveDriverFile})
	assert.Error(t, err)
}
