package stores

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"factory-monitoring/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contractBase = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

func contractEvent(id, machineID string, occurredAt time.Time, defects int, lineID, factoryID string) *models.Event {
	return &models.Event{
		ID:          id,
		OccurredAt:  occurredAt,
		ReceivedAt:  contractBase.Add(3 * time.Hour),
		SubjectID:   machineID,
		DurationMs:  1000,
		DefectCount: defects,
		LineID:      models.SomeString(lineID),
		FactoryID:   models.SomeString(factoryID),
	}
}

func sortedLines(rows []models.LineDefects) []models.LineDefects {
	sort.Slice(rows, func(i, j int) bool { return rows[i].LineID < rows[j].LineID })
	return rows
}

// runEventStoreContract checks the behaviour every engine must share.
func runEventStoreContract(t *testing.T, newStore func(t *testing.T) EventStore) {
	t.Run("insert then find", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		e1 := contractEvent("E-1", "M-001", contractBase.Add(10*time.Minute), 5, "L1", "F1")
		e2 := contractEvent("E-2", "M-001", contractBase.Add(20*time.Minute), -1, "", "")
		require.NoError(t, store.InsertAll(ctx, []*models.Event{e1, e2}))

		got, err := store.FindByID(ctx, "E-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, e1.SamePayload(got))
		assert.True(t, e1.ReceivedAt.Equal(got.ReceivedAt))

		missing, err := store.FindByID(ctx, "E-404")
		require.NoError(t, err)
		assert.Nil(t, missing)

		found, err := store.FindByIDs(ctx, []string{"E-1", "E-2", "E-404"})
		require.NoError(t, err)
		assert.Len(t, found, 2)
		assert.False(t, found["E-2"].LineID.Valid)
		assert.False(t, found["E-2"].FactoryID.Valid)
		assert.Equal(t, models.DefectCountUnknown, found["E-2"].DefectCount)
	})

	t.Run("duplicate insert conflicts atomically", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.InsertAll(ctx, []*models.Event{
			contractEvent("E-1", "M-001", contractBase, 1, "L1", "F1"),
		}))

		err := store.InsertAll(ctx, []*models.Event{
			contractEvent("E-2", "M-001", contractBase, 1, "L1", "F1"),
			contractEvent("E-1", "M-001", contractBase, 9, "L1", "F1"),
		})
		assert.ErrorIs(t, err, ErrEventConflict)

		found, err := store.FindByIDs(ctx, []string{"E-1", "E-2"})
		require.NoError(t, err)
		assert.Len(t, found, 1)
		assert.Equal(t, 1, found["E-1"].DefectCount)
	})

	t.Run("update requires newer receipt", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		original := contractEvent("E-1", "M-001", contractBase, 1, "L1", "F1")
		require.NoError(t, store.InsertAll(ctx, []*models.Event{original}))

		same := original.Clone()
		same.DefectCount = 7
		assert.ErrorIs(t, store.UpdateAll(ctx, []*models.Event{same}), ErrEventConflict)

		older := original.Clone()
		older.DefectCount = 7
		older.ReceivedAt = original.ReceivedAt.Add(-time.Second)
		assert.ErrorIs(t, store.UpdateAll(ctx, []*models.Event{older}), ErrEventConflict)

		got, err := store.FindByID(ctx, "E-1")
		require.NoError(t, err)
		assert.Equal(t, 1, got.DefectCount)

		newer := original.Clone()
		newer.DefectCount = 7
		newer.DurationMs = 2500
		newer.LineID = models.NoString()
		newer.ReceivedAt = original.ReceivedAt.Add(time.Second)
		require.NoError(t, store.UpdateAll(ctx, []*models.Event{newer}))

		got, err = store.FindByID(ctx, "E-1")
		require.NoError(t, err)
		assert.True(t, newer.SamePayload(got))
		assert.True(t, newer.ReceivedAt.Equal(got.ReceivedAt))
	})

	t.Run("update of unknown id conflicts", func(t *testing.T) {
		store := newStore(t)
		err := store.UpdateAll(context.Background(), []*models.Event{
			contractEvent("E-404", "M-001", contractBase, 1, "L1", "F1"),
		})
		assert.ErrorIs(t, err, ErrEventConflict)
	})

	t.Run("half-open window with sentinel", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		start := contractBase
		end := contractBase.Add(2 * time.Hour)
		require.NoError(t, store.InsertAll(ctx, []*models.Event{
			contractEvent("at-start", "M-001", start, 5, "L1", "F1"),
			contractEvent("inside", "M-001", start.Add(20*time.Minute), -1, "L1", "F1"),
			contractEvent("last-micro", "M-001", end.Add(-time.Microsecond), 3, "L1", "F1"),
			contractEvent("at-end", "M-001", end, 100, "L1", "F1"),
			contractEvent("before", "M-001", start.Add(-time.Microsecond), 100, "L1", "F1"),
			contractEvent("other-machine", "M-002", start.Add(time.Minute), 100, "L1", "F1"),
		}))

		window := models.NewTimeWindow(start, end)
		count, err := store.CountInRange(ctx, "M-001", window)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		sum, err := store.SumDefectsInRange(ctx, "M-001", window)
		require.NoError(t, err)
		assert.Equal(t, int64(8), sum)

		count, err = store.CountInRange(ctx, "M-404", window)
		require.NoError(t, err)
		assert.Zero(t, count)

		sum, err = store.SumDefectsInRange(ctx, "M-404", window)
		require.NoError(t, err)
		assert.Zero(t, sum)
	})

	t.Run("sub-microsecond bounds", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		require.NoError(t, store.InsertAll(ctx, []*models.Event{
			contractEvent("on-boundary", "M-001", contractBase, 2, "L1", "F1"),
		}))

		fromInside := models.NewTimeWindow(contractBase.Add(500*time.Nanosecond), contractBase.Add(time.Hour))
		count, err := store.CountInRange(ctx, "M-001", fromInside)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		endingInside := models.NewTimeWindow(contractBase.Add(-time.Hour), contractBase.Add(500*time.Nanosecond))
		count, err = store.CountInRange(ctx, "M-001", endingInside)
		require.NoError(t, err)
		assert.Zero(t, count)

		lines, err := store.GroupDefectsByLine(ctx, "F1", fromInside)
		require.NoError(t, err)
		assert.Equal(t, []models.LineDefects{{LineID: "L1", TotalDefects: 2, EventCount: 1}}, lines)
	})

	t.Run("group defects by line", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		in := contractBase.Add(30 * time.Minute)
		require.NoError(t, store.InsertAll(ctx, []*models.Event{
			contractEvent("a1", "M-1", in, 4, "L1", "F1"),
			contractEvent("a2", "M-2", in, -1, "L1", "F1"),
			contractEvent("b1", "M-3", in, 2, "L2", "F1"),
			contractEvent("no-line", "M-4", in, 50, "", "F1"),
			contractEvent("other-factory", "M-5", in, 50, "L1", "F2"),
			contractEvent("no-factory", "M-6", in, 50, "L1", ""),
			contractEvent("out-of-window", "M-7", contractBase.Add(5*time.Hour), 50, "L1", "F1"),
		}))

		rows, err := store.GroupDefectsByLine(ctx, "F1", models.NewTimeWindow(contractBase, contractBase.Add(time.Hour)))
		require.NoError(t, err)
		assert.Equal(t, []models.LineDefects{
			{LineID: "L1", TotalDefects: 4, EventCount: 2},
			{LineID: "L2", TotalDefects: 2, EventCount: 1},
		}, sortedLines(rows))

		rows, err = store.GroupDefectsByLine(ctx, "F-404", models.NewTimeWindow(contractBase, contractBase.Add(time.Hour)))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("transaction rolls back on error", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		boom := errors.New("boom")

		err := store.WithinTx(ctx, func(tx EventTx) error {
			if err := tx.InsertAll(ctx, []*models.Event{contractEvent("E-1", "M-001", contractBase, 1, "L1", "F1")}); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := store.FindByID(ctx, "E-1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("transaction sees its own writes", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		err := store.WithinTx(ctx, func(tx EventTx) error {
			if err := tx.InsertAll(ctx, []*models.Event{contractEvent("E-1", "M-001", contractBase, 1, "L1", "F1")}); err != nil {
				return err
			}
			found, err := tx.FindByIDs(ctx, []string{"E-1"})
			if err != nil {
				return err
			}
			assert.Len(t, found, 1)

			count, err := tx.CountInRange(ctx, "M-001", models.NewTimeWindow(contractBase, contractBase.Add(time.Hour)))
			if err != nil {
				return err
			}
			assert.Equal(t, int64(1), count)
			return nil
		})
		require.NoError(t, err)

		got, err := store.FindByID(ctx, "E-1")
		require.NoError(t, err)
		assert.NotNil(t, got)
	})
}
