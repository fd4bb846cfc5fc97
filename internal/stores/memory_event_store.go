package stores

import (
	"context"
	"fmt"
	"sync"

	"factory-monitoring/internal/models"
)

type memoryEventStore struct {
	mu     sync.RWMutex
	events map[string]*models.Event
}

// NewMemoryEventStore keeps events in process memory. Transactions stage their
// writes and apply them under one lock at commit, re-checking uniqueness and
// receipt order against whatever committed in between.
func NewMemoryEventStore() EventStore {
	return &memoryEventStore{events: make(map[string]*models.Event)}
}

func (s *memoryEventStore) FindByID(ctx context.Context, id string) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, ok := s.events[id]; ok {
		return e.Clone(), nil
	}
	return nil, nil
}

func (s *memoryEventStore) FindByIDs(ctx context.Context, ids []string) (map[string]*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[string]*models.Event, len(ids))
	for _, id := range ids {
		if e, ok := s.events[id]; ok {
			found[id] = e.Clone()
		}
	}
	return found, nil
}

func (s *memoryEventStore) CountInRange(ctx context.Context, subjectID string, window models.TimeWindow) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return countInRange(s.events, nil, subjectID, window), nil
}

func (s *memoryEventStore) SumDefectsInRange(ctx context.Context, subjectID string, window models.TimeWindow) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sumDefectsInRange(s.events, nil, subjectID, window), nil
}

func (s *memoryEventStore) GroupDefectsByLine(ctx context.Context, factoryID string, window models.TimeWindow) ([]models.LineDefects, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return groupDefectsByLine(s.events, nil, factoryID, window), nil
}

func (s *memoryEventStore) InsertAll(ctx context.Context, events []*models.Event) error {
	return s.WithinTx(ctx, func(tx EventTx) error { return tx.InsertAll(ctx, events) })
}

func (s *memoryEventStore) UpdateAll(ctx context.Context, events []*models.Event) error {
	return s.WithinTx(ctx, func(tx EventTx) error { return tx.UpdateAll(ctx, events) })
}

func (s *memoryEventStore) WithinTx(ctx context.Context, fn func(tx EventTx) error) error {
	tx := &memoryEventTx{
		store:   s,
		inserts: make(map[string]*models.Event),
		updates: make(map[string]*models.Event),
	}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.commit(tx)
}

func (s *memoryEventStore) commit(tx *memoryEventTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range tx.inserts {
		if _, exists := s.events[id]; exists {
			return fmt.Errorf("%w: event %q already exists", ErrEventConflict, id)
		}
	}
	for id, e := range tx.updates {
		stored, exists := s.events[id]
		if !exists || !stored.ReceivedAt.Before(e.ReceivedAt) {
			return fmt.Errorf("%w: event %q has a newer receipt", ErrEventConflict, id)
		}
	}

	for id, e := range tx.inserts {
		s.events[id] = e
	}
	for id, e := range tx.updates {
		s.events[id] = e
	}
	return nil
}

func (s *memoryEventStore) Close() error {
	return nil
}

// memoryEventTx overlays staged writes on the committed map. Reads take the
// store's read lock; staged maps are only touched by the goroutine running fn.
type memoryEventTx struct {
	store   *memoryEventStore
	inserts map[string]*models.Event
	updates map[string]*models.Event
}

func (tx *memoryEventTx) staged(id string) (*models.Event, bool) {
	if e, ok := tx.updates[id]; ok {
		return e, true
	}
	e, ok := tx.inserts[id]
	return e, ok
}

func (tx *memoryEventTx) overlay() map[string]*models.Event {
	if len(tx.inserts) == 0 && len(tx.updates) == 0 {
		return nil
	}
	merged := make(map[string]*models.Event, len(tx.inserts)+len(tx.updates))
	for id, e := range tx.inserts {
		merged[id] = e
	}
	for id, e := range tx.updates {
		merged[id] = e
	}
	return merged
}

func (tx *memoryEventTx) FindByID(ctx context.Context, id string) (*models.Event, error) {
	if e, ok := tx.staged(id); ok {
		return e.Clone(), nil
	}
	return tx.store.FindByID(ctx, id)
}

func (tx *memoryEventTx) FindByIDs(ctx context.Context, ids []string) (map[string]*models.Event, error) {
	found, err := tx.store.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if e, ok := tx.staged(id); ok {
			found[id] = e.Clone()
		}
	}
	return found, nil
}

func (tx *memoryEventTx) CountInRange(ctx context.Context, subjectID string, window models.TimeWindow) (int64, error) {
	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()
	return countInRange(tx.store.events, tx.overlay(), subjectID, window), nil
}

func (tx *memoryEventTx) SumDefectsInRange(ctx context.Context, subjectID string, window models.TimeWindow) (int64, error) {
	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()
	return sumDefectsInRange(tx.store.events, tx.overlay(), subjectID, window), nil
}

func (tx *memoryEventTx) GroupDefectsByLine(ctx context.Context, factoryID string, window models.TimeWindow) ([]models.LineDefects, error) {
	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()
	return groupDefectsByLine(tx.store.events, tx.overlay(), factoryID, window), nil
}

func (tx *memoryEventTx) InsertAll(ctx context.Context, events []*models.Event) error {
	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()

	seen := make(map[string]struct{}, len(events))
	for _, e := range events {
		_, committed := tx.store.events[e.ID]
		_, staged := tx.staged(e.ID)
		_, repeated := seen[e.ID]
		if committed || staged || repeated {
			return fmt.Errorf("%w: event %q already exists", ErrEventConflict, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	for _, e := range events {
		tx.inserts[e.ID] = e.Clone()
	}
	return nil
}

func (tx *memoryEventTx) UpdateAll(ctx context.Context, events []*models.Event) error {
	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()

	for _, e := range events {
		current, ok := tx.staged(e.ID)
		if !ok {
			current, ok = tx.store.events[e.ID]
		}
		if !ok || !current.ReceivedAt.Before(e.ReceivedAt) {
			return fmt.Errorf("%w: event %q has a newer receipt", ErrEventConflict, e.ID)
		}
	}
	for _, e := range events {
		if _, pending := tx.inserts[e.ID]; pending {
			tx.inserts[e.ID] = e.Clone()
			continue
		}
		tx.updates[e.ID] = e.Clone()
	}
	return nil
}

// forEachVisible walks committed events with staged versions taking precedence.
func forEachVisible(committed, staged map[string]*models.Event, fn func(e *models.Event)) {
	for id, e := range committed {
		if s, ok := staged[id]; ok {
			e = s
		}
		fn(e)
	}
	for id, e := range staged {
		if _, ok := committed[id]; !ok {
			fn(e)
		}
	}
}

func countInRange(committed, staged map[string]*models.Event, subjectID string, window models.TimeWindow) int64 {
	var count int64
	forEachVisible(committed, staged, func(e *models.Event) {
		if e.SubjectID == subjectID && window.Contains(e.OccurredAt) {
			count++
		}
	})
	return count
}

func sumDefectsInRange(committed, staged map[string]*models.Event, subjectID string, window models.TimeWindow) int64 {
	var sum int64
	forEachVisible(committed, staged, func(e *models.Event) {
		if e.SubjectID == subjectID && window.Contains(e.OccurredAt) && e.DefectCount >= 0 {
			sum += int64(e.DefectCount)
		}
	})
	return sum
}

func groupDefectsByLine(committed, staged map[string]*models.Event, factoryID string, window models.TimeWindow) []models.LineDefects {
	byLine := make(map[string]*models.LineDefects)
	order := make([]string, 0)
	forEachVisible(committed, staged, func(e *models.Event) {
		if !e.FactoryID.Valid || e.FactoryID.Value != factoryID || !e.LineID.Valid || !window.Contains(e.OccurredAt) {
			return
		}
		group, ok := byLine[e.LineID.Value]
		if !ok {
			group = &models.LineDefects{LineID: e.LineID.Value}
			byLine[e.LineID.Value] = group
			order = append(order, e.LineID.Value)
		}
		group.EventCount++
		if e.DefectCount >= 0 {
			group.TotalDefects += int64(e.DefectCount)
		}
	})

	rows := make([]models.LineDefects, 0, len(order))
	for _, lineID := range order {
		rows = append(rows, *byLine[lineID])
	}
	return rows
}
