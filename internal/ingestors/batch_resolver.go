package ingestors

import (
	"factory-monitoring/internal/models"
)

type pendingWrite int

const (
	writeNone pendingWrite = iota
	writeInsert
	writeUpdate
)

type resolvedEvent struct {
	event *models.Event
	write pendingWrite
}

// batchResolution is the outcome of one resolve pass: the rows to write and the
// per-candidate counts. It is rebuilt from scratch on every retry.
type batchResolution struct {
	inserts []*models.Event
	updates []*models.Event

	accepted     int
	deduped      int
	updated      int
	staleDropped int
}

// resolveBatch applies last-write-wins by receipt to every valid event, in
// batch order. existing holds the stored records for the batch's ids. An id
// seen twice in one batch is resolved against its earlier occurrence, and the
// later one wins only if its payload differs.
func resolveBatch(events []*models.Event, existing map[string]*models.Event) *batchResolution {
	res := &batchResolution{}
	state := make(map[string]*resolvedEvent, len(events))
	order := make([]string, 0, len(events))

	for _, e := range events {
		current, seen := state[e.ID]
		if !seen {
			if stored, ok := existing[e.ID]; ok {
				current = &resolvedEvent{event: stored, write: writeNone}
				state[e.ID] = current
				order = append(order, e.ID)
			}
		}

		switch {
		case current == nil:
			state[e.ID] = &resolvedEvent{event: e, write: writeInsert}
			order = append(order, e.ID)
			res.accepted++
		case current.event.SamePayload(e):
			res.deduped++
		case e.ReceivedAt.After(current.event.ReceivedAt):
			current.event = e
			if current.write == writeNone {
				current.write = writeUpdate
			}
			res.updated++
		default:
			res.deduped++
			res.staleDropped++
		}
	}

	for _, id := range order {
		switch r := state[id]; r.write {
		case writeInsert:
			res.inserts = append(res.inserts, r.event)
		case writeUpdate:
			res.updates = append(res.updates, r.event)
		}
	}
	return res
}

func uniqueIDs(events []*models.Event) []string {
	seen := make(map[string]struct{}, len(events))
	ids := make([]string, 0, len(events))
	for _, e := range events {
		if _, ok := seen[e.ID]; ok {
			continue
		}
		seen[e.ID] = struct{}{}
		ids = append(ids, e.ID)
	}
	return ids
}
