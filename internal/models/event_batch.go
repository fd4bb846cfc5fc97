package models

import "time"

// EventBatch is the raw form of one ingestion request, kept in the archive
// for replay and audit.
type EventBatch struct {
	BatchID    string            `json:"batchId"`
	ReceivedAt time.Time         `json:"receivedAt"`
	Events     []*CandidateEvent `json:"events"`
}
