package models

// Rejection reason codes.
const (
	ReasonInvalidDuration = "INVALID_DURATION"
	ReasonInvalidTime     = "INVALID_TIME"
	ReasonMalformed       = "MALFORMED"
)

type Rejection struct {
	EventID string `json:"eventId"`
	Reason  string `json:"reason"`
	Detail  string `json:"detail"`
}

// IngestResult reports how each candidate of a batch was classified.
// Accepted, Deduped, Updated and Rejected always sum to the batch length.
//
// StaleDropped is a subset of Deduped: candidates whose payload differed
// from the stored record but whose receipt did not come after it.
//
// Example JSON:
//
//	{
//	  "batchId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "accepted": 950,
//	  "deduped": 30,
//	  "updated": 15,
//	  "rejected": 5,
//	  "staleDropped": 2,
//	  "rejections": [
//	    {"eventId": "E-17", "reason": "INVALID_DURATION", "detail": "durationMs cannot be negative"}
//	  ]
//	}
type IngestResult struct {
	BatchID      string       `json:"batchId"`
	Accepted     int          `json:"accepted"`
	Deduped      int          `json:"deduped"`
	Updated      int          `json:"updated"`
	Rejected     int          `json:"rejected"`
	StaleDropped int          `json:"staleDropped"`
	Rejections   []*Rejection `json:"rejections"`
}

func NewIngestResult(batchID string) *IngestResult {
	return &IngestResult{BatchID: batchID, Rejections: make([]*Rejection, 0)}
}

func (r *IngestResult) Reject(eventID, reason, detail string) {
	r.Rejected++
	r.Rejections = append(r.Rejections, &Rejection{EventID: eventID, Reason: reason, Detail: detail})
}

func (r *IngestResult) Total() int {
	return r.Accepted + r.Deduped + r.Updated + r.Rejected
}
