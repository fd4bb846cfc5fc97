package models

import "time"

type HealthStatus string

const (
	StatusHealthy HealthStatus = "Healthy"
	StatusWarning HealthStatus = "Warning"
)

// Stats summarizes one machine over a half-open window.
type Stats struct {
	SubjectID     string       `json:"machineId"`
	Start         time.Time    `json:"start"`
	End           time.Time    `json:"end"`
	EventsCount   int64        `json:"eventsCount"`
	DefectsCount  int64        `json:"defectsCount"`
	AvgDefectRate float64      `json:"avgDefectRate"`
	Status        HealthStatus `json:"status"`
}

// LineDefects is one grouped row read from the event store.
type LineDefects struct {
	LineID       string
	TotalDefects int64
	EventCount   int64
}

type LineStats struct {
	LineID         string  `json:"lineId"`
	TotalDefects   int64   `json:"totalDefects"`
	EventCount     int64   `json:"eventCount"`
	DefectsPercent float64 `json:"defectsPercent"`
}
