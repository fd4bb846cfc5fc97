package aggregators

import (
	"math"

	"factory-monitoring/internal/models"
)

const DefaultHealthyThreshold = 2.0

// roundHalfUp rounds to two decimals, halves going toward positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// defectRate is defects per hour of window. Empty or inverted windows have a
// rate of zero.
func defectRate(defects int64, window models.TimeWindow) float64 {
	hours := window.Hours()
	if hours <= 0 {
		return 0
	}
	return roundHalfUp(float64(defects) / hours)
}

func defectsPercent(totalDefects, eventCount int64) float64 {
	if eventCount <= 0 {
		return 0
	}
	return roundHalfUp(float64(totalDefects) * 100 / float64(eventCount))
}

func healthStatus(rate, threshold float64) models.HealthStatus {
	if rate < threshold {
		return models.StatusHealthy
	}
	return models.StatusWarning
}
