package aggregators

import (
	"math"
	"testing"
	"time"

	"factory-monitoring/internal/models"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestDefectRate(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		defects int64
		window  models.TimeWindow
		want    float64
	}{
		{name: "two hour window", defects: 8, window: models.NewTimeWindow(start, start.Add(2*time.Hour)), want: 4},
		{name: "rounds down", defects: 1, window: models.NewTimeWindow(start, start.Add(3*time.Hour)), want: 0.33},
		{name: "rounds up", defects: 2, window: models.NewTimeWindow(start, start.Add(3*time.Hour)), want: 0.67},
		{name: "exact half goes up", defects: 1, window: models.NewTimeWindow(start, start.Add(8*time.Hour)), want: 0.13},
		{name: "partial hour", defects: 3, window: models.NewTimeWindow(start, start.Add(90*time.Minute)), want: 2},
		{name: "no defects", defects: 0, window: models.NewTimeWindow(start, start.Add(time.Hour)), want: 0},
		{name: "empty window", defects: 5, window: models.NewTimeWindow(start, start), want: 0},
		{name: "inverted window", defects: 5, window: models.NewTimeWindow(start, start.Add(-time.Hour)), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, defectRate(tt.defects, tt.window))
		})
	}
}

func TestDefectsPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total, count int64
		want         float64
	}{
		{total: 1, count: 3, want: 33.33},
		{total: 2, count: 3, want: 66.67},
		{total: 1, count: 8, want: 12.5},
		{total: 9, count: 3, want: 300},
		{total: 0, count: 4, want: 0},
		{total: 5, count: 0, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, defectsPercent(tt.total, tt.count), "defectsPercent(%d, %d)", tt.total, tt.count)
	}
}

func TestHealthStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, models.StatusHealthy, healthStatus(0, DefaultHealthyThreshold))
	assert.Equal(t, models.StatusHealthy, healthStatus(1.99, DefaultHealthyThreshold))
	assert.Equal(t, models.StatusWarning, healthStatus(2.0, DefaultHealthyThreshold))
	assert.Equal(t, models.StatusWarning, healthStatus(7.5, DefaultHealthyThreshold))
}

func TestProperty_RoundHalfUp(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("values already in hundredths are unchanged", prop.ForAll(
		func(cents int64) bool {
			v := float64(cents) / 100
			return roundHalfUp(v) == v
		},
		gen.Int64Range(0, 10_000_000),
	))

	properties.Property("result is within half a hundredth", prop.ForAll(
		func(v float64) bool {
			return math.Abs(roundHalfUp(v)-v) <= 0.005+1e-6
		},
		gen.Float64Range(0, 1e6),
	))

	properties.Property("rounding never reorders values", prop.ForAll(
		func(a, b float64) bool {
			if a > b {
				a, b = b, a
			}
			return roundHalfUp(a) <= roundHalfUp(b)
		},
		gen.Float64Range(0, 1e6),
		gen.Float64Range(0, 1e6),
	))

	properties.TestingRun(t)
}
