package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeWindow_Contains(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	window := NewTimeWindow(start, end)

	tests := []struct {
		name     string
		input    time.Time
		expected bool
	}{
		{
			name:     "start instant is included",
			input:    start,
			expected: true,
		},
		{
			name:     "end instant is excluded",
			input:    end,
			expected: false,
		},
		{
			name:     "one microsecond before end",
			input:    end.Add(-time.Microsecond),
			expected: true,
		},
		{
			name:     "before start",
			input:    start.Add(-time.Nanosecond),
			expected: false,
		},
		{
			name:     "other timezone converted",
			input:    time.Date(2026, 1, 15, 5, 30, 0, 0, time.FixedZone("EST", -5*3600)),
			expected: true, // 10:30 UTC
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, window.Contains(tt.input))
		})
	}
}

func TestNewTimeWindow_TruncatesToMicroseconds(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 15, 10, 0, 0, 1500, time.UTC)
	end := time.Date(2026, 1, 15, 12, 0, 0, 999, time.UTC)

	window := NewTimeWindow(start, end)

	assert.Equal(t, time.Date(2026, 1, 15, 10, 0, 0, 1000, time.UTC), window.Start)
	assert.Equal(t, time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC), window.End)
	assert.True(t, window.Contains(time.Date(2026, 1, 15, 10, 0, 0, 1000, time.UTC)))
	assert.False(t, window.Contains(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)))
}

func TestTimeWindow_Hours(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		window   TimeWindow
		expected float64
	}{
		{
			name:     "two hours",
			window:   NewTimeWindow(base, base.Add(2*time.Hour)),
			expected: 2,
		},
		{
			name:     "ninety minutes",
			window:   NewTimeWindow(base, base.Add(90*time.Minute)),
			expected: 1.5,
		},
		{
			name:     "empty window",
			window:   NewTimeWindow(base, base),
			expected: 0,
		},
		{
			name:     "inverted window",
			window:   NewTimeWindow(base, base.Add(-time.Hour)),
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expected, tt.window.Hours(), 1e-9)
		})
	}
}

func TestTimeWindow_String(t *testing.T) {
	t.Parallel()

	window := NewTimeWindow(
		time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	)
	assert.Equal(t, "[2026-01-15T10:00:00Z, 2026-01-15T12:00:00Z)", window.String())
}
