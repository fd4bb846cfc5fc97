package http

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{input: "2026-01-15T10:00:00Z", want: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)},
		{input: "2026-01-15T10:00:00.123Z", want: time.Date(2026, 1, 15, 10, 0, 0, 123000000, time.UTC)},
		{input: "2026-01-15T12:00:00+02:00", want: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)},
		{input: "2026-01-15T10:00:00", want: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)},
		{input: "2026-01-15T10:00:00.5", want: time.Date(2026, 1, 15, 10, 0, 0, 500000000, time.UTC)},
		{input: "2026-01-15T10:00", want: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)},
		{input: " 2026-01-15T10:00:00Z ", want: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)},
		{input: "2026-01-15", wantErr: true},
		{input: "yesterday", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := parseTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestEventRequest_Validation(t *testing.T) {
	t.Parallel()

	var complete eventRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"eventId": "E-1",
		"eventTime": "2026-01-15T10:00:00",
		"machineId": "M-001",
		"durationMs": 0,
		"defectCount": -1
	}`), &complete))
	assert.NoError(t, validate.Struct(&complete))

	candidate := complete.toCandidate()
	assert.Equal(t, int64(0), *candidate.DurationMs)
	assert.Equal(t, -1, *candidate.DefectCount)
	assert.False(t, candidate.LineID.Valid)

	var missing eventRequest
	require.NoError(t, json.Unmarshal([]byte(`{"eventId": "E-1", "machineId": "M-001"}`), &missing))
	err := validate.Struct(&missing)
	require.Error(t, err)
	assert.Equal(t, "item: eventTime (required), durationMs (required), defectCount (required)", validationMessage("item", err))
}

func TestIdempotencyKeyRule(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validate.Var("", idempotencyKeyRule))
	assert.NoError(t, validate.Var("batch-2026-01-15_01", idempotencyKeyRule))
	assert.Error(t, validate.Var("../etc/passwd", idempotencyKeyRule))
	assert.Error(t, validate.Var(`a\b`, idempotencyKeyRule))
	assert.Error(t, validate.Var(string(make([]byte, 129)), idempotencyKeyRule))
}
