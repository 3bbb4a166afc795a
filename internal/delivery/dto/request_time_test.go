package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"datetime-local", `"2026-10-19T14:19"`, time.Date(2026, 10, 19, 14, 19, 0, 0, time.UTC)},
		{"with seconds", `"2026-10-19T14:19:30"`, time.Date(2026, 10, 19, 14, 19, 30, 0, time.UTC)},
		{"rfc3339 utc", `"2026-10-19T14:19:00Z"`, time.Date(2026, 10, 19, 14, 19, 0, 0, time.UTC)},
		{"rfc3339 offset", `"2026-10-19T16:19:00+02:00"`, time.Date(2026, 10, 19, 14, 19, 0, 0, time.UTC)},
		{"fractional seconds", `"2026-10-19T14:19:00.500Z"`, time.Date(2026, 10, 19, 14, 19, 0, 500000000, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got RequestTime
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.True(t, got.Equal(tt.want), "got %s", got.Time)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestRequestTimeRejectsGarbage(t *testing.T) {
	for _, input := range []string{`"19/10/2026 14:19"`, `"2026-10-19"`, `12345`} {
		var got RequestTime
		assert.Error(t, json.Unmarshal([]byte(input), &got), input)
	}
}

func TestRequestTimeNullLeavesPointerNil(t *testing.T) {
	var req UpdateAppointmentStatusRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status":"CONFIRMED","date":null}`), &req))
	assert.Nil(t, req.Date)

	require.NoError(t, json.Unmarshal([]byte(`{"status":"RESCHEDULED","date":"2026-10-20T09:30"}`), &req))
	require.NotNil(t, req.Date)
	assert.True(t, req.Date.Equal(time.Date(2026, 10, 20, 9, 30, 0, 0, time.UTC)))
}
