package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Layouts accepted for request dates. Values without an offset, as sent by
// browser datetime-local inputs, are read as UTC.
var requestTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// RequestTime is a date supplied by a client.
type RequestTime struct {
	time.Time
}

func (t *RequestTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for _, layout := range requestTimeLayouts {
		parsed, err := time.ParseInLocation(layout, raw, time.UTC)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", raw)
}

func (t RequestTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time)
}
