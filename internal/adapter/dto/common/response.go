package common

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HealthResponse represents the health check body
type HealthResponse struct {
	Status      string            `json:"status"`
	Environment string            `json:"environment"`
	Checks      map[string]string `json:"checks,omitempty"`
}

// FlexibleID accepts an identifier sent either as a JSON number or as a
// numeric string. Anything else decodes to zero, which callers treat as
// absent.
type FlexibleID uint

// UnmarshalJSON implements json.Unmarshaler
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	*id = 0

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
		*id = FlexibleID(n)
		return nil
	}
	// Integral floats such as 12.0 are accepted
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f > 0 && f == float64(uint64(f)) {
		*id = FlexibleID(uint64(f))
	}
	return nil
}

// UintIDs converts ids dropping zeros
func UintIDs(ids []FlexibleID) []uint {
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id != 0 {
			out = append(out, uint(id))
		}
	}
	return out
}
