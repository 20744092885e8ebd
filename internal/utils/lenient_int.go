package utils

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// LenientInt reads an integer from a JSON number or a numeric string, the
// way form-backed clients tend to send them. Anything else leaves Valid
// false instead of failing the surrounding document.
type LenientInt struct {
	Value int64
	Valid bool
}

func (n *LenientInt) UnmarshalJSON(data []byte) error {
	*n = LenientInt{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		if v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			*n = LenientInt{Value: v, Valid: true}
		}
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return nil
	}

	// Fractions are truncated towards zero.
	*n = LenientInt{Value: int64(f), Valid: true}
	return nil
}

func (n LenientInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(n.Value, 10)), nil
}

// ID returns the value as a row id. Non-positive values map to 0, which no
// row ever carries.
func (n LenientInt) ID() uint {
	if !n.Valid || n.Value <= 0 {
		return 0
	}
	return uint(n.Value)
}
