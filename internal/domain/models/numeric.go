package models

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// FlexFloat is a float64 that tolerates the upstream API's loose numeric
// encoding: plain numbers, quoted numbers, comma decimal separators, null
// and garbage all decode without error. Anything unparseable becomes 0 so a
// NaN can never reach a running total.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = 0

	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	s := strings.TrimSpace(strings.Trim(string(raw), `"`))
	if s == "" {
		return nil
	}
	if strings.Contains(s, ",") {
		// Brazilian notation: dots are thousand separators, comma is decimal.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	*f = FlexFloat(v)
	return nil
}

// Float64 returns the plain float value.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}
