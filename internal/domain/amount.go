package domain

import (
	"strconv"
	"strings"
)

// ParseAmount reads a monetary value by discarding every character that is not a
// digit or a decimal point. It reports false when nothing parseable remains.
func ParseAmount(raw string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
