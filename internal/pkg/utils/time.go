package utils

import (
	"strings"
)

// NormalizeTimeValue pads a bare HH:MM to HH:MM:SS. Values already carrying
// seconds, or without a colon at all, pass through untouched.
func NormalizeTimeValue(value string) string {
	if value == "" || !strings.Contains(value, ":") {
		return value
	}
	parts := strings.Split(value, ":")
	if len(parts) == 2 {
		return value + ":00"
	}
	return value
}
