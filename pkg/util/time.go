package util

import (
	"time"
)

// FormatClock renders an RFC 3339 timestamp as HH:MM in its own offset.
// Values that do not parse are returned unchanged.
func FormatClock(value string) string {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}

	return parsed.Format("15:04")
}
