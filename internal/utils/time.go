package utils

import (
	"strings"
	"time"
)

const (
	layoutDate      = "2006-01-02"
	layoutDateTime  = "2006-01-02 15:04"
	layoutUSDate    = "01/02/2006"
	layoutISONoZone = "2006-01-02T15:04:05"
)

var backendLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.9999999",
	layoutISONoZone,
	"2006-01-02 15:04:05",
	layoutDate,
}

// ParseBackendTime accepts the timestamp shapes the backend emits
// (with or without zone and fraction).
func ParseBackendTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range backendLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a backend timestamp as YYYY-MM-DD, or the raw value
// when it cannot be parsed.
func FormatDate(s string) string {
	if t, ok := ParseBackendTime(s); ok {
		return t.Format(layoutDate)
	}
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}

// FormatDateTime renders a backend timestamp as "YYYY-MM-DD HH:MM".
func FormatDateTime(s string) string {
	if t, ok := ParseBackendTime(s); ok {
		return t.Format(layoutDateTime)
	}
	return s
}

// USDate converts a YYYY-MM-DD form value to MM/DD/YYYY for the logs API.
// Blank or malformed input yields "".
func USDate(s string) string {
	t, err := time.Parse(layoutDate, strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return t.Format(layoutUSDate)
}

// Expired reports whether a backend date lies before now.
func Expired(s string, now time.Time) bool {
	t, ok := ParseBackendTime(s)
	if !ok {
		return false
	}
	return t.Before(now)
}
