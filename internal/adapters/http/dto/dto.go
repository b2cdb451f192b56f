// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter
// layer. Request DTOs carry full-replacement semantics: PUT bodies restate
// every writable field, and workflow fields (statuses, verification flags,
// monetary snapshots) are never writable through them.
package dto

import "time"

// dateFormat is how admin forms submit date-only values.
const dateFormat = "2006-01-02"

// parseDate accepts a date-only or RFC 3339 value.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(dateFormat, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// formatDate renders a date-only value, empty for the zero time.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}
