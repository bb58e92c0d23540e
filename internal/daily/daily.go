// internal/daily/daily.go
//
// Date helpers for the daily angle challenge.
// Responsibilities:
//   - DateKey/ParseDateKey: canonical YYYY-MM-DD keys for a calendar day.
//   - Seed: deterministic per-round seed derived from a calendar date.
//   - Today: the current calendar day in the configured game time zone.
//
// Everyone playing on the same calendar day gets the same three rounds.

package daily

import (
	"fmt"
	"time"
)

const keyLayout = "2006-01-02"

// DateKey returns YYYY-MM-DD for the calendar day of t (in t's own location).
func DateKey(t time.Time) string {
	return t.Format(keyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key into midnight UTC of that day.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(keyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date key %q: %w", key, err)
	}
	return t, nil
}

// Seed returns year*month*day + roundIndex for the calendar day of date.
// Month is 1-indexed. Not cryptographic.
func Seed(date time.Time, roundIndex int) uint64 {
	y, m, d := date.Date()
	return uint64(y*int(m)*d + roundIndex)
}

// Today returns the current calendar day in loc, as midnight UTC of that day,
// so that DateKey and Seed agree regardless of the server's own zone.
func Today(c Clock, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := c.Now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
