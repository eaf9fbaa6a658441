package model

import "time"

// DateOnly normalizes t to a civil date (midnight UTC). All lending math runs
// on civil dates so behavior is independent of the caller's clock precision.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns whole days from a to b; negative when b precedes a.
func DaysBetween(a, b time.Time) int64 {
	return int64(DateOnly(b).Sub(DateOnly(a)) / (24 * time.Hour))
}
