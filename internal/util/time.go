package util

import "time"

// TruncateToDay drops the time-of-day part keeping the location.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
