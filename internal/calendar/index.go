package calendar

import (
	"sort"
	"time"
)

// ForDate returns the events scheduled on the given calendar date, ascending
// by start time. The fixed HH:MM format makes lexicographic comparison
// correct. The sort is stable: events with equal start times keep their
// relative input order, which later drives layout column assignment.
func ForDate(events []Event, date time.Time) []Event {
	key := FormatDate(date)
	selected := make([]Event, 0)
	for _, e := range events {
		if e.Date == key {
			selected = append(selected, e)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].StartTime < selected[j].StartTime
	})
	return selected
}
