// Package layout computes the geometry of timed events inside one day
// column: vertical placement from the event clock interval and horizontal
// bands so simultaneous events sit side by side.
package layout

import (
	"time"

	"github.com/mkravets/eventcal/internal/calendar"
)

// Band is the horizontal slot of an event within its day column. Column is
// zero-based, Columns is the size of the group sharing the start time.
type Band struct {
	Column  int
	Columns int
}

// WidthPercent is the horizontal share of the day column, in percent.
func (b Band) WidthPercent() float64 {
	if b.Columns < 1 {
		return 0
	}
	return 100 / float64(b.Columns)
}

// LeftPercent is the offset of the band from the left edge, in percent.
func (b Band) LeftPercent() float64 {
	return b.WidthPercent() * float64(b.Column)
}

// VerticalExtent converts a clock interval to a top offset and height in the
// units of hourHeight. Inverted or zero-length intervals yield a zero or
// negative height; no clamping happens here, callers must tolerate the
// degenerate box.
func VerticalExtent(startTime, endTime string, hourHeight float64) (top, height float64) {
	start := clockHours(startTime)
	end := clockHours(endTime)
	return start * hourHeight, (end - start) * hourHeight
}

// HorizontalBands assigns a band to every event of one day. Events are
// grouped by exact start-time equality only; within a group the column index
// follows the order of the sorted input (ties keep input order, not id
// order). Events with distinct start times never share a group even when
// their intervals overlap. The input must already be sorted the way
// calendar.ForDate sorts; it is not mutated.
func HorizontalBands(events []calendar.Event) map[string]Band {
	groups := make(map[string][]string, len(events))
	for _, e := range events {
		groups[e.StartTime] = append(groups[e.StartTime], e.ID)
	}

	bands := make(map[string]Band, len(events))
	for _, ids := range groups {
		for i, id := range ids {
			bands[id] = Band{Column: i, Columns: len(ids)}
		}
	}
	return bands
}

// clockHours parses "HH:MM" into fractional hours. Unparseable input counts
// as midnight so a malformed event renders collapsed instead of crashing the
// layout pass.
func clockHours(clock string) float64 {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0
	}
	return float64(t.Hour()) + float64(t.Minute())/60
}
