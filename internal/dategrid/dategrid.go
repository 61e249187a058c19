package dategrid

import (
	"fmt"
	"time"

	"github.com/mkravets/eventcal/internal/util"
)

type ViewMode string

const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
	ViewDay   ViewMode = "day"
)

// GridSize is the number of cells a month view always shows: 6 full weeks.
const GridSize = 42

// DayCell is one slot of the month grid. Cells outside the reference month
// carry IsCurrentMonth=false and are regenerated on every render.
type DayCell struct {
	Date           time.Time
	IsCurrentMonth bool
}

// MonthGrid returns the 42 cells of the month view for the month containing
// ref. The grid starts on the Sunday of the week containing the 1st and pads
// with adjacent-month days, rolling over year boundaries as needed.
func MonthGrid(ref time.Time) []DayCell {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))

	cells := make([]DayCell, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		d := start.AddDate(0, 0, i)
		cells = append(cells, DayCell{
			Date:           d,
			IsCurrentMonth: d.Month() == first.Month() && d.Year() == first.Year(),
		})
	}
	return cells
}

// WeekDays returns the Sunday..Saturday dates of the week containing ref.
func WeekDays(ref time.Time) []time.Time {
	sunday := util.TruncateToDay(ref).AddDate(0, 0, -int(ref.Weekday()))
	days := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, sunday.AddDate(0, 0, i))
	}
	return days
}

// IsToday reports whether d falls on the current local calendar date.
func IsToday(d time.Time) bool {
	return util.TruncateToDay(d).Equal(util.TruncateToDay(time.Now()))
}

// TimeSlots returns the 24 hour labels "00:00".."23:00" used as the vertical
// axis of the week and day views.
func TimeSlots() []string {
	slots := make([]string, 0, 24)
	for h := 0; h < 24; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}

// Advance moves ref one step in the given direction (+1 or -1) for the view
// mode. Month steps land on the 1st so month-length differences never skip
// or duplicate a month.
func Advance(ref time.Time, mode ViewMode, direction int) time.Time {
	switch mode {
	case ViewWeek:
		return ref.AddDate(0, 0, 7*direction)
	case ViewDay:
		return ref.AddDate(0, 0, direction)
	default:
		return time.Date(ref.Year(), ref.Month()+time.Month(direction), 1, 0, 0, 0, 0, ref.Location())
	}
}
