package dategrid_test

import (
	"testing"
	"time"

	"github.com/mkravets/eventcal/internal/dategrid"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestMonthGrid(t *testing.T) {
	t.Run("always 42 cells starting on Sunday", func(t *testing.T) {
		for _, ref := range []time.Time{
			date(2024, time.March, 5),
			date(2024, time.February, 29),
			date(2023, time.December, 31),
			date(2026, time.January, 1),
		} {
			cells := dategrid.MonthGrid(ref)
			require.Len(t, cells, 42)
			require.Equal(t, time.Sunday, cells[0].Date.Weekday())
			require.Equal(t, time.Saturday, cells[41].Date.Weekday())
		}
	})

	t.Run("current month cells form one run of month length", func(t *testing.T) {
		tests := []struct {
			ref  time.Time
			days int
		}{
			{date(2024, time.February, 10), 29},
			{date(2023, time.February, 10), 28},
			{date(2024, time.April, 1), 30},
			{date(2024, time.December, 25), 31},
		}
		for _, tt := range tests {
			cells := dategrid.MonthGrid(tt.ref)

			count := 0
			firstIdx := -1
			for i, c := range cells {
				if c.IsCurrentMonth {
					if firstIdx == -1 {
						firstIdx = i
					}
					count++
					require.Equal(t, firstIdx+count-1, i, "current-month cells must be consecutive")
				}
			}
			require.Equal(t, tt.days, count)
			require.Equal(t, 1, cells[firstIdx].Date.Day())
		}
	})

	t.Run("rolls over year boundary", func(t *testing.T) {
		cells := dategrid.MonthGrid(date(2024, time.December, 15))
		last := cells[41].Date
		require.Equal(t, 2025, last.Year())
		require.Equal(t, time.January, last.Month())
		require.False(t, cells[41].IsCurrentMonth)
	})

	t.Run("grid days are consecutive", func(t *testing.T) {
		cells := dategrid.MonthGrid(date(2024, time.March, 1))
		for i := 1; i < len(cells); i++ {
			require.Equal(t, cells[i-1].Date.AddDate(0, 0, 1), cells[i].Date)
		}
	})
}

func TestWeekDays(t *testing.T) {
	for _, ref := range []time.Time{
		date(2024, time.March, 3),  // a Sunday
		date(2024, time.March, 9),  // a Saturday
		date(2024, time.March, 6),  // mid-week
		date(2024, time.December, 31),
		date(2025, time.January, 1),
	} {
		days := dategrid.WeekDays(ref)
		require.Len(t, days, 7)
		require.Equal(t, time.Sunday, days[0].Weekday())
		require.Equal(t, time.Saturday, days[6].Weekday())
		require.Equal(t, days[0].AddDate(0, 0, 6), days[6])
	}
}

func TestWeekDaysDoesNotMutateInput(t *testing.T) {
	ref := date(2024, time.March, 6)
	before := ref
	dategrid.WeekDays(ref)
	require.Equal(t, before, ref)
}

func TestTimeSlots(t *testing.T) {
	slots := dategrid.TimeSlots()
	require.Len(t, slots, 24)
	require.Equal(t, "00:00", slots[0])
	require.Equal(t, "09:00", slots[9])
	require.Equal(t, "23:00", slots[23])
}

func TestIsToday(t *testing.T) {
	now := time.Now()
	require.True(t, dategrid.IsToday(now))
	require.True(t, dategrid.IsToday(time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, time.Local)))
	require.False(t, dategrid.IsToday(now.AddDate(0, 0, 1)))
	require.False(t, dategrid.IsToday(now.AddDate(0, 0, -1)))
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		mode      dategrid.ViewMode
		direction int
		expected  time.Time
	}{
		{"month forward lands on the 1st", date(2024, time.March, 31), dategrid.ViewMonth, 1, date(2024, time.April, 1)},
		{"month backward across year", date(2024, time.January, 15), dategrid.ViewMonth, -1, date(2023, time.December, 1)},
		{"month forward across year", date(2024, time.December, 5), dategrid.ViewMonth, 1, date(2025, time.January, 1)},
		{"week forward", date(2024, time.March, 5), dategrid.ViewWeek, 1, date(2024, time.March, 12)},
		{"week backward", date(2024, time.March, 5), dategrid.ViewWeek, -1, date(2024, time.February, 27)},
		{"day forward", date(2024, time.February, 29), dategrid.ViewDay, 1, date(2024, time.March, 1)},
		{"day backward", date(2024, time.March, 1), dategrid.ViewDay, -1, date(2024, time.February, 29)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, dategrid.Advance(tt.ref, tt.mode, tt.direction))
		})
	}
}

func TestAdvanceMonthNeverSkipsMonths(t *testing.T) {
	// Stepping forward from the 31st must visit every month exactly once.
	ref := date(2024, time.January, 31)
	for i := 0; i < 12; i++ {
		next := dategrid.Advance(ref, dategrid.ViewMonth, 1)
		require.Equal(t, 1, next.Day())
		expected := time.January + time.Month((1+i)%12)
		require.Equal(t, expected, next.Month())
		ref = next
	}
}
