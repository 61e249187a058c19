package layout_test

import (
	"testing"

	"github.com/mkravets/eventcal/internal/calendar"
	"github.com/mkravets/eventcal/internal/layout"
	"github.com/stretchr/testify/require"
)

func TestVerticalExtent(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		hourHeight float64
		top        float64
		height     float64
	}{
		{"whole hour", "09:00", "10:00", 48, 9 * 48, 48},
		{"half hour", "09:00", "09:30", 48, 9 * 48, 24},
		{"offset start", "10:15", "11:45", 64, 10.25 * 64, 1.5 * 64},
		{"midnight", "00:00", "01:00", 48, 0, 48},
		{"zero duration", "10:00", "10:00", 48, 10 * 48, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top, height := layout.VerticalExtent(tt.start, tt.end, tt.hourHeight)
			require.InDelta(t, tt.top, top, 1e-9)
			require.InDelta(t, tt.height, height, 1e-9)
		})
	}
}

func TestVerticalExtentDegenerateInterval(t *testing.T) {
	// Inverted intervals are not clamped and must not panic.
	top, height := layout.VerticalExtent("10:00", "09:00", 48)
	require.InDelta(t, 10*48.0, top, 1e-9)
	require.LessOrEqual(t, height, 0.0)
}

func TestVerticalExtentUnparseableClock(t *testing.T) {
	top, height := layout.VerticalExtent("garbage", "also garbage", 48)
	require.Zero(t, top)
	require.Zero(t, height)
}

func TestHorizontalBands(t *testing.T) {
	events := []calendar.Event{
		{ID: "a", StartTime: "09:00"},
		{ID: "b", StartTime: "09:00"},
		{ID: "c", StartTime: "10:00"},
	}

	bands := layout.HorizontalBands(events)

	require.Equal(t, layout.Band{Column: 0, Columns: 2}, bands["a"])
	require.Equal(t, layout.Band{Column: 1, Columns: 2}, bands["b"])
	require.Equal(t, layout.Band{Column: 0, Columns: 1}, bands["c"])

	require.InDelta(t, 50.0, bands["a"].WidthPercent(), 1e-9)
	require.InDelta(t, 0.0, bands["a"].LeftPercent(), 1e-9)
	require.InDelta(t, 50.0, bands["b"].LeftPercent(), 1e-9)
	require.InDelta(t, 100.0, bands["c"].WidthPercent(), 1e-9)
}

func TestHorizontalBandsTiesKeepInputOrder(t *testing.T) {
	// Column order follows input order, not id order.
	events := []calendar.Event{
		{ID: "z", StartTime: "09:00"},
		{ID: "a", StartTime: "09:00"},
	}

	bands := layout.HorizontalBands(events)

	require.Equal(t, 0, bands["z"].Column)
	require.Equal(t, 1, bands["a"].Column)
}

func TestHorizontalBandsOverlappingIntervalsDistinctStarts(t *testing.T) {
	// Interval overlap without start-time equality never shares columns.
	events := []calendar.Event{
		{ID: "a", StartTime: "09:00", EndTime: "11:00"},
		{ID: "b", StartTime: "09:30", EndTime: "10:30"},
	}

	bands := layout.HorizontalBands(events)

	require.Equal(t, layout.Band{Column: 0, Columns: 1}, bands["a"])
	require.Equal(t, layout.Band{Column: 0, Columns: 1}, bands["b"])
}

func TestHorizontalBandsDoesNotMutateInput(t *testing.T) {
	events := []calendar.Event{
		{ID: "b", StartTime: "09:00"},
		{ID: "a", StartTime: "09:00"},
	}
	layout.HorizontalBands(events)
	require.Equal(t, "b", events[0].ID)
	require.Equal(t, "a", events[1].ID)
}

func TestBandZeroColumnsDoesNotDivideByZero(t *testing.T) {
	var b layout.Band
	require.Zero(t, b.WidthPercent())
	require.Zero(t, b.LeftPercent())
}
