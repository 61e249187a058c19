package client

import (
	"testing"

	"github.com/mkravets/eventcal/internal/calendar"
	"github.com/stretchr/testify/require"
)

func TestRecordToEvent(t *testing.T) {
	r := record{
		ID:          "42",
		Title:       "Standup",
		Date:        "2024-03-05",
		StartTime:   "09:00",
		EndTime:     "09:30",
		Description: "daily",
		Location:    "room 1",
		Color:       "#d50000",
	}

	e := r.toEvent()

	require.Equal(t, calendar.Event{
		ID:          "42",
		Title:       "Standup",
		Date:        "2024-03-05",
		StartTime:   "09:00",
		EndTime:     "09:30",
		Description: "daily",
		Location:    "room 1",
		Color:       "#d50000",
	}, e)
}

func TestRecordToEventDefaults(t *testing.T) {
	e := record{ID: "1", Title: "x", Date: "2024-03-05", StartTime: "09:00", EndTime: "10:00"}.toEvent()

	require.Empty(t, e.Description)
	require.Empty(t, e.Location)
	require.Equal(t, calendar.DefaultColor, e.Color)
}

func TestDraftToRecord(t *testing.T) {
	r := draftToRecord(calendar.Draft{
		Title:     "Standup",
		Date:      "2024-03-05",
		StartTime: "09:00",
		EndTime:   "09:30",
		Color:     "#0b8043",
	})

	require.Empty(t, r.ID, "a draft never carries an id")
	require.Equal(t, "Standup", r.Title)
	require.Equal(t, "09:00", r.StartTime)
	require.Equal(t, "09:30", r.EndTime)
	require.Equal(t, "#0b8043", r.Color)
}
