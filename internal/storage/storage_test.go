package storage_test

import (
	"testing"

	"github.com/mkravets/eventcal/internal/storage"
	"github.com/stretchr/testify/require"
)

func validEvent() storage.Event {
	return storage.Event{
		Title:     "Standup",
		Date:      "2024-03-05",
		StartTime: "09:00",
		EndTime:   "09:30",
	}
}

func TestValidateEvent(t *testing.T) {
	require.NoError(t, storage.ValidateEvent(validEvent()))
}

func TestValidateEventNegativeCases(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(e *storage.Event)
		expectedErr error
	}{
		{"missing title", func(e *storage.Event) { e.Title = "" }, storage.ErrMissingField},
		{"missing date", func(e *storage.Event) { e.Date = "" }, storage.ErrMissingField},
		{"missing start time", func(e *storage.Event) { e.StartTime = "" }, storage.ErrMissingField},
		{"missing end time", func(e *storage.Event) { e.EndTime = "" }, storage.ErrMissingField},
		{"bad date format", func(e *storage.Event) { e.Date = "05.03.2024" }, storage.ErrIncorrectDate},
		{"bad start time", func(e *storage.Event) { e.StartTime = "9am" }, storage.ErrIncorrectEventTime},
		{"bad end time", func(e *storage.Event) { e.EndTime = "25:99" }, storage.ErrIncorrectEventTime},
		{"end equals start", func(e *storage.Event) { e.EndTime = e.StartTime }, storage.ErrIncorrectEventTime},
		{"end before start", func(e *storage.Event) { e.StartTime, e.EndTime = "10:00", "09:00" }, storage.ErrIncorrectEventTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.mutate(&e)
			require.ErrorIs(t, storage.ValidateEvent(e), tt.expectedErr)
		})
	}
}
