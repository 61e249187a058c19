package storage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrDuplicateEventID   = errors.New("event with same ID exists")
	ErrNotFoundEvent      = errors.New("event not found")
	ErrMissingField       = errors.New("missing required field")
	ErrIncorrectDate      = errors.New("invalid date format, use YYYY-MM-DD")
	ErrIncorrectEventTime = errors.New("incorrect event time")
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

type Storage interface {
	Connect(ctx context.Context) error
	Close(ctx context.Context) error
	AddEvent(ctx context.Context, e *Event) error
	UpdateEvent(ctx context.Context, id string, e Event) error
	RemoveEvent(ctx context.Context, id string) error
	GetEvent(ctx context.Context, id string) (Event, error)
	GetEventsForDate(ctx context.Context, date string) ([]Event, error)
	GetEventsRange(ctx context.Context, startDate, endDate string) ([]Event, error)
	RemoveOlderThan(ctx context.Context, date string) error
}

// ValidateEvent checks the fields a record must carry before it is stored:
// required title/date/times, the fixed date and clock formats, and end after
// start. Only the store enforces the time ordering; clients must tolerate
// whatever the store already holds.
func ValidateEvent(e Event) error {
	switch "" {
	case e.Title:
		return fmt.Errorf("%w: title", ErrMissingField)
	case e.Date:
		return fmt.Errorf("%w: date", ErrMissingField)
	case e.StartTime:
		return fmt.Errorf("%w: start_time", ErrMissingField)
	case e.EndTime:
		return fmt.Errorf("%w: end_time", ErrMissingField)
	}

	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return ErrIncorrectDate
	}
	start, err := time.Parse(ClockLayout, e.StartTime)
	if err != nil {
		return fmt.Errorf("invalid time format, use HH:MM: %w", ErrIncorrectEventTime)
	}
	end, err := time.Parse(ClockLayout, e.EndTime)
	if err != nil {
		return fmt.Errorf("invalid time format, use HH:MM: %w", ErrIncorrectEventTime)
	}
	if !end.After(start) {
		return fmt.Errorf("end time must be after start time: %w", ErrIncorrectEventTime)
	}
	return nil
}
