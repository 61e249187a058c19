package app

import (
	"context"
	"time"

	"github.com/mkravets/eventcal/internal/storage"
)

type App struct {
	Storage storage.Storage
}

func New(storage storage.Storage) *App {
	return &App{Storage: storage}
}

func (a *App) CreateEvent(ctx context.Context, e storage.Event) (storage.Event, error) {
	if err := a.Storage.AddEvent(ctx, &e); err != nil {
		return storage.Event{}, err
	}
	return e, nil
}

func (a *App) UpdateEvent(ctx context.Context, id string, e storage.Event) (storage.Event, error) {
	if err := a.Storage.UpdateEvent(ctx, id, e); err != nil {
		return storage.Event{}, err
	}
	return a.Storage.GetEvent(ctx, id)
}

func (a *App) RemoveEvent(ctx context.Context, id string) error {
	return a.Storage.RemoveEvent(ctx, id)
}

func (a *App) GetEvent(ctx context.Context, id string) (storage.Event, error) {
	return a.Storage.GetEvent(ctx, id)
}

func (a *App) GetEventsForDate(ctx context.Context, date string) ([]storage.Event, error) {
	return a.Storage.GetEventsForDate(ctx, date)
}

func (a *App) GetEventsRange(ctx context.Context, startDate, endDate string) ([]storage.Event, error) {
	return a.Storage.GetEventsRange(ctx, startDate, endDate)
}

// HasOverlap reports whether the interval [startTime:endTime) on date
// intersects any stored event, excluding excludeID. Interval overlap, not
// same-start equality: start < other.end && end > other.start.
func (a *App) HasOverlap(ctx context.Context, date, startTime, endTime, excludeID string) (bool, error) {
	events, err := a.Storage.GetEventsForDate(ctx, date)
	if err != nil {
		return false, err
	}
	for _, e := range events {
		if e.ID == excludeID {
			continue
		}
		if startTime < e.EndTime && endTime > e.StartTime {
			return true, nil
		}
	}
	return false, nil
}

// GetStats counts all events, today's events and future events.
func (a *App) GetStats(ctx context.Context, now time.Time) (storage.Stats, error) {
	today := now.Format(storage.DateLayout)

	all, err := a.Storage.GetEventsRange(ctx, "0000-01-01", "9999-12-31")
	if err != nil {
		return storage.Stats{}, err
	}

	stats := storage.Stats{TotalEvents: len(all)}
	for _, e := range all {
		switch {
		case e.Date == today:
			stats.TodayEvents++
		case e.Date > today:
			stats.UpcomingEvents++
		}
	}
	return stats, nil
}
