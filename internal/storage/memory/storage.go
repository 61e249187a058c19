package memorystorage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/mkravets/eventcal/internal/storage"
)

type Storage struct {
	mu   sync.RWMutex
	data map[string]storage.Event
}

func New() *Storage {
	return &Storage{data: make(map[string]storage.Event)}
}

func (s *Storage) Connect(_ context.Context) error {
	return nil
}

func (s *Storage) Close(_ context.Context) error {
	return nil
}

func (s *Storage) AddEvent(_ context.Context, e *storage.Event) error {
	if err := storage.ValidateEvent(*e); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	} else if _, ok := s.data[e.ID]; ok {
		return fmt.Errorf("duplicate ID %q: %w", e.ID, storage.ErrDuplicateEventID)
	}
	s.data[e.ID] = *e
	return nil
}

func (s *Storage) UpdateEvent(_ context.Context, id string, e storage.Event) error {
	if err := storage.ValidateEvent(e); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[id]; !ok {
		return fmt.Errorf("failed to update event with id %q: %w", id, storage.ErrNotFoundEvent)
	}
	e.ID = id
	s.data[id] = e
	return nil
}

func (s *Storage) RemoveEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[id]; !ok {
		return fmt.Errorf("failed to remove event with id %q: %w", id, storage.ErrNotFoundEvent)
	}
	delete(s.data, id)
	return nil
}

func (s *Storage) GetEvent(_ context.Context, id string) (storage.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.data[id]
	if !ok {
		return storage.Event{}, fmt.Errorf("failed to get event with id %q: %w", id, storage.ErrNotFoundEvent)
	}
	return e, nil
}

func (s *Storage) GetEventsForDate(_ context.Context, date string) ([]storage.Event, error) {
	return s.selectByRange(date, date), nil
}

func (s *Storage) GetEventsRange(_ context.Context, startDate, endDate string) ([]storage.Event, error) {
	return s.selectByRange(startDate, endDate), nil
}

func (s *Storage) RemoveOlderThan(_ context.Context, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.data {
		if e.Date < date {
			delete(s.data, id)
		}
	}
	return nil
}

// Select in range [startDate:endDate], both inclusive. The fixed YYYY-MM-DD
// and HH:MM formats order lexicographically.
func (s *Storage) selectByRange(startDate, endDate string) []storage.Event {
	events := make([]storage.Event, 0)
	s.mu.RLock()
	for _, e := range s.data {
		if e.Date >= startDate && e.Date <= endDate {
			events = append(events, e)
		}
	}
	s.mu.RUnlock()

	sort.Slice(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		if events[i].StartTime != events[j].StartTime {
			return events[i].StartTime < events[j].StartTime
		}
		return events[i].ID < events[j].ID
	})
	return events
}
