// Package controller holds the view state of the calendar client and the
// named operations that are allowed to mutate it. The grid, index and layout
// packages only ever receive read-only views of this state.
package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mkravets/eventcal/internal/calendar"
	"github.com/mkravets/eventcal/internal/client"
	"github.com/mkravets/eventcal/internal/dategrid"
)

// Client is the slice of the sync client the controller needs.
type Client interface {
	FetchRange(ctx context.Context, startDate, endDate string) ([]calendar.Event, error)
	Create(ctx context.Context, draft calendar.Draft) (calendar.Event, error)
	Update(ctx context.Context, id string, draft calendar.Draft) (calendar.Event, error)
	Remove(ctx context.Context, id string) error
}

var _ Client = (*client.Client)(nil)

// ValidationError blocks a save before any remote call is made. The caller
// must keep the draft and its form open.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}

// Selection is the date or event currently targeted for editing.
type Selection struct {
	Date  time.Time
	Event *calendar.Event
}

type ViewController struct {
	mu     sync.Mutex
	client Client

	currentDate time.Time
	mode        dategrid.ViewMode
	events      []calendar.Event
	selection   Selection

	// loadSeq identifies the newest requested window; fetches that resolve
	// after a newer request has been issued are discarded.
	loadSeq uint64
}

func New(c Client, start time.Time) *ViewController {
	return &ViewController{
		client:      c,
		currentDate: start,
		mode:        dategrid.ViewMonth,
		events:      make([]calendar.Event, 0),
	}
}

func (v *ViewController) CurrentDate() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.currentDate
}

func (v *ViewController) Mode() dategrid.ViewMode {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mode
}

// Events returns a copy of the loaded window.
func (v *ViewController) Events() []calendar.Event {
	v.mu.Lock()
	defer v.mu.Unlock()
	events := make([]calendar.Event, len(v.events))
	copy(events, v.events)
	return events
}

func (v *ViewController) Selection() Selection {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selection
}

func (v *ViewController) SetViewMode(mode dategrid.ViewMode) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mode = mode
}

func (v *ViewController) SelectDate(d time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection = Selection{Date: d}
}

func (v *ViewController) SelectEvent(e calendar.Event) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection = Selection{Event: &e}
}

func (v *ViewController) ClearSelection() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection = Selection{}
}

// Navigate advances the reference date one step for the current view mode
// and reloads the event window of the new reference month.
func (v *ViewController) Navigate(ctx context.Context, direction int) error {
	v.mu.Lock()
	v.currentDate = dategrid.Advance(v.currentDate, v.mode, direction)
	ref := v.currentDate
	v.mu.Unlock()
	return v.LoadWindow(ctx, ref)
}

// GoToToday jumps the reference date to now and reloads.
func (v *ViewController) GoToToday(ctx context.Context) error {
	now := time.Now()
	v.mu.Lock()
	v.currentDate = now
	v.mu.Unlock()
	return v.LoadWindow(ctx, now)
}

// LoadWindow fetches the events of the month containing ref and replaces the
// loaded window wholesale. A failed fetch leaves the previous window
// untouched. A fetch that resolves after a newer window was requested is
// dropped silently: stale data never overwrites a newer window and the
// discard is not an error.
func (v *ViewController) LoadWindow(ctx context.Context, ref time.Time) error {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, -1)

	v.mu.Lock()
	v.loadSeq++
	seq := v.loadSeq
	v.mu.Unlock()

	events, err := v.client.FetchRange(ctx, calendar.FormatDate(first), calendar.FormatDate(last))

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.loadSeq {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load events for %s: %w", first.Format("2006-01"), err)
	}
	v.events = events
	return nil
}

// CreateOrUpdate validates the draft, persists it and merges the store's
// response into the loaded window by id: replace when present, append when
// new. No window reload happens. A concurrent delete that lands first is
// resolved last-write-wins, so the merge may re-append.
func (v *ViewController) CreateOrUpdate(ctx context.Context, id string, draft calendar.Draft) (calendar.Event, error) {
	if draft.Title == "" {
		return calendar.Event{}, &ValidationError{Field: "title"}
	}
	if draft.Date == "" {
		return calendar.Event{}, &ValidationError{Field: "date"}
	}

	var saved calendar.Event
	var err error
	if id == "" {
		saved, err = v.client.Create(ctx, draft)
	} else {
		saved, err = v.client.Update(ctx, id, draft)
	}
	if err != nil {
		return calendar.Event{}, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	for i, e := range v.events {
		if e.ID == saved.ID {
			v.events[i] = saved
			return saved, nil
		}
	}
	v.events = append(v.events, saved)
	return saved, nil
}

// DeleteEvent removes the event remotely, then from the loaded window. On
// failure the window is untouched.
func (v *ViewController) DeleteEvent(ctx context.Context, id string) error {
	if err := v.client.Remove(ctx, id); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	for i, e := range v.events {
		if e.ID == id {
			v.events = append(v.events[:i], v.events[i+1:]...)
			break
		}
	}
	return nil
}
