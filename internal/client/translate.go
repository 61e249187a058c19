package client

import "github.com/mkravets/eventcal/internal/calendar"

// record is the wire shape of an event. The store speaks snake_case; the
// rest of the engine never sees these names, translation happens only here.
type record struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Color       string `json:"color,omitempty"`
}

func (r record) toEvent() calendar.Event {
	color := r.Color
	if color == "" {
		color = calendar.DefaultColor
	}
	return calendar.Event{
		ID:          r.ID,
		Title:       r.Title,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Description: r.Description,
		Location:    r.Location,
		Color:       color,
	}
}

func draftToRecord(d calendar.Draft) record {
	return record{
		Title:       d.Title,
		Date:        d.Date,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		Description: d.Description,
		Location:    d.Location,
		Color:       d.Color,
	}
}
