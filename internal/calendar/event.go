package calendar

import "time"

// DefaultColor is the first palette entry, used when the store returns an
// event without a color.
const DefaultColor = "#1a73e8"

type Color struct {
	Name  string
	Value string
}

// Palette is the fixed set of event colors. Not configurable.
var Palette = []Color{
	{Name: "Blue", Value: "#1a73e8"},
	{Name: "Red", Value: "#d50000"},
	{Name: "Green", Value: "#0b8043"},
	{Name: "Purple", Value: "#8e24aa"},
	{Name: "Orange", Value: "#e67c73"},
}

// Event is the client-side representation of a stored event. Date is a naive
// calendar date "YYYY-MM-DD", StartTime/EndTime are 24-hour "HH:MM" clocks.
// StartTime <= EndTime is not guaranteed; consumers must tolerate degenerate
// intervals.
type Event struct {
	ID          string
	Title       string
	Date        string
	StartTime   string
	EndTime     string
	Description string
	Location    string
	Color       string
}

// Draft is a form-filled event that may not be persisted yet. A draft never
// carries an ID; the target ID is passed alongside when updating.
type Draft struct {
	Title       string
	Date        string
	StartTime   string
	EndTime     string
	Description string
	Location    string
	Color       string
}

// FormatDate renders t as the wire/date-key format used everywhere.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
