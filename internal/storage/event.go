package storage

// Event is the stored record. Date is "YYYY-MM-DD", StartTime/EndTime are
// 24-hour "HH:MM"; there is no timezone, dates are naive local calendar
// dates. JSON names match the REST wire contract.
type Event struct {
	ID          string `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Date        string `json:"date" db:"date"`
	StartTime   string `json:"start_time" db:"start_time"`
	EndTime     string `json:"end_time" db:"end_time"`
	Description string `json:"description" db:"description"`
	Location    string `json:"location" db:"location"`
	Color       string `json:"color" db:"color"`
}

// Stats are the aggregate counters served by the stats endpoint.
type Stats struct {
	TotalEvents    int `json:"total_events"`
	TodayEvents    int `json:"today_events"`
	UpcomingEvents int `json:"upcoming_events"`
}
