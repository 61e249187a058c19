package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mkravets/eventcal/internal/calendar"
	"github.com/mkravets/eventcal/internal/dategrid"
	"github.com/mkravets/eventcal/internal/layout"
)

const maxChipsPerCell = 2

func (m Model) View() string {
	if m.form != nil {
		return lipgloss.JoinVertical(lipgloss.Left, m.form.view(), m.statusLine())
	}

	var body string
	switch m.ctrl.Mode() {
	case dategrid.ViewWeek:
		body = m.weekView()
	case dategrid.ViewDay:
		body = m.dayView()
	default:
		body = m.monthView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.titleBar(), body, m.statusLine())
}

func (m Model) titleBar() string {
	ref := m.currentDate()
	var label string
	switch m.ctrl.Mode() {
	case dategrid.ViewWeek:
		label = "Week of " + dategrid.WeekDays(ref)[0].Format("Jan 2, 2006")
	case dategrid.ViewDay:
		label = ref.Format("Monday, January 2, 2006")
	default:
		label = ref.Format("January 2006")
	}
	if m.loading {
		label += "  (loading...)"
	}
	return titleStyle.Render(label)
}

func (m Model) statusLine() string {
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg + " — press t or arrows to retry")
	}
	return statusStyle.Render("←/→ navigate · m/w/d view · t today · n new · j/k e x (day view) · q quit")
}

func (m Model) monthView() string {
	cellW := m.cellWidth()
	cells := dategrid.MonthGrid(m.currentDate())
	events := m.ctrl.Events()

	var header []string
	for _, wd := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		header = append(header, headerStyle.Copy().Width(cellW+1).Render(wd))
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}
	for week := 0; week < dategrid.GridSize/7; week++ {
		var cols []string
		for i := 0; i < 7; i++ {
			cols = append(cols, m.monthCell(cells[week*7+i], events, cellW))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) monthCell(cell dategrid.DayCell, events []calendar.Event, width int) string {
	numStyle := dayNumStyle
	switch {
	case dategrid.IsToday(cell.Date):
		numStyle = todayStyle
	case !cell.IsCurrentMonth:
		numStyle = otherMonthStyle
	}

	lines := []string{numStyle.Copy().Width(width).Render(fmt.Sprint(cell.Date.Day()))}

	dayEvents := calendar.ForDate(events, cell.Date)
	for i, e := range dayEvents {
		if i == maxChipsPerCell {
			break
		}
		lines = append(lines, chipStyle(e.Color, width).Render(truncate(e.StartTime+" "+e.Title, width)))
	}
	if n := len(dayEvents) - maxChipsPerCell; n > 0 {
		lines = append(lines, overflowStyle.Render(truncate(fmt.Sprintf("+%d more", n), width)))
	} else {
		for len(lines) < maxChipsPerCell+2 {
			lines = append(lines, strings.Repeat(" ", width))
		}
	}

	return cellBorderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) weekView() string {
	colW := m.cellWidth()
	days := dategrid.WeekDays(m.currentDate())
	events := m.ctrl.Events()

	header := []string{hourLabelStyle.Render("")}
	for _, day := range days {
		label := day.Format("Mon 2")
		if dategrid.IsToday(day) {
			label = todayStyle.Render(label)
		}
		header = append(header, headerStyle.Copy().Width(colW).Render(label))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	perDay := make([][]calendar.Event, len(days))
	bands := make([]map[string]layout.Band, len(days))
	for i, day := range days {
		perDay[i] = calendar.ForDate(events, day)
		bands[i] = layout.HorizontalBands(perDay[i])
	}

	for hour, slot := range dategrid.TimeSlots() {
		cols := []string{hourLabelStyle.Render(slot)}
		for i := range days {
			cols = append(cols, renderHourCell(perDay[i], bands[i], hour, colW))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderHourCell draws the events whose vertical offset falls into the given
// hour row, splitting the column width between same-start events according
// to their bands.
func renderHourCell(dayEvents []calendar.Event, bands map[string]layout.Band, hour, width int) string {
	var chips []string
	used := 0
	for _, e := range dayEvents {
		top, _ := layout.VerticalExtent(e.StartTime, e.EndTime, 1)
		if int(top) != hour {
			continue
		}
		band := bands[e.ID]
		w := int(float64(width) * band.WidthPercent() / 100)
		if w < 1 {
			w = 1
		}
		if used+w > width {
			break
		}
		used += w
		chips = append(chips, chipStyle(e.Color, w).Render(truncate(e.Title, w)))
	}
	if used < width {
		chips = append(chips, strings.Repeat(" ", width-used))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m Model) dayView() string {
	dayEvents := m.dayEvents()
	bands := layout.HorizontalBands(dayEvents)
	width := m.width - 8
	if width < 24 {
		width = 56
	}

	byHour := make(map[int][]int)
	for i, e := range dayEvents {
		top, _ := layout.VerticalExtent(e.StartTime, e.EndTime, 1)
		byHour[int(top)] = append(byHour[int(top)], i)
	}

	var rows []string
	for hour, slot := range dategrid.TimeSlots() {
		line := hourLabelStyle.Render(slot)
		var chips []string
		for _, idx := range byHour[hour] {
			e := dayEvents[idx]
			band := bands[e.ID]
			w := int(float64(width) * band.WidthPercent() / 100)
			if w < 1 {
				w = 1
			}
			text := fmt.Sprintf("%s-%s %s", e.StartTime, e.EndTime, e.Title)
			if e.Location != "" {
				text += " @" + e.Location
			}
			chip := chipStyle(e.Color, w).Render(truncate(text, w))
			if idx == m.selected {
				chip = selectedRowStyle.Render(chip)
			}
			chips = append(chips, chip)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line, lipgloss.JoinHorizontal(lipgloss.Top, chips...)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) cellWidth() int {
	w := (m.width - 8) / 7
	if w < 10 {
		w = 10
	}
	return w
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return string(r[:1])
	}
	return string(r[:width-1]) + "…"
}
