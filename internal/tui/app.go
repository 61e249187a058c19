// Package tui is the terminal calendar client: a Bubble Tea program over the
// view controller, rendering month, week and day views.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkravets/eventcal/internal/calendar"
	"github.com/mkravets/eventcal/internal/controller"
	"github.com/mkravets/eventcal/internal/dategrid"
)

type windowLoadedMsg struct {
	err error
}

type savedMsg struct {
	err error
}

type deletedMsg struct {
	err error
}

type Model struct {
	ctrl *controller.ViewController

	width  int
	height int

	// selected is the index into the current day's sorted events, day view
	// only.
	selected int

	form    *eventForm
	loading bool
	errMsg  string
}

func New(ctrl *controller.ViewController) Model {
	return Model{ctrl: ctrl}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return windowLoadedMsg{err: ctrl.LoadWindow(context.Background(), ctrl.CurrentDate())}
	}
}

func (m Model) navigateCmd(direction int) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return windowLoadedMsg{err: ctrl.Navigate(context.Background(), direction)}
	}
}

func (m Model) todayCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return windowLoadedMsg{err: ctrl.GoToToday(context.Background())}
	}
}

func (m Model) saveCmd(id string, draft calendar.Draft) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		_, err := ctrl.CreateOrUpdate(context.Background(), id, draft)
		return savedMsg{err: err}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return deletedMsg{err: ctrl.DeleteEvent(context.Background(), id)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case windowLoadedMsg:
		m.loading = false
		m.errMsg = ""
		if msg.err != nil {
			m.errMsg = "Failed to load events"
		}
		m.selected = 0
		return m, nil

	case savedMsg:
		if msg.err != nil {
			var verr *controller.ValidationError
			if errors.As(msg.err, &verr) {
				// Keep the form open with the draft intact.
				m.errMsg = verr.Error()
				return m, nil
			}
			m.errMsg = "Failed to save event"
			return m, nil
		}
		m.form = nil
		m.errMsg = ""
		return m, nil

	case deletedMsg:
		if msg.err != nil {
			m.errMsg = "Failed to delete event"
			return m, nil
		}
		m.form = nil
		m.errMsg = ""
		m.selected = 0
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "left", "h":
		m.loading = true
		return m, m.navigateCmd(-1)
	case "right", "l":
		m.loading = true
		return m, m.navigateCmd(1)
	case "t":
		m.loading = true
		return m, m.todayCmd()

	case "m":
		m.ctrl.SetViewMode(dategrid.ViewMonth)
		return m, nil
	case "w":
		m.ctrl.SetViewMode(dategrid.ViewWeek)
		return m, nil
	case "d":
		m.ctrl.SetViewMode(dategrid.ViewDay)
		return m, nil

	case "j", "down":
		if m.ctrl.Mode() == dategrid.ViewDay && m.selected < len(m.dayEvents())-1 {
			m.selected++
		}
		return m, nil
	case "k", "up":
		if m.ctrl.Mode() == dategrid.ViewDay && m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "n":
		m.ctrl.SelectDate(m.ctrl.CurrentDate())
		m.form = newEventForm("", calendar.Draft{
			Date:      calendar.FormatDate(m.ctrl.CurrentDate()),
			StartTime: "09:00",
			EndTime:   "10:00",
			Color:     calendar.DefaultColor,
		})
		return m, nil

	case "e", "enter":
		if m.ctrl.Mode() != dategrid.ViewDay {
			return m, nil
		}
		events := m.dayEvents()
		if m.selected >= len(events) {
			return m, nil
		}
		e := events[m.selected]
		m.ctrl.SelectEvent(e)
		m.form = newEventForm(e.ID, calendar.Draft{
			Title:       e.Title,
			Date:        e.Date,
			StartTime:   e.StartTime,
			EndTime:     e.EndTime,
			Description: e.Description,
			Location:    e.Location,
			Color:       e.Color,
		})
		return m, nil

	case "x":
		if m.ctrl.Mode() != dategrid.ViewDay {
			return m, nil
		}
		events := m.dayEvents()
		if m.selected >= len(events) {
			return m, nil
		}
		return m, m.deleteCmd(events[m.selected].ID)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		m.errMsg = ""
		m.ctrl.ClearSelection()
		return m, nil
	case "enter":
		return m, m.saveCmd(m.form.id, m.form.draft())
	case "ctrl+x":
		if m.form.id != "" {
			return m, m.deleteCmd(m.form.id)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) dayEvents() []calendar.Event {
	return calendar.ForDate(m.ctrl.Events(), m.ctrl.CurrentDate())
}

func (m Model) currentDate() time.Time {
	return m.ctrl.CurrentDate()
}
