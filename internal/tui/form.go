package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mkravets/eventcal/internal/calendar"
)

const (
	fieldTitle = iota
	fieldDate
	fieldStart
	fieldEnd
	fieldLocation
	fieldDescription
	fieldCount
)

// eventForm is the create/edit modal. id is empty for a new event.
type eventForm struct {
	id       string
	inputs   []textinput.Model
	focus    int
	colorIdx int
}

func newEventForm(id string, d calendar.Draft) *eventForm {
	mk := func(placeholder, value string, width int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.SetValue(value)
		in.CharLimit = 120
		in.Width = width
		return in
	}

	f := &eventForm{
		id: id,
		inputs: []textinput.Model{
			fieldTitle:       mk("Add title", d.Title, 40),
			fieldDate:        mk("YYYY-MM-DD", d.Date, 12),
			fieldStart:       mk("HH:MM", d.StartTime, 7),
			fieldEnd:         mk("HH:MM", d.EndTime, 7),
			fieldLocation:    mk("Add location", d.Location, 40),
			fieldDescription: mk("Add description", d.Description, 40),
		},
	}
	for i, c := range calendar.Palette {
		if c.Value == d.Color {
			f.colorIdx = i
		}
	}
	f.inputs[fieldTitle].Focus()
	return f
}

func (f *eventForm) update(msg tea.KeyMsg) (*eventForm, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		f.setFocus((f.focus + 1) % fieldCount)
		return f, nil
	case "shift+tab", "up":
		f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		return f, nil
	case "ctrl+p":
		f.colorIdx = (f.colorIdx + 1) % len(calendar.Palette)
		return f, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *eventForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *eventForm) draft() calendar.Draft {
	return calendar.Draft{
		Title:       strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Date:        strings.TrimSpace(f.inputs[fieldDate].Value()),
		StartTime:   strings.TrimSpace(f.inputs[fieldStart].Value()),
		EndTime:     strings.TrimSpace(f.inputs[fieldEnd].Value()),
		Location:    strings.TrimSpace(f.inputs[fieldLocation].Value()),
		Description: strings.TrimSpace(f.inputs[fieldDescription].Value()),
		Color:       calendar.Palette[f.colorIdx].Value,
	}
}

func (f *eventForm) view() string {
	header := "Create Event"
	if f.id != "" {
		header = "Edit Event"
	}

	swatches := make([]string, 0, len(calendar.Palette))
	for i, c := range calendar.Palette {
		swatches = append(swatches, swatchStyle(c.Value, i == f.colorIdx).Render(c.Name))
	}

	rows := []string{
		titleStyle.Render(header),
		f.inputs[fieldTitle].View(),
		lipgloss.JoinHorizontal(lipgloss.Top,
			f.inputs[fieldDate].View(), " ",
			f.inputs[fieldStart].View(), " to ",
			f.inputs[fieldEnd].View()),
		f.inputs[fieldLocation].View(),
		f.inputs[fieldDescription].View(),
		lipgloss.JoinHorizontal(lipgloss.Top, swatches...),
		statusStyle.Render("enter save · esc cancel · ctrl+p color · ctrl+x delete"),
	}
	return formBoxStyle.Render(strings.Join(rows, "\n\n"))
}
