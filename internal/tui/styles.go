package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Align(lipgloss.Center)

	cellBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, true, false).
			BorderForeground(lipgloss.Color("238"))

	dayNumStyle      = lipgloss.NewStyle().Align(lipgloss.Right)
	otherMonthStyle  = dayNumStyle.Copy().Foreground(lipgloss.Color("240"))
	todayStyle       = dayNumStyle.Copy().Foreground(lipgloss.Color("33")).Bold(true)
	overflowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hourLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(6).Align(lipgloss.Right).PaddingRight(1)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Padding(0, 1)
	selectedRowStyle = lipgloss.NewStyle().Reverse(true)

	formBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(1, 2)
)

// chipStyle renders an event chip in its palette color.
func chipStyle(hex string, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color("255")).
		Width(width).
		MaxHeight(1)
}

// swatchStyle renders a palette swatch for the form's color picker.
func swatchStyle(hex string, selected bool) lipgloss.Style {
	s := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Padding(0, 1)
	if selected {
		s = s.Bold(true).Foreground(lipgloss.Color("255"))
	}
	return s
}
