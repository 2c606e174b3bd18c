package main

import "github.com/charmbracelet/lipgloss"

const (
	panelHeight = 5
	panelWidth  = 48
)

var (
	appStyle = lipgloss.NewStyle().Margin(1, 2)

	// the panel clips its content, so an inline notice taller than the
	// panel is cut off; a portal notice is not
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(panelWidth).
			Height(panelHeight).
			MaxHeight(panelHeight + 2)

	hintStyle = lipgloss.NewStyle().Faint(true)

	logStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 0).BorderLeft(true).BorderTop(false).BorderRight(false).BorderBottom(false)
)

// panelOrigin is the screen cell of the panel's first content cell.
func panelOrigin() (int, int) {
	return appStyle.GetMarginLeft() + panelStyle.GetBorderLeftSize(),
		appStyle.GetMarginTop() + panelStyle.GetBorderTopSize()
}
