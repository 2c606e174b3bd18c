package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is a modal the owner program shows over everything else,
// notices included. Keys go to the dialog while it is visible.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
