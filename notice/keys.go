package notice

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyMap struct {
	Dismiss key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dismiss: key.NewBinding(
			key.WithKeys("x", "esc"),
			key.WithHelp("x/esc", "dismiss notice"),
		),
	}
}

// handleKey activates the close control of a focused, closable notice.
func (n *Notice) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !n.focused || !n.props.Closable {
		return nil
	}
	if key.Matches(msg, n.keys.Dismiss) {
		n.Close(nil)
	}
	return nil
}
