package dialogs

import (
	"fmt"

	"github.com/andareed/teanotice/logging"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var closeHelp = key.NewBinding(
	key.WithKeys("enter", "esc", "?"),
	key.WithHelp("enter/esc", "return"),
)

// Help lists key bindings in a bordered box until dismissed.
type Help struct {
	visible  bool
	bindings []key.Binding
	help     help.Model
}

func (d Help) Init() tea.Cmd { return nil }

// NewHelpDialog creates a new help dialog showing the given bindings.
func NewHelpDialog(bindings []key.Binding) *Help {
	h := help.New()
	h.ShowAll = true
	return &Help{
		visible:  true,
		bindings: bindings,
		help:     h,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(m, closeHelp) {
			logging.Debugf("help dialog: closed with %q", m.String())
			d.visible = false
		}
	}
	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2)

	// one column per binding keeps the key/description pairs aligned
	columns := make([][]key.Binding, 0, 1)
	columns = append(columns, d.bindings)

	hint := lipgloss.NewStyle().Faint(true).Render(d.help.ShortHelpView([]key.Binding{closeHelp}))
	return box.Render(fmt.Sprintf("%s\n\n%s", d.help.FullHelpView(columns), hint))
}

func (d *Help) Show() { d.visible = true }
func (d *Help) Hide() { d.visible = false }

func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
func (d Help) IsVisible() bool { return d.visible }
