package dialogs

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestHelpDialogListsBindingsAndCloses(t *testing.T) {
	d := NewHelpDialog([]key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new notice")),
	})
	assert.True(t, d.IsVisible())
	assert.Contains(t, d.View(), "new notice")

	next, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.False(t, next.IsVisible())
	assert.Empty(t, next.View())

	next.Show()
	assert.True(t, next.IsVisible())
}

func TestHelpDialogIgnoresOtherKeys(t *testing.T) {
	d := NewHelpDialog(nil)
	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.True(t, d.IsVisible())
}
