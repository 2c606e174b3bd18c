package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit           key.Binding
	NewNotice      key.Binding
	ReplaceContent key.Binding
	ToggleVisible  key.Binding
	Longer         key.Binding
	Shorter        key.Binding
	ToggleClosable key.Binding
	FocusNotice    key.Binding
	OpenHelp       key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	NewNotice: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new notice (removes the current one)"),
	),
	ReplaceContent: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "replace content, same key"),
	),
	ToggleVisible: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "toggle visible"),
	),
	Longer: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "duration +0.5s"),
	),
	Shorter: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "duration -0.5s"),
	),
	ToggleClosable: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "toggle close control"),
	),
	FocusNotice: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "focus notice (x/esc dismiss)"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.NewNotice,
		k.ReplaceContent,
		k.ToggleVisible,
		k.Longer,
		k.Shorter,
		k.ToggleClosable,
		k.FocusNotice,
		k.OpenHelp,
		k.Quit,
	}
}
