package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the chart explorer
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Select       key.Binding
	SeriesSelect key.Binding
	MultiToggle  key.Binding
	Clear        key.Binding
	Invert       key.Binding
	SaveView     key.Binding
	ApplyView    key.Binding
	PersistView  key.Binding
	HostPush     key.Binding
	Journal      key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "select bar"),
		),
		SeriesSelect: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "select series"),
		),
		MultiToggle: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle multi-select"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear selection"),
		),
		Invert: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "invert mode"),
		),
		SaveView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "save view"),
		),
		ApplyView: key.NewBinding(
			key.WithKeys("V"),
			key.WithHelp("V", "apply saved view"),
		),
		PersistView: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "apply host filter"),
		),
		HostPush: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "simulate host push"),
		),
		Journal: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "event journal"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.MultiToggle, k.Clear, k.Help, k.Quit}
}

// FullHelp returns all bindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.SeriesSelect, k.MultiToggle},
		{k.Clear, k.Invert, k.SaveView, k.ApplyView, k.PersistView},
		{k.HostPush, k.Journal, k.Help, k.Quit},
	}
}
