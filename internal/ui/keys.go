package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/dori/todoscreen/internal/ui/views"
)

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Todo actions
	Write  key.Binding
	Submit key.Binding
	Leave  key.Binding
	Remove key.Binding

	// General
	Help       key.Binding
	ThemeCycle key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "page down"),
		),

		Write: key.NewBinding(
			key.WithKeys("tab", "a", "i"),
			key.WithHelp("a/tab", "new todo"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc", "tab"),
			key.WithHelp("esc/tab", "to list"),
		),
		Remove: key.NewBinding(
			key.WithKeys("enter", " ", "x", "delete"),
			key.WithHelp("enter/x/click", "remove"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ThemeCycle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ForFocus enables only the bindings that do something for f
func (k KeyMap) ForFocus(f views.Focus) KeyMap {
	typing := f == views.FocusInput

	for _, b := range []*key.Binding{
		&k.Up, &k.Down, &k.Top, &k.Bottom, &k.PageUp, &k.PageDown,
		&k.Write, &k.Remove, &k.Help,
	} {
		b.SetEnabled(!typing)
	}
	k.Submit.SetEnabled(typing)
	k.Leave.SetEnabled(typing)

	// 'q' is a character while typing
	if typing {
		k.Quit.SetHelp("C-c", "quit")
	} else {
		k.Quit.SetHelp("q", "quit")
	}
	return k
}

// ShortHelp returns short help bindings (for the footer)
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Leave, k.Write, k.Remove, k.Up, k.Down, k.Help, k.ThemeCycle, k.Quit}
}

// FullHelp returns full help bindings (for the help overlay)
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown},
		{k.Write, k.Submit, k.Leave, k.Remove},
		{k.Help, k.ThemeCycle, k.Quit},
	}
}
