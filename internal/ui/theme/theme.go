package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for the UI
type Theme struct {
	Name string

	// Base colors
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Color

	// Semantic colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Info      lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
}

// Styles holds pre-computed lipgloss styles based on theme
type Styles struct {
	Header  lipgloss.Style
	Heading lipgloss.Style
	Counter lipgloss.Style

	// List rows
	Item       lipgloss.Style
	ItemCursor lipgloss.Style
	Empty      lipgloss.Style
	Scroll     lipgloss.Style

	// Input row
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Save         lipgloss.Style
	SaveActive   lipgloss.Style

	// Status line
	Status lipgloss.Style
	Error  lipgloss.Style

	// Help / footer
	HelpTitle   lipgloss.Style
	HelpSection lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
}

// NewStyles creates styles from a theme
func NewStyles(t Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Padding(0, 1),

		Heading: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),

		Counter: lipgloss.NewStyle().
			Foreground(t.Secondary),

		Item: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),

		ItemCursor: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Background(t.Highlight).
			Bold(true).
			Padding(0, 1),

		Empty: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Italic(true).
			Padding(1, 1),

		Scroll: lipgloss.NewStyle().
			Foreground(t.Subtle),

		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),

		Save: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Bold(true).
			Padding(0, 1),

		SaveActive: lipgloss.NewStyle().
			Foreground(t.Success).
			Bold(true).
			Padding(0, 1),

		Status: lipgloss.NewStyle().
			Foreground(t.Info).
			Italic(true),

		Error: lipgloss.NewStyle().
			Foreground(t.Error),

		HelpTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			MarginBottom(1),

		HelpSection: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary).
			MarginTop(1),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.Subtle),
	}
}

// Current holds the current active theme and styles
var Current = struct {
	Theme  Theme
	Styles Styles
}{
	Theme:  Nord,
	Styles: NewStyles(Nord),
}

// SetTheme changes the current theme
func SetTheme(t Theme) {
	Current.Theme = t
	Current.Styles = NewStyles(t)
}

// Available returns all available themes
func Available() []Theme {
	return []Theme{
		Nord,
		Dracula,
		Gruvbox,
		Catppuccin,
	}
}

// Names lists the names of every available theme
func Names() []string {
	var names []string
	for _, t := range Available() {
		names = append(names, t.Name)
	}
	return names
}

// ByName returns a theme by its name, ignoring case
func ByName(name string) (Theme, bool) {
	for _, t := range Available() {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Theme{}, false
}

// Next returns the theme after the current one, wrapping around
func Next() Theme {
	themes := Available()
	for i, t := range themes {
		if t.Name == Current.Theme.Name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
