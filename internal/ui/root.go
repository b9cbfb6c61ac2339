package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/todoscreen/internal/app"
	"github.com/dori/todoscreen/internal/store"
	"github.com/dori/todoscreen/internal/ui/theme"
	"github.com/dori/todoscreen/internal/ui/views"
)

// Lines the root model draws around the list view
const (
	headerHeight = 2 // heading + blank
	footerHeight = 2 // status + key hints
	minHeight    = headerHeight + views.MinHeight + footerHeight
)

// RootModel frames the todo screen with a header, footer and help overlay
type RootModel struct {
	app    *app.App
	keys   KeyMap
	help   help.Model
	width  int
	height int

	listView    views.TodoListView
	helpVisible bool

	// Status message
	statusMsg string
	errorMsg  string
}

// NewRootModel creates a new root model
func NewRootModel(application *app.App) RootModel {
	h := help.New()
	h.ShowAll = false

	cfg := application.Config.UI
	list := views.NewTodoListView(views.Options{
		Placeholder: cfg.Placeholder,
		CharLimit:   cfg.CharLimit,
		Clock:       application.Clock,
	})

	return RootModel{
		app:      application,
		keys:     DefaultKeyMap().ForFocus(list.Focus()),
		help:     h,
		listView: list,
	}
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	return m.listView.Init()
}

// ListView exposes the embedded screen
func (m RootModel) ListView() views.TodoListView {
	return m.listView
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.listView = m.listView.SetSize(m.width, m.contentHeight())
		return m, nil

	case tea.KeyMsg:
		// Clear status/error on any keypress
		m.statusMsg = ""
		m.errorMsg = ""

		isInputMode := m.listView.IsInputMode()

		switch {
		case key.Matches(msg, m.keys.Quit):
			// ctrl+c always quits, but 'q' only quits when not typing
			if msg.String() == "ctrl+c" || !isInputMode {
				m.app.Log.Printf("quit with %d todos", m.listView.State().Len())
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.ThemeCycle):
			m.cycleTheme()
			return m, nil
		}

		if m.helpVisible {
			if msg.String() == "esc" || key.Matches(msg, m.keys.Help) {
				m.helpVisible = false
			}
			return m, nil
		}
		if !isInputMode && key.Matches(msg, m.keys.Help) {
			m.helpVisible = true
			return m, nil
		}

	case tea.MouseMsg:
		if m.helpVisible || m.tooSmall() {
			return m, nil
		}
		msg.Y -= headerHeight
		return m.delegate(msg)

	case views.StateChangedMsg:
		m.app.Log.Printf("dispatch %s -> %d todos", msg.Action, msg.Len)
		switch msg.Action.(type) {
		case store.AddTodo:
			m.statusMsg = fmt.Sprintf("Added %q", msg.Todo.Text)
		case store.RemoveTodo:
			m.statusMsg = fmt.Sprintf("Removed %q", msg.Todo.Text)
		}
		if err := m.app.Log.TakeErr(); err != nil {
			m.errorMsg = fmt.Sprintf("Debug log disabled: %v", err)
		}
		return m, nil
	}

	return m.delegate(msg)
}

// delegate hands msg to the list view and re-derives focus-dependent keys
func (m RootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	newListView, cmd := m.listView.Update(msg)
	m.listView = newListView.(views.TodoListView)
	m.keys = DefaultKeyMap().ForFocus(m.listView.Focus())
	return m, cmd
}

func (m RootModel) tooSmall() bool {
	return m.height < minHeight
}

func (m RootModel) contentHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 1 {
		h = 1
	}
	return h
}

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.tooSmall() {
		return theme.Current.Styles.Error.Render(
			fmt.Sprintf("Terminal too small: need %d rows, have %d", minHeight, m.height))
	}

	var content string
	if m.helpVisible {
		content = m.renderHelp()
	} else {
		content = m.listView.View()
	}

	// Exactly contentHeight lines so the footer stays at the bottom
	contentHeight := m.contentHeight()
	lines := strings.Split(content, "\n")
	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
	}
	for len(lines) < contentHeight {
		lines = append(lines, "")
	}
	content = strings.Join(lines, "\n")

	return strings.Join([]string{m.renderHeader(), content, m.renderFooter()}, "\n")
}

// renderHeader renders the heading line and the blank line under it
func (m RootModel) renderHeader() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	n := m.listView.State().Len()
	noun := "items"
	if n == 1 {
		noun = "item"
	}

	title := styles.Heading.Render(m.app.Config.UI.Title)
	count := styles.Counter.Render(fmt.Sprintf("%d %s", n, noun))
	leftSide := lipgloss.JoinHorizontal(lipgloss.Center, title, count)
	rightSide := styles.Header.Render(fmt.Sprintf("theme: %s", t.Name))

	gap := m.width - lipgloss.Width(leftSide) - lipgloss.Width(rightSide)
	if gap < 0 {
		gap = 0
	}

	return leftSide + strings.Repeat(" ", gap) + rightSide + "\n"
}

// renderFooter renders the status line and context-aware key hints
func (m RootModel) renderFooter() string {
	styles := theme.Current.Styles

	var statusLine string
	if m.errorMsg != "" {
		statusLine = styles.Error.Render(m.errorMsg)
	} else if m.statusMsg != "" {
		statusLine = styles.Status.Render(m.statusMsg)
	}

	return statusLine + "\n" + m.help.View(m.keys)
}

// renderHelp renders the help overlay
func (m RootModel) renderHelp() string {
	styles := theme.Current.Styles

	var b strings.Builder
	b.WriteString(styles.HelpTitle.Render(m.app.Config.UI.Title + " Help"))
	b.WriteString("\n")

	full := help.New()
	full.ShowAll = true
	full.Width = m.width
	b.WriteString(full.View(DefaultKeyMap()))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpSection.Render("Mouse"))
	b.WriteString("\n")
	b.WriteString(styles.HelpKey.Render("click row  "))
	b.WriteString(styles.HelpDesc.Render("remove that todo"))
	b.WriteString("\n")
	b.WriteString(styles.HelpKey.Render("click Save "))
	b.WriteString(styles.HelpDesc.Render("add what is typed"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press ? or esc to close"))
	return b.String()
}

// cycleTheme cycles through available themes
func (m *RootModel) cycleTheme() {
	next := theme.Next()
	theme.SetTheme(next)
	m.statusMsg = fmt.Sprintf("Theme: %s", next.Name)
	m.app.Log.Printf("theme -> %s", next.Name)
}
