package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/todoscreen/internal/model"
	"github.com/dori/todoscreen/internal/store"
	"github.com/dori/todoscreen/internal/ui/theme"
)

// Focus is the part of the screen receiving keys
type Focus int

const (
	FocusInput Focus = iota
	FocusList
)

func (f Focus) String() string {
	switch f {
	case FocusInput:
		return "input"
	case FocusList:
		return "list"
	default:
		return "unknown"
	}
}

// Layout of the view, in lines from its top edge:
//
//	0-2  input box and [Save]
//	3    spacer
//	4    "more above" indicator
//	5..  one row per todo
//	last "more below" indicator
const (
	inputLines   = 3
	listTop      = 5
	reservedRows = listTop + 1
	saveLabel    = "[Save]"

	// MinHeight fits the empty-state hint, or one row and both indicators
	MinHeight = listTop + 3
)

// StateChangedMsg is emitted after a transition changed the list
type StateChangedMsg struct {
	Action store.Action
	Todo   model.Todo // the todo that was added or removed
	Len    int
}

// Options configures a TodoListView
type Options struct {
	Placeholder string
	CharLimit   int
	Clock       func() time.Time
}

// TodoListView is the single screen: an input row above a list of todos
type TodoListView struct {
	state model.AppState
	clock func() time.Time

	width  int
	height int

	focus        Focus
	input        textinput.Model
	cursor       int
	scrollOffset int
}

// NewTodoListView creates the screen with an empty list and the input focused
func NewTodoListView(opts Options) TodoListView {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = opts.CharLimit
	ti.Focus()

	return TodoListView{
		state: store.New(),
		clock: opts.Clock,
		focus: FocusInput,
		input: ti,
	}
}

// Init starts the cursor blinking
func (v TodoListView) Init() tea.Cmd {
	return textinput.Blink
}

// IsInputMode returns true when keys go to the text field
func (v TodoListView) IsInputMode() bool {
	return v.focus == FocusInput
}

// Focus returns which part of the screen has focus
func (v TodoListView) Focus() Focus {
	return v.focus
}

// State returns the current list state
func (v TodoListView) State() model.AppState {
	return v.state
}

// Cursor returns the highlighted row index
func (v TodoListView) Cursor() int {
	return v.cursor
}

// InputValue returns the text currently in the field
func (v TodoListView) InputValue() string {
	return v.input.Value()
}

// SetSize updates the view dimensions
func (v TodoListView) SetSize(width, height int) TodoListView {
	v.width = width
	v.height = height
	// border + padding + prompt + cursor, then the save control
	w := width - 6 - 1 - lipgloss.Width(saveLabel) - 3
	if w < 10 {
		w = 10
	}
	v.input.Width = w
	v.ensureCursorVisible()
	return v
}

// visibleTaskCount returns how many rows fit in the viewport
func (v TodoListView) visibleTaskCount() int {
	available := v.height - reservedRows
	if available < 1 {
		available = 1
	}
	return available
}

// ensureCursorVisible adjusts scrollOffset to keep the cursor in view
func (v *TodoListView) ensureCursorVisible() {
	visible := v.visibleTaskCount()

	if v.cursor >= len(v.state.Todos) {
		v.cursor = len(v.state.Todos) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}

	if v.cursor < v.scrollOffset {
		v.scrollOffset = v.cursor
	}
	if v.cursor >= v.scrollOffset+visible {
		v.scrollOffset = v.cursor - visible + 1
	}

	maxOffset := len(v.state.Todos) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.scrollOffset > maxOffset {
		v.scrollOffset = maxOffset
	}
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
}

// Update handles messages for the screen
func (v TodoListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if v.focus == FocusInput {
			return v.handleInputMode(msg)
		}
		return v.handleListMode(msg)

	case tea.MouseMsg:
		return v.handleMouse(msg)
	}

	// Blink and other textinput internals
	if v.focus == FocusInput {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

// handleInputMode handles keypresses while typing
func (v TodoListView) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return v.submit()
	case "esc", "tab":
		return v.setFocus(FocusList), nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleListMode handles keypresses while browsing the list
func (v TodoListView) handleListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		v.moveCursor(-1)
	case "down", "j":
		v.moveCursor(1)
	case "g", "home":
		v.cursor = 0
		v.ensureCursorVisible()
	case "G", "end":
		v.cursor = len(v.state.Todos) - 1
		v.ensureCursorVisible()
	case "pgup", "ctrl+u":
		v.moveCursor(-v.visibleTaskCount())
	case "pgdown", "ctrl+d":
		v.moveCursor(v.visibleTaskCount())
	case "enter", " ", "x", "delete":
		return v.removeAt(v.cursor)
	case "tab", "a", "i":
		v = v.setFocus(FocusInput)
		return v, textinput.Blink
	}
	return v, nil
}

// handleMouse maps clicks and wheel events onto the layout
func (v TodoListView) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		v.moveCursor(-1)
		return v, nil
	case tea.MouseButtonWheelDown:
		v.moveCursor(1)
		return v, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return v, nil
	}

	if msg.Y >= 0 && msg.Y < inputLines {
		boxW := lipgloss.Width(v.renderInputBox())
		saveW := lipgloss.Width(theme.Current.Styles.Save.Render(saveLabel))
		switch {
		case msg.X < boxW:
			v = v.setFocus(FocusInput)
			return v, textinput.Blink
		case msg.X < boxW+saveW:
			return v.submit()
		}
		return v, nil
	}

	if i, ok := v.RowAt(msg.Y); ok {
		return v.removeAt(i)
	}
	return v, nil
}

// RowAt returns the index of the todo drawn on line y of the view
func (v TodoListView) RowAt(y int) (int, bool) {
	row := y - listTop
	if row < 0 || row >= v.visibleTaskCount() {
		return 0, false
	}
	i := v.scrollOffset + row
	if i >= len(v.state.Todos) {
		return 0, false
	}
	return i, true
}

func (v *TodoListView) moveCursor(delta int) {
	v.cursor += delta
	v.ensureCursorVisible()
}

func (v TodoListView) setFocus(f Focus) TodoListView {
	v.focus = f
	if f == FocusInput {
		v.input.Focus()
	} else {
		v.input.Blur()
	}
	return v
}

// submit adds the field's text as a new todo. Blank input is ignored
// without feedback and the field keeps whatever was typed.
func (v TodoListView) submit() (tea.Model, tea.Cmd) {
	text := v.input.Value()
	if strings.TrimSpace(text) == "" {
		return v, nil
	}

	action := store.AddTodo{Text: text, At: v.clock()}
	v.state = store.Reduce(v.state, action)
	v.input.SetValue("")

	added := v.state.Todos[len(v.state.Todos)-1]
	v.cursor = len(v.state.Todos) - 1
	v.ensureCursorVisible()

	return v, v.changed(action, added)
}

// removeAt removes the todo on row i, if there is one
func (v TodoListView) removeAt(i int) (tea.Model, tea.Cmd) {
	if i < 0 || i >= len(v.state.Todos) {
		return v, nil
	}
	return v.removeByID(v.state.Todos[i].Key())
}

func (v TodoListView) removeByID(id int64) (tea.Model, tea.Cmd) {
	todo, found := store.Find(v.state, id)

	action := store.RemoveTodo{ID: id}
	v.state = store.Reduce(v.state, action)
	v.ensureCursorVisible()

	if !found {
		return v, nil
	}
	return v, v.changed(action, todo)
}

func (v TodoListView) changed(action store.Action, todo model.Todo) tea.Cmd {
	n := len(v.state.Todos)
	return func() tea.Msg {
		return StateChangedMsg{Action: action, Todo: todo, Len: n}
	}
}

// View renders the screen
func (v TodoListView) View() string {
	styles := theme.Current.Styles

	var b strings.Builder

	saveStyle := styles.Save
	if strings.TrimSpace(v.input.Value()) != "" {
		saveStyle = styles.SaveActive
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		v.renderInputBox(),
		saveStyle.Render(saveLabel),
	))
	b.WriteString("\n")

	b.WriteString("\n")

	if len(v.state.Todos) == 0 {
		b.WriteString("\n")
		b.WriteString(styles.Empty.Render("Nothing to do. Type above and press enter."))
		return b.String()
	}

	visible := v.visibleTaskCount()
	endIdx := v.scrollOffset + visible
	if endIdx > len(v.state.Todos) {
		endIdx = len(v.state.Todos)
	}

	if v.scrollOffset > 0 {
		b.WriteString(styles.Scroll.Render(fmt.Sprintf("  ↑ %d more above", v.scrollOffset)))
	}
	b.WriteString("\n")

	rowWidth := v.width - 2
	for i := v.scrollOffset; i < endIdx; i++ {
		b.WriteString(v.renderRow(i, rowWidth))
		b.WriteString("\n")
	}

	if remaining := len(v.state.Todos) - endIdx; remaining > 0 {
		b.WriteString(styles.Scroll.Render(fmt.Sprintf("  ↓ %d more below", remaining)))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (v TodoListView) renderInputBox() string {
	styles := theme.Current.Styles
	box := styles.Input
	if v.focus == FocusInput {
		box = styles.InputFocused
	}
	return box.Render(v.input.View())
}

func (v TodoListView) renderRow(i, width int) string {
	styles := theme.Current.Styles
	todo := v.state.Todos[i]

	prefix := "  "
	style := styles.Item
	if v.focus == FocusList && i == v.cursor {
		prefix = "› "
		style = styles.ItemCursor
	}

	text := prefix + todo.Text
	if width > 4 && lipgloss.Width(text) > width-2 {
		text = truncate(text, width-3) + "…"
	}
	return style.Render(text)
}

// truncate cuts s to at most n display cells
func truncate(s string, n int) string {
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > n {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String()
}
