package store

import (
	"fmt"
	"time"

	"github.com/dori/todoscreen/internal/model"
)

// Action is a request to change the state. The set is closed: only
// AddTodo and RemoveTodo implement it.
type Action interface {
	isAction()
	fmt.Stringer
}

// AddTodo appends a todo created at At
type AddTodo struct {
	Text string
	At   time.Time
}

// RemoveTodo removes the todo with ID
type RemoveTodo struct {
	ID int64
}

func (AddTodo) isAction()    {}
func (RemoveTodo) isAction() {}

func (a AddTodo) String() string    { return fmt.Sprintf("add_todo(%q)", a.Text) }
func (a RemoveTodo) String() string { return fmt.Sprintf("remove_todo(%d)", a.ID) }

// Reduce computes the next state for action. Anything it does not
// recognize, including nil, leaves the state as it is.
func Reduce(state model.AppState, action Action) model.AppState {
	switch a := action.(type) {
	case AddTodo:
		return Add(state, a.Text, a.At)
	case RemoveTodo:
		return Remove(state, a.ID)
	default:
		return state
	}
}
