// Package store holds the todo state transitions.
//
// Every transition is a pure function of (state, input) that returns a new
// AppState. The caller owns the single current-value slot and replaces it
// with whatever a transition returns.
package store

import (
	"strings"
	"time"

	"github.com/dori/todoscreen/internal/model"
)

// New returns the empty state a screen starts with
func New() model.AppState {
	return model.AppState{Todos: []model.Todo{}}
}

// Add appends a new todo built from text to the end of the sequence.
// Text is trimmed but not validated; callers skip empty input themselves.
func Add(state model.AppState, text string, at time.Time) model.AppState {
	todos := make([]model.Todo, len(state.Todos), len(state.Todos)+1)
	copy(todos, state.Todos)
	todos = append(todos, model.Todo{
		ID:   nextID(state, at),
		Text: strings.TrimSpace(text),
		Done: false,
	})
	return model.AppState{Todos: todos}
}

// Remove drops every todo whose id equals id. A missing id is a no-op.
func Remove(state model.AppState, id int64) model.AppState {
	todos := make([]model.Todo, 0, len(state.Todos))
	for _, t := range state.Todos {
		if t.ID != id {
			todos = append(todos, t)
		}
	}
	return model.AppState{Todos: todos}
}

// Find returns the todo with the given id
func Find(state model.AppState, id int64) (model.Todo, bool) {
	for _, t := range state.Todos {
		if t.ID == id {
			return t, true
		}
	}
	return model.Todo{}, false
}

// nextID is the creation time in milliseconds, bumped past the largest id
// already held so two adds within one millisecond never share an id.
func nextID(state model.AppState, at time.Time) int64 {
	id := at.UnixMilli()
	for _, t := range state.Todos {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}
