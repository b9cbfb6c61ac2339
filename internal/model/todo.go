package model

// Todo represents one entry on the list
type Todo struct {
	ID   int64  `json:"id"`   // Millisecond timestamp of creation, also the render key
	Text string `json:"text"`
	Done bool   `json:"done"` // Always false; nothing marks a todo complete
}

// Key returns the rendering key for the todo
func (t Todo) Key() int64 {
	return t.ID
}

// AppState is the complete in-memory state of the screen
type AppState struct {
	Todos []Todo `json:"todos"`
}

// Len returns the number of todos held
func (s AppState) Len() int {
	return len(s.Todos)
}

// IsEmpty returns true if there are no todos
func (s AppState) IsEmpty() bool {
	return len(s.Todos) == 0
}
