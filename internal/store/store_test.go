package store

import (
	"reflect"
	"testing"
	"time"

	"github.com/dori/todoscreen/internal/model"
)

var base = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// tick returns base advanced by n milliseconds
func tick(n int) time.Time {
	return base.Add(time.Duration(n) * time.Millisecond)
}

func seeded(t *testing.T, texts ...string) model.AppState {
	t.Helper()
	s := New()
	for i, text := range texts {
		s = Add(s, text, tick(i))
	}
	return s
}

func TestNewIsEmpty(t *testing.T) {
	s := New()
	if !s.IsEmpty() || s.Len() != 0 {
		t.Fatalf("New() = %+v, want empty state", s)
	}
	if s.Todos == nil {
		t.Fatal("New() should hold an empty, non-nil slice")
	}
}

func TestAddAppends(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		text     string
		wantText string
	}{
		{"empty state", nil, "Buy milk", "Buy milk"},
		{"after others", []string{"A", "B"}, "C", "C"},
		{"trims surrounding space", []string{"A"}, "  Walk dog \t", "Walk dog"},
		{"keeps inner space", nil, "a  b", "a  b"},
		{"empty text still appends", []string{"A"}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seeded(t, tt.existing...)
			got := Add(s, tt.text, tick(100))

			if got.Len() != s.Len()+1 {
				t.Fatalf("len = %d, want %d", got.Len(), s.Len()+1)
			}
			last := got.Todos[got.Len()-1]
			if last.Text != tt.wantText {
				t.Errorf("text = %q, want %q", last.Text, tt.wantText)
			}
			if last.Done {
				t.Error("new todo should not be done")
			}
			if !reflect.DeepEqual(got.Todos[:s.Len()], s.Todos) {
				t.Errorf("existing todos changed: got %+v, want %+v", got.Todos[:s.Len()], s.Todos)
			}
		})
	}
}

func TestAddUsesMillisecondTimestamp(t *testing.T) {
	at := time.UnixMilli(1709285400123)
	got := Add(New(), "x", at)
	if got.Todos[0].ID != 1709285400123 {
		t.Fatalf("id = %d, want %d", got.Todos[0].ID, int64(1709285400123))
	}
}

func TestAddDoesNotMutateInput(t *testing.T) {
	s := seeded(t, "A", "B")
	// Leave spare capacity so an in-place append would be visible.
	roomy := model.AppState{Todos: make([]model.Todo, len(s.Todos), 10)}
	copy(roomy.Todos, s.Todos)
	before := append([]model.Todo(nil), roomy.Todos...)

	got := Add(roomy, "C", tick(50))

	if !reflect.DeepEqual(roomy.Todos, before) {
		t.Fatalf("input changed: %+v", roomy.Todos)
	}
	if extended := roomy.Todos[:3]; extended[2].Text == "C" {
		t.Fatal("Add wrote into the input's backing array")
	}
	got.Todos[0].Text = "changed"
	if roomy.Todos[0].Text != "A" {
		t.Fatal("result shares storage with input")
	}
}

func TestAddSameMillisecondGetsDistinctIDs(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s = Add(s, "X", base)
	}
	seen := make(map[int64]bool)
	var prev int64
	for i, td := range s.Todos {
		if seen[td.ID] {
			t.Fatalf("duplicate id %d", td.ID)
		}
		seen[td.ID] = true
		if i > 0 && td.ID <= prev {
			t.Fatalf("ids not increasing: %d after %d", td.ID, prev)
		}
		prev = td.ID
	}
	if s.Todos[0].ID != base.UnixMilli() {
		t.Errorf("first id = %d, want %d", s.Todos[0].ID, base.UnixMilli())
	}
}

func TestAddClockBehindLastID(t *testing.T) {
	s := Add(New(), "later", tick(1000))
	s = Add(s, "earlier clock", tick(0))
	if s.Todos[1].ID != s.Todos[0].ID+1 {
		t.Fatalf("id = %d, want %d", s.Todos[1].ID, s.Todos[0].ID+1)
	}
}

func TestRemove(t *testing.T) {
	s := seeded(t, "A", "B", "C")
	a, b, c := s.Todos[0], s.Todos[1], s.Todos[2]

	tests := []struct {
		name string
		id   int64
		want []model.Todo
	}{
		{"first", a.ID, []model.Todo{b, c}},
		{"middle", b.ID, []model.Todo{a, c}},
		{"last", c.ID, []model.Todo{a, b}},
		{"missing id is a no-op", 42, []model.Todo{a, b, c}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Remove(s, tt.id)
			if !reflect.DeepEqual(got.Todos, tt.want) {
				t.Errorf("Remove(%d) = %+v, want %+v", tt.id, got.Todos, tt.want)
			}
			if s.Len() != 3 {
				t.Errorf("input mutated, len = %d", s.Len())
			}
		})
	}
}

func TestRemoveAllMatching(t *testing.T) {
	dup := model.AppState{Todos: []model.Todo{
		{ID: 7, Text: "a"},
		{ID: 8, Text: "b"},
		{ID: 7, Text: "c"},
	}}
	got := Remove(dup, 7)
	want := []model.Todo{{ID: 8, Text: "b"}}
	if !reflect.DeepEqual(got.Todos, want) {
		t.Fatalf("got %+v, want %+v", got.Todos, want)
	}
}

func TestRemoveIdempotent(t *testing.T) {
	s := seeded(t, "A", "B")
	id := s.Todos[0].ID

	once := Remove(s, id)
	twice := Remove(once, id)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second remove changed state: %+v vs %+v", once, twice)
	}
}

func TestRemoveFromEmpty(t *testing.T) {
	got := Remove(New(), 1)
	if !got.IsEmpty() {
		t.Fatalf("got %+v, want empty", got)
	}
}

func TestFind(t *testing.T) {
	s := seeded(t, "A", "B")
	td, ok := Find(s, s.Todos[1].ID)
	if !ok || td.Text != "B" {
		t.Fatalf("Find = %+v, %v", td, ok)
	}
	if _, ok := Find(s, -1); ok {
		t.Fatal("Find(-1) should miss")
	}
}

func TestScenarioAddTwo(t *testing.T) {
	s := Reduce(New(), AddTodo{Text: "Buy milk", At: tick(0)})
	if s.Len() != 1 || s.Todos[0].Text != "Buy milk" || s.Todos[0].Done {
		t.Fatalf("after first add: %+v", s.Todos)
	}

	s = Reduce(s, AddTodo{Text: "Walk dog", At: tick(1)})
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	if s.Todos[0].Text != "Buy milk" || s.Todos[1].Text != "Walk dog" {
		t.Fatalf("order = %+v", s.Todos)
	}
}

func TestScenarioAddThenRemove(t *testing.T) {
	s := Reduce(New(), AddTodo{Text: "A", At: tick(0)})
	id := s.Todos[0].ID

	s = Reduce(s, RemoveTodo{ID: id})
	if !s.IsEmpty() {
		t.Fatalf("todos = %+v, want none", s.Todos)
	}
}

func TestScenarioDuplicateText(t *testing.T) {
	s := Reduce(New(), AddTodo{Text: "X", At: tick(0)})
	s = Reduce(s, AddTodo{Text: "X", At: tick(1)})

	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	if s.Todos[0].ID == s.Todos[1].ID {
		t.Fatal("duplicate text should still get distinct ids")
	}
}

func TestReduceUnknownAction(t *testing.T) {
	s := seeded(t, "A")
	if got := Reduce(s, nil); !reflect.DeepEqual(got, s) {
		t.Fatalf("Reduce(nil) = %+v, want %+v", got, s)
	}
}

func TestActionString(t *testing.T) {
	if got := (AddTodo{Text: "a"}).String(); got != `add_todo("a")` {
		t.Errorf("AddTodo.String() = %s", got)
	}
	if got := (RemoveTodo{ID: 3}).String(); got != "remove_todo(3)" {
		t.Errorf("RemoveTodo.String() = %s", got)
	}
}
