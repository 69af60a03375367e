package state

import (
	"fmt"

	"github.com/emrekaya/todo/internal/model"
)

// Saver is the slice of the store the app state needs. *jsonstore.Store
// satisfies it; tests swap in counting fakes.
type Saver interface {
	Save(items []model.Item) error
}

// App owns the ordered todo list plus the staging text bound to the
// add input. Newest items sit at the front. Every mutating operation
// writes the whole list back through the Saver before returning; a
// failed write aborts the operation with an error and callers treat
// that as fatal (there is no recovery path).
type App struct {
	NewTodo string
	Todos   []model.Item

	store Saver
}

// New builds the single app state for the process from an already
// loaded list. This is the only initialization point; nothing else
// constructs or reloads state.
func New(items []model.Item, store Saver) *App {
	return &App{Todos: items, store: store}
}

// AddTodo turns the staging text into a new item at the front of the
// list, resets the staging text and persists. The text is taken as-is;
// an empty string makes an empty item.
func (a *App) AddTodo() error {
	item := model.New(a.NewTodo)
	a.Todos = append([]model.Item{item}, a.Todos...)
	a.NewTodo = ""
	if err := a.Save(); err != nil {
		return err
	}
	return nil
}

// ToggleDone flips the done flag of the item with the given id. An
// unknown id is a no-op. Toggling does not save by itself: the done
// watcher turns the transition into a Save command, so widget-level
// toggles and CLI toggles persist through the same path.
func (a *App) ToggleDone(id string) {
	for i := range a.Todos {
		if a.Todos[i].ID == id {
			a.Todos[i].Done = !a.Todos[i].Done
			return
		}
	}
}

// DeleteTodo removes the item with the given id and persists. An
// unknown id removes nothing but still saves (an idempotent rewrite).
func (a *App) DeleteTodo(id string) error {
	out := a.Todos[:0]
	for _, it := range a.Todos {
		if it.ID != id {
			out = append(out, it)
		}
	}
	a.Todos = out
	return a.Save()
}

// ClearCompleted drops every done item and persists exactly once, no
// matter how many items go.
func (a *App) ClearCompleted() error {
	out := a.Todos[:0]
	for _, it := range a.Todos {
		if !it.Done {
			out = append(out, it)
		}
	}
	a.Todos = out
	return a.Save()
}

// Save persists the current snapshot.
func (a *App) Save() error {
	if err := a.store.Save(a.Todos); err != nil {
		return fmt.Errorf("save todos: %w", err)
	}
	return nil
}

// Stats returns done and pending counts for headers.
func (a *App) Stats() (done, pending int) {
	for _, it := range a.Todos {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
