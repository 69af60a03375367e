package command

import (
	"github.com/charmbracelet/log"

	"github.com/emrekaya/todo/internal/state"
)

// Commands are the cross-widget messages of the app: a leaf widget
// (the delete button in a list row) does not own the state it wants to
// mutate, so it emits a command and the delegate applies it at the top.

type Kind string

const (
	KindSave       Kind = "todo.save"
	KindDeleteByID Kind = "todo.delete"
)

// Command is a tagged variant: Kind selects the operation, ID carries
// the payload for KindDeleteByID and is empty otherwise.
type Command struct {
	Kind Kind
	ID   string
}

func Save() Command { return Command{Kind: KindSave} }

func DeleteByID(id string) Command { return Command{Kind: KindDeleteByID, ID: id} }

// Handler consumes a command. The bool reports whether the command was
// handled; unhandled commands travel down the chain.
type Handler interface {
	Handle(cmd Command) (bool, error)
}

// Delegate is the stateless dispatcher for the two recognized kinds.
// Anything else is reported and passed to next, never swallowed.
type Delegate struct {
	app  *state.App
	next Handler
}

// NewDelegate wires a delegate to the app state. next may be nil when
// the delegate is the end of the chain.
func NewDelegate(app *state.App, next Handler) *Delegate {
	return &Delegate{app: app, next: next}
}

func (d *Delegate) Handle(cmd Command) (bool, error) {
	switch cmd.Kind {
	case KindSave:
		return true, d.app.Save()
	case KindDeleteByID:
		return true, d.app.DeleteTodo(cmd.ID)
	}
	log.Warn("command forwarded", "kind", cmd.Kind)
	if d.next != nil {
		return d.next.Handle(cmd)
	}
	return false, nil
}
