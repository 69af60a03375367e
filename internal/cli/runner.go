package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emrekaya/todo/internal/command"
	"github.com/emrekaya/todo/internal/model"
	"github.com/emrekaya/todo/internal/state"
	"github.com/emrekaya/todo/internal/store/jsonstore"
	"github.com/emrekaya/todo/internal/tui"
	"github.com/emrekaya/todo/internal/ui"
)

// Options tune behavior from root flags.
type Options struct {
	File  string // data file override; empty means <cwd>/todos.json
	Theme string // classic, neon or mono
	Group bool   // static listing grouped by pending/done instead of the TUI
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	ui.SetTheme(opt.Theme)

	store, code := openStore(opt)
	if code != 0 {
		return code
	}

	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return doList(store, opt)

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: todo add <text...>")
			return 2
		}
		return doAdd(store, strings.Join(a, " "))

	case "done":
		if len(a) != 1 {
			ui.Fail("usage: todo done <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("done: not a number: " + a[0])
			return 2
		}
		return doToggle(store, n)

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: todo rm <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("rm: not a number: " + a[0])
			return 2
		}
		return doRemove(store, n)

	case "clear":
		return doClear(store)
	}

	ui.Fail("unknown subcommand: " + cmd)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`todo - a tiny todo list

Usage:
  todo <subcommand> [args]

Subcommands:
  add <text...>      Add a new item (text can be multiple words)
  ls                 Open the interactive list (static with -group)
  done <index>       Toggle done for item at 1-based index
  rm <index>         Remove item at 1-based index
  clear              Remove every completed item

Examples:
  todo add "Buy milk"
  todo ls
  todo done 2
  todo rm 3
`)
}

func openStore(opt Options) (*jsonstore.Store, int) {
	path := opt.File
	if path == "" {
		p, err := jsonstore.DefaultPath()
		if err != nil {
			ui.Fail("data path: " + err.Error())
			return nil, 1
		}
		path = p
	}
	return jsonstore.New(path), 0
}

// loadApp is the single load-or-default point: the app state exists
// exactly once per invocation and is handed to whatever runs next.
func loadApp(store *jsonstore.Store) (*state.App, int) {
	items, err := store.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return nil, 1
	}
	return state.New(items, store), 0
}

// -------------- subcommand impls ----------------

func doList(store *jsonstore.Store, opt Options) int {
	app, code := loadApp(store)
	if code != 0 {
		return code
	}
	if opt.Group {
		printGrouped(app)
		return 0
	}
	if err := tui.Run(app); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doAdd(store *jsonstore.Store, text string) int {
	app, code := loadApp(store)
	if code != 0 {
		return code
	}
	app.NewTodo = text
	if err := app.AddTodo(); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("added")
	return 0
}

func doToggle(store *jsonstore.Store, userIndex int) int {
	app, code := loadApp(store)
	if code != 0 {
		return code
	}
	id, code := idAt(app, userIndex)
	if code != 0 {
		return code
	}

	// Toggling only flips the flag; the watcher + delegate turn the
	// transition into the save, same as the interactive checkbox.
	watcher := command.NewDoneWatcher(app.Todos)
	delegate := command.NewDelegate(app, nil)
	app.ToggleDone(id)
	for _, c := range watcher.Observe(app.Todos) {
		if _, err := delegate.Handle(c); err != nil {
			ui.Fail("save: " + err.Error())
			return 1
		}
	}
	ui.OK("toggled")
	return 0
}

func doRemove(store *jsonstore.Store, userIndex int) int {
	app, code := loadApp(store)
	if code != 0 {
		return code
	}
	id, code := idAt(app, userIndex)
	if code != 0 {
		return code
	}
	delegate := command.NewDelegate(app, nil)
	if _, err := delegate.Handle(command.DeleteByID(id)); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("removed")
	return 0
}

func doClear(store *jsonstore.Store) int {
	app, code := loadApp(store)
	if code != 0 {
		return code
	}
	before := len(app.Todos)
	if err := app.ClearCompleted(); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("cleared %d completed", before-len(app.Todos)))
	return 0
}

func idAt(app *state.App, userIndex int) (string, int) {
	if userIndex < 1 || userIndex > len(app.Todos) {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(app.Todos), userIndex))
		ui.Hint("Hint: run `todo ls` to see valid indexes")
		return "", 2
	}
	return app.Todos[userIndex-1].ID, 0
}

// -------------- static rendering --------------

func printGrouped(app *state.App) {
	d, p := app.Stats()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(ui.Current().Title, "Todos"),
		ui.C(ui.Current().Success, ui.Current().SymOK), d,
		ui.C(ui.Current().Pending, "•"), p,
		ui.C(ui.Current().Accent, "Total"), len(app.Todos),
	)

	lines := []string{header, ui.C(ui.Current().Muted, ui.ProgressBar(d, d+p, 28)), ""}
	lines = append(lines, groupLines(app.Todos)...)
	lines = append(lines, "", ui.C(ui.Current().Muted, "Tip: add with `todo add \"Buy milk\"`"))
	ui.Panel(lines)
}

func flatLines(items []model.Item) []string {
	if len(items) == 0 {
		return []string{ui.C(ui.Current().Muted, "no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		box := ui.Current().BoxUnchecked
		color := ui.Current().Muted
		if it.Done {
			box, color = ui.Current().BoxChecked, ui.Current().Success
		}
		text := it.Text
		if len(text) > 80 {
			text = text[:77] + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.C("\033[2m", idx), ui.C(color, box), text))
	}
	return out
}

func groupLines(items []model.Item) []string {
	var pend, done []model.Item
	for _, it := range items {
		if it.Done {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, ui.C(ui.Current().Accent, "Pending"))
	if len(pend) == 0 {
		lines = append(lines, ui.C(ui.Current().Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Accent, "Done"))
	if len(done) == 0 {
		lines = append(lines, ui.C(ui.Current().Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
