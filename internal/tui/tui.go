package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emrekaya/todo/internal/command"
	"github.com/emrekaya/todo/internal/model"
	"github.com/emrekaya/todo/internal/state"
)

// listItem adapts model.Item to bubbles/list.Item.
type listItem struct {
	item model.Item
}

func (i listItem) Title() string {
	box := boxUnchecked
	if i.item.Done {
		box = boxChecked
	}
	return fmt.Sprintf("%s %s", box, i.item.Text)
}

func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Text }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	box := mutedStyle.Render(boxUnchecked)
	text := it.item.Text
	if it.item.Done {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

// Model drives the interactive list. It owns nothing: the app state is
// constructed by the caller and every mutation runs through it (or
// through the command delegate) and hits disk before the next message
// is processed.
type Model struct {
	app      *state.App
	delegate *command.Delegate
	watcher  *command.DoneWatcher

	list   list.Model
	input  textinput.Model
	typing bool // focus is on the staging input

	width  int
	height int

	fatal error // persistence failure; quit and report
}

// New builds the TUI around an already loaded app state.
func New(app *state.App) Model {
	li := make([]list.Item, 0, len(app.Todos))
	for _, it := range app.Todos {
		li = append(li, listItem{item: it})
	}

	l := list.New(li, itemDelegate{}, 0, 0)
	l.Title = headerTitle(app)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	deleteBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	clearBind := key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear done"))
	addBind := key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "new todo"))
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{toggleBind, deleteBind, clearBind, addBind}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{toggleBind, deleteBind, clearBind, addBind}
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Add a new todo"
	ti.CharLimit = 200
	ti.SetValue(app.NewTodo)
	ti.Focus()

	return Model{
		app:      app,
		delegate: command.NewDelegate(app, nil),
		watcher:  command.NewDoneWatcher(app.Todos),
		list:     l,
		input:    ti,
		typing:   true,
		width:    80,
		height:   24,
	}
}

// Run starts the program and blocks until quit. A persistence failure
// inside the event loop surfaces here as the returned error.
func Run(app *state.App) error {
	p := tea.NewProgram(New(app), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := finalModel.(Model); ok && fm.fatal != nil {
		return fm.fatal
	}
	return nil
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		return m, nil
	}

	if m.typing {
		return m.updateTyping(msg)
	}
	return m.updateList(msg)
}

// updateTyping handles messages while the staging input has focus.
func (m Model) updateTyping(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			// No validation: whatever is staged becomes an item,
			// empty string included.
			m.app.NewTodo = m.input.Value()
			if err := m.app.AddTodo(); err != nil {
				return m.abort(err)
			}
			m.input.SetValue("")
			m.syncList()
			return m, nil
		case "esc", "tab":
			m.typing = false
			m.input.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.app.NewTodo = m.input.Value()
	return m, cmd
}

// updateList handles messages while the list has focus.
func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch keyMsg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case " ":
			// The toggle itself is a local widget mutation; the done
			// watcher turns it into a Save command below.
			if li, ok := m.selected(); ok {
				m.app.ToggleDone(li.item.ID)
				m.syncList()
				if err := m.dispatch(m.watcher.Observe(m.app.Todos)); err != nil {
					return m.abort(err)
				}
			}
			return m, nil

		case "d":
			if li, ok := m.selected(); ok {
				if _, err := m.delegate.Handle(command.DeleteByID(li.item.ID)); err != nil {
					return m.abort(err)
				}
				m.syncList()
			}
			return m, nil

		case "c":
			if err := m.app.ClearCompleted(); err != nil {
				return m.abort(err)
			}
			m.syncList()
			return m, nil

		case "tab", "a":
			m.typing = true
			m.input.Focus()
			return m, textinput.Blink
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	listHeight := m.height - 6
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(m.width-4, listHeight)

	var b strings.Builder
	b.WriteString(inputBarStyle.Width(m.width - 4).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.list.View())
	return b.String()
}

// selected returns the list item under the cursor.
func (m Model) selected() (listItem, bool) {
	i := m.list.Index()
	if i < 0 || i >= len(m.list.Items()) {
		return listItem{}, false
	}
	li, ok := m.list.Items()[i].(listItem)
	return li, ok
}

// syncList rebuilds the visible list from the app state and refreshes
// the header counts. State is the single source of truth; the list
// never drifts from it.
func (m *Model) syncList() {
	li := make([]list.Item, 0, len(m.app.Todos))
	for _, it := range m.app.Todos {
		li = append(li, listItem{item: it})
	}
	m.list.SetItems(li)
	m.list.Title = headerTitle(m.app)
}

// dispatch routes synthesized commands through the delegate.
func (m *Model) dispatch(cmds []command.Command) error {
	for _, c := range cmds {
		if _, err := m.delegate.Handle(c); err != nil {
			return err
		}
	}
	return nil
}

// abort records a fatal persistence error and quits.
func (m Model) abort(err error) (tea.Model, tea.Cmd) {
	m.fatal = err
	return m, tea.Quit
}

// headerTitle renders the title with live counts.
func headerTitle(app *state.App) string {
	dn, pn := app.Stats()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), dn,
		pendingStyle.Render("•"), pn,
		accentStyle.Render("Total"), dn+pn,
	)
}
