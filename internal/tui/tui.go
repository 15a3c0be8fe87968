// Package tui is the interactive full-screen mode. It is a thin view
// over the todos manager: every mutation goes through the manager (and
// so through its cache invalidation), then the list is refetched, so the
// screen always shows server-confirmed state.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tdo/internal/service"
	"tdo/internal/todos"
	"tdo/internal/validate"
)

// listItem adapts service.Todo to bubbles/list.Item.
type listItem struct {
	todo service.Todo
}

func (i listItem) line() string {
	box := boxUnchecked
	if i.todo.Completed {
		box = boxChecked
	}
	return fmt.Sprintf("%s %s", box, i.todo.Title)
}

func (i listItem) Title() string       { return i.line() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Title }

// itemDelegate renders each todo on a single line, struck through when
// completed.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	box := mutedStyle.Render(boxUnchecked)
	text := it.todo.Title
	if it.todo.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
)

// Messages produced by manager commands.
type listLoadedMsg struct{ todos []service.Todo }
type mutationDoneMsg struct{}
type opErrMsg struct{ err error }

type model struct {
	ctx context.Context
	mgr *todos.Manager

	list     list.Model
	ti       textinput.Model
	mode     mode
	editID   string // todo being edited while in modeEdit
	inputErr string
	opErr    string
	loading  bool

	width, height int
}

func newModel(ctx context.Context, mgr *todos.Manager) model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = titleStyle.Render("Todos")
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	reloadBind := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))
	extra := func() []key.Binding {
		return []key.Binding{addBind, editBind, toggleBind, delBind, reloadBind}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = validate.MaxTitleLen
	ti.Placeholder = "New todo title..."

	return model{
		ctx:     ctx,
		mgr:     mgr,
		list:    l,
		ti:      ti,
		loading: true,
		width:   80,
		height:  24,
	}
}

// Run starts the interactive list. It returns once the user quits; all
// changes were already confirmed by the backend one at a time.
func Run(ctx context.Context, mgr *todos.Manager) error {
	p := tea.NewProgram(newModel(ctx, mgr), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return m.loadCmd() }

func (m model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		todos, err := m.mgr.List(m.ctx)
		if err != nil {
			return opErrMsg{err}
		}
		return listLoadedMsg{todos}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case listLoadedMsg:
		m.loading = false
		m.opErr = ""
		items := make([]list.Item, 0, len(msg.todos))
		for _, t := range msg.todos {
			items = append(items, listItem{todo: t})
		}
		cmd := m.list.SetItems(items)
		m.list.Title = headerTitle(msg.todos)
		return m, cmd

	case mutationDoneMsg:
		// Refetch rather than patching locally; the manager already
		// invalidated its cache.
		return m, m.loadCmd()

	case opErrMsg:
		m.loading = false
		m.opErr = msg.err.Error()
		return m, nil
	}

	if m.mode != modeBrowse {
		return m.updateInput(msg)
	}
	return m.updateBrowse(msg)
}

func (m model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch keyMsg.String() {
		case "q", "esc":
			return m, tea.Quit

		case "r":
			m.loading = true
			return m, m.loadCmd()

		case " ":
			if it, ok := m.selected(); ok {
				id, next := it.todo.ID, !it.todo.Completed
				return m, func() tea.Msg {
					if _, err := m.mgr.SetCompleted(m.ctx, id, next); err != nil {
						return opErrMsg{err}
					}
					return mutationDoneMsg{}
				}
			}
			return m, nil

		case "d":
			if it, ok := m.selected(); ok {
				id := it.todo.ID
				return m, func() tea.Msg {
					if err := m.mgr.Delete(m.ctx, id); err != nil {
						return opErrMsg{err}
					}
					return mutationDoneMsg{}
				}
			}
			return m, nil

		case "a":
			m.mode = modeAdd
			m.inputErr = ""
			m.ti.SetValue("")
			m.ti.Placeholder = "New todo title..."
			m.ti.Focus()
			return m, nil

		case "e":
			if it, ok := m.selected(); ok {
				// The draft lives in the text input until saved;
				// esc discards it without touching the list.
				m.mode = modeEdit
				m.editID = it.todo.ID
				m.inputErr = ""
				m.ti.SetValue(it.todo.Title)
				m.ti.CursorEnd()
				m.ti.Placeholder = "Edit todo title..."
				m.ti.Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			input, errs := validate.CheckTodo(validate.TodoInput{Title: m.ti.Value()})
			if errs != nil {
				m.inputErr = errs["title"]
				return m, nil
			}
			mode, editID := m.mode, m.editID
			m.closeInput()
			if mode == modeAdd {
				return m, func() tea.Msg {
					if _, err := m.mgr.Create(m.ctx, input.Title, ""); err != nil {
						return opErrMsg{err}
					}
					return mutationDoneMsg{}
				}
			}
			return m, func() tea.Msg {
				patch := service.TodoPatch{Title: &input.Title}
				if _, err := m.mgr.Update(m.ctx, editID, patch); err != nil {
					return opErrMsg{err}
				}
				return mutationDoneMsg{}
			}

		case "esc":
			m.closeInput()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *model) closeInput() {
	m.mode = modeBrowse
	m.editID = ""
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m *model) selected() (listItem, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it, ok
}

func (m model) View() string {
	listHeight := m.height - 2
	if m.mode != modeBrowse {
		listHeight = m.height - 6
	}
	if listHeight < 1 {
		listHeight = 1
	}
	m.list.SetSize(m.width-2, listHeight)

	if m.loading {
		return "\n  " + mutedStyle.Render("Loading your todos...")
	}

	var b strings.Builder
	b.WriteString(m.list.View())

	if m.mode != modeBrowse {
		title := "Add todo"
		if m.mode == modeEdit {
			title = "Edit todo"
		}
		if m.inputErr != "" {
			title += "  " + errorStyle.Render(m.inputErr)
		}
		b.WriteString("\n")
		b.WriteString(inputBarStyle.Render(title + "\n" + m.ti.View()))
	}

	if m.opErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("✖ " + m.opErr))
	}
	return b.String()
}

// headerTitle renders the list header with the completion count.
func headerTitle(list []service.Todo) string {
	if len(list) == 0 {
		return titleStyle.Render("Todos")
	}
	return fmt.Sprintf("%s   %s",
		titleStyle.Render("Todos"),
		mutedStyle.Render(fmt.Sprintf("%d of %d completed", todos.CompletedCount(list), len(list))),
	)
}
