package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/notes/internal/api"
	"github.com/idilsaglam/notes/internal/app"
	"github.com/idilsaglam/notes/internal/model"
)

// listItem adapts a note to bubbles/list.Item.
type listItem struct{ note model.Note }

func (i listItem) FilterValue() string {
	return i.note.Title + " " + strings.Join(i.note.Labels, " ")
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	n := it.note
	text := n.Title
	if n.Status == model.StatusArchived {
		text = archivedStyle.Render(text)
	}
	line := statusBadge(n.Status) + " " + text
	if len(n.Labels) > 0 {
		line += "  " + labelStyle.Render("#"+strings.Join(n.Labels, " #"))
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeConfirmDelete
)

// resultMsg carries the outcome of a controller operation back into Update.
type resultMsg struct {
	op    string
	state app.State
	err   error
}

type opFunc func(ctx context.Context, s app.State) (app.State, error)

// Model is the interactive client. All backend work runs in tea.Cmds that
// hand a new app.State back through resultMsg.
type Model struct {
	ctrl  *app.Controller
	state app.State

	list list.Model
	keys *keyMap

	mode    mode
	form    form
	pending model.Note // note awaiting delete confirmation

	busy   string // op in flight, empty when idle
	errMsg string

	width, height int
}

// New builds the model; Init starts by checking the backend.
func New(ctrl *app.Controller, initial app.State) Model {
	keys := newKeyMap()
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("note", "notes")
	l.AdditionalShortHelpKeys = keys.short
	l.AdditionalFullHelpKeys = keys.full

	m := Model{
		ctrl:   ctrl,
		state:  initial,
		list:   l,
		keys:   keys,
		busy:   "start",
		width:  80,
		height: 24,
	}
	m.resize()
	m.syncList()
	return m
}

// State exposes the current snapshot, mainly for the caller after Run.
func (m Model) State() app.State { return m.state }

func (m Model) Init() tea.Cmd {
	s := m.state
	return func() tea.Msg {
		next, err := m.ctrl.Start(context.Background(), s)
		return resultMsg{op: "start", state: next, err: err}
	}
}

// run marks op as in flight and returns the command performing it.
func (m *Model) run(op string, fn opFunc) tea.Cmd {
	m.busy = op
	s := m.state
	return func() tea.Msg {
		next, err := fn(context.Background(), s)
		return resultMsg{op: op, state: next, err: err}
	}
}

func (m *Model) resize() {
	h := m.height - 4
	if m.mode == modeForm {
		h -= 7
	}
	if m.state.Notice != "" {
		h--
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
}

func (m Model) selected() (model.Note, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Note{}, false
	}
	return it.note, true
}

func (m *Model) syncList() {
	visible := m.state.Visible()
	items := make([]list.Item, 0, len(visible))
	for _, n := range visible {
		items = append(items, listItem{note: n})
	}
	m.list.SetItems(items)

	counts := m.state.Counts()
	title := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Notes"),
		accentStyle.Render(badgeActive), counts[model.StatusActive],
		successStyle.Render(badgeCompleted), counts[model.StatusCompleted],
		mutedStyle.Render(badgeArchived), counts[model.StatusArchived],
	)
	if f := m.state.Filter; f.Status != "" || f.Label != "" {
		var parts []string
		if f.Status != "" {
			parts = append(parts, f.Status.DisplayName())
		}
		if f.Label != "" {
			parts = append(parts, "#"+f.Label)
		}
		title += "   " + pendingStyle.Render("["+strings.Join(parts, " ")+"]")
	}
	m.list.Title = title
	m.syncHelp()
}

// syncHelp names the transition the advance key would perform.
func (m *Model) syncHelp() {
	action := model.NextStatusInfo(model.StatusActive).ActionLabel
	if n, ok := m.selected(); ok {
		action = model.NextStatusInfo(n.Status).ActionLabel
	}
	m.keys.advance.SetHelp("space", action)
}

func nextStatusFilter(s model.Status) model.Status {
	switch s {
	case "":
		return model.StatusActive
	case model.StatusActive:
		return model.StatusCompleted
	case model.StatusCompleted:
		return model.StatusArchived
	}
	return ""
}

func nextLabelFilter(current string, labels []model.Label) string {
	if len(labels) == 0 {
		return ""
	}
	if current == "" {
		return labels[0].Name
	}
	for i, l := range labels {
		if l.Name == current && i+1 < len(labels) {
			return labels[i+1].Name
		}
	}
	return ""
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case resultMsg:
		return m.applyResult(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	if m.mode == modeForm {
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) applyResult(msg resultMsg) (tea.Model, tea.Cmd) {
	m.busy = ""
	// the view filter may have changed while the op was in flight
	m.state = msg.state.WithFilter(m.state.Filter)
	m.syncList()
	m.resize()

	if msg.err != nil {
		text := app.UserMessage(msg.err)
		if msg.op == "save" && m.mode == modeForm {
			m.form.err = text
			return m, nil
		}
		if errors.Is(msg.err, api.ErrUnreachable) && m.state.Notice != "" {
			text = ""
		}
		m.errMsg = text
		return m, nil
	}

	m.errMsg = ""
	if msg.op == "save" {
		m.mode = modeBrowse
		m.form = form{}
		m.resize()
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	typing := m.list.FilterState() == list.Filtering
	clearing := msg.String() == "esc" && m.list.FilterState() == list.FilterApplied
	if typing || clearing {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		m.syncHelp()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.add):
		m.mode = modeForm
		m.form = newForm(app.Draft{})
		m.resize()
		cmd := m.form.focusOn(fieldTitle)
		return m, cmd

	case key.Matches(msg, m.keys.edit):
		n, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.mode = modeForm
		m.form = newForm(app.DraftFrom(n))
		m.resize()
		cmd := m.form.focusOn(fieldTitle)
		return m, cmd

	case key.Matches(msg, m.keys.advance):
		n, ok := m.selected()
		if !ok || m.busy != "" {
			return m, nil
		}
		id := n.ID
		cmd := m.run("advance", func(ctx context.Context, s app.State) (app.State, error) {
			return m.ctrl.AdvanceStatus(ctx, s, id)
		})
		return m, cmd

	case key.Matches(msg, m.keys.remove):
		n, ok := m.selected()
		if !ok || m.busy != "" {
			return m, nil
		}
		m.mode = modeConfirmDelete
		m.pending = n
		return m, nil

	case key.Matches(msg, m.keys.status):
		f := m.state.Filter
		f.Status = nextStatusFilter(f.Status)
		m.state = m.state.WithFilter(f)
		m.syncList()
		return m, nil

	case key.Matches(msg, m.keys.label):
		f := m.state.Filter
		f.Label = nextLabelFilter(f.Label, m.state.Labels)
		m.state = m.state.WithFilter(f)
		m.syncList()
		return m, nil

	case key.Matches(msg, m.keys.refresh):
		if m.busy != "" {
			return m, nil
		}
		cmd := m.run("refresh", m.ctrl.Refresh)
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.syncHelp()
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.form = form{}
		m.resize()
		return m, nil
	case "tab", "down":
		cmd := m.form.focusOn(m.form.focus + 1)
		return m, cmd
	case "shift+tab", "up":
		cmd := m.form.focusOn(m.form.focus - 1)
		return m, cmd
	case "enter":
		if m.busy != "" {
			return m, nil
		}
		d := m.form.draft()
		if err := d.Validate(); err != nil {
			m.form.err = app.UserMessage(err)
			return m, nil
		}
		m.form.err = ""
		cmd := m.run("save", func(ctx context.Context, s app.State) (app.State, error) {
			return m.ctrl.SaveNote(ctx, s, d)
		})
		return m, cmd
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeBrowse
	if msg.String() != "y" {
		return m, nil
	}
	id := m.pending.ID
	cmd := m.run("delete", func(ctx context.Context, s app.State) (app.State, error) {
		return m.ctrl.DeleteNote(ctx, s, id)
	})
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	if m.state.Notice != "" {
		b.WriteString(noticeStyle.Render("! "+m.state.Notice) + "\n")
	}
	if len(m.list.Items()) == 0 && m.list.FilterState() == list.Unfiltered {
		b.WriteString(titleStyle.Render(m.list.Title) + "\n\n")
		b.WriteString(mutedStyle.Render(m.state.EmptyMessage()) + "\n")
	} else {
		b.WriteString(m.list.View())
	}

	switch m.mode {
	case modeForm:
		b.WriteString("\n" + m.form.view())
	case modeConfirmDelete:
		b.WriteString("\n" + errorStyle.Render(fmt.Sprintf("delete %q? y/N", m.pending.Title)))
	}

	switch {
	case m.busy != "":
		b.WriteString("\n" + mutedStyle.Render(m.busy+"..."))
	case m.errMsg != "":
		b.WriteString("\n" + errorStyle.Render("✖ "+m.errMsg))
	case m.state.Flash != "":
		b.WriteString("\n" + successStyle.Render("✔ "+m.state.Flash))
	}
	return boxStyle.Render(b.String())
}

// Run starts the program in the alternate screen and returns the final state.
func Run(ctrl *app.Controller, initial app.State) (app.State, error) {
	p := tea.NewProgram(New(ctrl, initial), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return initial, err
	}
	if fm, ok := final.(Model); ok {
		return fm.state, nil
	}
	return initial, nil
}
