package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/notes/internal/app"
	"github.com/idilsaglam/notes/internal/model"
)

const (
	fieldTitle = iota
	fieldContent
	fieldLabels
)

// form edits one note: title, content and comma-separated labels.
type form struct {
	id     model.ID
	inputs []textinput.Model
	focus  int
	err    string
}

func newForm(d app.Draft) form {
	f := form{id: d.ID, inputs: make([]textinput.Model, 3)}
	for i, spec := range []struct{ prompt, placeholder, value string }{
		{"Title   > ", "What is it about?", d.Title},
		{"Content > ", "Optional text", d.Content},
		{"Labels  > ", "work, ideas", d.Labels},
	} {
		ti := textinput.New()
		ti.Prompt = spec.prompt
		ti.Placeholder = spec.placeholder
		ti.CharLimit = 500
		ti.SetValue(spec.value)
		ti.CursorEnd()
		f.inputs[i] = ti
	}
	f.inputs[fieldTitle].CharLimit = 200
	return f
}

func (f form) draft() app.Draft {
	return app.Draft{
		ID:      f.id,
		Title:   f.inputs[fieldTitle].Value(),
		Content: f.inputs[fieldContent].Value(),
		Labels:  f.inputs[fieldLabels].Value(),
	}
}

// focusOn moves focus to input i and blurs the rest.
func (f *form) focusOn(i int) tea.Cmd {
	f.focus = (i + len(f.inputs)) % len(f.inputs)
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	return f.inputs[f.focus].Focus()
}

func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f form) view() string {
	title := "New note"
	if f.id != "" {
		title = "Edit note " + f.id.String()
	}
	if f.err != "" {
		title += " - " + errorStyle.Render(f.err)
	}
	lines := []string{title}
	for _, in := range f.inputs {
		lines = append(lines, in.View())
	}
	lines = append(lines, helpStyle.Render("tab next field • enter save • esc cancel"))
	return boxStyle.Render(strings.Join(lines, "\n"))
}
