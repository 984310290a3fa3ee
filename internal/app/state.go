package app

import "github.com/idilsaglam/notes/internal/model"

// Filter narrows what the view shows. It never changes what is fetched.
type Filter struct {
	Status model.Status
	Label  string
}

func (f Filter) Match(n model.Note) bool {
	if f.Status != "" && n.Status != f.Status {
		return false
	}
	if f.Label != "" && !n.HasLabel(f.Label) {
		return false
	}
	return true
}

// State is a snapshot of what the client knows. It is a value: every With*
// method returns a modified copy and leaves the receiver alone.
type State struct {
	Notes  []model.Note
	Labels []model.Label
	Filter Filter
	// Notice is a persistent banner, set while the backend is unreachable.
	Notice string
	// Flash is the last success message.
	Flash string
}

// WithData replaces both cached lists wholesale.
func (s State) WithData(notes []model.Note, labels []model.Label) State {
	s.Notes = append([]model.Note(nil), notes...)
	s.Labels = append([]model.Label(nil), labels...)
	return s
}

func (s State) WithFilter(f Filter) State {
	s.Filter = f
	return s
}

func (s State) WithNotice(msg string) State {
	s.Notice = msg
	return s
}

func (s State) WithFlash(msg string) State {
	s.Flash = msg
	return s
}

// Visible returns the notes passing the current filter, in fetch order.
func (s State) Visible() []model.Note {
	out := make([]model.Note, 0, len(s.Notes))
	for _, n := range s.Notes {
		if s.Filter.Match(n) {
			out = append(out, n)
		}
	}
	return out
}

// Note finds a cached note by id.
func (s State) Note(id model.ID) (model.Note, bool) {
	for _, n := range s.Notes {
		if n.ID == id {
			return n, true
		}
	}
	return model.Note{}, false
}

// EmptyMessage is what to show when Visible is empty.
func (s State) EmptyMessage() string {
	if len(s.Notes) == 0 {
		return "no notes yet"
	}
	return "no notes match this filter"
}

// Counts tallies cached notes per status.
func (s State) Counts() map[model.Status]int {
	c := make(map[model.Status]int, len(model.Statuses))
	for _, n := range s.Notes {
		c[n.Status]++
	}
	return c
}
