package app

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/idilsaglam/notes/internal/api"
	"github.com/idilsaglam/notes/internal/model"
)

// fakeBackend is an in-memory notes server. It records every call by name
// and can be told to fail a call with a given error.
type fakeBackend struct {
	notes  []model.Note
	labels []model.Label
	nextID int

	calls  []string
	failOn map[string]error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{nextID: 100, failOn: map[string]error{}}
}

func (f *fakeBackend) id() model.ID {
	f.nextID++
	return model.ID(strconv.Itoa(f.nextID))
}

func (f *fakeBackend) hit(name string) error {
	f.calls = append(f.calls, name)
	return f.failOn[name]
}

func (f *fakeBackend) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeBackend) Health(context.Context) error { return f.hit("health") }

func (f *fakeBackend) ListNotes(_ context.Context, _ api.NoteFilter) ([]model.Note, error) {
	if err := f.hit("list_notes"); err != nil {
		return nil, err
	}
	return append([]model.Note(nil), f.notes...), nil
}

func (f *fakeBackend) CreateNote(_ context.Context, in api.NoteInput) (model.Note, error) {
	if err := f.hit("create_note"); err != nil {
		return model.Note{}, err
	}
	now := time.Now()
	n := model.Note{ID: f.id(), Title: in.Title, Content: in.Content, Status: model.StatusActive,
		Labels: append([]string{}, in.Labels...), CreatedAt: now, UpdatedAt: now}
	f.notes = append(f.notes, n)
	return n, nil
}

func (f *fakeBackend) UpdateNote(_ context.Context, id model.ID, u api.NoteUpdate) (model.Note, error) {
	if err := f.hit("update_note"); err != nil {
		return model.Note{}, err
	}
	for i := range f.notes {
		if f.notes[i].ID != id {
			continue
		}
		if u.Title != nil {
			f.notes[i].Title = *u.Title
		}
		if u.Content != nil {
			f.notes[i].Content = *u.Content
		}
		if u.Labels != nil {
			f.notes[i].Labels = *u.Labels
		}
		if u.Status != nil {
			f.notes[i].Status = *u.Status
		}
		return f.notes[i], nil
	}
	return model.Note{}, &api.Error{StatusCode: 404, Message: "Note not found"}
}

func (f *fakeBackend) DeleteNote(_ context.Context, id model.ID) error {
	if err := f.hit("delete_note"); err != nil {
		return err
	}
	kept := f.notes[:0]
	for _, n := range f.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	f.notes = kept
	return nil
}

func (f *fakeBackend) ListLabels(context.Context) ([]model.Label, error) {
	if err := f.hit("list_labels"); err != nil {
		return nil, err
	}
	return append([]model.Label(nil), f.labels...), nil
}

func (f *fakeBackend) CreateLabel(_ context.Context, name, color string) (model.Label, error) {
	if err := f.hit("create_label"); err != nil {
		return model.Label{}, err
	}
	if l, ok := model.FindLabel(f.labels, name); ok {
		return l, nil
	}
	l := model.Label{ID: f.id(), Name: name, Color: color}
	f.labels = append(f.labels, l)
	return l, nil
}

// DeleteLabel cascades to notes like the real backend.
func (f *fakeBackend) DeleteLabel(_ context.Context, id model.ID) error {
	if err := f.hit("delete_label"); err != nil {
		return err
	}
	var name string
	kept := f.labels[:0]
	for _, l := range f.labels {
		if l.ID == id {
			name = l.Name
			continue
		}
		kept = append(kept, l)
	}
	f.labels = kept
	for i := range f.notes {
		var ls []string
		for _, l := range f.notes[i].Labels {
			if !strings.EqualFold(l, name) {
				ls = append(ls, l)
			}
		}
		f.notes[i].Labels = ls
	}
	return nil
}
