package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/notes/internal/model"
)

func sample() State {
	return State{}.WithData([]model.Note{
		{ID: "1", Title: "a", Status: model.StatusActive, Labels: []string{"Work"}},
		{ID: "2", Title: "b", Status: model.StatusCompleted},
		{ID: "3", Title: "c", Status: model.StatusActive},
	}, []model.Label{{ID: "1", Name: "Work"}})
}

func TestVisible(t *testing.T) {
	s := sample()
	assert.Len(t, s.Visible(), 3)

	active := s.WithFilter(Filter{Status: model.StatusActive})
	assert.Len(t, active.Visible(), 2)

	work := s.WithFilter(Filter{Status: model.StatusActive, Label: "Work"})
	assert.Len(t, work.Visible(), 1)
	assert.Len(t, s.Visible(), 3, "WithFilter must not change the receiver")
}

func TestEmptyMessage(t *testing.T) {
	assert.Equal(t, "no notes yet", State{}.EmptyMessage())
	s := sample().WithFilter(Filter{Status: model.StatusArchived})
	assert.Empty(t, s.Visible())
	assert.Equal(t, "no notes match this filter", s.EmptyMessage())
}

func TestWithDataCopies(t *testing.T) {
	notes := []model.Note{{ID: "1", Title: "a"}}
	s := State{}.WithData(notes, nil)
	notes[0].Title = "mutated"
	assert.Equal(t, "a", s.Notes[0].Title)
}

func TestCounts(t *testing.T) {
	c := sample().Counts()
	assert.Equal(t, 2, c[model.StatusActive])
	assert.Equal(t, 1, c[model.StatusCompleted])
	assert.Zero(t, c[model.StatusArchived])
}
