package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/notes/internal/api"
	"github.com/idilsaglam/notes/internal/model"
)

func setup(t *testing.T) (*fakeBackend, *Controller, State) {
	t.Helper()
	fb := newFakeBackend()
	fb.labels = []model.Label{{ID: "1", Name: "Work"}, {ID: "2", Name: "Home"}}
	fb.notes = []model.Note{
		{ID: "10", Title: "first", Status: model.StatusActive, Labels: []string{"Work"}},
		{ID: "11", Title: "second", Status: model.StatusArchived},
	}
	c := NewController(fb, "http://test/api", zerolog.Nop())
	s, err := c.Start(context.Background(), State{})
	require.NoError(t, err)
	fb.calls = nil
	return fb, c, s
}

func TestStart_LoadsEverything(t *testing.T) {
	_, _, s := setup(t)
	assert.Len(t, s.Notes, 2)
	assert.Len(t, s.Labels, 2)
	assert.Empty(t, s.Notice)
}

func TestStart_Unreachable(t *testing.T) {
	fb := newFakeBackend()
	fb.failOn["health"] = errors.New("connection refused")
	c := NewController(fb, "http://test/api", zerolog.Nop())

	s, err := c.Start(context.Background(), State{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrUnreachable))
	assert.Contains(t, s.Notice, "http://test/api")
	assert.Equal(t, s.Notice, UserMessage(err))
	assert.Equal(t, []string{"health"}, fb.calls)
}

func TestSaveNote_EmptyTitleSendsNothing(t *testing.T) {
	fb, c, s := setup(t)

	next, err := c.SaveNote(context.Background(), s, Draft{Title: "   ", Labels: "brand new"})
	require.ErrorIs(t, err, ErrEmptyTitle)
	assert.Empty(t, fb.calls)
	assert.Equal(t, s, next)
	assert.Equal(t, "title is required", UserMessage(err))
}

func TestSaveNote_CreateReconcilesAndRefreshes(t *testing.T) {
	fb, c, s := setup(t)

	next, err := c.SaveNote(context.Background(), s, Draft{Title: " groceries ", Content: "milk", Labels: "work, URGENT, home"})
	require.NoError(t, err)

	assert.Equal(t, 1, fb.count("create_label"))
	assert.Equal(t, []string{"create_label", "create_note", "list_notes", "list_labels"}, fb.calls)

	require.Len(t, next.Notes, 3)
	created := next.Notes[2]
	assert.Equal(t, "groceries", created.Title)
	assert.Equal(t, []string{"Work", "URGENT", "Home"}, created.Labels)
	assert.Len(t, next.Labels, 3)
	assert.Equal(t, "note created", next.Flash)

	// input state untouched
	assert.Len(t, s.Notes, 2)
}

func TestSaveNote_LabelFailureDoesNotBlockSave(t *testing.T) {
	fb, c, s := setup(t)
	fb.failOn["create_label"] = errors.New("boom")

	next, err := c.SaveNote(context.Background(), s, Draft{Title: "t", Labels: "new"})
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, next.Notes[len(next.Notes)-1].Labels)
}

func TestSaveNote_CreateFailureSurfacesServerMessage(t *testing.T) {
	fb, c, s := setup(t)
	fb.failOn["create_note"] = &api.Error{StatusCode: 500, Message: "db down"}

	next, err := c.SaveNote(context.Background(), s, Draft{Title: "t"})
	require.Error(t, err)
	assert.Equal(t, "db down", UserMessage(err))
	assert.Equal(t, s, next)
	assert.Zero(t, fb.count("list_notes"), "no refresh after a failed mutation")
}

func TestSaveNote_GenericFailureMessage(t *testing.T) {
	fb, c, s := setup(t)
	fb.failOn["create_note"] = &api.Error{StatusCode: 500}

	_, err := c.SaveNote(context.Background(), s, Draft{Title: "t"})
	assert.Equal(t, "request failed", UserMessage(err))
}

func TestSaveNote_Update(t *testing.T) {
	fb, c, s := setup(t)
	n, _ := s.Note("10")
	d := DraftFrom(n)
	assert.Equal(t, "Work", d.Labels)
	d.Title = "renamed"
	d.Labels = "home"

	next, err := c.SaveNote(context.Background(), s, d)
	require.NoError(t, err)
	assert.Zero(t, fb.count("create_label"))
	assert.Equal(t, 1, fb.count("update_note"))

	got, ok := next.Note("10")
	require.True(t, ok)
	assert.Equal(t, "renamed", got.Title)
	assert.Equal(t, []string{"Home"}, got.Labels)
	assert.Equal(t, "note updated", next.Flash)
}

func TestSaveNote_UpdateClearsLabels(t *testing.T) {
	_, c, s := setup(t)
	next, err := c.SaveNote(context.Background(), s, Draft{ID: "10", Title: "first"})
	require.NoError(t, err)
	got, _ := next.Note("10")
	assert.Empty(t, got.Labels)
}

func TestAdvanceStatus(t *testing.T) {
	fb, c, s := setup(t)

	next, err := c.AdvanceStatus(context.Background(), s, "10")
	require.NoError(t, err)
	got, _ := next.Note("10")
	assert.Equal(t, model.StatusCompleted, got.Status)
	assert.Contains(t, next.Flash, "mark complete")
	assert.Equal(t, []string{"update_note", "list_notes", "list_labels"}, fb.calls)

	next, err = c.AdvanceStatus(context.Background(), next, "11")
	require.NoError(t, err)
	got, _ = next.Note("11")
	assert.Equal(t, model.StatusActive, got.Status)
}

func TestAdvanceStatus_UnknownNote(t *testing.T) {
	fb, c, s := setup(t)
	_, err := c.AdvanceStatus(context.Background(), s, "999")
	require.ErrorIs(t, err, ErrNoteNotFound)
	assert.Empty(t, fb.calls)
}

func TestDeleteNote(t *testing.T) {
	fb, c, s := setup(t)
	next, err := c.DeleteNote(context.Background(), s, "10")
	require.NoError(t, err)
	assert.Len(t, next.Notes, 1)
	assert.Equal(t, []string{"delete_note", "list_notes", "list_labels"}, fb.calls)
}

func TestDeleteLabel_RefreshSeesCascade(t *testing.T) {
	_, c, s := setup(t)
	next, err := c.DeleteLabel(context.Background(), s, "1")
	require.NoError(t, err)
	assert.Len(t, next.Labels, 1)
	got, _ := next.Note("10")
	assert.Empty(t, got.Labels)
}

func TestCreateLabel(t *testing.T) {
	fb, c, s := setup(t)
	_, err := c.CreateLabel(context.Background(), s, "  ", "")
	require.ErrorIs(t, err, ErrEmptyLabelName)
	assert.Empty(t, fb.calls)

	next, err := c.CreateLabel(context.Background(), s, "ideas", "#9b59b6")
	require.NoError(t, err)
	assert.Len(t, next.Labels, 3)
	assert.Equal(t, `label "ideas" ready`, next.Flash)
}

func TestRefreshFailureKeepsState(t *testing.T) {
	fb, c, s := setup(t)
	fb.failOn["list_labels"] = &api.Error{StatusCode: 503, Message: "busy"}

	next, err := c.Refresh(context.Background(), s)
	require.Error(t, err)
	assert.Equal(t, s, next)
}

func TestUserMessage_BareUnreachable(t *testing.T) {
	err := fmt.Errorf("%w: GET /notes: dial tcp: refused", api.ErrUnreachable)
	assert.Equal(t, "backend unavailable; start the notes server and retry", UserMessage(err))
}

func TestRefreshUnreachableSetsNotice(t *testing.T) {
	fb, c, s := setup(t)
	fb.failOn["list_notes"] = api.ErrUnreachable

	next, err := c.Refresh(context.Background(), s)
	require.ErrorIs(t, err, api.ErrUnreachable)
	assert.Contains(t, next.Notice, "backend unavailable")
	assert.Equal(t, next.Notice, UserMessage(err))
	assert.Equal(t, s.Notes, next.Notes)

	delete(fb.failOn, "list_notes")
	next, err = c.Refresh(context.Background(), next)
	require.NoError(t, err)
	assert.Empty(t, next.Notice)
}
