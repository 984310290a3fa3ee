package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/notes/internal/api"
	"github.com/idilsaglam/notes/internal/labels"
	"github.com/idilsaglam/notes/internal/model"
)

// Backend is the slice of the REST API the controller drives.
type Backend interface {
	Health(ctx context.Context) error
	ListNotes(ctx context.Context, f api.NoteFilter) ([]model.Note, error)
	CreateNote(ctx context.Context, in api.NoteInput) (model.Note, error)
	UpdateNote(ctx context.Context, id model.ID, u api.NoteUpdate) (model.Note, error)
	DeleteNote(ctx context.Context, id model.ID) error
	ListLabels(ctx context.Context) ([]model.Label, error)
	CreateLabel(ctx context.Context, name, color string) (model.Label, error)
	DeleteLabel(ctx context.Context, id model.ID) error
}

// Draft is the content of the note form. An empty ID means a new note.
type Draft struct {
	ID      model.ID
	Title   string
	Content string
	Labels  string // comma-separated, as typed
}

// DraftFrom fills a form from an existing note.
func DraftFrom(n model.Note) Draft {
	return Draft{
		ID:      n.ID,
		Title:   n.Title,
		Content: n.Content,
		Labels:  strings.Join(n.Labels, ", "),
	}
}

// Validate checks what can be checked without the backend.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Controller runs user actions. Every operation takes the current State and
// returns the next one. On error the input state comes back unchanged apart
// from the unreachable notice, which is set whenever the backend cannot be
// reached.
type Controller struct {
	api        Backend
	reconciler *labels.Reconciler
	log        zerolog.Logger
	where      string
}

// NewController builds a controller. where names the backend in notices.
func NewController(b Backend, where string, log zerolog.Logger) *Controller {
	return &Controller{
		api:        b,
		reconciler: labels.NewReconciler(b, log),
		log:        log,
		where:      where,
	}
}

func (c *Controller) unreachableNotice() string {
	return fmt.Sprintf("backend unavailable at %s; start the notes server and retry", c.where)
}

// Start checks the backend and loads everything.
func (c *Controller) Start(ctx context.Context, s State) (State, error) {
	if err := c.api.Health(ctx); err != nil {
		c.log.Debug().Err(err).Msg("health check failed")
		notice := c.unreachableNotice()
		return s.WithNotice(notice), &unavailableError{notice, fmt.Errorf("%w: %v", api.ErrUnreachable, err)}
	}
	return c.Refresh(ctx, s.WithNotice(""))
}

// Refresh fetches the full note and label lists and replaces the cache.
func (c *Controller) Refresh(ctx context.Context, s State) (State, error) {
	notes, err := c.api.ListNotes(ctx, api.NoteFilter{})
	if err != nil {
		return c.failed(s, "load notes", err)
	}
	lbls, err := c.api.ListLabels(ctx)
	if err != nil {
		return c.failed(s, "load labels", err)
	}
	return s.WithData(notes, lbls).WithNotice(""), nil
}

func (c *Controller) failed(s State, op string, err error) (State, error) {
	c.log.Debug().Err(err).Str("op", op).Msg("request failed")
	err = fmt.Errorf("%s: %w", op, err)
	if errors.Is(err, api.ErrUnreachable) {
		notice := c.unreachableNotice()
		return s.WithNotice(notice), &unavailableError{notice, err}
	}
	return s, err
}

// after refreshes once a mutation succeeded and records the flash message.
func (c *Controller) after(ctx context.Context, s State, flash string) (State, error) {
	next, err := c.Refresh(ctx, s)
	if err != nil {
		return next, err
	}
	return next.WithFlash(flash), nil
}

// SaveNote creates or updates the note in d. Label names are reconciled
// against s.Labels first; an empty title sends nothing.
func (c *Controller) SaveNote(ctx context.Context, s State, d Draft) (State, error) {
	if err := d.Validate(); err != nil {
		return s, err
	}
	title := strings.TrimSpace(d.Title)
	content := strings.TrimSpace(d.Content)
	names := c.reconciler.Reconcile(ctx, labels.ParseNames(d.Labels), s.Labels)

	if d.ID == "" {
		in := api.NoteInput{Title: title, Content: content}
		if len(names) > 0 {
			in.Labels = names
		}
		if _, err := c.api.CreateNote(ctx, in); err != nil {
			return c.failed(s, "create note", err)
		}
		return c.after(ctx, s, "note created")
	}

	u := api.NoteUpdate{Title: &title, Content: &content, Labels: &names}
	if _, err := c.api.UpdateNote(ctx, d.ID, u); err != nil {
		return c.failed(s, "update note", err)
	}
	return c.after(ctx, s, "note updated")
}

// AdvanceStatus moves a cached note one step along the status cycle.
func (c *Controller) AdvanceStatus(ctx context.Context, s State, id model.ID) (State, error) {
	n, ok := s.Note(id)
	if !ok {
		return s, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	info := model.NextStatusInfo(n.Status)
	next := info.Next
	if _, err := c.api.UpdateNote(ctx, id, api.NoteUpdate{Status: &next}); err != nil {
		return c.failed(s, "update status", err)
	}
	return c.after(ctx, s, fmt.Sprintf("%s: %q is now %s", info.ActionLabel, n.Title, next))
}

func (c *Controller) DeleteNote(ctx context.Context, s State, id model.ID) (State, error) {
	if err := c.api.DeleteNote(ctx, id); err != nil {
		return c.failed(s, "delete note", err)
	}
	return c.after(ctx, s, "note deleted")
}

// CreateLabel adds a label explicitly, outside of a note save.
func (c *Controller) CreateLabel(ctx context.Context, s State, name, color string) (State, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, ErrEmptyLabelName
	}
	l, err := c.api.CreateLabel(ctx, name, color)
	if err != nil {
		return c.failed(s, "create label", err)
	}
	return c.after(ctx, s, fmt.Sprintf("label %q ready", l.Name))
}

// DeleteLabel removes a label. The backend strips it from every note; the
// refresh picks that up.
func (c *Controller) DeleteLabel(ctx context.Context, s State, id model.ID) (State, error) {
	if err := c.api.DeleteLabel(ctx, id); err != nil {
		return c.failed(s, "delete label", err)
	}
	return c.after(ctx, s, "label deleted")
}
