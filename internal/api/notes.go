package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/idilsaglam/notes/internal/model"
)

// NoteFilter narrows GET /notes. Empty fields are not sent.
type NoteFilter struct {
	Status model.Status
	Label  string
}

func (f NoteFilter) query() string {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Label != "" {
		q.Set("label", f.Label)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// NoteInput is the body of POST /notes.
type NoteInput struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Labels  []string `json:"labels,omitempty"`
}

// NoteUpdate is the body of PUT /notes/{id}; nil fields are left alone.
type NoteUpdate struct {
	Title   *string       `json:"title,omitempty"`
	Content *string       `json:"content,omitempty"`
	Labels  *[]string     `json:"labels,omitempty"`
	Status  *model.Status `json:"status,omitempty"`
}

func notePath(id model.ID) string { return "/notes/" + url.PathEscape(id.String()) }

func (c *Client) ListNotes(ctx context.Context, f NoteFilter) ([]model.Note, error) {
	b, err := c.do(ctx, http.MethodGet, "/notes"+f.query(), nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return model.DecodeNotes(b)
}

func (c *Client) GetNote(ctx context.Context, id model.ID) (model.Note, error) {
	b, err := c.do(ctx, http.MethodGet, notePath(id), nil, http.StatusOK)
	if err != nil {
		return model.Note{}, err
	}
	return model.DecodeNote(b)
}

// CreateNote requires a 201 Created answer.
func (c *Client) CreateNote(ctx context.Context, in NoteInput) (model.Note, error) {
	b, err := c.do(ctx, http.MethodPost, "/notes", in, http.StatusCreated)
	if err != nil {
		return model.Note{}, err
	}
	return model.DecodeNote(b)
}

func (c *Client) UpdateNote(ctx context.Context, id model.ID, u NoteUpdate) (model.Note, error) {
	b, err := c.do(ctx, http.MethodPut, notePath(id), u, http.StatusOK)
	if err != nil {
		return model.Note{}, err
	}
	return model.DecodeNote(b)
}

func (c *Client) DeleteNote(ctx context.Context, id model.ID) error {
	_, err := c.do(ctx, http.MethodDelete, notePath(id), nil, http.StatusOK, http.StatusNoContent)
	return err
}
