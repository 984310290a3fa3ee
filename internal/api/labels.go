package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/idilsaglam/notes/internal/model"
)

type labelInput struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

func labelPath(id model.ID) string { return "/labels/" + url.PathEscape(id.String()) }

func (c *Client) ListLabels(ctx context.Context) ([]model.Label, error) {
	b, err := c.do(ctx, http.MethodGet, "/labels", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return model.DecodeLabels(b)
}

// CreateLabel returns the label as stored by the backend, whose name may
// differ in casing from name if it already existed.
func (c *Client) CreateLabel(ctx context.Context, name, color string) (model.Label, error) {
	b, err := c.do(ctx, http.MethodPost, "/labels", labelInput{Name: name, Color: color},
		http.StatusOK, http.StatusCreated)
	if err != nil {
		return model.Label{}, err
	}
	return model.DecodeLabel(b)
}

func (c *Client) DeleteLabel(ctx context.Context, id model.ID) error {
	_, err := c.do(ctx, http.MethodDelete, labelPath(id), nil, http.StatusOK, http.StatusNoContent)
	return err
}
