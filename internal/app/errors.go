package app

import (
	"errors"

	"github.com/idilsaglam/notes/internal/api"
	"github.com/idilsaglam/notes/internal/model"
)

var (
	ErrEmptyTitle   = errors.New("title is required")
	ErrNoteNotFound = errors.New("note not found")

	ErrEmptyLabelName = errors.New("label name is required")
)

// unavailableError is what the controller returns when the backend cannot
// be reached. Its text is the notice naming the backend.
type unavailableError struct {
	notice string
	err    error
}

func (e *unavailableError) Error() string { return e.notice }
func (e *unavailableError) Unwrap() error { return e.err }

// UserMessage turns an operation error into the line shown to the user.
func UserMessage(err error) string {
	var apiErr *api.Error
	var decErr *model.DecodeError
	var unavail *unavailableError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyTitle):
		return ErrEmptyTitle.Error()
	case errors.Is(err, ErrNoteNotFound):
		return ErrNoteNotFound.Error()
	case errors.Is(err, ErrEmptyLabelName):
		return ErrEmptyLabelName.Error()
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	case errors.As(err, &unavail):
		return unavail.notice
	case errors.Is(err, api.ErrUnreachable):
		return "backend unavailable; start the notes server and retry"
	case errors.As(err, &decErr):
		return "backend sent an unexpected response"
	}
	return "request failed"
}
