package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// DecodeError reports a backend payload that does not have the shape of a
// Note or Label.
type DecodeError struct {
	Kind   string // "note" or "label"
	Field  string // empty when the payload as a whole is unreadable
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	msg := "decode " + e.Kind
	if e.Field != "" {
		msg += "." + e.Field
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

type noteWire struct {
	ID        *ID      `json:"id"`
	Title     *string  `json:"title"`
	Content   *string  `json:"content"`
	Status    *string  `json:"status"`
	Labels    []string `json:"labels"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type labelWire struct {
	ID    *ID     `json:"id"`
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// timestamp layouts the backend has been seen to emit, most specific first.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseTime(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// DecodeNote parses a single note object.
func DecodeNote(b []byte) (Note, error) {
	var w noteWire
	if err := json.Unmarshal(b, &w); err != nil {
		return Note{}, &DecodeError{Kind: "note", Reason: "malformed payload", Err: err}
	}
	return w.note()
}

// DecodeNotes parses a JSON array of notes. One bad element rejects the batch.
func DecodeNotes(b []byte) ([]Note, error) {
	var ws []noteWire
	if err := json.Unmarshal(b, &ws); err != nil {
		return nil, &DecodeError{Kind: "note", Reason: "malformed list payload", Err: err}
	}
	notes := make([]Note, 0, len(ws))
	for _, w := range ws {
		n, err := w.note()
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

func (w noteWire) note() (Note, error) {
	fail := func(field, reason string, err error) (Note, error) {
		return Note{}, &DecodeError{Kind: "note", Field: field, Reason: reason, Err: err}
	}
	if w.ID == nil || *w.ID == "" {
		return fail("id", "missing", nil)
	}
	if w.Title == nil || strings.TrimSpace(*w.Title) == "" {
		return fail("title", "missing or empty", nil)
	}
	n := Note{
		ID:     *w.ID,
		Title:  *w.Title,
		Status: StatusActive,
		Labels: []string{},
	}
	if w.Content != nil {
		n.Content = *w.Content
	}
	if w.Status != nil {
		s := Status(*w.Status)
		if !s.Valid() {
			return fail("status", fmt.Sprintf("unknown value %q", *w.Status), nil)
		}
		n.Status = s
	}
	if w.Labels != nil {
		n.Labels = w.Labels
	}
	var err error
	if w.CreatedAt != "" {
		if n.CreatedAt, err = parseTime(w.CreatedAt); err != nil {
			return fail("created_at", "bad timestamp", err)
		}
	}
	if w.UpdatedAt != "" {
		if n.UpdatedAt, err = parseTime(w.UpdatedAt); err != nil {
			return fail("updated_at", "bad timestamp", err)
		}
	}
	return n, nil
}

// DecodeLabel parses a single label object.
func DecodeLabel(b []byte) (Label, error) {
	var w labelWire
	if err := json.Unmarshal(b, &w); err != nil {
		return Label{}, &DecodeError{Kind: "label", Reason: "malformed payload", Err: err}
	}
	return w.label()
}

// DecodeLabels parses a JSON array of labels.
func DecodeLabels(b []byte) ([]Label, error) {
	var ws []labelWire
	if err := json.Unmarshal(b, &ws); err != nil {
		return nil, &DecodeError{Kind: "label", Reason: "malformed list payload", Err: err}
	}
	labels := make([]Label, 0, len(ws))
	for _, w := range ws {
		l, err := w.label()
		if err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return labels, nil
}

func (w labelWire) label() (Label, error) {
	if w.ID == nil || *w.ID == "" {
		return Label{}, &DecodeError{Kind: "label", Field: "id", Reason: "missing"}
	}
	if w.Name == nil || strings.TrimSpace(*w.Name) == "" {
		return Label{}, &DecodeError{Kind: "label", Field: "name", Reason: "missing or empty"}
	}
	l := Label{ID: *w.ID, Name: *w.Name}
	if w.Color != nil {
		l.Color = *w.Color
	}
	return l, nil
}
