package model

import (
	"strconv"
	"strings"
	"time"
)

// ID is an opaque, server-assigned identifier. The backend may send it as a
// JSON number or a string; both are kept in their textual form.
type ID string

func (id ID) String() string { return string(id) }

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*id = ""
		return nil
	case strings.HasPrefix(raw, `"`):
		s, err := strconv.Unquote(raw)
		if err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return err
	}
	*id = ID(raw)
	return nil
}

// Note is the client's copy of a note. It is never authoritative.
type Note struct {
	ID        ID
	Title     string
	Content   string
	Status    Status
	Labels    []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasLabel reports whether the note carries name exactly.
func (n Note) HasLabel(name string) bool {
	for _, l := range n.Labels {
		if l == name {
			return true
		}
	}
	return false
}

// Label is a named, optionally colored tag.
type Label struct {
	ID    ID
	Name  string
	Color string
}

// FindLabel looks name up case-insensitively.
func FindLabel(labels []Label, name string) (Label, bool) {
	for _, l := range labels {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return Label{}, false
}
