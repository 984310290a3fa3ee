package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/idilsaglam/notes/internal/model"
)

const maxTitle = 60

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// Header shows per-status counts for notes.
func Header(notes []model.Note) []string {
	t := Current()
	counts := map[model.Status]int{}
	for _, n := range notes {
		counts[n.Status]++
	}
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d  %s %d",
		C(t.Title, "Notes"),
		C(t.Active, model.StatusActive.DisplayName()), counts[model.StatusActive],
		C(t.Completed, model.StatusCompleted.DisplayName()), counts[model.StatusCompleted],
		C(t.Archived, model.StatusArchived.DisplayName()), counts[model.StatusArchived],
		C(t.Accent, "Total"), len(notes),
	)
	done := counts[model.StatusCompleted] + counts[model.StatusArchived]
	return []string{header, C(t.Muted, ProgressBar(done, len(notes), 28))}
}

// LabelTags renders label names as inline tags.
func LabelTags(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	tags := make([]string, len(labels))
	for i, l := range labels {
		tags[i] = C(Current().Label, "#"+l)
	}
	return strings.Join(tags, " ")
}

// NoteLine is the one-line form of a note used in listings.
func NoteLine(n model.Note) string {
	t := Current()
	color, badge := t.StatusStyle(n.Status)
	line := fmt.Sprintf("%s %s %s", C(dim, fmt.Sprintf("%4s", n.ID)), C(color, badge), truncate(n.Title, maxTitle))
	if tags := LabelTags(n.Labels); tags != "" {
		line += "  " + tags
	}
	return line
}

// NoteLines renders a listing; empty is shown when there is nothing to list.
func NoteLines(notes []model.Note, empty string) []string {
	if len(notes) == 0 {
		return []string{C(Current().Muted, empty)}
	}
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, NoteLine(n))
	}
	return out
}

func formatDate(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Format("2006-01-02 15:04")
}

// NoteDetail is the full view of a single note.
func NoteDetail(n model.Note) []string {
	t := Current()
	color, badge := t.StatusStyle(n.Status)
	next := model.NextStatusInfo(n.Status)
	content := n.Content
	if content == "" {
		content = C(t.Muted, "(no text)")
	}
	lines := []string{
		C(t.Title, n.Title),
		fmt.Sprintf("%s %s   %s", C(color, badge), C(color, n.Status.DisplayName()), C(t.Muted, "id "+n.ID.String())),
		"",
	}
	lines = append(lines, strings.Split(content, "\n")...)
	lines = append(lines, "")
	if tags := LabelTags(n.Labels); tags != "" {
		lines = append(lines, tags)
	}
	lines = append(lines,
		C(t.Muted, fmt.Sprintf("created %s  updated %s", formatDate(n.CreatedAt), formatDate(n.UpdatedAt))),
		C(t.Muted, fmt.Sprintf("next: %s (notes advance %s)", next.ActionLabel, n.ID)),
	)
	return lines
}

// LabelLines lists labels with their colors.
func LabelLines(labels []model.Label) []string {
	t := Current()
	if len(labels) == 0 {
		return []string{C(t.Muted, "no labels")}
	}
	out := []string{C(t.Title, "Labels")}
	for _, l := range labels {
		color := l.Color
		if color == "" {
			color = "-"
		}
		out = append(out, fmt.Sprintf("%s %s %s", C(dim, fmt.Sprintf("%4s", l.ID)), C(t.Label, l.Name), C(t.Muted, color)))
	}
	return out
}
