package ui

import (
	"strings"

	"github.com/idilsaglam/notes/internal/model"
)

// Theme bundles palette, symbols and box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending string

	// per status color and badge
	Active, Completed, Archived, Label   string
	BadgeActive, BadgeDone, BadgeArchive string

	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
}

var current Theme

func init() { SetTheme("classic") }

// Themes lists the names SetTheme knows.
var Themes = []string{"classic", "neon", "mono"}

func KnownTheme(name string) bool {
	for _, t := range Themes {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			Active: "\033[96m", Completed: fgGreen, Archived: fgGray, Label: fgMagenta,
			BadgeActive: "◻", BadgeDone: "◼", BadgeArchive: "▣",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
		}
	case "mono":
		disableColor = true
		current = Theme{
			BadgeActive: "[ ]", BadgeDone: "[x]", BadgeArchive: "[a]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
		}
	default: // classic
		current = Theme{
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Pending: fgYellow,
			Active: fgBlue, Completed: fgGreen, Archived: dim, Label: fgMagenta,
			BadgeActive: "☐", BadgeDone: "☑", BadgeArchive: "▤",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
		}
	}
}

func Current() Theme { return current }

// StatusStyle returns the color and badge for s.
func (t Theme) StatusStyle(s model.Status) (color, badge string) {
	switch s {
	case model.StatusCompleted:
		return t.Completed, t.BadgeDone
	case model.StatusArchived:
		return t.Archived, t.BadgeArchive
	}
	return t.Active, t.BadgeActive
}
