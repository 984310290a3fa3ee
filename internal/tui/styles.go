package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/notes/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	archivedStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

const (
	badgeActive    = "☐"
	badgeCompleted = "☑"
	badgeArchived  = "▤"
)

func statusBadge(s model.Status) string {
	switch s {
	case model.StatusCompleted:
		return successStyle.Render(badgeCompleted)
	case model.StatusArchived:
		return mutedStyle.Render(badgeArchived)
	}
	return accentStyle.Render(badgeActive)
}
