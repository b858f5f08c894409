package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"deskmenu/internal/diff"
)

// Colors
var (
	Primary    = lipgloss.Color("#7C3AED") // Purple
	Secondary  = lipgloss.Color("#06B6D4") // Cyan
	Success    = lipgloss.Color("#10B981") // Green
	Warning    = lipgloss.Color("#F59E0B") // Amber
	Error      = lipgloss.Color("#EF4444") // Red
	Muted      = lipgloss.Color("#6B7280") // Gray
	Foreground = lipgloss.Color("#F9FAFB") // Light
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Foreground)

	VersionStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(Muted)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Diff
	DiffAddStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a6e3a1"))

	DiffDeleteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f38ba8"))

	DiffContextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6c7086"))

	DiffHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89b4fa"))
)

// NotificationType represents the type of notification
type NotificationType int

const (
	NotificationSuccess NotificationType = iota
	NotificationWarning
	NotificationError
	NotificationInfo
)

// RenderNotification renders a one-line notification with its icon
func RenderNotification(message string, notifType NotificationType) string {
	switch notifType {
	case NotificationSuccess:
		return SuccessStyle.Render("✓ " + message)
	case NotificationWarning:
		return WarningStyle.Render("⚠ " + message)
	case NotificationError:
		return ErrorStyle.Render("✗ " + message)
	default:
		return HelpKeyStyle.Render("ℹ " + message)
	}
}

// RenderHelpLine renders a usage line followed by a description
func RenderHelpLine(usage, desc string) string {
	return HelpKeyStyle.Render(usage) + "  " + HelpDescStyle.Render(desc)
}

// RenderDiffStats renders the +added -removed summary of a diff
func RenderDiffStats(result *diff.DiffResult) string {
	if result.Identical {
		return SuccessStyle.Render("✓ Menu is up to date")
	}

	var parts []string
	if result.LinesAdded > 0 {
		parts = append(parts, DiffAddStyle.Render(fmt.Sprintf("+%d", result.LinesAdded)))
	}
	if result.LinesRemoved > 0 {
		parts = append(parts, DiffDeleteStyle.Render(fmt.Sprintf("-%d", result.LinesRemoved)))
	}

	hunks := fmt.Sprintf("%d hunks", len(result.Hunks))
	return strings.Join(parts, " ") + "  " + MutedStyle.Render(hunks)
}

// RenderDiff renders a unified diff with colored markers
func RenderDiff(result *diff.DiffResult) string {
	var sb strings.Builder

	sb.WriteString(DiffHeaderStyle.Render("--- "+result.OldPath) + "\n")
	sb.WriteString(DiffHeaderStyle.Render("+++ "+result.OldPath+" (generated)") + "\n")

	for _, hunk := range result.Hunks {
		sb.WriteString(MutedStyle.Render("@@") + "\n")
		for _, line := range hunk.Lines {
			sb.WriteString(formatDiffLine(line) + "\n")
		}
	}

	return sb.String()
}

func formatDiffLine(line diff.DiffLine) string {
	switch line.Type {
	case diff.DiffInsert:
		return DiffAddStyle.Render("+" + line.Content)
	case diff.DiffDelete:
		return DiffDeleteStyle.Render("-" + line.Content)
	default:
		return DiffContextStyle.Render(" ") + line.Content
	}
}
