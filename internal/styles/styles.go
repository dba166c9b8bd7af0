// Package styles provides the centralized color palette and style
// definitions for CLI output. All visual constants live here so command
// code can reference a single source of truth.
package styles

import "github.com/charmbracelet/lipgloss"

// --- Color palette ---

var (
	White  = lipgloss.Color("#E2E2E2")
	Gray   = lipgloss.Color("#888888")
	Muted  = lipgloss.Color("#555555")
	Blue   = lipgloss.Color("#5FAFFF")
	Green  = lipgloss.Color("#5FD787")
	Yellow = lipgloss.Color("#FFD787")
	Red    = lipgloss.Color("#FF8787")
)

// --- Typography ---

var (
	// Title is the main header text style.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	// Header is used for table column headers.
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Gray)

	// MutedText is for help text, hints, and less important info.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// AccentText is for IDs and other values worth pointing at.
	AccentText = lipgloss.NewStyle().
			Foreground(Blue)

	// ErrorText is for error messages.
	ErrorText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// SuccessText is for success messages.
	SuccessText = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// WarningText is for warning messages.
	WarningText = lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true)
)

// DomainStatus returns a styled string for a domain status value.
func DomainStatus(status string) string {
	switch status {
	case "ACTIVE":
		return SuccessText.Render(status)
	case "EXPIRED", "SUSPENDED":
		return ErrorText.Render(status)
	default:
		return lipgloss.NewStyle().Foreground(Gray).Render(status)
	}
}

// Availability renders a yes/no availability verdict.
func Availability(available bool) string {
	if available {
		return SuccessText.Render("available")
	}
	return ErrorText.Render("taken")
}
