// Package cli renders validation reports and command output using lipgloss.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/aduana/internal/model"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#3A86FF")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates errors and critical findings.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// BlockingColor marks findings that stop a declaration.
	BlockingColor = lipgloss.Color("#D7263D")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3") // Light teal
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for document and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// BlockingStyle formats blocking findings.
	BlockingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(BlockingColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text such as hashes.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered summaries.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("#333"))

	// TableCellStyle pads table cells.
	TableCellStyle = lipgloss.NewStyle().
			PaddingRight(2)

	// LabelStyle aligns key/value labels.
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Width(18)
)

// Icons.
const (
	SuccessIcon  = "✓"
	ErrorIcon    = "✗"
	WarningIcon  = "⚠️"
	InfoIcon     = "ℹ️"
	CustomsIcon  = "🛃"
	BlockingIcon = "⛔"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle formats a title with the customs icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(CustomsIcon + " " + title)
}

// FormatSeverity renders a severity tag in the color of its level.
func FormatSeverity(sev model.Severity) string {
	label := strings.ToUpper(string(sev))
	switch sev {
	case model.SeverityBlocking:
		return BlockingStyle.Render(BlockingIcon + " " + label)
	case model.SeverityCritical:
		return ErrorStyle.Render(ErrorIcon + " " + label)
	case model.SeverityWarning:
		return WarningStyle.Render(WarningIcon + " " + label)
	default:
		return InfoStyle.Render(InfoIcon + " " + label)
	}
}

// RenderBox renders content in a bordered box under a bold title.
func RenderBox(title, content string) string {
	boxContent := lipgloss.JoinVertical(
		lipgloss.Left,
		BoldStyle.Render(title),
		content,
	)

	return BoxStyle.Render(boxContent)
}
