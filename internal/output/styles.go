package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. These are the single source of truth; never use inline
// lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project names, template keys, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen marks passing checks and completed steps.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow marks warnings and skipped steps.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed marks failures (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers and section headings.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (creating, cloning, installing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (separators, hints, timestamps).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleHeading styles section headings.
	StyleHeading = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
)

// Step and check status values.
const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusWarning = "warning"
	StatusSkipped = "skipped"
)

// StatusStyle returns the style for a status string. Unknown statuses return
// an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusPassed:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusWarning:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusSkipped:
		return lipgloss.NewStyle().Faint(true)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// statusSymbols maps a status to its leading glyph.
var statusSymbols = map[string]string{
	StatusPassed:  "✔",
	StatusFailed:  "✖",
	StatusWarning: "!",
	StatusSkipped: "-",
}

// FormatStatusLine renders "<glyph> <msg>" with the glyph colored by status.
func FormatStatusLine(status, msg string) string {
	glyph, ok := statusSymbols[status]
	if !ok {
		glyph = "•"
	}
	return StatusStyle(status).Render(glyph) + " " + msg
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatHint renders indented, dim follow-up lines (next steps, suggestions).
func FormatHint(lines ...string) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString("  ")
		sb.WriteString(StyleDim.Render(l))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Box renders body inside a rounded border. A non-empty title is printed as
// the first line of the box.
func Box(title, body string, border lipgloss.Color) string {
	content := body
	if title != "" {
		content = StyleHeading.Render(title) + "\n\n" + body
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(content)
}
