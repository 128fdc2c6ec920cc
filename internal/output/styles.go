package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Named constants for every ANSI 256 color used by the CLI;
// never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: module names, paths, versions.
	ColorCyan = lipgloss.Color("14")

	// colorGreen is used for the "created" and "published" statuses.
	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "modified" status.
	ColorYellow = lipgloss.Color("220")

	// colorRed is used for the "removed" status.
	colorRed = lipgloss.Color("196")

	// colorGreenCheck is used for the completion checkmark.
	colorGreenCheck = lipgloss.Color("10")

	// colorDimGray is used for borders and other structural chrome.
	colorDimGray = lipgloss.Color("240")

	// colorBlue is used for table headers.
	colorBlue = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (module names, paths, versions).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Styles groups the styles used by the tree and diff renderers.
type Styles struct {
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// GetStyles returns the default renderer styles.
func GetStyles() *Styles {
	return &Styles{
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(colorDimGray),
		Success: lipgloss.NewStyle().Foreground(colorGreen),
		Error:   lipgloss.NewStyle().Foreground(colorRed),
		Warning: lipgloss.NewStyle().Foreground(ColorYellow),
	}
}

// File and module status constants.
const (
	StatusCreated   = "created"
	StatusSkipped   = "skipped"
	StatusPublished = "published"
	StatusAdded     = "added"
	StatusRemoved   = "removed"
	StatusModified  = "modified"
)

// statusStyle returns the lipgloss style for a status string.
// Unknown statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated, StatusPublished, StatusAdded:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusModified:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusSkipped:
		return lipgloss.NewStyle().Faint(true)
	case StatusRemoved:
		return lipgloss.NewStyle().Foreground(colorRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minColumnWidth is the minimum width of the identifier column before the
// status suffix, so status words line up.
const minColumnWidth = 40

// FormatModuleLine renders "name@version" followed by a right-aligned,
// color-coded status.
func FormatModuleLine(name, version, status string) string {
	id := name + "@" + version

	padding := minColumnWidth - len(id)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("m:") + StyleNoun.Render(id) + strings.Repeat(" ", padding) + statusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}
