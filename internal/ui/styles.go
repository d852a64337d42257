package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for warnings, errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorWarning   = "208" // Orange - for warning details
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title        lipgloss.Style
	TitleWarning lipgloss.Style

	Box       lipgloss.Style // Standard modal box
	BoxDanger lipgloss.Style // Destructive confirmation box
	Card      lipgloss.Style // Quote card

	Selected lipgloss.Style
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Hint     lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Chip     lipgloss.Style // User chip in the header
	Empty    lipgloss.Style
	Label    lipgloss.Style
	Details  lipgloss.Style
	Author   lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Chip: lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Author: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}

// NewProjectListDelegate returns the list delegate for project rows: name
// as title, description underneath.
func NewProjectListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Muted
	d.Styles.NormalTitle = Styles.Normal
	d.Styles.NormalDesc = Styles.Muted
	return d
}
