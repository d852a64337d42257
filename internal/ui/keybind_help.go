package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient hint bar shown after SPC.
// With a buffered prefix (e.g. "SPC p") it shows the next level.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler, mode).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Hint
	helpModel.Styles.ShortSeparator = Styles.Hint

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)

	prefix := "SPC"
	if len(keyHandler.Buffer) > 0 {
		prefix = strings.Join(keyHandler.Buffer, " ")
	}
	return boxStyle.Render(Styles.Hint.Render(prefix) + " " + helpModel.ShortHelpView(bindings))
}
