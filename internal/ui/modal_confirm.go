package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"projectdeck/internal/controller"
	"projectdeck/internal/project"
)

// ConfirmModal is a generic confirmation modal.
// Enter or y confirms; Esc cancels.
type ConfirmModal struct {
	Title       string
	Label       string
	Details     string // Optional warning details
	OnConfirm   func() tea.Msg
	boxStyle    lipgloss.Style
	titleStyle  lipgloss.Style
	detailStyle lipgloss.Style
	// ProjectID is set for delete confirmations.
	ProjectID int64
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a generic confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:       title,
		Label:       label,
		OnConfirm:   onConfirm,
		boxStyle:    Styles.BoxDanger,
		titleStyle:  Styles.TitleWarning,
		detailStyle: Styles.Details,
	}
}

// WithDetails adds warning details to the modal.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewDeleteProjectConfirmModal asks before deleting p. Confirming sends
// controller.DeleteConfirmedMsg for p's id.
func NewDeleteProjectConfirmModal(p project.Project) *ConfirmModal {
	id := p.ID
	m := NewConfirmModal(
		"Delete project?",
		fmt.Sprintf("Project: %s", p.Name),
		func() tea.Msg { return controller.DeleteConfirmedMsg{ID: id} },
	)
	m.ProjectID = id
	return m.WithDetails("This cannot be undone.")
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "n":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := m.titleStyle.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n" + m.detailStyle.Render(m.Details)
	}
	content += "\n\n" + Styles.Hint.Render("y/Enter: confirm  Esc: cancel")
	return m.boxStyle.Render(content)
}
