package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"projectdeck/internal/project"
)

// ProjectSwitcherModal is a filterable picker that moves the list
// selection to the chosen project.
type ProjectSwitcherModal struct {
	list list.Model
}

// Ensure ProjectSwitcherModal implements View.
var _ View = (*ProjectSwitcherModal)(nil)

// NewProjectSwitcherModal creates a picker over projects.
func NewProjectSwitcherModal(projects []project.Project) *ProjectSwitcherModal {
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = projectItem{Project: p}
	}
	delegate := NewProjectListDelegate()
	delegate.ShowDescription = false
	l := list.New(items, delegate, 40, 12)
	l.Title = "Jump to project"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	return &ProjectSwitcherModal{list: l}
}

// Init implements View.
func (m *ProjectSwitcherModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ProjectSwitcherModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			if sel, ok := m.list.SelectedItem().(projectItem); ok {
				id := sel.ID
				return m, func() tea.Msg { return SelectProjectMsg{ID: id} }
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *ProjectSwitcherModal) View() string {
	help := "/: filter  Enter: select  Esc: cancel"
	return Styles.Box.Padding(0, 1).Render(m.list.View() + "\n" + Styles.Hint.Render(help))
}
