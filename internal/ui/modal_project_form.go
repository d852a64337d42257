package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"projectdeck/internal/controller"
)

// FormMode distinguishes the create form from the edit form.
type FormMode int

const (
	FormCreate FormMode = iota
	FormEdit
)

// ProjectFormModal collects a name and an optional description.
// Tab switches fields; Enter in the name field or ctrl+s submits.
type ProjectFormModal struct {
	Mode  FormMode
	ID    int64
	name  textinput.Model
	desc  textarea.Model
	focus int // 0 = name, 1 = description
}

// Ensure ProjectFormModal implements View.
var _ View = (*ProjectFormModal)(nil)

func newProjectFormModal(mode FormMode) *ProjectFormModal {
	ti := textinput.New()
	ti.Placeholder = "Project name"
	ti.Width = 40
	ti.CharLimit = 120
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "Description (optional)"
	ta.SetWidth(42)
	ta.SetHeight(4)
	ta.ShowLineNumbers = false
	ta.Blur()

	return &ProjectFormModal{Mode: mode, name: ti, desc: ta}
}

// NewCreateProjectModal creates an empty create form.
func NewCreateProjectModal() *ProjectFormModal {
	return newProjectFormModal(FormCreate)
}

// NewEditProjectModal creates an edit form seeded from s.
func NewEditProjectModal(s controller.EditSession) *ProjectFormModal {
	m := newProjectFormModal(FormEdit)
	m.ID = s.ID
	m.name.SetValue(s.Name)
	m.desc.SetValue(s.Description)
	return m
}

// Values returns the raw field contents.
func (m *ProjectFormModal) Values() (name, description string) {
	return m.name.Value(), m.desc.Value()
}

// Init implements View.
func (m *ProjectFormModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *ProjectFormModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "tab", "shift+tab":
			return m, m.toggleFocus()
		case "ctrl+s":
			return m, m.submit()
		case "enter":
			if m.focus == 0 {
				return m, m.submit()
			}
		}
	}
	var cmd tea.Cmd
	if m.focus == 0 {
		m.name, cmd = m.name.Update(msg)
	} else {
		m.desc, cmd = m.desc.Update(msg)
	}
	return m, cmd
}

func (m *ProjectFormModal) toggleFocus() tea.Cmd {
	if m.focus == 0 {
		m.focus = 1
		m.name.Blur()
		return m.desc.Focus()
	}
	m.focus = 0
	m.desc.Blur()
	return m.name.Focus()
}

func (m *ProjectFormModal) submit() tea.Cmd {
	name, desc := m.Values()
	msg := SubmitProjectFormMsg{Mode: m.Mode, ID: m.ID, Name: name, Description: desc}
	return func() tea.Msg { return msg }
}

// View implements View.
func (m *ProjectFormModal) View() string {
	title := "Create project"
	action := "create"
	if m.Mode == FormEdit {
		title = "Edit project"
		action = "save"
	}
	content := Styles.Title.Render(title) + "\n\n"
	content += m.name.View() + "\n\n"
	content += m.desc.View() + "\n\n"
	content += Styles.Hint.Render("Enter/ctrl+s: " + action + "  Tab: next field  Esc: cancel")
	return Styles.Box.Render(content)
}
