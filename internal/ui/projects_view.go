package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"projectdeck/internal/project"
	"projectdeck/internal/ui/textutil"
)

// projectItem implements list.DefaultItem for a project.
type projectItem struct {
	project.Project
}

func (p projectItem) FilterValue() string { return p.Name }
func (p projectItem) Title() string       { return p.Name }
func (p projectItem) Description() string {
	if p.Project.Description == nil {
		return "No description"
	}
	return textutil.OneLine(*p.Project.Description)
}

// ProjectsView lists the session's projects.
type ProjectsView struct {
	list     list.Model
	Projects []project.Project
	spinner  spinner.Model
	loading  bool
}

// Ensure ProjectsView implements View.
var _ View = (*ProjectsView)(nil)

// NewProjectsView creates an empty list view.
func NewProjectsView() *ProjectsView {
	l := list.New(nil, NewProjectListDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	return &ProjectsView{list: l, spinner: s}
}

// SetProjects replaces the rows, keeping the selection on the same
// project when it still exists.
func (v *ProjectsView) SetProjects(projects []project.Project) {
	prev, hadPrev := v.SelectedID()
	prevIdx := v.list.Index()
	v.Projects = projects
	items := make([]list.Item, len(projects))
	sel := -1
	for i, p := range projects {
		items[i] = projectItem{Project: p}
		if hadPrev && p.ID == prev {
			sel = i
		}
	}
	v.list.SetItems(items)
	switch {
	case sel >= 0:
		v.list.Select(sel)
	case len(projects) == 0:
		v.list.ResetSelected()
	default:
		v.list.Select(min(prevIdx, len(projects)-1))
	}
}

// SelectedID returns the id of the highlighted project.
func (v *ProjectsView) SelectedID() (int64, bool) {
	item, ok := v.list.SelectedItem().(projectItem)
	if !ok {
		return 0, false
	}
	return item.ID, true
}

// Select highlights the row at index i.
func (v *ProjectsView) Select(i int) {
	v.list.Select(i)
}

// Loading reports whether the spinner is shown.
func (v *ProjectsView) Loading() bool { return v.loading }

// SetLoading sets the loading state and returns a command to start the spinner.
func (v *ProjectsView) SetLoading(loading bool) tea.Cmd {
	v.loading = loading
	if loading {
		return v.spinner.Tick
	}
	return nil
}

// Init implements View.
func (v *ProjectsView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *ProjectsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.list.SetSize(msg.Width, max(msg.Height, 1))
		return v, nil
	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}
	// list.Model handles j/k/g/G navigation natively.
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *ProjectsView) View() string {
	// Default dimensions for tests and before the first WindowSizeMsg.
	if v.list.Width() == 0 {
		v.list.SetWidth(80)
	}
	if v.list.Height() == 0 {
		v.list.SetHeight(20)
	}

	var b strings.Builder
	title := Styles.Title.Render(fmt.Sprintf("Projects (%d)", len(v.Projects)))
	if v.loading {
		title += " " + v.spinner.View()
	}
	b.WriteString(title + "\n\n")
	switch {
	case v.loading && len(v.Projects) == 0:
		b.WriteString(Styles.Muted.Render("Loading projects…"))
	case len(v.Projects) == 0:
		b.WriteString(Styles.Empty.Render("No projects yet. Press n to create one."))
	default:
		b.WriteString(v.list.View())
	}
	return b.String()
}
