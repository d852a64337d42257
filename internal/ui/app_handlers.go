package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"projectdeck/internal/controller"
)

// handleStartup applies the joined initial loads to both controllers.
func (a *appModelAdapter) handleStartup(msg controller.StartupMsg) (tea.Model, tea.Cmd) {
	a.List.Update(msg)
	a.Quotes.Update(msg)
	a.refreshProjects()
	a.Projects.Select(0)
	return a, a.Projects.SetLoading(false)
}

// handleProjectsLoaded handles a standalone reload.
func (a *appModelAdapter) handleProjectsLoaded(msg controller.ProjectsLoadedMsg) (tea.Model, tea.Cmd) {
	a.List.Update(msg)
	a.refreshProjects()
	return a, a.Projects.SetLoading(false)
}

// handleProjectCreated closes the create form only when the store accepted
// the project, so a failed submit keeps what the user typed.
func (a *appModelAdapter) handleProjectCreated(msg controller.ProjectCreatedMsg) (tea.Model, tea.Cmd) {
	a.List.Update(msg)
	if msg.Err == nil {
		if form, ok := a.topForm(); ok && form.Mode == FormCreate {
			a.Overlays.Pop()
			a.Mode = a.modeForOverlays()
		}
		a.refreshProjects()
		a.Projects.Select(len(a.Projects.Projects) - 1)
	}
	a.syncStatus()
	return a, nil
}

func (a *appModelAdapter) handleProjectUpdated(msg controller.ProjectUpdatedMsg) (tea.Model, tea.Cmd) {
	a.List.Update(msg)
	if msg.Err == nil {
		if form, ok := a.topForm(); ok && form.Mode == FormEdit && form.ID == msg.ID {
			a.Overlays.Pop()
			a.Mode = a.modeForOverlays()
		}
		a.refreshProjects()
	}
	a.syncStatus()
	return a, nil
}

func (a *appModelAdapter) handleProjectDeleted(msg controller.ProjectDeletedMsg) (tea.Model, tea.Cmd) {
	a.List.Update(msg)
	a.refreshProjects()
	a.syncStatus()
	return a, nil
}

// handleConfirmDelete shows the confirmation prompt for a pending delete.
func (a *appModelAdapter) handleConfirmDelete(msg controller.ConfirmDeleteMsg) (tea.Model, tea.Cmd) {
	a.pushModal(NewDeleteProjectConfirmModal(msg.Project))
	return a, nil
}

func (a *appModelAdapter) handleDeleteConfirmed(msg controller.DeleteConfirmedMsg) (tea.Model, tea.Cmd) {
	if top, ok := a.Overlays.Peek(); ok {
		if m, ok := top.(*ConfirmModal); ok && m.ProjectID == msg.ID {
			a.Overlays.Pop()
			a.Mode = a.modeForOverlays()
		}
	}
	return a, a.List.Update(msg)
}

// The create form is not offered until the list has loaded.
func (a *appModelAdapter) handleShowCreateProject() (tea.Model, tea.Cmd) {
	if !a.List.Ready() {
		return a, nil
	}
	m := NewCreateProjectModal()
	a.pushModal(m)
	return a, m.Init()
}

func (a *appModelAdapter) handleShowEditProject() (tea.Model, tea.Cmd) {
	id, ok := a.Projects.SelectedID()
	if !ok || !a.List.StartEdit(id) {
		return a, nil
	}
	s, _ := a.List.Editing()
	m := NewEditProjectModal(s)
	a.pushModal(m)
	return a, m.Init()
}

func (a *appModelAdapter) handleShowDeleteProject() (tea.Model, tea.Cmd) {
	id, ok := a.Projects.SelectedID()
	if !ok {
		return a, nil
	}
	return a, a.List.RequestDelete(id)
}

func (a *appModelAdapter) handleShowProjectSwitcher() (tea.Model, tea.Cmd) {
	if len(a.Projects.Projects) == 0 {
		return a, nil
	}
	a.pushModal(NewProjectSwitcherModal(a.Projects.Projects))
	return a, nil
}

// handleSelectProject closes the picker and highlights the chosen row.
func (a *appModelAdapter) handleSelectProject(msg SelectProjectMsg) (tea.Model, tea.Cmd) {
	if top, ok := a.Overlays.Peek(); ok {
		if _, ok := top.(*ProjectSwitcherModal); ok {
			a.Overlays.Pop()
			a.Mode = a.modeForOverlays()
		}
	}
	for i, p := range a.Projects.Projects {
		if p.ID == msg.ID {
			a.Projects.Select(i)
			break
		}
	}
	return a, nil
}

func (a *appModelAdapter) handleSubmitProjectForm(msg SubmitProjectFormMsg) (tea.Model, tea.Cmd) {
	a.List.ClearNotice()
	var cmd tea.Cmd
	switch msg.Mode {
	case FormCreate:
		cmd = a.List.Create(msg.Name, msg.Description)
	case FormEdit:
		a.List.SetDraft(msg.Name, msg.Description)
		cmd = a.List.CommitEdit()
	}
	a.syncStatus()
	return a, cmd
}

// handleDismissModal closes the top modal and abandons whatever it guarded.
func (a *appModelAdapter) handleDismissModal() (tea.Model, tea.Cmd) {
	top, ok := a.Overlays.Pop()
	if !ok {
		return a, nil
	}
	switch m := top.(type) {
	case *ProjectFormModal:
		if m.Mode == FormEdit {
			a.List.CancelEdit()
		}
	case *ConfirmModal:
		a.List.CancelDelete()
	}
	a.Mode = a.modeForOverlays()
	return a, nil
}

// handleQuit cancels in-flight requests before exiting.
func (a *appModelAdapter) handleQuit() (tea.Model, tea.Cmd) {
	a.List.Close()
	a.Quotes.Close()
	return a, tea.Quit
}

func (a *AppModel) pushModal(v View) {
	a.Overlays.Push(v)
	a.Mode = ModeModal
	if a.KeyHandler != nil {
		a.KeyHandler.Reset()
	}
}

func (a *AppModel) modeForOverlays() AppMode {
	if a.Overlays.Len() > 0 {
		return ModeModal
	}
	return ModeBrowse
}

func (a *AppModel) topForm() (*ProjectFormModal, bool) {
	top, ok := a.Overlays.Peek()
	if !ok {
		return nil, false
	}
	m, ok := top.(*ProjectFormModal)
	return m, ok
}

// syncDraft mirrors edit-form keystrokes into the controller's session.
func (a *AppModel) syncDraft() {
	if form, ok := a.topForm(); ok && form.Mode == FormEdit {
		a.List.SetDraft(form.Values())
	}
}

func (a *AppModel) syncStatus() {
	n := a.List.Notice()
	a.Status, a.StatusIsError = n.Text, n.IsError
}

func (a *AppModel) refreshProjects() {
	a.Projects.SetProjects(a.List.Projects())
}
