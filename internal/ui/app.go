package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"projectdeck/internal/controller"
	"projectdeck/internal/session"
)

// AppModel is the root model. It owns the list controller and the quote
// fetcher for the lifetime of the program.
type AppModel struct {
	Mode       AppMode
	Projects   *ProjectsView
	List       *controller.ListController
	Quotes     *controller.QuoteFetcher
	Session    *session.Session
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Logger     *zap.Logger

	// Status is the bottom status line; StatusIsError renders it red.
	Status        string
	StatusIsError bool

	// LoggedOut is set when the program ended through logout.
	LoggedOut bool

	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model. The controllers must be fresh; Init
// starts their loads.
func NewAppModel(list *controller.ListController, quotes *controller.QuoteFetcher, sess *session.Session, logger *zap.Logger) *AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AppModel{
		Mode:       ModeBrowse,
		Projects:   NewProjectsView(),
		List:       list,
		Quotes:     quotes,
		Session:    sess,
		KeyHandler: NewKeyHandler(NewDefaultKeybindRegistry()),
		Logger:     logger.Named("ui"),
	}
}

// NewDefaultKeybindRegistry returns the projectdeck bindings.
func NewDefaultKeybindRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	quit := func() tea.Msg { return QuitMsg{} }
	create := func() tea.Msg { return ShowCreateProjectMsg{} }
	edit := func() tea.Msg { return ShowEditProjectMsg{} }
	del := func() tea.Msg { return ShowDeleteProjectMsg{} }
	refresh := func() tea.Msg { return RefreshQuoteMsg{} }
	jump := func() tea.Msg { return ShowProjectSwitcherMsg{} }
	browse := []AppMode{ModeBrowse}

	reg.BindWithDesc("q", quit, "Quit")
	reg.BindWithDesc("ctrl+c", quit, "Quit")
	reg.BindWithDescForMode("n", create, "New project", browse)
	reg.BindWithDescForMode("e", edit, "Edit project", browse)
	reg.BindWithDescForMode("d", del, "Delete project", browse)
	reg.BindWithDescForMode("r", refresh, "New quote", browse)

	reg.BindWithDescForMode("SPC p c", create, "Create project", browse)
	reg.BindWithDescForMode("SPC p e", edit, "Edit project", browse)
	reg.BindWithDescForMode("SPC p d", del, "Delete project", browse)
	reg.BindWithDescForMode("SPC p j", jump, "Jump to project", browse)
	reg.BindWithDescForMode("/", jump, "Jump to project", browse)
	reg.BindWithDescForMode("SPC r", refresh, "New quote", browse)
	reg.BindWithDesc("SPC l", func() tea.Msg { return LogoutMsg{} }, "Log out")
	reg.BindWithDesc("SPC q", quit, "Quit")
	return reg
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(
		controller.Startup(a.List, a.Quotes),
		a.Projects.SetLoading(true),
	)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Projects.Update(tea.WindowSizeMsg{Width: msg.Width, Height: a.listHeight()})
		return a, nil
	case controller.StartupMsg:
		return a.handleStartup(msg)
	case controller.ProjectsLoadedMsg:
		return a.handleProjectsLoaded(msg)
	case controller.ProjectCreatedMsg:
		return a.handleProjectCreated(msg)
	case controller.ProjectUpdatedMsg:
		return a.handleProjectUpdated(msg)
	case controller.ProjectDeletedMsg:
		return a.handleProjectDeleted(msg)
	case controller.ConfirmDeleteMsg:
		return a.handleConfirmDelete(msg)
	case controller.DeleteConfirmedMsg:
		return a.handleDeleteConfirmed(msg)
	case controller.QuoteLoadedMsg:
		a.Quotes.Update(msg)
		return a, nil
	case ShowCreateProjectMsg:
		return a.handleShowCreateProject()
	case ShowEditProjectMsg:
		return a.handleShowEditProject()
	case ShowDeleteProjectMsg:
		return a.handleShowDeleteProject()
	case ShowProjectSwitcherMsg:
		return a.handleShowProjectSwitcher()
	case SelectProjectMsg:
		return a.handleSelectProject(msg)
	case SubmitProjectFormMsg:
		return a.handleSubmitProjectForm(msg)
	case RefreshQuoteMsg:
		return a, a.Quotes.Refresh()
	case DismissModalMsg:
		return a.handleDismissModal()
	case LogoutMsg:
		a.LoggedOut = true
		a.Logger.Info("logout requested")
		return a.handleQuit()
	case QuitMsg:
		return a.handleQuit()
	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Spinner ticks, cursor blinks and the rest.
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}
	_, cmd := a.Projects.Update(msg)
	return a, cmd
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a.handleQuit()
	}
	// Open modals capture every key.
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		a.syncDraft()
		return a, cmd
	}
	if a.KeyHandler != nil {
		a.KeyHandler.Mode = a.Mode
		if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
			return a, keyCmd
		}
	}
	_, cmd := a.Projects.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		modal := top.View()
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
		}
		return modal
	}

	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(a.Projects.View())
	b.WriteString("\n\n")
	if a.Status != "" {
		style := Styles.Status
		if a.StatusIsError {
			style = Styles.Error
		}
		b.WriteString(style.Render(a.Status) + "\n")
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		b.WriteString(RenderKeybindHelp(a.KeyHandler, a.Mode))
	} else {
		b.WriteString(Styles.Hint.Render("n new · e edit · d delete · r quote · SPC commands · q quit"))
	}
	return b.String()
}

func (a *AppModel) renderHeader() string {
	left := Styles.Title.Render("projectdeck")
	if a.Session != nil && a.Session.Username != "" {
		left += "  " + Styles.Chip.Render(a.Session.Username)
	}
	card := RenderQuoteCard(a.Quotes)
	if a.width <= 0 {
		return left + "\n" + card
	}
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(card)
	if gap < 2 {
		return left + "\n" + card
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), card)
}

func (a *AppModel) listHeight() int {
	// Header card, title, status and hint lines.
	return max(a.height-lipgloss.Height(RenderQuoteCard(a.Quotes))-6, 3)
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
