// Package controller holds projectdeck's session state: the project list
// with its single edit slot, and the auxiliary quote. Operations return
// tea.Cmd values that perform the remote call; the resulting messages are
// applied with Update on the Bubble Tea loop, so local state only ever
// changes after the store has confirmed.
package controller

import (
	"context"
	"errors"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"projectdeck/internal/project"
	"projectdeck/internal/store"
)

// ChangeKind identifies which mutation was applied.
type ChangeKind int

const (
	ChangeLoaded ChangeKind = iota
	ChangeCreated
	ChangeUpdated
	ChangeDeleted
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeLoaded:
		return "loaded"
	case ChangeCreated:
		return "created"
	case ChangeUpdated:
		return "updated"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Change describes one applied mutation. ID is zero for ChangeLoaded.
type Change struct {
	Kind ChangeKind
	ID   int64
}

// Notice is a user-visible status line.
type Notice struct {
	Text    string
	IsError bool
}

// EditSession is the single in-progress edit. Drafts diverge from the
// stored project until committed or discarded.
type EditSession struct {
	ID          int64
	Name        string
	Description string
}

// ListController owns the session's project list. Nothing else may
// mutate it.
type ListController struct {
	store  store.ProjectStore
	logger *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	closed bool

	projects      []project.Project
	loading       bool
	edit          *EditSession
	pendingDelete *int64
	notice        Notice
	revision      uint64

	// OnChange, if set, is called exactly once per applied mutation.
	OnChange func(Change)
}

// NewListController creates a controller in the loading state. ctx bounds
// every request it issues; Close cancels it.
func NewListController(ctx context.Context, s store.ProjectStore, logger *zap.Logger) *ListController {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(ctx)
	return &ListController{
		store:   s,
		logger:  logger.Named("projects"),
		ctx:     ctx,
		cancel:  cancel,
		loading: true,
	}
}

// Projects returns a copy of the current list.
func (c *ListController) Projects() []project.Project {
	return slices.Clone(c.projects)
}

// Project returns the project with id.
func (c *ListController) Project(id int64) (project.Project, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.projects[i], true
	}
	return project.Project{}, false
}

// Loading reports whether the initial load has not settled yet.
func (c *ListController) Loading() bool { return c.loading }

// Revision increases by one for every applied mutation.
func (c *ListController) Revision() uint64 { return c.revision }

// Notice returns the current status line.
func (c *ListController) Notice() Notice { return c.notice }

// ClearNotice empties the status line.
func (c *ListController) ClearNotice() { c.notice = Notice{} }

// Editing returns the open edit session, if any.
func (c *ListController) Editing() (EditSession, bool) {
	if c.edit == nil {
		return EditSession{}, false
	}
	return *c.edit, true
}

// PendingDelete returns the id awaiting confirmation, if any.
func (c *ListController) PendingDelete() (int64, bool) {
	if c.pendingDelete == nil {
		return 0, false
	}
	return *c.pendingDelete, true
}

// Close cancels in-flight requests. Results that arrive afterwards are
// dropped.
func (c *ListController) Close() {
	c.closed = true
	c.cancel()
}

// Load fetches the whole collection. Mutations are refused until the
// result is applied, since it replaces the list wholesale.
func (c *ListController) Load() tea.Cmd {
	if c.closed {
		return nil
	}
	c.loading = true
	ctx := c.ctx
	return func() tea.Msg {
		return c.fetchAll(ctx)
	}
}

func (c *ListController) fetchAll(ctx context.Context) ProjectsLoadedMsg {
	projects, err := c.store.ListProjects(ctx)
	if err != nil {
		return ProjectsLoadedMsg{Err: fmt.Errorf("list projects: %w", err)}
	}
	return ProjectsLoadedMsg{Projects: projects}
}

// Ready reports whether mutations are accepted: the list has loaded and
// the controller is open.
func (c *ListController) Ready() bool {
	return !c.loading && !c.closed
}

// Create sends a new project to the store. A name that is blank after
// trimming is ignored: no command, no store call.
func (c *ListController) Create(name, description string) tea.Cmd {
	if !c.Ready() {
		return nil
	}
	in, err := project.NewInput(name, description)
	if err != nil {
		return nil
	}
	ctx := c.ctx
	return func() tea.Msg {
		p, err := c.store.CreateProject(ctx, in)
		if err != nil {
			return ProjectCreatedMsg{Err: fmt.Errorf("create project: %w", err)}
		}
		return ProjectCreatedMsg{Project: p}
	}
}

// RequestDelete starts the confirmation step for id. The returned command
// yields ConfirmDeleteMsg; only a matching DeleteConfirmedMsg reaches the
// store.
func (c *ListController) RequestDelete(id int64) tea.Cmd {
	if !c.Ready() {
		return nil
	}
	p, ok := c.Project(id)
	if !ok {
		return nil
	}
	c.pendingDelete = &id
	return func() tea.Msg { return ConfirmDeleteMsg{Project: p} }
}

// CancelDelete drops a pending confirmation.
func (c *ListController) CancelDelete() {
	c.pendingDelete = nil
}

func (c *ListController) confirmDelete(id int64) tea.Cmd {
	pending, ok := c.PendingDelete()
	c.pendingDelete = nil
	if !ok || pending != id || !c.Ready() {
		return nil
	}
	ctx := c.ctx
	return func() tea.Msg {
		if err := c.store.DeleteProject(ctx, id); err != nil {
			return ProjectDeletedMsg{ID: id, Err: fmt.Errorf("delete project %d: %w", id, err)}
		}
		return ProjectDeletedMsg{ID: id}
	}
}

// StartEdit opens the edit slot on id, discarding any previous draft.
func (c *ListController) StartEdit(id int64) bool {
	if !c.Ready() {
		return false
	}
	p, ok := c.Project(id)
	if !ok {
		return false
	}
	c.edit = &EditSession{ID: p.ID, Name: p.Name, Description: p.DescriptionOr("")}
	return true
}

// CancelEdit closes the edit slot without saving.
func (c *ListController) CancelEdit() {
	c.edit = nil
}

// SetDraft replaces the drafts of the open session.
func (c *ListController) SetDraft(name, description string) {
	if c.edit == nil {
		return
	}
	c.edit.Name = name
	c.edit.Description = description
}

// CommitEdit sends the normalized drafts to the store. A blank name keeps
// the session open and raises a notice without calling the store.
func (c *ListController) CommitEdit() tea.Cmd {
	if c.edit == nil || !c.Ready() {
		return nil
	}
	id := c.edit.ID
	in, err := project.NewInput(c.edit.Name, c.edit.Description)
	if err != nil {
		c.notice = Notice{Text: "Project name is required", IsError: true}
		return nil
	}
	ctx := c.ctx
	return func() tea.Msg {
		if err := c.store.UpdateProject(ctx, id, in); err != nil {
			return ProjectUpdatedMsg{ID: id, Input: in, Err: fmt.Errorf("update project %d: %w", id, err)}
		}
		return ProjectUpdatedMsg{ID: id, Input: in}
	}
}

// Update applies a result message. It returns a follow-up command, if any.
func (c *ListController) Update(msg tea.Msg) tea.Cmd {
	if c.closed {
		return nil
	}
	switch msg := msg.(type) {
	case ProjectsLoadedMsg:
		c.applyLoaded(msg)
	case StartupMsg:
		c.applyLoaded(msg.Projects)
	case ProjectCreatedMsg:
		c.applyCreated(msg)
	case ProjectUpdatedMsg:
		c.applyUpdated(msg)
	case ProjectDeletedMsg:
		c.applyDeleted(msg)
	case DeleteConfirmedMsg:
		return c.confirmDelete(msg.ID)
	}
	return nil
}

func (c *ListController) applyLoaded(msg ProjectsLoadedMsg) {
	c.loading = false
	if msg.Err != nil {
		if !errors.Is(msg.Err, context.Canceled) {
			c.logger.Error("load projects failed", zap.Error(msg.Err))
		}
		c.projects = nil
		return
	}
	c.projects = slices.Clone(msg.Projects)
	c.changed(Change{Kind: ChangeLoaded})
}

func (c *ListController) applyCreated(msg ProjectCreatedMsg) {
	if msg.Err != nil {
		c.logger.Error("create project failed", zap.Error(msg.Err))
		c.notice = Notice{Text: "Could not create project", IsError: true}
		return
	}
	c.projects = append(c.projects, msg.Project)
	c.notice = Notice{Text: fmt.Sprintf("Created %q", msg.Project.Name)}
	c.logger.Info("project created", zap.Int64("id", msg.Project.ID))
	c.changed(Change{Kind: ChangeCreated, ID: msg.Project.ID})
}

func (c *ListController) applyUpdated(msg ProjectUpdatedMsg) {
	if msg.Err != nil {
		c.logger.Error("update project failed", zap.Int64("id", msg.ID), zap.Error(msg.Err))
		c.notice = Notice{Text: "Could not save changes", IsError: true}
		return
	}
	if i := c.indexOf(msg.ID); i >= 0 {
		c.projects[i] = msg.Input.Apply(c.projects[i])
	}
	// A later StartEdit on another project must survive this result.
	if c.edit != nil && c.edit.ID == msg.ID {
		c.edit = nil
	}
	c.notice = Notice{Text: fmt.Sprintf("Saved %q", msg.Input.Name)}
	c.logger.Info("project updated", zap.Int64("id", msg.ID))
	c.changed(Change{Kind: ChangeUpdated, ID: msg.ID})
}

func (c *ListController) applyDeleted(msg ProjectDeletedMsg) {
	if msg.Err != nil {
		// Delete failures are logged only; create/update failures raise a notice.
		c.logger.Error("delete project failed", zap.Int64("id", msg.ID), zap.Error(msg.Err))
		return
	}
	i := c.indexOf(msg.ID)
	if i < 0 {
		return
	}
	c.projects = slices.Delete(c.projects, i, i+1)
	if c.edit != nil && c.edit.ID == msg.ID {
		c.edit = nil
	}
	c.logger.Info("project deleted", zap.Int64("id", msg.ID))
	c.changed(Change{Kind: ChangeDeleted, ID: msg.ID})
}

func (c *ListController) changed(ch Change) {
	c.revision++
	if c.OnChange != nil {
		c.OnChange(ch)
	}
}

func (c *ListController) indexOf(id int64) int {
	return slices.IndexFunc(c.projects, func(p project.Project) bool { return p.ID == id })
}
