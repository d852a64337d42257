package controller

import "projectdeck/internal/project"

// ProjectsLoadedMsg carries the result of a full list fetch.
type ProjectsLoadedMsg struct {
	Projects []project.Project
	Err      error
}

// ProjectCreatedMsg carries the store's canonical entity for a create.
type ProjectCreatedMsg struct {
	Project project.Project
	Err     error
}

// ProjectUpdatedMsg carries the outcome of an update. Input is the
// normalized payload that was sent; it is what gets applied locally.
type ProjectUpdatedMsg struct {
	ID    int64
	Input project.Input
	Err   error
}

// ProjectDeletedMsg carries the outcome of a confirmed delete.
type ProjectDeletedMsg struct {
	ID  int64
	Err error
}

// ConfirmDeleteMsg asks the presentation layer to prompt before deleting.
type ConfirmDeleteMsg struct {
	Project project.Project
}

// DeleteConfirmedMsg is sent by the prompt when the user approves.
type DeleteConfirmedMsg struct {
	ID int64
}

// QuoteLoadedMsg carries a motivation fetch. Quote is nil on failure.
type QuoteLoadedMsg struct {
	Quote   *project.Quote
	Err     error
	Refresh bool
}

// StartupMsg is delivered once both initial loads have settled.
type StartupMsg struct {
	Projects ProjectsLoadedMsg
	Quote    QuoteLoadedMsg
}
