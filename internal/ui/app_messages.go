package ui

// ShowCreateProjectMsg opens the create form (n, SPC p c).
type ShowCreateProjectMsg struct{}

// ShowEditProjectMsg opens the edit form on the selected project (e, SPC p e).
type ShowEditProjectMsg struct{}

// ShowDeleteProjectMsg asks to delete the selected project (d, SPC p d).
type ShowDeleteProjectMsg struct{}

// RefreshQuoteMsg refetches the motivation quote (r, SPC r).
type RefreshQuoteMsg struct{}

// SubmitProjectFormMsg is sent by the project form on submit.
type SubmitProjectFormMsg struct {
	Mode        FormMode
	ID          int64
	Name        string
	Description string
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// LogoutMsg ends the session (SPC l).
type LogoutMsg struct{}

// QuitMsg shuts down the controllers and exits (q, ctrl+c, SPC q).
type QuitMsg struct{}

// ShowProjectSwitcherMsg opens the jump-to-project picker (/, SPC p j).
type ShowProjectSwitcherMsg struct{}

// SelectProjectMsg moves the list selection to ID.
type SelectProjectMsg struct {
	ID int64
}
