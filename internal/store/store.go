// Package store defines the data-access collaborator that projectdeck's
// controllers depend on, plus an in-memory implementation used for demo
// mode and tests. The REST implementation lives in store/httpstore.
package store

import (
	"context"
	"errors"

	"projectdeck/internal/project"
)

// Sentinel errors shared by store implementations. Use with errors.Is.
var (
	ErrNotFound     = errors.New("project not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("store unavailable")
)

// ProjectStore is the remote source of truth for projects.
// UpdateProject returns no entity: callers apply their own normalized input.
type ProjectStore interface {
	ListProjects(ctx context.Context) ([]project.Project, error)
	CreateProject(ctx context.Context, in project.Input) (project.Project, error)
	UpdateProject(ctx context.Context, id int64, in project.Input) error
	DeleteProject(ctx context.Context, id int64) error
}

// QuoteSource serves the auxiliary motivation quote.
type QuoteSource interface {
	FetchMotivation(ctx context.Context) (project.Quote, error)
}
