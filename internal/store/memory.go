package store

import (
	"context"
	"fmt"
	"sync"

	"projectdeck/internal/project"
)

// Compile-time contract assertions.
var (
	_ ProjectStore = (*MemoryStore)(nil)
	_ QuoteSource  = (*MemoryStore)(nil)
)

// DefaultQuotes is the rotation served by MemoryStore when none is given.
var DefaultQuotes = []project.Quote{
	{Text: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	{Text: "Simplicity is prerequisite for reliability.", Author: "Edsger W. Dijkstra"},
	{Text: "Well done is better than well said.", Author: "Benjamin Franklin"},
}

// MemoryStore keeps projects in process memory. IDs are assigned
// sequentially starting at 1 and never reused.
type MemoryStore struct {
	mu       sync.Mutex
	projects []project.Project
	nextID   int64
	quotes   []project.Quote
	quoteIdx int
}

// NewMemoryStore creates a store seeded with quotes (DefaultQuotes if empty).
func NewMemoryStore(quotes ...project.Quote) *MemoryStore {
	if len(quotes) == 0 {
		quotes = DefaultQuotes
	}
	return &MemoryStore{nextID: 1, quotes: append([]project.Quote(nil), quotes...)}
}

// ListProjects returns a copy of all projects in creation order.
func (s *MemoryStore) ListProjects(ctx context.Context) ([]project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]project.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = cloneProject(p)
	}
	return out, nil
}

// CreateProject validates in and stores it under a new id.
func (s *MemoryStore) CreateProject(ctx context.Context, in project.Input) (project.Project, error) {
	if err := ctx.Err(); err != nil {
		return project.Project{}, err
	}
	if err := in.Validate(); err != nil {
		return project.Project{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := cloneProject(in.Apply(project.Project{ID: s.nextID}))
	s.nextID++
	s.projects = append(s.projects, p)
	return cloneProject(p), nil
}

// UpdateProject replaces name and description of the project with id.
func (s *MemoryStore) UpdateProject(ctx context.Context, id int64, in project.Input) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("update %d: %w", id, ErrNotFound)
	}
	s.projects[i] = cloneProject(in.Apply(s.projects[i]))
	return nil
}

// DeleteProject removes the project with id.
func (s *MemoryStore) DeleteProject(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete %d: %w", id, ErrNotFound)
	}
	s.projects = append(s.projects[:i], s.projects[i+1:]...)
	return nil
}

// FetchMotivation returns the next quote in the rotation.
func (s *MemoryStore) FetchMotivation(ctx context.Context) (project.Quote, error) {
	if err := ctx.Err(); err != nil {
		return project.Quote{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.quotes[s.quoteIdx%len(s.quotes)]
	s.quoteIdx++
	return q, nil
}

func (s *MemoryStore) indexOf(id int64) int {
	for i, p := range s.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// cloneProject copies the description so callers never share storage.
func cloneProject(p project.Project) project.Project {
	if p.Description != nil {
		d := *p.Description
		p.Description = &d
	}
	return p
}
