package controller

import (
	"context"
	"slices"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"projectdeck/internal/project"
	"projectdeck/internal/store"
)

// fakeStore is a scriptable ProjectStore and QuoteSource that counts calls.
type fakeStore struct {
	mu       sync.Mutex
	projects []project.Project
	nextID   int64

	listErr, createErr, updateErr, deleteErr, quoteErr error
	quote                                              project.Quote

	lists, creates, updates, deletes, quotes int
	lastInput                                project.Input
	lastID                                   int64

	// beforeList, if set, runs at the start of ListProjects.
	beforeList func(ctx context.Context)
	// beforeQuote, if set, runs at the start of FetchMotivation.
	beforeQuote func(ctx context.Context)
}

var (
	_ store.ProjectStore = (*fakeStore)(nil)
	_ store.QuoteSource  = (*fakeStore)(nil)
)

func newFakeStore(projects ...project.Project) *fakeStore {
	f := &fakeStore{projects: projects, nextID: 1, quote: project.Quote{Text: "Keep going.", Author: "Anon"}}
	for _, p := range projects {
		if p.ID >= f.nextID {
			f.nextID = p.ID + 1
		}
	}
	return f
}

func (f *fakeStore) ListProjects(ctx context.Context) ([]project.Project, error) {
	if f.beforeList != nil {
		f.beforeList(ctx)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(f.projects), nil
}

func (f *fakeStore) CreateProject(ctx context.Context, in project.Input) (project.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	f.lastInput = in
	if f.createErr != nil {
		return project.Project{}, f.createErr
	}
	p := in.Apply(project.Project{ID: f.nextID})
	f.nextID++
	f.projects = append(f.projects, p)
	return p, nil
}

func (f *fakeStore) UpdateProject(ctx context.Context, id int64, in project.Input) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	f.lastID, f.lastInput = id, in
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.projects {
		if f.projects[i].ID == id {
			f.projects[i] = in.Apply(f.projects[i])
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) DeleteProject(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	f.lastID = id
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.projects = slices.DeleteFunc(f.projects, func(p project.Project) bool { return p.ID == id })
	return nil
}

func (f *fakeStore) FetchMotivation(ctx context.Context) (project.Quote, error) {
	if f.beforeQuote != nil {
		f.beforeQuote(ctx)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quotes++
	if f.quoteErr != nil {
		return project.Quote{}, f.quoteErr
	}
	return f.quote, nil
}

func strPtr(s string) *string { return &s }

// run executes cmd synchronously and returns its message.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}
