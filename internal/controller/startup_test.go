package controller

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectdeck/internal/project"
)

func TestStartup_QuoteFailureDoesNotBlockList(t *testing.T) {
	f := newFakeStore(project.Project{ID: 1, Name: "X"})
	f.quoteErr = errBoom
	list := NewListController(context.Background(), f, nil)
	quotes := NewQuoteFetcher(context.Background(), f, nil)
	defer list.Close()
	defer quotes.Close()

	msg := run(t, Startup(list, quotes))
	list.Update(msg)
	quotes.Update(msg)

	assert.Equal(t, []project.Project{{ID: 1, Name: "X"}}, list.Projects())
	assert.False(t, list.Loading())
	_, ok := quotes.Quote()
	assert.False(t, ok)
}

func TestStartup_ListFailureStillShowsQuote(t *testing.T) {
	f := newFakeStore()
	f.listErr = errBoom
	list := NewListController(context.Background(), f, nil)
	quotes := NewQuoteFetcher(context.Background(), f, nil)
	defer list.Close()
	defer quotes.Close()

	msg := run(t, Startup(list, quotes))
	list.Update(msg)
	quotes.Update(msg)

	assert.Empty(t, list.Projects())
	assert.False(t, list.Loading())
	assert.Equal(t, QuoteShowing, quotes.State())
}

func TestStartup_LoadingClearsOnlyOnJoin(t *testing.T) {
	f := newFakeStore(project.Project{ID: 1, Name: "X"})
	list := NewListController(context.Background(), f, nil)
	quotes := NewQuoteFetcher(context.Background(), f, nil)
	defer list.Close()
	defer quotes.Close()

	cmd := Startup(list, quotes)
	assert.Equal(t, QuoteLoading, quotes.State())
	msg, ok := run(t, cmd).(StartupMsg)
	require.True(t, ok)
	assert.True(t, list.Loading())

	list.Update(msg)
	assert.False(t, list.Loading())
}

func TestStartup_CreateBeforeJoinIsRefused(t *testing.T) {
	f := newFakeStore(project.Project{ID: 1, Name: "X"})
	list := NewListController(context.Background(), f, nil)
	quotes := NewQuoteFetcher(context.Background(), f, nil)
	defer list.Close()
	defer quotes.Close()

	msg := run(t, Startup(list, quotes))
	assert.Nil(t, list.Create("Y", ""))
	assert.Zero(t, list.Revision())

	list.Update(msg)
	quotes.Update(msg)

	stored, err := f.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, list.Projects())
	assert.Equal(t, []project.Project{{ID: 1, Name: "X"}}, list.Projects())
	assert.True(t, list.Ready())
}

func TestStartup_QuoteRefreshWaitsForJoin(t *testing.T) {
	f := newFakeStore()
	list := NewListController(context.Background(), f, nil)
	quotes := NewQuoteFetcher(context.Background(), f, nil)
	defer list.Close()
	defer quotes.Close()

	msg := run(t, Startup(list, quotes))
	assert.Nil(t, quotes.Refresh())

	quotes.Update(msg)
	assert.NotNil(t, quotes.Refresh())
}

func TestStartup_RunsBranchesConcurrently(t *testing.T) {
	f := newFakeStore(project.Project{ID: 1, Name: "X"})
	quoteStarted := make(chan struct{})
	f.beforeQuote = func(context.Context) { close(quoteStarted) }
	f.beforeList = func(context.Context) {
		select {
		case <-quoteStarted:
		case <-time.After(2 * time.Second):
			t.Error("quote fetch did not start while list was loading")
		}
	}
	list := NewListController(context.Background(), f, nil)
	quotes := NewQuoteFetcher(context.Background(), f, nil)
	defer list.Close()
	defer quotes.Close()

	msg := run(t, Startup(list, quotes)).(StartupMsg)
	assert.NoError(t, msg.Projects.Err)
	assert.NoError(t, msg.Quote.Err)
	assert.Equal(t, 1, f.lists)
	assert.Equal(t, 1, f.quotes)
}
