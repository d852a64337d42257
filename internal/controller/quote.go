package controller

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"projectdeck/internal/project"
	"projectdeck/internal/store"
)

// QuoteState is what the quote card should render.
type QuoteState int

const (
	QuoteEmpty QuoteState = iota
	QuoteLoading
	QuoteShowing
)

// QuotePlaceholder is shown until a quote has been confirmed.
const QuotePlaceholder = "Loading inspiration…"

// QuoteFetcher holds the auxiliary motivation quote. Failures never reach
// the user: they are logged and the last good quote stays.
type QuoteFetcher struct {
	source store.QuoteSource
	logger *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	closed bool

	quote      *project.Quote
	loading    bool
	refreshing bool
}

// NewQuoteFetcher creates an empty fetcher bounded by ctx.
func NewQuoteFetcher(ctx context.Context, src store.QuoteSource, logger *zap.Logger) *QuoteFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(ctx)
	return &QuoteFetcher{
		source: src,
		logger: logger.Named("quote"),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Quote returns the last confirmed quote.
func (f *QuoteFetcher) Quote() (project.Quote, bool) {
	if f.quote == nil {
		return project.Quote{}, false
	}
	return *f.quote, true
}

// Refreshing reports whether a user-triggered refetch is in flight.
func (f *QuoteFetcher) Refreshing() bool { return f.refreshing }

// State reports what the card shows.
func (f *QuoteFetcher) State() QuoteState {
	switch {
	case f.quote != nil:
		return QuoteShowing
	case f.loading || f.refreshing:
		return QuoteLoading
	default:
		return QuoteEmpty
	}
}

// Close cancels in-flight fetches.
func (f *QuoteFetcher) Close() {
	f.closed = true
	f.cancel()
}

// InitialLoad fetches the first quote. It is not retried on failure.
func (f *QuoteFetcher) InitialLoad() tea.Cmd {
	if f.closed {
		return nil
	}
	f.loading = true
	ctx := f.ctx
	return func() tea.Msg {
		return f.fetch(ctx, false)
	}
}

// Refresh refetches on demand. It returns nil while the initial load or
// another refresh is running, so an older result never lands last.
func (f *QuoteFetcher) Refresh() tea.Cmd {
	if f.refreshing || f.loading || f.closed {
		return nil
	}
	f.refreshing = true
	ctx := f.ctx
	return func() tea.Msg {
		return f.fetch(ctx, true)
	}
}

func (f *QuoteFetcher) fetch(ctx context.Context, refresh bool) QuoteLoadedMsg {
	q, err := f.source.FetchMotivation(ctx)
	if err != nil {
		return QuoteLoadedMsg{Err: fmt.Errorf("fetch motivation: %w", err), Refresh: refresh}
	}
	return QuoteLoadedMsg{Quote: &q, Refresh: refresh}
}

// Update applies a QuoteLoadedMsg or the quote half of a StartupMsg.
func (f *QuoteFetcher) Update(msg tea.Msg) tea.Cmd {
	if f.closed {
		return nil
	}
	switch msg := msg.(type) {
	case QuoteLoadedMsg:
		f.apply(msg)
	case StartupMsg:
		f.apply(msg.Quote)
	}
	return nil
}

func (f *QuoteFetcher) apply(msg QuoteLoadedMsg) {
	if msg.Refresh {
		f.refreshing = false
	} else {
		f.loading = false
	}
	if msg.Err != nil {
		if !errors.Is(msg.Err, context.Canceled) {
			f.logger.Warn("motivation unavailable", zap.Bool("refresh", msg.Refresh), zap.Error(msg.Err))
		}
		return
	}
	if msg.Quote != nil {
		q := *msg.Quote
		f.quote = &q
	}
}
