package controller

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Startup runs the list load and the first quote fetch concurrently and
// yields a single StartupMsg once both have settled. Each branch reports
// its own error; neither affects the other.
func Startup(list *ListController, quotes *QuoteFetcher) tea.Cmd {
	list.loading = true
	quotes.loading = true
	listCtx, quoteCtx := list.ctx, quotes.ctx
	return func() tea.Msg {
		var (
			wg  sync.WaitGroup
			msg StartupMsg
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			msg.Projects = list.fetchAll(listCtx)
		}()
		go func() {
			defer wg.Done()
			msg.Quote = quotes.fetch(quoteCtx, false)
		}()
		wg.Wait()
		return msg
	}
}
