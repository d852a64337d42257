package ui

import (
	"strings"

	"projectdeck/internal/controller"
	"projectdeck/internal/ui/textutil"
)

const quoteCardWidth = 44

// RenderQuoteCard draws the motivation card. The placeholder shows until a
// quote has been confirmed; "…" marks a refresh in flight.
func RenderQuoteCard(f *controller.QuoteFetcher) string {
	if f == nil {
		return ""
	}
	inner := quoteCardWidth - 4
	var lines []string
	q, ok := f.Quote()
	if ok {
		for _, l := range textutil.Wrap("“"+q.Text+"”", inner) {
			lines = append(lines, Styles.Normal.Render(l))
		}
		if q.Author != "" {
			lines = append(lines, Styles.Author.Render(textutil.Truncate("— "+q.Author, inner)))
		}
	} else {
		lines = append(lines, Styles.Muted.Render(controller.QuotePlaceholder))
	}
	footer := "r: new quote"
	if f.Refreshing() {
		footer = "…"
	}
	lines = append(lines, Styles.Hint.Render(footer))
	return Styles.Card.Width(quoteCardWidth - 2).Render(strings.Join(lines, "\n"))
}
