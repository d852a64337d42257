// Package textutil holds width-aware string helpers for the terminal views.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// OneLine collapses newlines and runs of whitespace into single spaces.
// Descriptions can be multi-line; list rows cannot.
func OneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Wrap breaks s into lines no wider than width, splitting on spaces. A
// single word longer than width is truncated.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var (
		lines []string
		cur   strings.Builder
		w     int
	)
	for _, word := range strings.Fields(s) {
		ww := Width(word)
		if ww > width {
			word, ww = Truncate(word, width), width
		}
		if w > 0 && w+1+ww > width {
			lines = append(lines, cur.String())
			cur.Reset()
			w = 0
		}
		if w > 0 {
			cur.WriteByte(' ')
			w++
		}
		cur.WriteString(word)
		w += ww
	}
	if w > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
