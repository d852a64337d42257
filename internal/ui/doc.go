// Package ui is the projectdeck terminal front end, built on Bubble Tea.
//
// AppModel owns a ListController and a QuoteFetcher and renders them:
//   - header with the project count, the signed-in user and the quote card
//   - ProjectsView, a bubbles list of projects
//   - an OverlayStack of modals (project form, delete confirmation)
//   - a leader-key (SPC) keybind registry with a bubbles/help hint bar
//
// All remote work happens in controller commands; ui only routes messages.
package ui
