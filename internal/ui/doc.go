// Package ui implements an interactive terminal browser of a user's saved videos using bubbletea's Elm architecture.
//
// The TUI provides four views:
//  1. [ListView] : Browse and filter saved videos
//  2. [DetailView] : Statistics and engagement rates for one video
//  3. [ConfirmView] : Confirm removal from the saved list
//  4. [AddView] : Look up a URL or ID and save it
//
// The (view) [Model] implements the standard Init/Update/View pattern, receiving messages via the Msg union type.
// Store reads and writes run inside [tea.Cmd] functions so the update loop stays pure.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
