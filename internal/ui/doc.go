// Package ui contains the Bubble Tea program that powers the snippet launcher.
// The package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own browsing, editing, rendering, and list state.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg type
//     is routed through a typed handler registry; anything without a handler
//     (cursor blinks, for example) goes to the focused text widget.
//   - Key presses are interpreted by the active mode. Browse (browse.go) moves
//     the selection, runs, adds, edits, removes or copies snippets, and feeds
//     every other key to the search bar, re-ranking the list after each one.
//     Editing (editor.go) saves or cancels the buffer and feeds every other key
//     to the editor.
//
// State ownership:
//   - The snippet list, selection cursor and viewport offset live in
//     internal/ui/state.List. Ranking reorders that list in place, so display
//     order and persisted order are always the same.
//   - A snippet opened for editing is detached from the list until the editor
//     closes. Cancel restores it at its old index; Save appends the parsed
//     record.
//   - Clipboard writes run through the internal/ui/command bus so they happen
//     outside Update and report back as messages.
//
// Exit:
//   - Quitting never runs anything itself. The caller reads Snippets and
//     Pending after the program returns, persists the list, then hands the
//     terminal to the chosen command.
package ui
