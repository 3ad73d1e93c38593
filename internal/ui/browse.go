package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chopsticks/internal/logging"
	"github.com/atomicstack/chopsticks/internal/logging/events"
	"github.com/atomicstack/chopsticks/internal/search"
	"github.com/atomicstack/chopsticks/internal/snippet"
	"github.com/atomicstack/chopsticks/internal/ui/command"
)

func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		m.moveCursorUp()
	case key.Matches(msg, m.keys.Down):
		m.moveCursorDown()
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursorPageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursorPageDown()
	case key.Matches(msg, m.keys.Home):
		m.moveCursorHome()
	case key.Matches(msg, m.keys.End):
		m.moveCursorEnd()
	case key.Matches(msg, m.keys.Execute):
		return m.executeSelected()
	case key.Matches(msg, m.keys.Add):
		return m.openEditor(false)
	case key.Matches(msg, m.keys.Edit):
		return m.openEditor(true)
	case key.Matches(msg, m.keys.Remove):
		m.removeSelected()
	case key.Matches(msg, m.keys.Copy):
		return m.copySelected()
	case key.Matches(msg, m.keys.ClearSearch):
		m.clearSearch()
	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.rerank()
		return cmd
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.mode != ModeBrowse {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursorUp()
	case tea.MouseButtonWheelDown:
		m.moveCursorDown()
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

func (m *Model) moveCursorUp() {
	if m.list.MoveCursorUp() {
		events.Selection.Move(m.list.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorDown() {
	if m.list.MoveCursorDown() {
		events.Selection.Move(m.list.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorPageUp() {
	if m.list.MoveCursorPageUp(m.maxVisibleItems()) {
		events.Selection.Move(m.list.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorPageDown() {
	if m.list.MoveCursorPageDown(m.maxVisibleItems()) {
		events.Selection.Move(m.list.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorHome() {
	if m.list.MoveCursorHome() {
		events.Selection.Move(m.list.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorEnd() {
	if m.list.MoveCursorEnd() {
		events.Selection.Move(m.list.Cursor)
	}
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}

// rerank scores the whole list against the current query and moves the
// selection back to the top.
func (m *Model) rerank() {
	query := m.search.Value()
	search.Rank(query, m.list.Items)
	m.list.Reset()
	events.Search.Query(query, m.list.Len())
}

func (m *Model) clearSearch() {
	if m.search.Value() == "" {
		return
	}
	m.search.SetValue("")
	m.forceClearInfo()
	events.Search.Cleared()
	m.rerank()
}

func (m *Model) executeSelected() tea.Cmd {
	selected, ok := m.list.Selected()
	if !ok {
		return nil
	}
	m.pending = &selected
	return m.quit()
}

func (m *Model) removeSelected() {
	index := m.list.Cursor
	removed, ok := m.list.RemoveSelected()
	if !ok {
		return
	}
	events.Snippet.Remove(index, removed.Title())
	m.syncViewport()
}

func (m *Model) copySelected() tea.Cmd {
	selected, ok := m.list.Selected()
	if !ok {
		return nil
	}
	text := selected.Cmd
	write := m.clipboard
	return m.bus.Execute(command.Request{
		ID:    "clipboard:copy",
		Label: selected.Title(),
		Handler: func() tea.Msg {
			return copyResultMsg{text: text, err: write(text)}
		},
	})
}

type copyResultMsg struct {
	text string
	err  error
}

func (m *Model) handleCopyResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(copyResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		logging.Error(result.err)
		m.errMsg = fmt.Sprintf("copy failed: %v", result.err)
		m.forceClearInfo()
		return nil
	}
	events.Snippet.Copy(snippet.Snippet{Cmd: result.text}.Title())
	m.setInfo("Copied to clipboard")
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.layout()
	m.syncViewport()
	return nil
}
