package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chopsticks/internal/logging/events"
	"github.com/atomicstack/chopsticks/internal/snippet"
)

// openEditor switches to Editing. With fromSelection the selected snippet is
// detached from the list and its dump seeds the buffer; otherwise the buffer
// starts empty.
func (m *Model) openEditor(fromSelection bool) tea.Cmd {
	session := &editSession{index: m.list.Cursor}
	seed := ""
	if fromSelection {
		index := m.list.Cursor
		if original, ok := m.list.RemoveSelected(); ok {
			session.original = &original
			session.index = index
			seed = original.Dump()
			events.Snippet.Edit(index, original.Title())
		}
	}
	if session.original == nil {
		events.Snippet.Add()
	}

	m.edit = session
	m.mode = ModeEditing
	m.forceClearInfo()
	m.editor.Reset()
	m.editor.SetValue(seed)
	m.layout()
	events.Editor.Open(seed != "")
	return m.focusActive()
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Save):
		return m.saveEditor()
	case key.Matches(msg, m.keys.Cancel):
		return m.cancelEditor()
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return cmd
}

// saveEditor parses the buffer and appends the result. A parse failure keeps
// the editor open with the buffer intact.
func (m *Model) saveEditor() tea.Cmd {
	parsed, err := snippet.Parse(m.editor.Value())
	if err != nil {
		m.errMsg = err.Error()
		events.Editor.ParseError(err)
		return nil
	}
	unchanged := m.edit != nil && m.edit.original != nil && parsed.SameContent(*m.edit.original)
	m.list.Append(parsed)
	events.Snippet.Save(parsed.Title(), m.list.Len())
	m.closeEditor()
	m.list.Reset()
	m.syncViewport()
	if unchanged {
		m.setInfo("Snippet unchanged")
	} else {
		m.setInfo("Snippet saved")
	}
	return m.focusActive()
}

// cancelEditor discards the buffer and puts a detached snippet back where it
// came from.
func (m *Model) cancelEditor() tea.Cmd {
	restored := false
	if m.edit != nil && m.edit.original != nil {
		m.list.Insert(m.edit.index, *m.edit.original)
		m.list.Cursor = m.edit.index
		restored = true
	}
	events.Editor.Cancel(restored)
	m.closeEditor()
	m.syncViewport()
	return m.focusActive()
}

func (m *Model) closeEditor() {
	m.edit = nil
	m.mode = ModeBrowse
	m.errMsg = ""
	m.editor.Reset()
	m.layout()
}
