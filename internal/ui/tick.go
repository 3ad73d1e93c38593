package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/chopsticks/internal/tick"
)

func waitForTick(src *tick.Source) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-src.Events()
		if !ok {
			return tickDoneMsg{}
		}
		return tickMsg{event: evt}
	}
}

type tickMsg struct {
	event tick.Event
}

type tickDoneMsg struct{}

func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tickMsg); !ok {
		return nil
	}
	m.clearInfo()
	if m.ticks != nil {
		return waitForTick(m.ticks)
	}
	return nil
}

func (m *Model) handleTickDoneMsg(msg tea.Msg) tea.Cmd {
	m.ticks = nil
	return nil
}
