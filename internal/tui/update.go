package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tsplit/internal/period"
	"github.com/javiermolinar/tsplit/internal/tui/commands"
	"github.com/javiermolinar/tsplit/internal/tui/view"
)

const statusTTL = 3 * time.Second

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.ComputedMsg:
		LogCompute(msg)
		m.offset = 0
		if msg.Err != nil {
			m.rows = nil
			m.errMsg = period.Message(msg.Err)
			return m, nil
		}
		m.errMsg = ""
		if msg.Request.Mode == period.ModeBoundary {
			m.rows = view.BoundaryRows(msg.Boundaries)
		} else {
			m.rows = view.IntervalRows(msg.Periods)
		}
		return m, nil

	case commands.ClearStatusMsg:
		if !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Cursor blink and other widget messages go to the focused input
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setStatus shows a temporary message and schedules its removal.
func (m *Model) setStatus(text string) tea.Cmd {
	m.statusMsg = text
	m.statusTime = time.Now().Add(statusTTL)
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
