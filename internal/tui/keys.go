package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tsplit/internal/period"
	"github.com/javiermolinar/tsplit/internal/tui/commands"
	"github.com/javiermolinar/tsplit/internal/tui/view"
)

const helpText = "tab next • enter split • ctrl+b mode • ctrl+y copy • ctrl+r reset • pgup/pgdn scroll • esc quit"

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	// Focus
	case "tab", "down":
		cmd := m.setFocus((m.focus+1)%fieldTotal, "next")
		return m, cmd
	case "shift+tab", "up":
		cmd := m.setFocus((m.focus+fieldTotal-1)%fieldTotal, "prev")
		return m, cmd

	case "enter":
		cmd := m.compute()
		return m, cmd

	case "ctrl+b":
		if m.mode == period.ModeBoundary {
			m.mode = period.ModeInterval
		} else {
			m.mode = period.ModeBoundary
		}
		if m.rows == nil {
			return m, nil
		}
		cmd := m.compute()
		return m, cmd

	case "ctrl+y":
		return m.copyResults()

	case "ctrl+r":
		m.resetInputs()
		m.rows = nil
		m.errMsg = ""
		m.offset = 0
		cmd := m.setStatus("Reset to defaults")
		return m, cmd

	// Result scrolling
	case "pgdown", "ctrl+d":
		m.offset = min(m.offset+m.pageSize(), m.maxOffset())
		return m, nil
	case "pgup", "ctrl+u":
		m.offset = max(m.offset-m.pageSize(), 0)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves focus to the given field. Leaving the count field commits
// its draft.
func (m *Model) setFocus(to Field, reason string) tea.Cmd {
	from := m.focus
	if from == to {
		return nil
	}
	if from == FieldCount {
		m.commitCount()
	}
	LogFocusChange(from, to, reason)

	m.inputs[from].Blur()
	m.focus = to
	cmd := m.inputs[to].Focus()
	m.applyInputStyles()
	return cmd
}

// commitCount clamps the count draft and rewrites the field if needed.
func (m *Model) commitCount() {
	draft := m.inputs[FieldCount].Value()
	if m.count.Commit(draft) {
		m.inputs[FieldCount].SetValue(m.count.Text())
	}
	LogCountCommit(draft, m.count.Value())
}

// compute commits the count and returns the split command for the current form.
func (m *Model) compute() tea.Cmd {
	m.commitCount()
	return commands.Compute(commands.Request{
		Start: m.inputs[FieldStart].Value(),
		End:   m.inputs[FieldEnd].Value(),
		Count: m.count.Value(),
		Mode:  m.mode,
	})
}

func (m Model) copyResults() (tea.Model, tea.Cmd) {
	if len(m.rows) == 0 {
		cmd := m.setStatus("Nothing to copy")
		return m, cmd
	}
	if err := m.copyFn(view.PlainText(m.rows)); err != nil {
		LogError("copy", err)
		cmd := m.setStatus(fmt.Sprintf("Copy failed: %v", err))
		return m, cmd
	}
	cmd := m.setStatus(fmt.Sprintf("Copied %d periods", len(m.rows)))
	return m, cmd
}

func (m Model) pageSize() int {
	return max(m.height/2, 1)
}

// maxOffset is the offset that shows the last page of results.
func (m Model) maxOffset() int {
	return max(len(m.rows)-view.VisibleRows(m.viewState()), 0)
}
