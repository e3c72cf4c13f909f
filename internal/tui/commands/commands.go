// Package commands provides TUI command constructors and message types.
package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tsplit/internal/clock"
	"github.com/javiermolinar/tsplit/internal/period"
)

// Request is a snapshot of the form taken when the user asks for a split.
type Request struct {
	Start string
	End   string
	Count int
	Mode  period.Mode
}

// ComputedMsg carries the outcome of a split. Exactly one of Periods,
// Boundaries or Err is set.
type ComputedMsg struct {
	Request    Request
	Periods    []period.Period
	Boundaries []clock.ClockTime
	Err        error
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// Compute splits the requested range in the requested mode.
func Compute(req Request) tea.Cmd {
	return func() tea.Msg {
		return Run(req)
	}
}

// Run performs the split synchronously.
func Run(req Request) ComputedMsg {
	msg := ComputedMsg{Request: req}
	if req.Mode == period.ModeBoundary {
		msg.Boundaries, msg.Err = period.ComputeBoundaries(req.Start, req.End, req.Count)
	} else {
		msg.Periods, msg.Err = period.Compute(req.Start, req.End, req.Count)
	}
	return msg
}
