// Package tui provides the terminal user interface for tsplit.
package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tsplit/internal/config"
	"github.com/javiermolinar/tsplit/internal/period"
	"github.com/javiermolinar/tsplit/internal/tui/input"
	"github.com/javiermolinar/tsplit/internal/tui/theme"
	"github.com/javiermolinar/tsplit/internal/tui/view"
)

// Field identifies a form input.
type Field int

const (
	FieldStart Field = iota
	FieldEnd
	FieldCount
	fieldTotal
)

func (f Field) String() string {
	switch f {
	case FieldStart:
		return "Start"
	case FieldEnd:
		return "End"
	case FieldCount:
		return "Count"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

var fieldLabels = [fieldTotal]string{
	FieldStart: "Start time",
	FieldEnd:   "End time",
	FieldCount: "Periods",
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config *config.Config
	copyFn func(string) error

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Form state
	inputs [fieldTotal]textinput.Model
	focus  Field
	count  input.Count // committed count; inputs[FieldCount] holds the draft
	mode   period.Mode

	// Last result. Each computation overwrites both.
	rows   []view.ResultRow
	errMsg string
	offset int // first visible result row

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status message
	statusTime time.Time // When to clear message
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClipboard replaces the clipboard writer.
func WithClipboard(fn func(string) error) ModelOption {
	return func(m *Model) {
		m.copyFn = fn
	}
}

// WithMode overrides the configured output mode.
func WithMode(mode period.Mode) ModelOption {
	return func(m *Model) {
		m.mode = mode
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...ModelOption) *Model {
	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	m := &Model{
		config: cfg,
		copyFn: clipboard.WriteAll,
		theme:  t,
		styles: styles,
		focus:  FieldStart,
		mode:   cfg.Mode(),
	}

	m.inputs[FieldStart] = newTimeInput()
	m.inputs[FieldEnd] = newTimeInput()

	countInput := textinput.New()
	countInput.Prompt = ""
	countInput.Placeholder = "2"
	countInput.CharLimit = 4
	countInput.Width = 4
	m.inputs[FieldCount] = countInput

	m.resetInputs()
	m.inputs[FieldStart].Focus()
	m.applyInputStyles()

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func newTimeInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "HH:MM"
	ti.CharLimit = 5
	ti.Width = 5
	return ti
}

// resetInputs restores the configured defaults.
func (m *Model) resetInputs() {
	m.inputs[FieldStart].SetValue(m.config.Defaults.Start)
	m.inputs[FieldEnd].SetValue(m.config.Defaults.End)
	m.count = input.NewCount(m.config.Defaults.Count)
	m.inputs[FieldCount].SetValue(m.count.Text())
}

func (m *Model) applyInputStyles() {
	for i := range m.inputs {
		text := m.styles.InputText
		if Field(i) == m.focus {
			text = m.styles.InputTextFocused
		}
		m.inputs[i].TextStyle = text
		m.inputs[i].PromptStyle = text
		m.inputs[i].PlaceholderStyle = m.styles.InputPlaceholder
		m.inputs[i].Cursor.Style = m.styles.InputCursor
		m.inputs[i].Cursor.TextStyle = m.styles.InputCursorMarker
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, debug bool, opts ...ModelOption) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(cfg, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
