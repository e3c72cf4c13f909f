package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles the form view needs.
type Styles struct {
	App          lipgloss.Style
	Title        lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Field        lipgloss.Style
	FieldFocused lipgloss.Style
	Mode         lipgloss.Style
	Section      lipgloss.Style
	Row          lipgloss.Style
	RowAlt       lipgloss.Style
	Index        lipgloss.Style
	Muted        lipgloss.Style
	Error        lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
	Bg           lipgloss.Color
}

// FieldState is one labelled input, already rendered by its widget.
type FieldState struct {
	Label   string
	Input   string
	Focused bool
}

// ViewState contains everything needed to draw a frame.
type ViewState struct {
	Width  int
	Height int
	Title  string
	Fields []FieldState
	Mode   string
	Rows   []ResultRow
	Offset int // first visible row
	Error  string
	Status string
	Help   string
	Styles Styles
}

// Render composes the final view output.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		return "Loading..."
	}

	l, ok := computeLayout(state)
	if !ok {
		return "Terminal too small"
	}
	results := RenderResults(state, l.innerW, l.resultsH)

	content := lipgloss.JoinVertical(lipgloss.Left, l.head, results, l.foot)
	content = PlaceBox(l.innerW, l.innerH, lipgloss.Top, content, state.Styles.Bg)
	app := state.Styles.App.Render(content)
	return PadLinesWithBackground(app, state.Width, state.Height, state.Styles.Bg)
}

// VisibleRows returns how many result rows fit on screen, excluding the
// results header line. It is 0 before the terminal size is known.
func VisibleRows(state ViewState) int {
	if state.Width == 0 || state.Height == 0 {
		return 0
	}
	l, ok := computeLayout(state)
	if !ok {
		return 0
	}
	return max(l.resultsH-1, 0)
}

type layout struct {
	innerW, innerH int
	head, foot     string
	resultsH       int
}

func computeLayout(state ViewState) (layout, bool) {
	frameW, frameH := state.Styles.App.GetFrameSize()
	l := layout{innerW: state.Width - frameW, innerH: state.Height - frameH}
	if l.innerW <= 0 || l.innerH <= 0 {
		return l, false
	}
	l.head = renderHead(state, l.innerW)
	l.foot = renderFoot(state, l.innerW)
	l.resultsH = l.innerH - lipgloss.Height(l.head) - lipgloss.Height(l.foot)
	return l, true
}

func renderHead(state ViewState, width int) string {
	lines := []string{
		line(width, state.Styles.Title, state.Title),
		"",
	}
	lines = append(lines, RenderFields(state.Fields, width, state.Styles)...)
	lines = append(lines, line(width, state.Styles.Mode, "Mode: "+state.Mode), "")
	return strings.Join(lines, "\n")
}

func renderFoot(state ViewState, width int) string {
	lines := make([]string, 0, 3)
	if state.Error != "" {
		lines = append(lines, line(width, state.Styles.Error, state.Error))
	}
	lines = append(lines,
		line(width, state.Styles.Status, state.Status),
		line(width, state.Styles.Help, state.Help),
	)
	return strings.Join(lines, "\n")
}
