package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderResults renders the visible slice of result rows into height lines.
// A header line is drawn only when there is room for it and at least one row.
func RenderResults(state ViewState, width, height int) string {
	if height <= 0 || len(state.Rows) == 0 {
		return PlaceBox(width, max(height, 0), lipgloss.Top, "", state.Styles.Bg)
	}

	lines := make([]string, 0, height)
	title := "Results"
	visible := height - 1
	start, end := VisibleRange(len(state.Rows), state.Offset, visible)
	if start > 0 || end < len(state.Rows) {
		title += state.Styles.Muted.Render("  " + rangeHint(start, end, len(state.Rows)))
	}
	lines = append(lines, line(width, state.Styles.Section, title))

	labelW := LabelWidth(state.Rows)
	for i := start; i < end; i++ {
		lines = append(lines, renderRow(state.Rows[i], i, labelW, width, state.Styles))
	}
	return PlaceBox(width, height, lipgloss.Top, strings.Join(lines, "\n"), state.Styles.Bg)
}

func renderRow(r ResultRow, i, labelW, width int, styles Styles) string {
	rowStyle := styles.Row
	if i%2 == 1 {
		rowStyle = styles.RowAlt
	}
	bg := rowStyle.GetBackground()
	content := styles.Index.Background(bg).Render(padRight(r.Label+":", labelW+1)) +
		rowStyle.Render("  "+r.Range)
	if r.Duration != "" {
		content += styles.Muted.Background(bg).Render("  " + r.Duration)
	}
	return line(width, rowStyle, content)
}

// VisibleRange clamps offset so that at most limit rows starting there are shown.
func VisibleRange(total, offset, limit int) (start, end int) {
	if limit <= 0 || total == 0 {
		return 0, 0
	}
	offset = min(max(offset, 0), max(total-limit, 0))
	return offset, min(offset+limit, total)
}

func rangeHint(start, end, total int) string {
	return "(" + strconv.Itoa(start+1) + "-" + strconv.Itoa(end) + " of " + strconv.Itoa(total) + ")"
}
