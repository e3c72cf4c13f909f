package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/javiermolinar/tsplit/internal/period"
	"github.com/javiermolinar/tsplit/internal/tui/view"
)

// Summary describes a split for the header line.
type Summary struct {
	Range period.TimeRange
	Count int
	Mode  period.Mode
}

// Header returns e.g. "22:00 → 02:00 (4h, 4 periods, crosses midnight)".
func (s Summary) Header() string {
	parts := []string{
		view.FormatDuration(s.Range.Span()),
		fmt.Sprintf("%d periods", s.Count),
	}
	if s.Mode == period.ModeBoundary {
		parts[1] = fmt.Sprintf("%d chunks", s.Count)
	}
	if s.Range.Wraps() {
		parts = append(parts, "crosses midnight")
	}
	return fmt.Sprintf("%s → %s (%s)", s.Range.Start, s.Range.End, strings.Join(parts, ", "))
}

// Rule returns a horizontal line sized to the terminal.
func Rule(width int) string {
	return strings.Repeat("─", max(min(width, maxRuleWidth), 1))
}

// PrintRows writes a header, a rule and one aligned line per row.
func PrintRows(w io.Writer, s Summary, rows []view.ResultRow, width int) {
	fmt.Fprintln(w, formatHeader(s.Header()))
	fmt.Fprintln(w, formatMuted(Rule(width)))

	labelW := view.LabelWidth(rows)
	for _, r := range rows {
		label := r.Label + strings.Repeat(" ", labelW-len(r.Label))
		line := formatLabel(label) + "  " + formatRange(r.Range)
		if r.Duration != "" {
			line += "  " + formatMuted(r.Duration)
		}
		fmt.Fprintln(w, line)
	}
}
