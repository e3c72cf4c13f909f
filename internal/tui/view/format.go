// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/tsplit/internal/clock"
	"github.com/javiermolinar/tsplit/internal/period"
)

// FormatDuration formats a period length as "Xh Ym Zs", dropping zero parts.
// Sub-second remainders are truncated.
func FormatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	if d <= 0 {
		return "0m"
	}
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)

	parts := make([]string, 0, 3)
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	if s > 0 {
		parts = append(parts, fmt.Sprintf("%ds", s))
	}
	return strings.Join(parts, " ")
}

// ResultRow is one rendered line of a split result.
type ResultRow struct {
	Label    string // "Period 1" or "Chunk 1"
	Range    string // "10:00 - 11:00" or "10:00"
	Duration string // empty in boundary mode
}

// IntervalRows builds rows for interval mode.
func IntervalRows(periods []period.Period) []ResultRow {
	rows := make([]ResultRow, len(periods))
	for i, p := range periods {
		rows[i] = ResultRow{
			Label:    fmt.Sprintf("Period %d", p.Index),
			Range:    p.Start.String() + " - " + p.End.String(),
			Duration: FormatDuration(p.Duration),
		}
	}
	return rows
}

// BoundaryRows builds rows for boundary mode.
func BoundaryRows(bounds []clock.ClockTime) []ResultRow {
	rows := make([]ResultRow, len(bounds))
	for i, b := range bounds {
		rows[i] = ResultRow{
			Label: fmt.Sprintf("Chunk %d", i+1),
			Range: b.String(),
		}
	}
	return rows
}

// PlainText renders rows without styling, one per line, for copying.
func PlainText(rows []ResultRow) string {
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(r.Label)
		b.WriteString(": ")
		b.WriteString(r.Range)
		if r.Duration != "" {
			b.WriteString(" (")
			b.WriteString(r.Duration)
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// LabelWidth returns the widest label, for column alignment.
func LabelWidth(rows []ResultRow) int {
	w := 0
	for _, r := range rows {
		w = max(w, len(r.Label))
	}
	return w
}
