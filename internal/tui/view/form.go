package view

import "github.com/charmbracelet/lipgloss"

// RenderFields renders one line per input: a fixed-width label then the field.
func RenderFields(fields []FieldState, width int, styles Styles) []string {
	labelW := 0
	for _, f := range fields {
		labelW = max(labelW, len(f.Label))
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		labelStyle, fieldStyle := styles.Label, styles.Field
		if f.Focused {
			labelStyle, fieldStyle = styles.LabelFocused, styles.FieldFocused
		}
		label := labelStyle.Render(padRight(f.Label, labelW+2))
		field := fieldStyle.Render(f.Input)
		lines = append(lines, line(width, lipgloss.NewStyle(), label+field))
	}
	return lines
}
