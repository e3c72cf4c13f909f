package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/tsplit/internal/tui/theme"
	"github.com/javiermolinar/tsplit/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	View view.Styles

	// Text input internals, unfocused and focused
	InputText         lipgloss.Style
	InputTextFocused  lipgloss.Style
	InputPlaceholder  lipgloss.Style
	InputCursor       lipgloss.Style
	InputCursorMarker lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	base := lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg)

	return &Styles{
		View: view.Styles{
			App:          base.Padding(1, 2),
			Title:        lipgloss.NewStyle().Background(p.Accent).Foreground(p.TextOnAccent).Bold(true).Padding(0, 1),
			Label:        base.Foreground(p.Muted),
			LabelFocused: base.Foreground(p.Accent).Bold(true),
			Field:        lipgloss.NewStyle().Background(p.Field).Foreground(p.Fg).Padding(0, 1),
			FieldFocused: lipgloss.NewStyle().Background(p.Selection).Foreground(p.TextOnSelection).Padding(0, 1),
			Mode:         base.Foreground(p.Muted).Italic(true),
			Section:      base.Foreground(p.Accent).Bold(true),
			Row:          lipgloss.NewStyle().Background(p.Row).Foreground(p.Fg),
			RowAlt:       lipgloss.NewStyle().Background(p.RowAlt).Foreground(p.Fg),
			Index:        lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
			Muted:        lipgloss.NewStyle().Foreground(p.Muted),
			Error:        base.Foreground(p.Error).Bold(true),
			Status:       base.Foreground(p.Success),
			Help:         base.Foreground(p.Muted),
			Bg:           p.Bg,
		},
		InputText:         lipgloss.NewStyle().Background(p.Field).Foreground(p.Fg),
		InputTextFocused:  lipgloss.NewStyle().Background(p.Selection).Foreground(p.TextOnSelection),
		InputPlaceholder:  lipgloss.NewStyle().Background(p.Field).Foreground(p.Muted),
		InputCursor:       lipgloss.NewStyle().Foreground(p.Accent),
		InputCursorMarker: lipgloss.NewStyle().Background(p.Selection).Foreground(p.TextOnSelection),
	}
}
