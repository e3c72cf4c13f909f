package tui

import (
	"github.com/javiermolinar/tsplit/internal/tui/view"
)

// View renders the form and the last result.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	fields := make([]view.FieldState, 0, fieldTotal)
	for i := range m.inputs {
		fields = append(fields, view.FieldState{
			Label:   fieldLabels[i],
			Input:   m.inputs[i].View(),
			Focused: Field(i) == m.focus,
		})
	}

	return view.ViewState{
		Width:  m.width,
		Height: m.height,
		Title:  "Time Period Splitter",
		Fields: fields,
		Mode:   string(m.mode) + " (ctrl+b to switch)",
		Rows:   m.rows,
		Offset: m.offset,
		Error:  m.errMsg,
		Status: m.statusMsg,
		Help:   helpText,
		Styles: m.styles.View,
	}
}
