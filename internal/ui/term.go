package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the CLI output.
var (
	// Period labels: bold cyan
	colorLabel = color.New(color.FgCyan, color.Bold)

	// Clock ranges: plain white so they stay readable on any background
	colorRange = color.New(color.FgWhite)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Durations and rules
	colorMuted = color.New(color.FgWhite, color.Faint)

	colorError   = color.New(color.FgRed)
	colorSuccess = color.New(color.FgGreen)
)

// maxRuleWidth caps the rule under the header on wide terminals.
const maxRuleWidth = 40

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatLabel(s string) string {
	return colorLabel.Sprint(s)
}

func formatRange(s string) string {
	return colorRange.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

func formatError(s string) string {
	return colorError.Sprint(s)
}

func formatSuccess(s string) string {
	return colorSuccess.Sprint(s)
}
