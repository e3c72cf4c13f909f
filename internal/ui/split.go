package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tsplit/internal/period"
	"github.com/javiermolinar/tsplit/internal/tui/view"
)

func (a *App) splitCmd() *cobra.Command {
	var (
		start, end, count, mode string
		copyResult              bool
		noColor                 bool
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Print the periods of a time range",
		Long: `Split a start/end range into equal periods and print them.

Flags that are not given fall back to the configured defaults. An end
time that is not after the start time is read as the next day.

Examples:
  tsplit split --start 10:00 --end 13:00 --count 3
  tsplit split --start 22:00 --end 02:00 --count 4 --mode boundary
  tsplit split --count 8 --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if noColor {
				DisableColor()
			}

			m, err := period.ParseMode(mode)
			if err != nil {
				return err
			}
			r, err := period.ParseRange(start, end)
			if err != nil {
				return fmt.Errorf("%s: %w", period.Message(err), err)
			}
			n, err := period.ParseCount(count)
			if err != nil {
				return fmt.Errorf("%s: %w", period.Message(err), err)
			}

			rows, err := splitRows(r, n, m)
			if err != nil {
				return fmt.Errorf("%s: %w", period.Message(err), err)
			}

			out := cmd.OutOrStdout()
			PrintRows(out, Summary{Range: r, Count: n, Mode: m}, rows, termWidth())

			if copyResult {
				if err := a.copyFn(view.PlainText(rows)); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintln(out, formatSuccess(fmt.Sprintf("Copied %d periods to clipboard", len(rows))))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&start, "start", "s", a.config.Defaults.Start, "Start time (HH:MM)")
	cmd.Flags().StringVarP(&end, "end", "e", a.config.Defaults.End, "End time (HH:MM)")
	cmd.Flags().StringVarP(&count, "count", "n", fmt.Sprint(a.config.Defaults.Count), "Number of periods (2 to 9999)")
	cmd.Flags().StringVarP(&mode, "mode", "m", string(a.config.Mode()), "Output mode: interval or boundary")
	cmd.Flags().BoolVarP(&copyResult, "copy", "c", false, "Copy the result to the clipboard")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// splitRows computes r in the given mode and renders it as result rows.
func splitRows(r period.TimeRange, count int, mode period.Mode) ([]view.ResultRow, error) {
	if mode == period.ModeBoundary {
		bounds, err := period.Boundaries(r, count)
		if err != nil {
			return nil, err
		}
		return view.BoundaryRows(bounds), nil
	}
	periods, err := period.Split(r, count)
	if err != nil {
		return nil, err
	}
	return view.IntervalRows(periods), nil
}
