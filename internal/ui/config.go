package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tsplit/internal/clock"
	"github.com/javiermolinar/tsplit/internal/config"
	"github.com/javiermolinar/tsplit/internal/period"
	"github.com/javiermolinar/tsplit/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  tsplit config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), config.DefaultConfigPath())
		},
	}
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	if errors.Is(fileErr, os.ErrNotExist) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	p := &prompter{r: bufio.NewReader(in), w: out}
	if !p.yesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Defaults.Start = p.clockTime("Start time", cfg.Defaults.Start)
	cfg.Defaults.End = p.clockTime("End time", cfg.Defaults.End)
	cfg.Defaults.Count = p.count("Periods", cfg.Defaults.Count)
	cfg.Output.Mode = p.mode(cfg.Output.Mode)
	cfg.UI.Theme = p.theme(cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, formatSuccess("\nConfiguration saved!"))
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, formatHeader("Current configuration:"))
	fmt.Fprintln(w, formatMuted(Rule(22)))
	fmt.Fprintln(w, "[defaults]")
	fmt.Fprintf(w, "  start = %s\n", cfg.Defaults.Start)
	fmt.Fprintf(w, "  end   = %s\n", cfg.Defaults.End)
	fmt.Fprintf(w, "  count = %d\n", cfg.Defaults.Count)
	fmt.Fprintln(w, "\n[output]")
	fmt.Fprintf(w, "  mode  = %s\n", cfg.Output.Mode)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme = %s\n", cfg.UI.Theme)
}

// prompter reads answers line by line. Once input is exhausted every prompt
// keeps its current value.
type prompter struct {
	r   *bufio.Reader
	w   io.Writer
	eof bool
}

func (p *prompter) readLine() (string, bool) {
	if p.eof {
		return "", false
	}
	line, err := p.r.ReadString('\n')
	if err != nil {
		p.eof = true
		if line == "" {
			return "", false
		}
	}
	return strings.TrimSpace(line), true
}

func (p *prompter) yesNo(question string) bool {
	fmt.Fprintf(p.w, "%s [y/N]: ", question)
	input, _ := p.readLine()
	input = strings.ToLower(input)
	return input == "y" || input == "yes"
}

func (p *prompter) value(label, current string) string {
	if current == "" {
		fmt.Fprintf(p.w, "  %s: ", label)
	} else {
		fmt.Fprintf(p.w, "  %s [%s]: ", label, current)
	}
	input, _ := p.readLine()
	if input == "" {
		return current
	}
	return input
}

// retry asks for label until accept passes or input runs out.
func (p *prompter) retry(label, current, hint string, accept func(string) bool) string {
	for {
		value := p.value(label, current)
		if accept(value) || p.eof {
			return value
		}
		fmt.Fprintln(p.w, formatError(fmt.Sprintf("  Invalid value %q. %s", value, hint)))
	}
}

func (p *prompter) clockTime(label, current string) string {
	return p.retry(label+" (HH:MM)", current, "Use 24-hour HH:MM.", clock.Valid)
}

func (p *prompter) count(label string, current int) int {
	value := p.retry(label, strconv.Itoa(current), "Use a whole number from 2 to 9999.", func(s string) bool {
		_, err := period.ParseCount(s)
		return err == nil
	})
	n, err := period.ParseCount(value)
	if err != nil {
		return current
	}
	return n
}

func (p *prompter) mode(current string) string {
	label := fmt.Sprintf("Output mode (%s, %s)", period.ModeInterval, period.ModeBoundary)
	return strings.ToLower(p.retry(label, current, "Use interval or boundary.", func(s string) bool {
		_, err := period.ParseMode(s)
		return err == nil
	}))
}

func (p *prompter) theme(current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	return strings.ToLower(p.retry(label, current, "Available: "+options, func(s string) bool {
		return theme.IsAvailable(strings.ToLower(s))
	}))
}
