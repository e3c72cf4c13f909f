package tui

import (
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/javiermolinar/tsplit/internal/period"
	"github.com/javiermolinar/tsplit/internal/tui/commands"
)

// DebugLogger logs TUI state, keystrokes, and events as JSON lines.
type DebugLogger struct {
	mu      sync.Mutex
	log     zerolog.Logger
	closer  io.Closer
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "tsplit-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{log: zerolog.Nop()}
		return nil
	}

	// Create log file in current directory with fixed name (easy to find)
	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	debugLog = newDebugLogger(f, f)
	debugLog.event("DEBUG_START", func(e *zerolog.Event) {
		e.Str("log_file", DebugLogPath)
	})
	return nil
}

func newDebugLogger(w io.Writer, closer io.Closer) *DebugLogger {
	return &DebugLogger{
		log:     zerolog.New(w).With().Timestamp().Logger(),
		closer:  closer,
		enabled: true,
	}
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.event("DEBUG_END", func(e *zerolog.Event) {
		e.Int("events", debugLog.seq)
	})
	if debugLog.closer != nil {
		_ = debugLog.closer.Close()
	}
	debugLog = nil
}

func (d *DebugLogger) event(name string, fields func(*zerolog.Event)) {
	if d == nil || !d.enabled {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	e := d.log.Debug().Int("seq", d.seq).Str("event", name)
	if fields != nil {
		fields(e)
	}
	e.Send()
}

func debugEnabled() bool {
	return debugLog != nil && debugLog.enabled
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if !debugEnabled() {
		return
	}
	debugLog.event("KEY_PRESS", func(e *zerolog.Event) {
		e.Str("key", msg.String())
	})
}

// LogFocusChange logs focus moving between form fields.
func LogFocusChange(from, to Field, reason string) {
	if !debugEnabled() {
		return
	}
	debugLog.event("FOCUS_CHANGE", func(e *zerolog.Event) {
		e.Str("from", from.String()).Str("to", to.String()).Str("reason", reason)
	})
}

// LogCountCommit logs a count draft being committed.
func LogCountCommit(draft string, value int) {
	if !debugEnabled() {
		return
	}
	debugLog.event("COUNT_COMMIT", func(e *zerolog.Event) {
		e.Str("draft", draft).Int("value", value)
	})
}

// LogCompute logs the outcome of a split.
func LogCompute(msg commands.ComputedMsg) {
	if !debugEnabled() {
		return
	}
	debugLog.event("COMPUTE", func(e *zerolog.Event) {
		e.Str("start", msg.Request.Start).
			Str("end", msg.Request.End).
			Int("count", msg.Request.Count).
			Str("mode", string(msg.Request.Mode))
		if msg.Err != nil {
			e.Str("error", period.Message(msg.Err))
			return
		}
		e.Int("periods", len(msg.Periods)+len(msg.Boundaries))
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if !debugEnabled() {
		return
	}
	debugLog.event("ERROR", func(e *zerolog.Event) {
		e.Str("context", context).Err(err)
	})
}
