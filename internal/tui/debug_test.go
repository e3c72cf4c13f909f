package tui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func captureDebugLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := debugLog
	debugLog = newDebugLogger(&buf, nil)
	t.Cleanup(func() {
		debugLog = prev
	})
	return &buf
}

func decodeEvents(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var events []map[string]any
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if l == "" {
			continue
		}
		var e map[string]any
		if err := json.Unmarshal([]byte(l), &e); err != nil {
			t.Fatalf("invalid log line %q: %v", l, err)
		}
		events = append(events, e)
	}
	return events
}

func TestDebugLog_Events(t *testing.T) {
	buf := captureDebugLog(t)

	m := focusCount(t, newTestModel(t))
	m.inputs[FieldCount].SetValue("")
	_ = split(t, m)

	var names []string
	for _, e := range decodeEvents(t, buf) {
		names = append(names, e["event"].(string))
	}
	want := []string{"KEY_PRESS", "FOCUS_CHANGE", "KEY_PRESS", "FOCUS_CHANGE", "KEY_PRESS", "COUNT_COMMIT", "COMPUTE"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", names, want)
	}
}

func TestDebugLog_Fields(t *testing.T) {
	buf := captureDebugLog(t)

	LogCountCommit("", 2)
	LogKeyPress(tea.KeyMsg{Type: tea.KeyCtrlB})

	events := decodeEvents(t, buf)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	commit := events[0]
	if commit["event"] != "COUNT_COMMIT" || commit["draft"] != "" || commit["value"] != float64(2) {
		t.Errorf("unexpected commit event: %v", commit)
	}
	if commit["seq"] != float64(1) || events[1]["seq"] != float64(2) {
		t.Errorf("expected sequential seq numbers, got %v and %v", commit["seq"], events[1]["seq"])
	}
	if events[1]["key"] != "ctrl+b" {
		t.Errorf("key = %v, want ctrl+b", events[1]["key"])
	}
}

func TestDebugLog_ComputeError(t *testing.T) {
	buf := captureDebugLog(t)

	m := newTestModel(t)
	m.inputs[FieldEnd].SetValue("1300")
	_ = split(t, m)

	events := decodeEvents(t, buf)
	last := events[len(events)-1]
	if last["event"] != "COMPUTE" || last["error"] != "invalid time format" {
		t.Errorf("unexpected compute event: %v", last)
	}
}

func TestDebugLog_Disabled(t *testing.T) {
	prev := debugLog
	t.Cleanup(func() {
		debugLog = prev
	})

	if err := InitDebugLogger(false); err != nil {
		t.Fatalf("InitDebugLogger(false): %v", err)
	}
	if debugEnabled() {
		t.Fatal("expected logging disabled")
	}
	LogKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	CloseDebugLogger()
}
