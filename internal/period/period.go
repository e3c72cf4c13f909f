// Package period splits a wall-clock time range into equal contiguous periods.
//
// A range whose end is not after its start crosses midnight: the end is read
// as the same time on the following day. Equal start and end therefore span a
// full 24 hours.
package period

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/javiermolinar/tsplit/internal/clock"
)

// Mode selects the output shape of a split.
type Mode string

const (
	// ModeInterval produces explicit start/end pairs.
	ModeInterval Mode = "interval"
	// ModeBoundary produces only the start of each period.
	ModeBoundary Mode = "boundary"
)

// ParseMode parses a mode name. Empty selects ModeInterval.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeInterval:
		return ModeInterval, nil
	case ModeBoundary:
		return ModeBoundary, nil
	default:
		return "", fmt.Errorf("mode must be %q or %q, got %q", ModeInterval, ModeBoundary, s)
	}
}

// TimeRange is a start and end time of day.
type TimeRange struct {
	Start clock.ClockTime
	End   clock.ClockTime
}

// NewRange creates a TimeRange.
func NewRange(start, end clock.ClockTime) TimeRange {
	return TimeRange{Start: start, End: end}
}

// Wraps reports whether the range crosses midnight.
func (r TimeRange) Wraps() bool {
	return !r.End.After(r.Start)
}

// Span returns the normalized length of the range, in (0, 24h].
func (r TimeRange) Span() time.Duration {
	end := r.End.Offset()
	if r.Wraps() {
		end += 24 * time.Hour
	}
	return end - r.Start.Offset()
}

// Period is one sub-interval of a split range.
type Period struct {
	Index    int // 1-based
	Start    clock.ClockTime
	End      clock.ClockTime
	Duration time.Duration
}

func (p Period) String() string {
	return p.Start.String() + "-" + p.End.String()
}

// Split divides r into count contiguous periods of equal length.
// The last period always ends exactly at r.End.
func Split(r TimeRange, count int) ([]Period, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}

	offsets := r.offsets(count)
	periods := make([]Period, count)
	for i := range count {
		periods[i] = Period{
			Index:    i + 1,
			Start:    r.at(offsets[i]),
			End:      r.at(offsets[i+1]),
			Duration: offsets[i+1] - offsets[i],
		}
	}
	return periods, nil
}

// Boundaries returns the start of each of the count periods of r.
func Boundaries(r TimeRange, count int) ([]clock.ClockTime, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}

	offsets := r.offsets(count)
	out := make([]clock.ClockTime, count)
	for i := range count {
		out[i] = r.at(offsets[i])
	}
	return out, nil
}

// Compute parses startText and endText as HH:MM and splits the range into
// count periods.
func Compute(startText, endText string, count int) ([]Period, error) {
	r, err := ParseRange(startText, endText)
	if err != nil {
		return nil, err
	}
	return Split(r, count)
}

// ComputeBoundaries is Compute for ModeBoundary.
func ComputeBoundaries(startText, endText string, count int) ([]clock.ClockTime, error) {
	r, err := ParseRange(startText, endText)
	if err != nil {
		return nil, err
	}
	return Boundaries(r, count)
}

// ParseRange parses both ends of a range.
func ParseRange(startText, endText string) (TimeRange, error) {
	start, err := clock.Parse(startText)
	if err != nil {
		return TimeRange{}, &ParseError{Field: "start", Input: startText, Err: err}
	}
	end, err := clock.Parse(endText)
	if err != nil {
		return TimeRange{}, &ParseError{Field: "end", Input: endText, Err: err}
	}
	return NewRange(start, end), nil
}

// offsets returns count+1 offsets from r.Start. Each is rounded to the
// nanosecond so float error cannot pull an exact minute below it, and the
// final offset is the span itself.
func (r TimeRange) offsets(count int) []time.Duration {
	span := r.Span()
	size := float64(span) / float64(count)

	out := make([]time.Duration, count+1)
	for i := range count {
		out[i] = time.Duration(math.Round(size * float64(i)))
	}
	out[count] = span
	return out
}

func (r TimeRange) at(offset time.Duration) clock.ClockTime {
	return clock.FromOffset(r.Start.Offset() + offset)
}
