// Package clock provides the wall-clock time-of-day type used by tsplit.
package clock

import (
	"errors"
	"fmt"
	"time"
)

// MinutesPerDay is the number of minutes in a nominal day.
const MinutesPerDay = 24 * 60

// ErrInvalidTimeFormat is returned when text is not a valid HH:MM time.
var ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")

// ClockTime is a time of day with no date or zone identity.
type ClockTime struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// New creates a ClockTime, rejecting out-of-range components.
func New(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: %02d:%02d out of range", ErrInvalidTimeFormat, hour, minute)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// Parse parses "HH:MM" (exactly two digits, a colon, two digits).
func Parse(s string) (ClockTime, error) {
	if len(s) != 5 || s[2] != ':' {
		return ClockTime{}, fmt.Errorf("%w, got %q", ErrInvalidTimeFormat, s)
	}
	if !isDigits(s[0:2]) || !isDigits(s[3:5]) {
		return ClockTime{}, fmt.Errorf("%w, got %q", ErrInvalidTimeFormat, s)
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	mins := int(s[3]-'0')*10 + int(s[4]-'0')
	return New(hours, mins)
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(s string) ClockTime {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Valid reports whether s parses as a ClockTime.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// FromMinutes converts minutes since midnight to a ClockTime.
// Values outside a single day wrap around, so 1500 is 01:00 and -30 is 23:30.
func FromMinutes(m int) ClockTime {
	m %= MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return ClockTime{Hour: m / 60, Minute: m % 60}
}

// FromOffset truncates an offset from midnight to the minute and wraps it
// into a single day.
func FromOffset(d time.Duration) ClockTime {
	return FromMinutes(int(d / time.Minute))
}

// Minutes returns the minutes since midnight.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Offset returns the time since midnight as a duration.
func (c ClockTime) Offset() time.Duration {
	return time.Duration(c.Minutes()) * time.Minute
}

// Before reports whether c is earlier in the day than o.
func (c ClockTime) Before(o ClockTime) bool {
	return c.Minutes() < o.Minutes()
}

// After reports whether c is later in the day than o.
func (c ClockTime) After(o ClockTime) bool {
	return c.Minutes() > o.Minutes()
}

// String formats the time as "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
