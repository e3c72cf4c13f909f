package period

import (
	"errors"
	"fmt"

	"github.com/javiermolinar/tsplit/internal/clock"
)

// Bounds on the number of periods a range can be split into. MaxCount
// matches the four digits the form's count field accepts.
const (
	MinCount = 2
	MaxCount = 9999
)

// Caller-visible error messages.
const (
	MsgInvalidTimeFormat = "invalid time format"
	MsgInvalidCount      = "invalid count"
)

// ErrInvalidCount is returned when the period count is outside
// [MinCount, MaxCount] or not a number.
var ErrInvalidCount = fmt.Errorf("count must be an integer from %d to %d", MinCount, MaxCount)

// ParseError reports a start or end text that is not a valid HH:MM time.
type ParseError struct {
	Field string // "start" or "end"
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s time %q: %v", e.Field, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CountError reports an unusable period count.
type CountError struct {
	Count int
	Input string // raw text when the count came from user input
}

func (e *CountError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("count %q: %v", e.Input, ErrInvalidCount)
	}
	return fmt.Sprintf("count %d: %v", e.Count, ErrInvalidCount)
}

func (e *CountError) Unwrap() error {
	return ErrInvalidCount
}

// Message maps an error from this package to the short message shown to users.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, clock.ErrInvalidTimeFormat):
		return MsgInvalidTimeFormat
	case errors.Is(err, ErrInvalidCount):
		return MsgInvalidCount
	default:
		return err.Error()
	}
}
