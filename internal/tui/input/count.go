// Package input holds form-field state that outlives a single keystroke.
package input

import (
	"strconv"

	"github.com/javiermolinar/tsplit/internal/period"
)

// Count is the committed value of the period-count field. The text the user
// is editing is a separate draft that may be blank or below the minimum until
// it is committed.
type Count struct {
	value int
}

// NewCount returns a committed count, clamped to period.MinCount.
func NewCount(v int) Count {
	return Count{value: max(v, period.MinCount)}
}

// Value returns the committed count.
func (c Count) Value() int {
	if c.value < period.MinCount {
		return period.MinCount
	}
	return c.value
}

// Text returns the canonical text for the committed count.
func (c Count) Text() string {
	return strconv.Itoa(c.Value())
}

// Commit clamps draft and stores it. It reports whether the draft text had to
// be rewritten to match the committed value.
func (c *Count) Commit(draft string) (rewritten bool) {
	c.value = period.ClampCount(draft)
	return draft != c.Text()
}
