package period

import (
	"strconv"
	"strings"
)

// ParseCount parses a committed period count. Anything that is not an
// integer from MinCount to MaxCount is rejected.
func ParseCount(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &CountError{Input: text}
	}
	if err := validateCount(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ClampCount turns a user-edited draft into a usable count.
// Blank or non-numeric drafts and values below MinCount all snap to MinCount.
// Values above MaxCount snap to MaxCount.
func ClampCount(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return MinCount
	}
	return min(max(MinCount, n), MaxCount)
}

func validateCount(count int) error {
	if count < MinCount || count > MaxCount {
		return &CountError{Count: count}
	}
	return nil
}
