package period

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "minimum", input: "2", want: 2},
		{name: "large", input: "48", want: 48},
		{name: "surrounding space", input: " 5 ", want: 5},
		{name: "one", input: "1", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-4", wantErr: true},
		{name: "blank", input: "", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "fraction", input: "2.5", wantErr: true},
		{name: "maximum", input: "9999", want: MaxCount},
		{name: "above maximum", input: "10000", wantErr: true},
		{name: "max int", input: strconv.Itoa(math.MaxInt), wantErr: true},
		{name: "overflows int", input: "99999999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCount(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCount) {
					t.Fatalf("ParseCount(%q) error = %v, want ErrInvalidCount", tt.input, err)
				}
				var ce *CountError
				if !errors.As(err, &ce) {
					t.Fatalf("ParseCount(%q) error is not a *CountError", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCount(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestClampCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{input: "", want: 2},
		{input: "abc", want: 2},
		{input: "1", want: 2},
		{input: "0", want: 2},
		{input: "-4", want: 2},
		{input: "2", want: 2},
		{input: "7", want: 7},
		{input: " 12 ", want: 12},
		{input: "9999", want: MaxCount},
		{input: "10000", want: MaxCount},
		{input: strconv.Itoa(math.MaxInt), want: MaxCount},
	}

	for _, tt := range tests {
		if got := ClampCount(tt.input); got != tt.want {
			t.Errorf("ClampCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestClampedCountAlwaysComputes(t *testing.T) {
	for _, draft := range []string{"", "0", "1", "x", "123456789"} {
		if _, err := Compute("10:00", "13:00", ClampCount(draft)); err != nil {
			t.Errorf("draft %q: clamped count rejected: %v", draft, err)
		}
	}
}

func TestCountErrorMessage(t *testing.T) {
	err := &CountError{Input: "abc"}
	if got := err.Error(); got != `count "abc": count must be an integer from 2 to 9999` {
		t.Errorf("Error() = %q", got)
	}
	err = &CountError{Count: 1}
	if got := err.Error(); got != "count 1: count must be an integer from 2 to 9999" {
		t.Errorf("Error() = %q", got)
	}
}
