package period

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/javiermolinar/tsplit/internal/clock"
)

func formatPeriods(periods []Period) []string {
	out := make([]string, len(periods))
	for i, p := range periods {
		out[i] = p.String()
	}
	return out
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		count int
		want  []string
	}{
		{
			name:  "even division",
			start: "10:00", end: "13:00", count: 3,
			want: []string{"10:00-11:00", "11:00-12:00", "12:00-13:00"},
		},
		{
			name:  "quarter hours",
			start: "10:00", end: "13:00", count: 4,
			want: []string{"10:00-10:45", "10:45-11:30", "11:30-12:15", "12:15-13:00"},
		},
		{
			name:  "crosses midnight",
			start: "22:00", end: "02:00", count: 4,
			want: []string{"22:00-23:00", "23:00-00:00", "00:00-01:00", "01:00-02:00"},
		},
		{
			name:  "equal start and end spans a full day",
			start: "10:00", end: "10:00", count: 2,
			want: []string{"10:00-22:00", "22:00-10:00"},
		},
		{
			name:  "fractional minutes truncate",
			start: "09:00", end: "10:00", count: 7,
			want: []string{
				"09:00-09:08", "09:08-09:17", "09:17-09:25", "09:25-09:34",
				"09:34-09:42", "09:42-09:51", "09:51-10:00",
			},
		},
		{
			name:  "ends at midnight",
			start: "18:00", end: "00:00", count: 3,
			want: []string{"18:00-20:00", "20:00-22:00", "22:00-00:00"},
		},
		{
			name:  "one minute range",
			start: "12:00", end: "12:01", count: 2,
			want: []string{"12:00-12:00", "12:00-12:01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.start, tt.end, tt.count)
			if err != nil {
				t.Fatalf("Compute(%q, %q, %d) unexpected error: %v", tt.start, tt.end, tt.count, err)
			}
			if g := formatPeriods(got); !reflect.DeepEqual(g, tt.want) {
				t.Errorf("Compute(%q, %q, %d) = %v, want %v", tt.start, tt.end, tt.count, g, tt.want)
			}
		})
	}
}

func TestSplitInvariants(t *testing.T) {
	for startMin := 0; startMin < clock.MinutesPerDay; startMin += 97 {
		for endMin := 0; endMin < clock.MinutesPerDay; endMin += 131 {
			for count := 2; count <= 13; count++ {
				r := NewRange(clock.FromMinutes(startMin), clock.FromMinutes(endMin))
				got, err := Split(r, count)
				if err != nil {
					t.Fatalf("Split(%v, %d): %v", r, count, err)
				}
				if len(got) != count {
					t.Fatalf("Split(%v, %d) returned %d periods", r, count, len(got))
				}
				if got[0].Start != r.Start {
					t.Fatalf("Split(%v, %d) first start = %v", r, count, got[0].Start)
				}
				if got[count-1].End != r.End {
					t.Fatalf("Split(%v, %d) last end = %v", r, count, got[count-1].End)
				}
				var total time.Duration
				for i := range got {
					if got[i].Index != i+1 {
						t.Fatalf("period %d has index %d", i, got[i].Index)
					}
					total += got[i].Duration
					if i+1 < count && got[i].End != got[i+1].Start {
						t.Fatalf("Split(%v, %d) gap between %v and %v", r, count, got[i], got[i+1])
					}
				}
				if total != r.Span() {
					t.Fatalf("Split(%v, %d) durations sum to %v, want %v", r, count, total, r.Span())
				}
			}
		}
	}
}

func TestSpan(t *testing.T) {
	tests := []struct {
		start, end string
		want       time.Duration
		wraps      bool
	}{
		{start: "10:00", end: "13:00", want: 3 * time.Hour},
		{start: "22:00", end: "02:00", want: 4 * time.Hour, wraps: true},
		{start: "10:00", end: "10:00", want: 24 * time.Hour, wraps: true},
		{start: "00:00", end: "23:59", want: 23*time.Hour + 59*time.Minute},
		{start: "23:59", end: "00:00", want: time.Minute, wraps: true},
	}

	for _, tt := range tests {
		t.Run(tt.start+"-"+tt.end, func(t *testing.T) {
			r := NewRange(clock.MustParse(tt.start), clock.MustParse(tt.end))
			if got := r.Span(); got != tt.want {
				t.Errorf("Span() = %v, want %v", got, tt.want)
			}
			if got := r.Wraps(); got != tt.wraps {
				t.Errorf("Wraps() = %v, want %v", got, tt.wraps)
			}
		})
	}
}

func TestComputeParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantField string
	}{
		{name: "out of range start", start: "25:99", end: "10:00", wantField: "start"},
		{name: "garbage start", start: "abc", end: "10:00", wantField: "start"},
		{name: "garbage end", start: "10:00", end: "1000", wantField: "end"},
		{name: "empty end", start: "10:00", end: "", wantField: "end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.start, tt.end, 3)
			if got != nil {
				t.Errorf("expected no periods, got %v", got)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if pe.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", pe.Field, tt.wantField)
			}
			if !errors.Is(err, clock.ErrInvalidTimeFormat) {
				t.Errorf("expected ErrInvalidTimeFormat in chain, got %v", err)
			}
			if msg := Message(err); msg != MsgInvalidTimeFormat {
				t.Errorf("Message() = %q, want %q", msg, MsgInvalidTimeFormat)
			}
		})
	}
}

func TestComputeCountErrors(t *testing.T) {
	for _, count := range []int{1, 0, -3, MaxCount + 1, 1 << 40, math.MaxInt} {
		got, err := Compute("10:00", "13:00", count)
		if got != nil {
			t.Errorf("count %d: expected no periods, got %v", count, got)
		}
		if !errors.Is(err, ErrInvalidCount) {
			t.Fatalf("count %d: expected ErrInvalidCount, got %v", count, err)
		}
		if msg := Message(err); msg != MsgInvalidCount {
			t.Errorf("count %d: Message() = %q, want %q", count, msg, MsgInvalidCount)
		}
	}
}

func TestBoundariesRejectCountAboveMaximum(t *testing.T) {
	r := NewRange(clock.MustParse("22:00"), clock.MustParse("02:00"))
	for _, count := range []int{MaxCount + 1, math.MaxInt} {
		got, err := Boundaries(r, count)
		if got != nil || !errors.Is(err, ErrInvalidCount) {
			t.Errorf("Boundaries(%d) = %d values, %v; want ErrInvalidCount", count, len(got), err)
		}
	}
}

func TestSplitAtMaximumCount(t *testing.T) {
	periods, err := Compute("00:00", "00:00", MaxCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(periods) != MaxCount {
		t.Fatalf("got %d periods, want %d", len(periods), MaxCount)
	}
	if last := periods[len(periods)-1]; last.End.String() != "00:00" {
		t.Errorf("last period ends at %s, want 00:00", last.End)
	}
}

func TestComputeParseErrorWinsOverCount(t *testing.T) {
	_, err := Compute("abc", "10:00", 0)
	if Message(err) != MsgInvalidTimeFormat {
		t.Errorf("Message() = %q, want %q", Message(err), MsgInvalidTimeFormat)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	first, err := Compute("21:17", "03:41", 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Compute("21:17", "03:41", 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Compute differs:\n%v\n%v", first, second)
	}
}

func TestBoundariesMatchPeriodStarts(t *testing.T) {
	bounds, err := ComputeBoundaries("22:00", "02:00", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	periods, err := Compute("22:00", "02:00", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"22:00", "23:00", "00:00", "01:00"}
	for i, b := range bounds {
		if b.String() != want[i] {
			t.Errorf("boundary %d = %v, want %s", i, b, want[i])
		}
		if b != periods[i].Start {
			t.Errorf("boundary %d = %v, period start = %v", i, b, periods[i].Start)
		}
	}

	if _, err := ComputeBoundaries("10:00", "12:00", 1); !errors.Is(err, ErrInvalidCount) {
		t.Errorf("expected ErrInvalidCount, got %v", err)
	}
	if _, err := ComputeBoundaries("10:00", "xx:yy", 3); Message(err) != MsgInvalidTimeFormat {
		t.Errorf("expected format error, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "", want: ModeInterval},
		{input: "interval", want: ModeInterval},
		{input: "Boundary", want: ModeBoundary},
		{input: "chunks", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
