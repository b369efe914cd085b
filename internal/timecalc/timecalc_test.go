package timecalc_test

import (
	"testing"

	"github.com/nhaef/narutils/internal/timecalc"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input string
		want  timecalc.TimeOfDay
	}{
		{"00:00:00", 0},
		{"09:00:00", 9 * 3600},
		{"23:59:59", 23*3600 + 59*60 + 59},
	}
	for _, tt := range tests {
		got, err := timecalc.ParseTimeOfDay(tt.input)
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseTimeOfDayInvalid(t *testing.T) {
	for _, input := range []string{"", "9:00", "25:00:00", "banana"} {
		if _, err := timecalc.ParseTimeOfDay(input); err == nil {
			t.Errorf("ParseTimeOfDay(%q): expected error, got nil", input)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	tod, err := timecalc.ParseTimeOfDay("08:05:09")
	if err != nil {
		t.Fatal(err)
	}
	if got := tod.String(); got != "08:05:09" {
		t.Errorf("String = %q, want %q", got, "08:05:09")
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		start   string
		seconds int
		want    string
	}{
		{"09:00:00", 3600, "10:00:00"},
		{"10:00:00", 1800, "10:30:00"},
		// Crossing midnight wraps, no day-boundary error.
		{"23:30:00", 3600, "00:30:00"},
		{"23:59:59", 1, "00:00:00"},
		{"00:00:00", 0, "00:00:00"},
	}
	for _, tt := range tests {
		start, err := timecalc.ParseTimeOfDay(tt.start)
		if err != nil {
			t.Fatal(err)
		}
		got := start.Add(tt.seconds).String()
		if got != tt.want {
			t.Errorf("%s + %ds = %s, want %s", tt.start, tt.seconds, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m"},
		{90, "1m"},
		{1800, "30m"},
		{3600, "1h 0m"},
		{5400, "1h 30m"},
	}
	for _, tt := range tests {
		got := timecalc.FormatDuration(tt.seconds)
		if got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
