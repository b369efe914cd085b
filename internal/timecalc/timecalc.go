// Package timecalc provides wall-clock time-of-day arithmetic and duration
// formatting for worklog windows.
package timecalc

import (
	"fmt"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// TimeOfDay is a wall-clock time without a date, counted in seconds since
// midnight. Arithmetic wraps modulo 24h.
type TimeOfDay int

// ParseTimeOfDay parses a HH:MM:SS string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return 0, fmt.Errorf("parsing time of day %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second()), nil
}

// String formats the time as HH:MM:SS.
func (t TimeOfDay) String() string {
	secs := int(t)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// Add returns t shifted by the given number of seconds. Crossing midnight
// wraps silently; this is time-of-day arithmetic, not calendar arithmetic.
func (t TimeOfDay) Add(seconds int) TimeOfDay {
	s := (int(t) + seconds) % secondsPerDay
	if s < 0 {
		s += secondsPerDay
	}
	return TimeOfDay(s)
}

// FormatDuration formats seconds as a human-readable string like "1h 40m" or "45m" or "30s".
func FormatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}
