package availability

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in one operating day.
const MinutesPerDay = 24 * 60

// ParseClock parses a zero-padded 24-hour "HH:MM" string into minutes
// since midnight. Hours must be 00-23 and minutes 00-59; both parts
// must be exactly two digits.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	if len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid time %q: hours and minutes must be zero-padded", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}

	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid time %q: hour out of range", s)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: minute out of range", s)
	}

	return hour*60 + minute, nil
}

// TimeToMinutes converts an "HH:MM" string into minutes since midnight.
// Malformed input degrades to 0 (midnight) instead of failing, so a
// typo'd schedule renders as closed-at-midnight rather than erroring.
// Callers that need to reject bad input use ParseClock.
func TimeToMinutes(s string) int {
	minutes, err := ParseClock(s)
	if err != nil {
		return 0
	}
	return minutes
}

// MinutesToTime formats minutes since midnight as a zero-padded
// "HH:MM" string. Values outside [0, 1439] are coerced to 0.
func MinutesToTime(n int) string {
	if n < 0 || n >= MinutesPerDay {
		n = 0
	}
	return fmt.Sprintf("%02d:%02d", n/60, n%60)
}

// formatSlot formats a minute count that may exceed one day (a range
// that crossed midnight). The displayed hour wraps back into 0-23
// while the underlying minute count keeps true chronological order.
func formatSlot(n int) string {
	if n < 0 {
		n = 0
	}
	return fmt.Sprintf("%02d:%02d", (n/60)%24, n%60)
}
