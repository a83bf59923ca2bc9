package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time expressed as whole minutes since midnight.
// Using an integer instead of comparing "HH:MM" strings keeps comparisons
// correct even for input that is not zero-padded.
type TimeOfDay int

// ParseTimeOfDay parses a 24-hour "HH:MM" string. A single-digit hour
// ("9:00") is accepted since the numeric representation makes it unambiguous.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// String formats the time as zero-padded 24-hour "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// TimeRange is one contiguous working window within a day.
// Start == End or Start > End is not rejected here; such a range simply
// covers nothing and produces no slots.
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// ParseTimeRange parses a "HH:MM-HH:MM" string.
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeRange{}, fmt.Errorf("invalid time range %q: expected HH:MM-HH:MM", s)
	}
	start, err := ParseTimeOfDay(parts[0])
	if err != nil {
		return TimeRange{}, err
	}
	end, err := ParseTimeOfDay(parts[1])
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: start, End: end}, nil
}

// Contains reports whether t falls within the range, boundaries included.
func (r TimeRange) Contains(t TimeOfDay) bool {
	return r.Start <= t && t <= r.End
}

// String formats the range back to its "HH:MM-HH:MM" wire form.
func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}
