package calendar

import (
	"fmt"
	"time"
)

// View selects how the calendar groups appointments.
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// dateLayout is the wire format for calendar dates throughout the API.
const dateLayout = "2006-01-02"

// ParseView validates a view mode coming from a query parameter.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewDay, ViewWeek, ViewMonth:
		return View(s), nil
	}
	return "", fmt.Errorf("invalid calendar view %q", s)
}

// Previous shifts the anchor date back by one unit of the view.
func Previous(view View, anchor time.Time) time.Time {
	switch view {
	case ViewWeek:
		return anchor.AddDate(0, 0, -7)
	case ViewMonth:
		return addMonths(anchor, -1)
	default:
		return anchor.AddDate(0, 0, -1)
	}
}

// Next shifts the anchor date forward by one unit of the view.
func Next(view View, anchor time.Time) time.Time {
	switch view {
	case ViewWeek:
		return anchor.AddDate(0, 0, 7)
	case ViewMonth:
		return addMonths(anchor, 1)
	default:
		return anchor.AddDate(0, 0, 1)
	}
}

// Range returns the inclusive [start, end] calendar dates a view covers, for
// fetching the appointments that feed the composition. The month range spans
// the full padded grid, not just the anchor month.
func Range(view View, anchor time.Time) (time.Time, time.Time) {
	switch view {
	case ViewWeek:
		start := StartOfWeek(anchor)
		return start, start.AddDate(0, 0, 6)
	case ViewMonth:
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		last := first.AddDate(0, 1, -1)
		return StartOfWeek(first), StartOfWeek(last).AddDate(0, 0, 6)
	default:
		return anchor, anchor
	}
}

// StartOfWeek returns the Monday of the ISO week containing date.
func StartOfWeek(date time.Time) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday belongs to the week that started six days earlier
	}
	return day.AddDate(0, 0, -offset)
}

// addMonths shifts by whole months, clamping the day-of-month so that e.g.
// Jan 31 + 1 month lands on Feb 28/29 instead of rolling into March.
func addMonths(t time.Time, delta int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(delta), 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
