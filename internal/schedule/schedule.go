package schedule

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DefaultSlotMinutes is the slot granularity used when a caller does not
// specify a duration.
const DefaultSlotMinutes = 30

// dayNames is indexed by time.Weekday (Sunday == 0) and matches the lowercase
// weekday keys used in the doctor schedule wire format.
var dayNames = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// WeeklySchedule holds a doctor's recurring working windows for all seven
// weekdays, indexed by time.Weekday. A day with no ranges means the doctor
// does not work that day.
type WeeklySchedule [7][]TimeRange

// FromWire builds a WeeklySchedule from the JSON object shape
// {"monday": ["09:00-12:00", ...], ...}. Any malformed range makes the whole
// schedule invalid; use this on write paths to reject bad input early.
func FromWire(wire map[string][]string) (WeeklySchedule, error) {
	var ws WeeklySchedule
	for name, ranges := range wire {
		day, ok := weekdayByName(name)
		if !ok {
			return WeeklySchedule{}, fmt.Errorf("unknown weekday %q", name)
		}
		for _, s := range ranges {
			r, err := ParseTimeRange(s)
			if err != nil {
				return WeeklySchedule{}, fmt.Errorf("%s: %w", name, err)
			}
			ws[day] = append(ws[day], r)
		}
	}
	return ws, nil
}

// Wire converts the schedule back to its weekday-name keyed wire shape.
// All seven days are present; days off map to empty lists.
func (ws WeeklySchedule) Wire() map[string][]string {
	wire := make(map[string][]string, 7)
	for day, ranges := range ws {
		list := make([]string, 0, len(ranges))
		for _, r := range ranges {
			list = append(list, r.String())
		}
		wire[dayNames[day]] = list
	}
	return wire
}

// Covers reports whether the schedule has a working window on the date's
// weekday that contains t. Boundaries are inclusive.
func (ws WeeklySchedule) Covers(date time.Time, t TimeOfDay) bool {
	for _, r := range ws[date.Weekday()] {
		if r.Contains(t) {
			return true
		}
	}
	return false
}

// WorksOn reports whether the schedule has any working window on the date's
// weekday.
func (ws WeeklySchedule) WorksOn(date time.Time) bool {
	return len(ws[date.Weekday()]) > 0
}

// DaySlots generates the bookable slot times for the date's weekday by
// walking each working window from its start in durationMinutes steps.
// A slot is never offered at or past the window's end, so the last slot of a
// "09:00-12:00" window with 30-minute steps is 11:30. Slots are returned in
// range order, ranges in their configured order.
func (ws WeeklySchedule) DaySlots(date time.Time, durationMinutes int) []TimeOfDay {
	if durationMinutes <= 0 {
		durationMinutes = DefaultSlotMinutes
	}
	slots := make([]TimeOfDay, 0)
	for _, r := range ws[date.Weekday()] {
		for t := r.Start; t < r.End; t += TimeOfDay(durationMinutes) {
			slots = append(slots, t)
		}
	}
	return slots
}

// MarshalJSON writes the weekday-name keyed wire shape.
func (ws WeeklySchedule) MarshalJSON() ([]byte, error) {
	return json.Marshal(ws.Wire())
}

// UnmarshalJSON reads the weekday-name keyed wire shape. Unknown weekday keys
// and malformed ranges are skipped rather than failing the whole document, so
// a bad stored range degrades to "not available" instead of breaking reads.
func (ws *WeeklySchedule) UnmarshalJSON(data []byte) error {
	var wire map[string][]string
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	var parsed WeeklySchedule
	for name, ranges := range wire {
		day, ok := weekdayByName(name)
		if !ok {
			continue
		}
		for _, s := range ranges {
			r, err := ParseTimeRange(s)
			if err != nil {
				continue
			}
			parsed[day] = append(parsed[day], r)
		}
	}
	*ws = parsed
	return nil
}

// Value implements driver.Valuer so the schedule can be stored in a JSON
// column.
func (ws WeeklySchedule) Value() (driver.Value, error) {
	b, err := json.Marshal(ws)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for reading the JSON column back.
func (ws *WeeklySchedule) Scan(value interface{}) error {
	if value == nil {
		*ws = WeeklySchedule{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return ws.UnmarshalJSON(v)
	case string:
		return ws.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("unsupported schedule column type %T", value)
	}
}

func weekdayByName(name string) (time.Weekday, bool) {
	for day, n := range dayNames {
		if n == name {
			return time.Weekday(day), true
		}
	}
	return 0, false
}
