package calendar

import (
	"fmt"
	"time"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/schedule"
)

// maxVisiblePerDay caps how many appointments a month cell lists before
// collapsing the rest into an overflow count.
const maxVisiblePerDay = 3

// DayColumn is one calendar day with its appointments bucketed by "HH:MM"
// time. Appointments sharing a slot are all retained; the composer does not
// enforce single booking.
type DayColumn struct {
	Date         string                          `json:"date"`
	Weekday      string                          `json:"weekday"`
	IsToday      bool                            `json:"is_today"`
	Appointments map[string][]models.Appointment `json:"appointments"`
}

// DayGrid is the day view: the anchor day plus the fixed slot axis the UI
// renders rows for.
type DayGrid struct {
	View      View      `json:"view"`
	SlotTimes []string  `json:"slot_times"`
	Day       DayColumn `json:"day"`
}

// WeekGrid is the week view: the 7 Monday-start days of the anchor's week.
type WeekGrid struct {
	View      View         `json:"view"`
	SlotTimes []string     `json:"slot_times"`
	Days      [7]DayColumn `json:"days"`
}

// MonthCell is one day cell of the month grid. Appointments beyond the
// display cap are dropped from the cell and counted in Overflow.
type MonthCell struct {
	Date         string               `json:"date"`
	Day          int                  `json:"day"`
	InMonth      bool                 `json:"in_month"`
	IsToday      bool                 `json:"is_today"`
	Appointments []models.Appointment `json:"appointments"`
	Overflow     int                  `json:"overflow"`
}

// MonthGrid is the month view: the anchor month padded with leading and
// trailing days to full Monday-start weeks.
type MonthGrid struct {
	View  View           `json:"view"`
	Weeks [][7]MonthCell `json:"weeks"`
}

// OverflowLabel renders the "+N more" indicator, or "" when nothing is hidden.
func (c MonthCell) OverflowLabel() string {
	if c.Overflow <= 0 {
		return ""
	}
	return fmt.Sprintf("+%d more", c.Overflow)
}

// Compose builds the grouping for the requested view. today is injected by
// the caller so "is today" highlighting stays deterministic under test; the
// package never consults the wall clock itself. The grouping is rebuilt from
// scratch on every call.
func Compose(view View, anchor, today time.Time, appointments []models.Appointment) interface{} {
	switch view {
	case ViewWeek:
		return ComposeWeek(anchor, today, appointments)
	case ViewMonth:
		return ComposeMonth(anchor, today, appointments)
	default:
		return ComposeDay(anchor, today, appointments)
	}
}

// ComposeDay groups the appointments falling on the anchor date by time.
func ComposeDay(anchor, today time.Time, appointments []models.Appointment) DayGrid {
	return DayGrid{
		View:      ViewDay,
		SlotTimes: slotAxis(),
		Day:       composeColumn(anchor, today, appointments),
	}
}

// ComposeWeek groups the appointments into the 7 days of the ISO week
// (Monday start) containing the anchor date.
func ComposeWeek(anchor, today time.Time, appointments []models.Appointment) WeekGrid {
	grid := WeekGrid{View: ViewWeek, SlotTimes: slotAxis()}
	weekStart := StartOfWeek(anchor)
	for i := 0; i < 7; i++ {
		grid.Days[i] = composeColumn(weekStart.AddDate(0, 0, i), today, appointments)
	}
	return grid
}

// ComposeMonth builds the padded month grid for the anchor month. Every day
// of the month appears exactly once and the cell count is always a multiple
// of seven.
func ComposeMonth(anchor, today time.Time, appointments []models.Appointment) MonthGrid {
	byDate := make(map[string][]models.Appointment)
	for _, apt := range appointments {
		byDate[apt.AppointmentDate] = append(byDate[apt.AppointmentDate], apt)
	}

	gridStart, gridEnd := Range(ViewMonth, anchor)
	grid := MonthGrid{View: ViewMonth}
	var week [7]MonthCell
	i := 0
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		dateStr := day.Format(dateLayout)
		dayAppointments := byDate[dateStr]
		cell := MonthCell{
			Date:    dateStr,
			Day:     day.Day(),
			InMonth: day.Month() == anchor.Month() && day.Year() == anchor.Year(),
			IsToday: sameDate(day, today),
		}
		if len(dayAppointments) > maxVisiblePerDay {
			cell.Appointments = dayAppointments[:maxVisiblePerDay]
			cell.Overflow = len(dayAppointments) - maxVisiblePerDay
		} else {
			cell.Appointments = dayAppointments
		}
		week[i%7] = cell
		if i%7 == 6 {
			grid.Weeks = append(grid.Weeks, week)
		}
		i++
	}
	return grid
}

func composeColumn(day, today time.Time, appointments []models.Appointment) DayColumn {
	dateStr := day.Format(dateLayout)
	column := DayColumn{
		Date:         dateStr,
		Weekday:      day.Weekday().String(),
		IsToday:      sameDate(day, today),
		Appointments: make(map[string][]models.Appointment),
	}
	for _, apt := range appointments {
		if apt.AppointmentDate == dateStr {
			column.Appointments[apt.AppointmentTime] = append(column.Appointments[apt.AppointmentTime], apt)
		}
	}
	return column
}

// slotAxis is the fixed 08:00-20:00 half-hour time axis rendered down the
// side of the day and week views.
func slotAxis() []string {
	return schedule.GenerateTimeSlots(8, 20, 30)
}
