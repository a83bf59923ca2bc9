package calendar

import (
	"reflect"
	"testing"
	"time"

	"dental-clinic-server/internal/models"
)

var today = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC) // a Monday

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseView(t *testing.T) {
	for _, valid := range []string{"day", "week", "month"} {
		if _, err := ParseView(valid); err != nil {
			t.Errorf("ParseView(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseView("year"); err == nil {
		t.Error("ParseView(\"year\") expected error")
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{date(2025, 6, 2), date(2025, 6, 2)},  // Monday maps to itself
		{date(2025, 6, 5), date(2025, 6, 2)},  // Thursday
		{date(2025, 6, 8), date(2025, 6, 2)},  // Sunday belongs to the preceding Monday
		{date(2025, 6, 1), date(2025, 5, 26)}, // Sunday across a month boundary
	}
	for _, tt := range tests {
		if got := StartOfWeek(tt.in); !got.Equal(tt.want) {
			t.Errorf("StartOfWeek(%s) = %s, want %s", tt.in.Format("2006-01-02"), got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
		}
	}
}

func TestNavigation(t *testing.T) {
	anchor := date(2025, 6, 15)

	if got := Next(ViewDay, anchor); !got.Equal(date(2025, 6, 16)) {
		t.Errorf("Next day = %s", got)
	}
	if got := Previous(ViewWeek, anchor); !got.Equal(date(2025, 6, 8)) {
		t.Errorf("Previous week = %s", got)
	}
	if got := Next(ViewMonth, anchor); !got.Equal(date(2025, 7, 15)) {
		t.Errorf("Next month = %s", got)
	}
	// Day-of-month is clamped instead of rolling into the next month.
	if got := Next(ViewMonth, date(2025, 1, 31)); !got.Equal(date(2025, 2, 28)) {
		t.Errorf("Next month from Jan 31 = %s, want 2025-02-28", got)
	}
	if got := Previous(ViewMonth, date(2025, 3, 31)); !got.Equal(date(2025, 2, 28)) {
		t.Errorf("Previous month from Mar 31 = %s, want 2025-02-28", got)
	}
}

func TestComposeDay(t *testing.T) {
	appointments := []models.Appointment{
		{BaseModel: models.BaseModel{ID: "a1"}, AppointmentDate: "2025-06-02", AppointmentTime: "10:00"},
		{BaseModel: models.BaseModel{ID: "a2"}, AppointmentDate: "2025-06-02", AppointmentTime: "10:00"},
		{BaseModel: models.BaseModel{ID: "a3"}, AppointmentDate: "2025-06-03", AppointmentTime: "10:00"},
	}

	grid := ComposeDay(date(2025, 6, 2), today, appointments)
	if !grid.Day.IsToday {
		t.Error("anchor equals the injected today, IsToday should be true")
	}
	// Double bookings are both retained; preventing them is the slot
	// resolver's job, not the composer's.
	if got := len(grid.Day.Appointments["10:00"]); got != 2 {
		t.Errorf("expected both 10:00 appointments kept, got %d", got)
	}
	if _, ok := grid.Day.Appointments["11:00"]; ok {
		t.Error("empty buckets should not be present")
	}
	if len(grid.SlotTimes) != 24 || grid.SlotTimes[0] != "08:00" {
		t.Errorf("unexpected slot axis: %v", grid.SlotTimes[:1])
	}
}

func TestComposeWeekShape(t *testing.T) {
	// Any anchor weekday yields the same 7 Monday-start buckets.
	for offset := 0; offset < 7; offset++ {
		grid := ComposeWeek(date(2025, 6, 2+offset), today, nil)
		if grid.Days[0].Date != "2025-06-02" {
			t.Errorf("anchor offset %d: week starts %s, want 2025-06-02", offset, grid.Days[0].Date)
		}
		if grid.Days[6].Date != "2025-06-08" {
			t.Errorf("anchor offset %d: week ends %s, want 2025-06-08", offset, grid.Days[6].Date)
		}
	}
}

func TestComposeWeekIdempotent(t *testing.T) {
	appointments := []models.Appointment{
		{BaseModel: models.BaseModel{ID: "a1"}, AppointmentDate: "2025-06-04", AppointmentTime: "09:30"},
	}
	first := ComposeWeek(date(2025, 6, 4), today, appointments)
	second := ComposeWeek(date(2025, 6, 4), today, appointments)
	if !reflect.DeepEqual(first, second) {
		t.Error("composing twice with identical inputs should yield identical grids")
	}
}

func TestComposeMonthGrid(t *testing.T) {
	// June 2025 starts on a Sunday and ends on a Monday: the Monday-start
	// grid needs 6 leading May days and 6 trailing July days.
	grid := ComposeMonth(date(2025, 6, 15), today, nil)

	cells := 0
	inMonth := make(map[string]int)
	for _, week := range grid.Weeks {
		for _, cell := range week {
			cells++
			if cell.InMonth {
				inMonth[cell.Date]++
			}
		}
	}
	if cells%7 != 0 {
		t.Errorf("cell count %d is not a multiple of 7", cells)
	}
	if len(inMonth) != 30 {
		t.Errorf("expected 30 June days, got %d", len(inMonth))
	}
	for d, n := range inMonth {
		if n != 1 {
			t.Errorf("day %s appears %d times", d, n)
		}
	}
	if first := grid.Weeks[0][0]; first.Date != "2025-05-26" || first.InMonth {
		t.Errorf("grid should start at 2025-05-26 outside the month, got %+v", first)
	}
	lastWeek := grid.Weeks[len(grid.Weeks)-1]
	if last := lastWeek[6]; last.Date != "2025-07-06" || last.InMonth {
		t.Errorf("grid should end at 2025-07-06 outside the month, got %+v", last)
	}
}

func TestComposeMonthOverflow(t *testing.T) {
	appointments := make([]models.Appointment, 0, 5)
	for i := 0; i < 5; i++ {
		appointments = append(appointments, models.Appointment{
			BaseModel:       models.BaseModel{ID: string(rune('a' + i))},
			AppointmentDate: "2025-06-10",
			AppointmentTime: "09:00",
		})
	}

	grid := ComposeMonth(date(2025, 6, 10), today, appointments)
	var cell MonthCell
	for _, week := range grid.Weeks {
		for _, c := range week {
			if c.Date == "2025-06-10" {
				cell = c
			}
		}
	}
	if len(cell.Appointments) != 3 || cell.Overflow != 2 {
		t.Errorf("expected 3 visible + 2 overflow, got %d visible %d overflow", len(cell.Appointments), cell.Overflow)
	}
	if cell.OverflowLabel() != "+2 more" {
		t.Errorf("OverflowLabel = %q, want %q", cell.OverflowLabel(), "+2 more")
	}
}

func TestRange(t *testing.T) {
	start, end := Range(ViewWeek, date(2025, 6, 5))
	if !start.Equal(date(2025, 6, 2)) || !end.Equal(date(2025, 6, 8)) {
		t.Errorf("week range = %s..%s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	start, end = Range(ViewMonth, date(2025, 6, 15))
	if !start.Equal(date(2025, 5, 26)) || !end.Equal(date(2025, 7, 6)) {
		t.Errorf("month range = %s..%s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	start, end = Range(ViewDay, date(2025, 6, 5))
	if !start.Equal(end) {
		t.Error("day range should be a single day")
	}
}

func TestSelections(t *testing.T) {
	slot := NewSlotSelection(date(2025, 6, 2), "10:30", "doc-1")
	if slot.Kind != "slot" || slot.Date != "2025-06-02" || slot.Time != "10:30" || slot.DoctorID != "doc-1" {
		t.Errorf("unexpected slot selection: %+v", slot)
	}

	apt := models.Appointment{BaseModel: models.BaseModel{ID: "a1"}}
	sel := NewAppointmentSelection(apt, "")
	if sel.Kind != "appointment" || sel.Appointment.ID != "a1" || sel.DoctorID != "" {
		t.Errorf("unexpected appointment selection: %+v", sel)
	}
}
