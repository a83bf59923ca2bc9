package models

import (
	"reflect"
	"testing"
	"time"

	"dental-clinic-server/internal/schedule"
)

// 2025-06-02 is a Monday, 2025-06-03 a Tuesday.
var (
	monday  = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
)

func testDoctor(t *testing.T) *Doctor {
	t.Helper()
	ws, err := schedule.FromWire(map[string][]string{
		"monday": {"09:00-12:00", "14:00-17:00"},
	})
	if err != nil {
		t.Fatalf("building schedule: %v", err)
	}
	return &Doctor{
		BaseModel:      BaseModel{ID: "doc-1"},
		FullName:       "Anna Kowalski",
		Specialization: "Orthodontist",
		Schedule:       &ws,
	}
}

func TestIsAvailableAt(t *testing.T) {
	doctor := testDoctor(t)

	tests := []struct {
		date time.Time
		time string
		want bool
	}{
		{monday, "10:00", true},
		{monday, "13:00", false},
		{tuesday, "10:00", false},
		{monday, "not-a-time", false},
	}
	for _, tt := range tests {
		if got := doctor.IsAvailableAt(tt.date, tt.time); got != tt.want {
			t.Errorf("IsAvailableAt(%s, %q) = %v, want %v", tt.date.Weekday(), tt.time, got, tt.want)
		}
	}

	noSchedule := &Doctor{BaseModel: BaseModel{ID: "doc-2"}}
	if noSchedule.IsAvailableAt(monday, "10:00") {
		t.Error("doctor without schedule should never be available")
	}
}

func TestAvailableTimeSlots(t *testing.T) {
	doctor := testDoctor(t)

	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30"}
	got := doctor.AvailableTimeSlots(monday, nil, 30)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableTimeSlots = %v, want %v", got, want)
	}
}

func TestAvailableTimeSlotsExcludesBooked(t *testing.T) {
	doctor := testDoctor(t)
	existing := []Appointment{
		{DoctorID: "doc-1", AppointmentDate: "2025-06-02", AppointmentTime: "10:00", Status: StatusScheduled},
		// Different doctor and different date must not affect the result.
		{DoctorID: "doc-9", AppointmentDate: "2025-06-02", AppointmentTime: "11:00"},
		{DoctorID: "doc-1", AppointmentDate: "2025-06-09", AppointmentTime: "09:30"},
	}

	got := doctor.AvailableTimeSlots(monday, existing, 30)
	for _, slot := range got {
		if slot == "10:00" {
			t.Error("booked slot 10:00 should be excluded")
		}
	}
	if len(got) != 11 {
		t.Errorf("expected 11 open slots, got %d: %v", len(got), got)
	}
}

func TestAvailableTimeSlotsExcludesUnpaddedBooked(t *testing.T) {
	doctor := testDoctor(t)
	existing := []Appointment{
		{DoctorID: "doc-1", AppointmentDate: "2025-06-02", AppointmentTime: "10:0", Status: StatusScheduled},
		{DoctorID: "doc-1", AppointmentDate: "2025-06-02", AppointmentTime: "9:30", Status: StatusScheduled},
	}

	got := doctor.AvailableTimeSlots(monday, existing, 30)
	for _, slot := range got {
		if slot == "10:00" || slot == "09:30" {
			t.Errorf("slot %s should be excluded by its unpadded booking", slot)
		}
	}
	if len(got) != 10 {
		t.Errorf("expected 10 open slots, got %d: %v", len(got), got)
	}
}

func TestAvailableTimeSlotsDayOff(t *testing.T) {
	doctor := testDoctor(t)
	existing := []Appointment{
		{DoctorID: "doc-1", AppointmentDate: "2025-06-03", AppointmentTime: "10:00"},
	}
	if got := doctor.AvailableTimeSlots(tuesday, existing, 30); len(got) != 0 {
		t.Errorf("day off should yield no slots regardless of appointments, got %v", got)
	}
}

func TestAvailableTimeSlotsPure(t *testing.T) {
	doctor := testDoctor(t)
	existing := []Appointment{
		{DoctorID: "doc-1", AppointmentDate: "2025-06-02", AppointmentTime: "09:00"},
	}
	first := doctor.AvailableTimeSlots(monday, existing, 30)
	second := doctor.AvailableTimeSlots(monday, existing, 30)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls diverged: %v vs %v", first, second)
	}
}
