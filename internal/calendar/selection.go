package calendar

import (
	"time"

	"dental-clinic-server/internal/models"
)

// SlotSelection is the interaction event for clicking an empty slot: the
// appointment form opens pre-filled with the slot's date and time. DoctorID
// carries the doctor filter in effect when the slot was clicked, or "" when
// no filter was applied.
type SlotSelection struct {
	Kind     string `json:"kind"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	DoctorID string `json:"doctor_id,omitempty"`
}

// AppointmentSelection is the interaction event for clicking an existing
// appointment: the form opens in edit mode. DoctorID mirrors the filter in
// effect, same as for slot clicks.
type AppointmentSelection struct {
	Kind        string             `json:"kind"`
	Appointment models.Appointment `json:"appointment"`
	DoctorID    string             `json:"doctor_id,omitempty"`
}

// NewSlotSelection builds the slot-click event for a date, time and the
// currently effective doctor filter.
func NewSlotSelection(date time.Time, slotTime, doctorID string) SlotSelection {
	return SlotSelection{
		Kind:     "slot",
		Date:     date.Format(dateLayout),
		Time:     slotTime,
		DoctorID: doctorID,
	}
}

// NewAppointmentSelection builds the appointment-click event.
func NewAppointmentSelection(apt models.Appointment, doctorID string) AppointmentSelection {
	return AppointmentSelection{
		Kind:        "appointment",
		Appointment: apt,
		DoctorID:    doctorID,
	}
}
