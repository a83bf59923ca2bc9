package models

import (
	"time"

	"dental-clinic-server/internal/schedule"
)

// Doctor represents a practicing doctor with a recurring weekly schedule.
// The schedule is stored as a JSON column keyed by lowercase weekday names,
// e.g. {"monday": ["09:00-12:00", "14:00-17:00"], ...}. A nil schedule means
// the doctor is never available for online booking.
type Doctor struct {
	BaseModel
	FullName       string                   `gorm:"size:255;not null" json:"full_name"`
	Specialization string                   `gorm:"size:100;not null" json:"specialization"`
	Phone          string                   `gorm:"size:30" json:"phone,omitempty"`
	Email          string                   `gorm:"size:255" json:"email,omitempty"`
	PricePerHour   float64                  `json:"price_per_hour"`
	Schedule       *schedule.WeeklySchedule `gorm:"type:json" json:"schedule,omitempty"`

	// Relations (not always preloaded)
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"-"`
}

// IsAvailableAt reports whether the doctor's weekly schedule covers the given
// date and "HH:MM" time. A missing schedule, a day off, or an unparseable
// time all evaluate to not available; nothing errors here.
func (d *Doctor) IsAvailableAt(date time.Time, timeOfDay string) bool {
	if d.Schedule == nil {
		return false
	}
	t, err := schedule.ParseTimeOfDay(timeOfDay)
	if err != nil {
		return false
	}
	return d.Schedule.Covers(date, t)
}

// WorksOn reports whether the doctor has any working window on the date's
// weekday.
func (d *Doctor) WorksOn(date time.Time) bool {
	return d.Schedule != nil && d.Schedule.WorksOn(date)
}

// AvailableTimeSlots resolves the open "HH:MM" slots for the doctor on the
// given date: every slot inside the doctor's working windows, minus slots
// already taken by an appointment of this doctor on that exact date. The
// weekday having no working windows yields an empty result regardless of
// appointments. The result is recomputed from scratch on every call.
func (d *Doctor) AvailableTimeSlots(date time.Time, existing []Appointment, durationMinutes int) []string {
	open := make([]string, 0)
	if d.Schedule == nil {
		return open
	}

	dateString := date.Format("2006-01-02")
	booked := make(map[string]bool)
	for _, apt := range existing {
		if apt.DoctorID != d.ID || apt.AppointmentDate != dateString {
			continue
		}
		// Stored times are canonical "HH:MM", but re-normalizing here keeps
		// a stray unpadded row from leaving its slot marked open.
		if t, err := schedule.ParseTimeOfDay(apt.AppointmentTime); err == nil {
			booked[t.String()] = true
		} else {
			booked[apt.AppointmentTime] = true
		}
	}

	for _, slot := range d.Schedule.DaySlots(date, durationMinutes) {
		if !booked[slot.String()] {
			open = append(open, slot.String())
		}
	}
	return open
}
