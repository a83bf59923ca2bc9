package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a scheduled clinic visit. Date and time are kept as
// "YYYY-MM-DD" and "HH:MM" strings: slot conflict checks and calendar
// grouping are defined over exact string equality of these two columns.
type Appointment struct {
	BaseModel
	PatientID       string            `gorm:"size:36;index;not null" json:"patient_id"`
	DoctorID        string            `gorm:"size:36;index;not null" json:"doctor_id"`
	ServiceID       *string           `gorm:"size:36" json:"service_id,omitempty"`
	AppointmentDate string            `gorm:"size:10;index;not null" json:"appointment_date"`
	AppointmentTime string            `gorm:"size:5;not null" json:"appointment_time"`
	Status          AppointmentStatus `gorm:"size:20;default:'scheduled'" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	Price           *float64          `json:"price,omitempty"`

	// Relations
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}
