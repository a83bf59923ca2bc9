package models

// TreatmentPriority represents how urgent a planned treatment is
type TreatmentPriority string

const (
	PriorityLow    TreatmentPriority = "low"
	PriorityMedium TreatmentPriority = "medium"
	PriorityHigh   TreatmentPriority = "high"
	PriorityUrgent TreatmentPriority = "urgent"
)

// TreatmentStatus represents the lifecycle of a treatment plan
type TreatmentStatus string

const (
	TreatmentPlanned    TreatmentStatus = "planned"
	TreatmentInProgress TreatmentStatus = "in_progress"
	TreatmentCompleted  TreatmentStatus = "completed"
	TreatmentCancelled  TreatmentStatus = "cancelled"
)

// Treatment represents a multi-session treatment plan for a patient,
// optionally tied to a specific tooth (FDI numbering) and a service.
type Treatment struct {
	BaseModel
	PatientID         string            `gorm:"size:36;index;not null" json:"patient_id"`
	DoctorID          string            `gorm:"size:36;index;not null" json:"doctor_id"`
	ServiceID         *string           `gorm:"size:36" json:"service_id,omitempty"`
	ToothNumber       *int              `json:"tooth_number,omitempty"`
	TreatmentPlan     string            `gorm:"type:text;not null" json:"treatment_plan"`
	EstimatedCost     *float64          `json:"estimated_cost,omitempty"`
	EstimatedSessions int               `gorm:"default:1" json:"estimated_sessions"`
	Priority          TreatmentPriority `gorm:"size:10;default:'medium'" json:"priority"`
	Status            TreatmentStatus   `gorm:"size:20;default:'planned'" json:"status"`
	StartDate         string            `gorm:"size:10" json:"start_date,omitempty"`
	EndDate           string            `gorm:"size:10" json:"end_date,omitempty"`
	Notes             string            `gorm:"type:text" json:"notes,omitempty"`

	// Relations
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}
