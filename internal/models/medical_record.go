package models

// MedicalRecordStatus represents the state of a medical record entry
type MedicalRecordStatus string

const (
	RecordActive    MedicalRecordStatus = "active"
	RecordCompleted MedicalRecordStatus = "completed"
	RecordCancelled MedicalRecordStatus = "cancelled"
)

// MedicalRecord represents one entry in a patient's dental history.
// ToothNumber uses FDI two-digit numbering (11-48) and is nil for entries
// that are not tied to a single tooth.
type MedicalRecord struct {
	BaseModel
	PatientID   string              `gorm:"size:36;index;not null" json:"patient_id"`
	DoctorID    string              `gorm:"size:36;index;not null" json:"doctor_id"`
	ToothNumber *int                `json:"tooth_number,omitempty"`
	Diagnosis   string              `gorm:"size:255;not null" json:"diagnosis"`
	Treatment   string              `gorm:"type:text" json:"treatment,omitempty"`
	Notes       string              `gorm:"type:text" json:"notes,omitempty"`
	RecordDate  string              `gorm:"size:10;not null;column:record_date" json:"date"`
	Status      MedicalRecordStatus `gorm:"size:20;default:'active'" json:"status"`

	// Relations
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}
