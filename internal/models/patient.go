package models

// Patient represents a clinic patient
type Patient struct {
	BaseModel
	FullName     string `gorm:"size:255;not null" json:"full_name"`
	Phone        string `gorm:"size:30;not null" json:"phone"`
	Email        string `gorm:"size:255" json:"email,omitempty"`
	BirthDate    string `gorm:"size:10" json:"birth_date,omitempty"` // YYYY-MM-DD
	Address      string `gorm:"size:255" json:"address,omitempty"`
	MedicalNotes string `gorm:"type:text" json:"medical_notes,omitempty"`

	// Relations (not always preloaded)
	Appointments   []Appointment   `gorm:"foreignKey:PatientID" json:"-"`
	MedicalRecords []MedicalRecord `gorm:"foreignKey:PatientID" json:"-"`
	Treatments     []Treatment     `gorm:"foreignKey:PatientID" json:"-"`
	Invoices       []Invoice       `gorm:"foreignKey:PatientID" json:"-"`
}
