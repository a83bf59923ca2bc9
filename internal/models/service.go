package models

// Service represents a billable dental service offered by the clinic
type Service struct {
	BaseModel
	Name            string  `gorm:"size:255;not null" json:"name"`
	Description     string  `gorm:"type:text" json:"description,omitempty"`
	Price           float64 `gorm:"not null" json:"price"`
	DurationMinutes int     `gorm:"default:30" json:"duration_minutes"`
}
