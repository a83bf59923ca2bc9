package models

// InvoiceStatus represents the billing state of an invoice
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// TaxRate is applied to every invoice subtotal.
const TaxRate = 0.10

// Invoice represents a bill issued to a patient, optionally linked to the
// appointment it covers.
type Invoice struct {
	BaseModel
	PatientID     string        `gorm:"size:36;index;not null" json:"patient_id"`
	AppointmentID *string       `gorm:"size:36" json:"appointment_id,omitempty"`
	InvoiceNumber string        `gorm:"uniqueIndex;size:30;not null" json:"invoice_number"`
	Date          string        `gorm:"size:10;not null" json:"date"`
	DueDate       string        `gorm:"size:10;not null" json:"due_date"`
	Status        InvoiceStatus `gorm:"size:10;default:'draft'" json:"status"`
	Subtotal      float64       `json:"subtotal"`
	TaxAmount     float64       `json:"tax_amount"`
	TotalAmount   float64       `json:"total_amount"`
	Notes         string        `gorm:"type:text" json:"notes,omitempty"`

	// Relations
	Patient *Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Items   []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// InvoiceItem represents one line on an invoice
type InvoiceItem struct {
	BaseModel
	InvoiceID   string  `gorm:"size:36;index;not null" json:"invoice_id"`
	ServiceID   *string `gorm:"size:36" json:"service_id,omitempty"`
	Description string  `gorm:"size:255;not null" json:"description"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	UnitPrice   float64 `gorm:"not null" json:"unit_price"`
	TotalPrice  float64 `gorm:"not null" json:"total_price"`
}
