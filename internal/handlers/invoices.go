package handlers

import (
	"fmt"
	"math"
	"time"

	"dental-clinic-server/internal/config"
	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InvoiceHandler handles billing requests.
type InvoiceHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(db *gorm.DB, cfg *config.Config) *InvoiceHandler {
	return &InvoiceHandler{DB: db, Cfg: cfg}
}

// InvoiceItemRequest represents one line item on a new invoice.
type InvoiceItemRequest struct {
	ServiceID   *string `json:"service_id"`
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
}

// InvoiceRequest represents the request body for creating an invoice.
// Totals are always computed server side from the items.
type InvoiceRequest struct {
	PatientID     string               `json:"patient_id" binding:"required"`
	AppointmentID *string              `json:"appointment_id"`
	Date          string               `json:"date" binding:"required,datetime=2006-01-02"`
	DueDate       string               `json:"due_date" binding:"required,datetime=2006-01-02"`
	Items         []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes         string               `json:"notes"`
}

// InvoiceStatusRequest updates just the invoice status.
type InvoiceStatusRequest struct {
	Status models.InvoiceStatus `json:"status" binding:"required,oneof=draft sent paid overdue"`
}

// computeInvoiceTotals sums the line items and applies the clinic tax rate.
// All amounts are rounded to cents.
func computeInvoiceTotals(items []InvoiceItemRequest) (subtotal, tax, total float64) {
	for _, item := range items {
		subtotal += float64(item.Quantity) * item.UnitPrice
	}
	subtotal = roundCents(subtotal)
	tax = roundCents(subtotal * models.TaxRate)
	total = roundCents(subtotal + tax)
	return subtotal, tax, total
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// newInvoiceNumber generates a unique invoice number from the issue instant.
func newInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%d", now.UnixMilli())
}

// CreateInvoice handles issuing a new invoice for a patient.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req InvoiceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", req.PatientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	subtotal, tax, total := computeInvoiceTotals(req.Items)

	invoice := models.Invoice{
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
		InvoiceNumber: newInvoiceNumber(time.Now()),
		Date:          req.Date,
		DueDate:       req.DueDate,
		Status:        models.InvoiceDraft,
		Subtotal:      subtotal,
		TaxAmount:     tax,
		TotalAmount:   total,
		Notes:         req.Notes,
	}
	for _, item := range req.Items {
		invoice.Items = append(invoice.Items, models.InvoiceItem{
			ServiceID:   item.ServiceID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  roundCents(float64(item.Quantity) * item.UnitPrice),
		})
	}

	if err := h.DB.Create(&invoice).Error; err != nil {
		utils.InternalServerError(c, "Failed to create invoice: "+err.Error())
		return
	}

	utils.Created(c, "Invoice created successfully", invoice)
}

// GetInvoices handles fetching invoices, optionally filtered by patient_id
// or status, newest first.
func (h *InvoiceHandler) GetInvoices(c *gin.Context) {
	query := h.DB.Preload("Patient").Preload("Items")

	if patientID := c.Query("patient_id"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var invoices []models.Invoice
	if err := query.Order("date desc").Find(&invoices).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch invoices: "+err.Error())
		return
	}

	utils.Success(c, "Invoices fetched successfully", invoices)
}

// GetInvoiceByID handles fetching a single invoice by ID.
func (h *InvoiceHandler) GetInvoiceByID(c *gin.Context) {
	invoiceID := c.Param("id")

	var invoice models.Invoice
	if err := h.DB.Preload("Patient").Preload("Items").
		First(&invoice, "id = ?", invoiceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Invoice not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Invoice fetched successfully", invoice)
}

// UpdateInvoiceStatus handles marking an invoice sent, paid or overdue.
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	invoiceID := c.Param("id")

	var invoice models.Invoice
	if err := h.DB.First(&invoice, "id = ?", invoiceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Invoice not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var req InvoiceStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	invoice.Status = req.Status
	if err := h.DB.Save(&invoice).Error; err != nil {
		utils.InternalServerError(c, "Failed to update invoice status: "+err.Error())
		return
	}

	utils.Success(c, "Invoice status updated successfully", invoice)
}

// SendInvoice handles issuing a draft invoice to the patient.
func (h *InvoiceHandler) SendInvoice(c *gin.Context) {
	invoiceID := c.Param("id")

	var invoice models.Invoice
	if err := h.DB.First(&invoice, "id = ?", invoiceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Invoice not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if invoice.Status != models.InvoiceDraft {
		utils.BadRequest(c, "Only draft invoices can be sent")
		return
	}

	invoice.Status = models.InvoiceSent
	if err := h.DB.Save(&invoice).Error; err != nil {
		utils.InternalServerError(c, "Failed to send invoice: "+err.Error())
		return
	}

	utils.Logger().Info("invoice sent",
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("patient_id", invoice.PatientID),
		zap.String("from", h.Cfg.Mailer.DefaultFrom),
		zap.Float64("total", invoice.TotalAmount))

	utils.Success(c, "Invoice sent successfully", invoice)
}

// DeleteInvoice handles deleting an invoice and its line items.
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	invoiceID := c.Param("id")

	var invoice models.Invoice
	if err := h.DB.First(&invoice, "id = ?", invoiceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Invoice not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.InvoiceItem{}, "invoice_id = ?", invoiceID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Invoice{}, "id = ?", invoiceID).Error
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to delete invoice: "+err.Error())
		return
	}

	utils.Success(c, "Invoice deleted successfully", nil)
}
