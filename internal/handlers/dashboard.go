package handlers

import (
	"time"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DashboardHandler serves the aggregate numbers shown on the dashboard home.
type DashboardHandler struct {
	DB *gorm.DB

	now func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler using the wall clock.
func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db, now: time.Now}
}

// DashboardStats is the response body for the stats endpoint.
type DashboardStats struct {
	TotalPatients        int64   `json:"total_patients"`
	TodaysAppointments   int64   `json:"todays_appointments"`
	PendingInvoices      int64   `json:"pending_invoices"`
	MonthlyRevenue       float64 `json:"monthly_revenue"`
	ActiveTreatmentPlans int64   `json:"active_treatment_plans"`
}

// GetStats handles computing the dashboard counters: patient total, today's
// appointment count, unpaid invoices, this month's paid revenue and open
// treatment plans.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	now := h.now()
	today := now.Format("2006-01-02")
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	var stats DashboardStats

	if err := h.DB.Model(&models.Patient{}).Count(&stats.TotalPatients).Error; err != nil {
		utils.InternalServerError(c, "Failed to count patients: "+err.Error())
		return
	}

	if err := h.DB.Model(&models.Appointment{}).
		Where("appointment_date = ? AND status = ?", today, models.StatusScheduled).
		Count(&stats.TodaysAppointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to count appointments: "+err.Error())
		return
	}

	if err := h.DB.Model(&models.Invoice{}).
		Where("status IN ?", []models.InvoiceStatus{models.InvoiceSent, models.InvoiceOverdue}).
		Count(&stats.PendingInvoices).Error; err != nil {
		utils.InternalServerError(c, "Failed to count invoices: "+err.Error())
		return
	}

	if err := h.DB.Model(&models.Invoice{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ? AND date >= ? AND date <= ?",
			models.InvoicePaid, monthStart.Format("2006-01-02"), monthEnd.Format("2006-01-02")).
		Scan(&stats.MonthlyRevenue).Error; err != nil {
		utils.InternalServerError(c, "Failed to compute revenue: "+err.Error())
		return
	}

	if err := h.DB.Model(&models.Treatment{}).
		Where("status IN ?", []models.TreatmentStatus{models.TreatmentPlanned, models.TreatmentInProgress}).
		Count(&stats.ActiveTreatmentPlans).Error; err != nil {
		utils.InternalServerError(c, "Failed to count treatments: "+err.Error())
		return
	}

	utils.Success(c, "Dashboard stats fetched successfully", stats)
}
