package handlers

import (
	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TreatmentHandler handles treatment plan requests.
type TreatmentHandler struct {
	DB *gorm.DB
}

// NewTreatmentHandler creates a new TreatmentHandler.
func NewTreatmentHandler(db *gorm.DB) *TreatmentHandler {
	return &TreatmentHandler{DB: db}
}

// TreatmentRequest represents the request body for creating or updating a
// treatment plan.
type TreatmentRequest struct {
	PatientID         string   `json:"patient_id" binding:"required"`
	DoctorID          string   `json:"doctor_id" binding:"required"`
	ServiceID         *string  `json:"service_id"`
	ToothNumber       *int     `json:"tooth_number" binding:"omitempty,min=11,max=48"`
	TreatmentPlan     string   `json:"treatment_plan" binding:"required"`
	EstimatedCost     *float64 `json:"estimated_cost" binding:"omitempty,gte=0"`
	EstimatedSessions int      `json:"estimated_sessions" binding:"omitempty,gt=0"`
	Priority          string   `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status            string   `json:"status" binding:"omitempty,oneof=planned in_progress completed cancelled"`
	StartDate         string   `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate           string   `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Notes             string   `json:"notes"`
}

func (req *TreatmentRequest) apply(t *models.Treatment) {
	t.PatientID = req.PatientID
	t.DoctorID = req.DoctorID
	t.ServiceID = req.ServiceID
	t.ToothNumber = req.ToothNumber
	t.TreatmentPlan = req.TreatmentPlan
	t.EstimatedCost = req.EstimatedCost
	t.StartDate = req.StartDate
	t.EndDate = req.EndDate
	t.Notes = req.Notes
	if req.EstimatedSessions > 0 {
		t.EstimatedSessions = req.EstimatedSessions
	}
	if req.Priority != "" {
		t.Priority = models.TreatmentPriority(req.Priority)
	}
	if req.Status != "" {
		t.Status = models.TreatmentStatus(req.Status)
	}
}

// CreateTreatment handles adding a treatment plan for a patient.
func (h *TreatmentHandler) CreateTreatment(c *gin.Context) {
	var req TreatmentRequest
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

	treatment := models.Treatment{
		EstimatedSessions: 1,
		Priority:          models.PriorityMedium,
		Status:            models.TreatmentPlanned,
	}
	req.apply(&treatment)

	if err := h.DB.Create(&treatment).Error; err != nil {
		utils.InternalServerError(c, "Failed to create treatment: "+err.Error())
		return
	}

	utils.Created(c, "Treatment created successfully", treatment)
}

// GetTreatments handles fetching treatment plans, optionally filtered by
// patient_id, doctor_id or status.
func (h *TreatmentHandler) GetTreatments(c *gin.Context) {
	query := h.DB.Preload("Patient").Preload("Doctor").Preload("Service")

	if patientID := c.Query("patient_id"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}
	if doctorID := c.Query("doctor_id"); doctorID != "" {
		query = query.Where("doctor_id = ?", doctorID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var treatments []models.Treatment
	if err := query.Order("created_at desc").Find(&treatments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch treatments: "+err.Error())
		return
	}

	utils.Success(c, "Treatments fetched successfully", treatments)
}

// GetTreatmentByID handles fetching a single treatment plan by ID.
func (h *TreatmentHandler) GetTreatmentByID(c *gin.Context) {
	treatmentID := c.Param("id")

	var treatment models.Treatment
	if err := h.DB.Preload("Patient").Preload("Doctor").Preload("Service").
		First(&treatment, "id = ?", treatmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Treatment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Treatment fetched successfully", treatment)
}

// UpdateTreatment handles updating a treatment plan by ID.
func (h *TreatmentHandler) UpdateTreatment(c *gin.Context) {
	treatmentID := c.Param("id")

	var treatment models.Treatment
	if err := h.DB.First(&treatment, "id = ?", treatmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Treatment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var req TreatmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	req.apply(&treatment)

	if err := h.DB.Save(&treatment).Error; err != nil {
		utils.InternalServerError(c, "Failed to update treatment: "+err.Error())
		return
	}

	utils.Success(c, "Treatment updated successfully", treatment)
}

// DeleteTreatment handles deleting a treatment plan by ID.
func (h *TreatmentHandler) DeleteTreatment(c *gin.Context) {
	treatmentID := c.Param("id")

	var treatment models.Treatment
	if err := h.DB.First(&treatment, "id = ?", treatmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Treatment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&models.Treatment{}, "id = ?", treatmentID).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete treatment: "+err.Error())
		return
	}

	utils.Success(c, "Treatment deleted successfully", nil)
}
