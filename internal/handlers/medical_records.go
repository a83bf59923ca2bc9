package handlers

import (
	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MedicalRecordHandler handles medical record requests.
type MedicalRecordHandler struct {
	DB *gorm.DB
}

// NewMedicalRecordHandler creates a new MedicalRecordHandler.
func NewMedicalRecordHandler(db *gorm.DB) *MedicalRecordHandler {
	return &MedicalRecordHandler{DB: db}
}

// MedicalRecordRequest represents the request body for creating or updating a
// medical record. ToothNumber uses FDI notation and is omitted for general
// records not tied to a single tooth.
type MedicalRecordRequest struct {
	PatientID   string `json:"patient_id" binding:"required"`
	DoctorID    string `json:"doctor_id" binding:"required"`
	ToothNumber *int   `json:"tooth_number" binding:"omitempty,min=11,max=48"`
	Diagnosis   string `json:"diagnosis" binding:"required"`
	Treatment   string `json:"treatment"`
	Notes       string `json:"notes"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Status      string `json:"status" binding:"omitempty,oneof=active completed cancelled"`
}

// CreateMedicalRecord handles adding a record to a patient's history.
func (h *MedicalRecordHandler) CreateMedicalRecord(c *gin.Context) {
	var req MedicalRecordRequest
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

	record := models.MedicalRecord{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		ToothNumber: req.ToothNumber,
		Diagnosis:   req.Diagnosis,
		Treatment:   req.Treatment,
		Notes:       req.Notes,
		RecordDate:  req.Date,
		Status:      models.RecordActive,
	}
	if req.Status != "" {
		record.Status = models.MedicalRecordStatus(req.Status)
	}

	if err := h.DB.Create(&record).Error; err != nil {
		utils.InternalServerError(c, "Failed to create medical record: "+err.Error())
		return
	}

	utils.Created(c, "Medical record created successfully", record)
}

// GetMedicalRecords handles fetching records, optionally filtered by
// patient_id, doctor_id or tooth_number, newest first.
func (h *MedicalRecordHandler) GetMedicalRecords(c *gin.Context) {
	query := h.DB.Preload("Patient").Preload("Doctor")

	if patientID := c.Query("patient_id"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}
	if doctorID := c.Query("doctor_id"); doctorID != "" {
		query = query.Where("doctor_id = ?", doctorID)
	}
	if tooth := c.Query("tooth_number"); tooth != "" {
		query = query.Where("tooth_number = ?", tooth)
	}

	var records []models.MedicalRecord
	if err := query.Order("record_date desc").Find(&records).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch medical records: "+err.Error())
		return
	}

	utils.Success(c, "Medical records fetched successfully", records)
}

// GetMedicalRecordByID handles fetching a single record by ID.
func (h *MedicalRecordHandler) GetMedicalRecordByID(c *gin.Context) {
	recordID := c.Param("id")

	var record models.MedicalRecord
	if err := h.DB.Preload("Patient").Preload("Doctor").
		First(&record, "id = ?", recordID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Medical record not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Medical record fetched successfully", record)
}

// UpdateMedicalRecord handles updating a record by ID.
func (h *MedicalRecordHandler) UpdateMedicalRecord(c *gin.Context) {
	recordID := c.Param("id")

	var record models.MedicalRecord
	if err := h.DB.First(&record, "id = ?", recordID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Medical record not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var req MedicalRecordRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	record.PatientID = req.PatientID
	record.DoctorID = req.DoctorID
	record.ToothNumber = req.ToothNumber
	record.Diagnosis = req.Diagnosis
	record.Treatment = req.Treatment
	record.Notes = req.Notes
	record.RecordDate = req.Date
	if req.Status != "" {
		record.Status = models.MedicalRecordStatus(req.Status)
	}

	if err := h.DB.Save(&record).Error; err != nil {
		utils.InternalServerError(c, "Failed to update medical record: "+err.Error())
		return
	}

	utils.Success(c, "Medical record updated successfully", record)
}

// DeleteMedicalRecord handles deleting a record by ID.
func (h *MedicalRecordHandler) DeleteMedicalRecord(c *gin.Context) {
	recordID := c.Param("id")

	var record models.MedicalRecord
	if err := h.DB.First(&record, "id = ?", recordID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Medical record not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&models.MedicalRecord{}, "id = ?", recordID).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete medical record: "+err.Error())
		return
	}

	utils.Success(c, "Medical record deleted successfully", nil)
}
