package handlers

import (
	"sort"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PatientHandler handles patient related requests.
type PatientHandler struct {
	DB *gorm.DB
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{DB: db}
}

// PatientRequest represents the request body for creating or updating a patient.
type PatientRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
	BirthDate    string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Address      string `json:"address"`
	MedicalNotes string `json:"medical_notes"`
}

// CreatePatient handles registering a new patient.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req PatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient := models.Patient{
		FullName:     req.FullName,
		Phone:        req.Phone,
		Email:        req.Email,
		BirthDate:    req.BirthDate,
		Address:      req.Address,
		MedicalNotes: req.MedicalNotes,
	}

	if err := h.DB.Create(&patient).Error; err != nil {
		utils.InternalServerError(c, "Failed to create patient: "+err.Error())
		return
	}

	utils.Created(c, "Patient created successfully", patient)
}

// GetPatients handles fetching all patients, newest first.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	var patients []models.Patient
	if err := h.DB.Order("created_at desc").Find(&patients).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch patients: "+err.Error())
		return
	}

	utils.Success(c, "Patients fetched successfully", patients)
}

// GetPatientByID handles fetching a single patient by ID.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	patientID := c.Param("id")

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Patient fetched successfully", patient)
}

// UpdatePatient handles updating a patient by ID.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	patientID := c.Param("id")

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var req PatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient.FullName = req.FullName
	patient.Phone = req.Phone
	patient.Email = req.Email
	patient.BirthDate = req.BirthDate
	patient.Address = req.Address
	patient.MedicalNotes = req.MedicalNotes

	if err := h.DB.Save(&patient).Error; err != nil {
		utils.InternalServerError(c, "Failed to update patient: "+err.Error())
		return
	}

	utils.Success(c, "Patient updated successfully", patient)
}

// DeletePatient handles deleting a patient by ID.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	patientID := c.Param("id")

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&models.Patient{}, "id = ?", patientID).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete patient: "+err.Error())
		return
	}

	utils.Success(c, "Patient deleted successfully", nil)
}

// ToothHistory groups a patient's records and treatment plans for one tooth
// (FDI numbering).
type ToothHistory struct {
	ToothNumber int                    `json:"tooth_number"`
	Records     []models.MedicalRecord `json:"records"`
	Treatments  []models.Treatment     `json:"treatments"`
}

// GetDentalChart handles fetching a patient's per-tooth history for the
// dental chart view. Only entries tied to a specific tooth appear; general
// records belong to the medical history endpoints.
func (h *PatientHandler) GetDentalChart(c *gin.Context) {
	patientID := c.Param("id")

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var records []models.MedicalRecord
	if err := h.DB.Where("patient_id = ? AND tooth_number IS NOT NULL", patientID).
		Order("record_date desc").Find(&records).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch medical records: "+err.Error())
		return
	}

	var treatments []models.Treatment
	if err := h.DB.Where("patient_id = ? AND tooth_number IS NOT NULL", patientID).
		Order("created_at desc").Find(&treatments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch treatments: "+err.Error())
		return
	}

	byTooth := make(map[int]*ToothHistory)
	for _, record := range records {
		entry := chartEntry(byTooth, *record.ToothNumber)
		entry.Records = append(entry.Records, record)
	}
	for _, treatment := range treatments {
		entry := chartEntry(byTooth, *treatment.ToothNumber)
		entry.Treatments = append(entry.Treatments, treatment)
	}

	chart := make([]ToothHistory, 0, len(byTooth))
	for _, entry := range byTooth {
		chart = append(chart, *entry)
	}
	sort.Slice(chart, func(i, j int) bool { return chart[i].ToothNumber < chart[j].ToothNumber })

	utils.Success(c, "Dental chart fetched successfully", chart)
}

func chartEntry(byTooth map[int]*ToothHistory, tooth int) *ToothHistory {
	if entry, ok := byTooth[tooth]; ok {
		return entry
	}
	entry := &ToothHistory{ToothNumber: tooth}
	byTooth[tooth] = entry
	return entry
}
