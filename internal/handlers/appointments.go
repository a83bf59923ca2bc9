package handlers

import (
	"time"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/schedule"
	"dental-clinic-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AppointmentHandler handles appointment booking requests.
type AppointmentHandler struct {
	DB *gorm.DB
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(db *gorm.DB) *AppointmentHandler {
	return &AppointmentHandler{DB: db}
}

// AppointmentRequest represents the request body for booking or updating an
// appointment.
type AppointmentRequest struct {
	PatientID       string   `json:"patient_id" binding:"required"`
	DoctorID        string   `json:"doctor_id" binding:"required"`
	ServiceID       *string  `json:"service_id"`
	AppointmentDate string   `json:"appointment_date" binding:"required,datetime=2006-01-02"`
	AppointmentTime string   `json:"appointment_time" binding:"required"`
	Notes           string   `json:"notes"`
	Price           *float64 `json:"price" binding:"omitempty,gte=0"`
}

// RescheduleRequest carries the new slot for an existing appointment.
type RescheduleRequest struct {
	AppointmentDate string `json:"appointment_date" binding:"required,datetime=2006-01-02"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
}

// StatusRequest updates just the appointment status.
type StatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required,oneof=scheduled completed cancelled no_show"`
}

// canonicalTime normalizes a clock time to the zero-padded "HH:MM" form every
// stored appointment uses. Slot conflicts are exact string comparisons, so
// "10:0" must become "10:00" before it reaches the database.
func canonicalTime(timeStr string) (string, error) {
	t, err := schedule.ParseTimeOfDay(timeStr)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// checkSlot verifies the doctor works the requested slot and that no other
// active appointment already holds it. excludeID skips the appointment being
// moved so rescheduling to its own slot is not a conflict. Returns the
// canonical "HH:MM" form to persist, or false after writing the error
// response when the slot cannot be booked.
func (h *AppointmentHandler) checkSlot(c *gin.Context, doctorID, dateStr, timeStr, excludeID string) (string, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		utils.BadRequest(c, "Invalid appointment date, expected YYYY-MM-DD")
		return "", false
	}

	slotTime, err := canonicalTime(timeStr)
	if err != nil {
		utils.BadRequest(c, "Invalid appointment time, expected HH:MM")
		return "", false
	}

	var doctor models.Doctor
	if err := h.DB.First(&doctor, "id = ?", doctorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return "", false
	}

	if !doctor.IsAvailableAt(date, slotTime) {
		utils.BadRequest(c, "Doctor is not available at the requested time")
		return "", false
	}

	query := h.DB.Model(&models.Appointment{}).
		Where("doctor_id = ? AND appointment_date = ? AND appointment_time = ? AND status IN ?",
			doctorID, dateStr, slotTime,
			[]models.AppointmentStatus{models.StatusScheduled, models.StatusCompleted})
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		utils.InternalServerError(c, "Failed to check slot availability: "+err.Error())
		return "", false
	}
	if count > 0 {
		utils.Conflict(c, "The requested time slot is already booked")
		return "", false
	}

	return slotTime, true
}

// CreateAppointment handles booking a new appointment. The slot must fall
// inside the doctor's working hours and must not already be taken.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req AppointmentRequest
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

	slotTime, ok := h.checkSlot(c, req.DoctorID, req.AppointmentDate, req.AppointmentTime, "")
	if !ok {
		return
	}

	appointment := models.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		ServiceID:       req.ServiceID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: slotTime,
		Status:          models.StatusScheduled,
		Notes:           req.Notes,
		Price:           req.Price,
	}

	// Default the price from the service catalog when the caller omits it.
	if appointment.Price == nil && req.ServiceID != nil {
		var service models.Service
		if err := h.DB.First(&service, "id = ?", *req.ServiceID).Error; err == nil {
			appointment.Price = &service.Price
		}
	}

	if err := h.DB.Create(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to create appointment: "+err.Error())
		return
	}

	h.DB.Preload("Patient").Preload("Doctor").Preload("Service").
		First(&appointment, "id = ?", appointment.ID)

	utils.Created(c, "Appointment created successfully", appointment)
}

// GetAppointments handles fetching appointments, with optional filters:
// doctor_id, patient_id, date (exact), from/to (inclusive date range),
// status.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	query := h.DB.Preload("Patient").Preload("Doctor").Preload("Service")

	if doctorID := c.Query("doctor_id"); doctorID != "" {
		query = query.Where("doctor_id = ?", doctorID)
	}
	if patientID := c.Query("patient_id"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("appointment_date = ?", date)
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("appointment_date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("appointment_date <= ?", to)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Order("appointment_date asc, appointment_time asc").
		Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetAppointmentByID handles fetching a single appointment by ID.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appointmentID := c.Param("id")

	var appointment models.Appointment
	if err := h.DB.Preload("Patient").Preload("Doctor").Preload("Service").
		First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Appointment fetched successfully", appointment)
}

// UpdateAppointment handles updating an appointment. Changing doctor, date or
// time re-runs the availability and conflict checks.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	appointmentID := c.Param("id")

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var req AppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	slotTime, err := canonicalTime(req.AppointmentTime)
	if err != nil {
		utils.BadRequest(c, "Invalid appointment time, expected HH:MM")
		return
	}

	slotChanged := req.DoctorID != appointment.DoctorID ||
		req.AppointmentDate != appointment.AppointmentDate ||
		slotTime != appointment.AppointmentTime
	if slotChanged {
		if _, ok := h.checkSlot(c, req.DoctorID, req.AppointmentDate, slotTime, appointment.ID); !ok {
			return
		}
	}

	appointment.PatientID = req.PatientID
	appointment.DoctorID = req.DoctorID
	appointment.ServiceID = req.ServiceID
	appointment.AppointmentDate = req.AppointmentDate
	appointment.AppointmentTime = slotTime
	appointment.Notes = req.Notes
	appointment.Price = req.Price

	if err := h.DB.Save(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to update appointment: "+err.Error())
		return
	}

	utils.Success(c, "Appointment updated successfully", appointment)
}

// RescheduleAppointment handles moving an appointment to a new slot with the
// same doctor.
func (h *AppointmentHandler) RescheduleAppointment(c *gin.Context) {
	appointmentID := c.Param("id")

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var req RescheduleRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	slotTime, ok := h.checkSlot(c, appointment.DoctorID, req.AppointmentDate, req.AppointmentTime, appointment.ID)
	if !ok {
		return
	}

	appointment.AppointmentDate = req.AppointmentDate
	appointment.AppointmentTime = slotTime
	appointment.Status = models.StatusScheduled

	if err := h.DB.Save(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to reschedule appointment: "+err.Error())
		return
	}

	utils.Success(c, "Appointment rescheduled successfully", appointment)
}

// UpdateAppointmentStatus handles marking an appointment completed,
// cancelled or no_show.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	appointmentID := c.Param("id")

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var req StatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment.Status = req.Status
	if err := h.DB.Save(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to update appointment status: "+err.Error())
		return
	}

	utils.Success(c, "Appointment status updated successfully", appointment)
}

// DeleteAppointment handles deleting an appointment by ID.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	appointmentID := c.Param("id")

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&models.Appointment{}, "id = ?", appointmentID).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete appointment: "+err.Error())
		return
	}

	utils.Success(c, "Appointment deleted successfully", nil)
}
