package handlers

import (
	"strconv"
	"time"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/schedule"
	"dental-clinic-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DoctorHandler handles doctor related requests.
type DoctorHandler struct {
	DB *gorm.DB
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(db *gorm.DB) *DoctorHandler {
	return &DoctorHandler{DB: db}
}

// DoctorRequest represents the request body for creating or updating a
// doctor. Schedule uses the weekday-name keyed wire shape, e.g.
// {"monday": ["09:00-12:00", "14:00-17:00"]}; omitted days are days off.
type DoctorRequest struct {
	FullName       string              `json:"full_name" binding:"required"`
	Specialization string              `json:"specialization" binding:"required"`
	Phone          string              `json:"phone"`
	Email          string              `json:"email" binding:"omitempty,email"`
	PricePerHour   float64             `json:"price_per_hour" binding:"omitempty,gte=0"`
	Schedule       map[string][]string `json:"schedule"`
}

// CreateDoctor handles adding a new doctor. Malformed schedule ranges are
// rejected here so availability checks never see them.
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req DoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor := models.Doctor{
		FullName:       req.FullName,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		Email:          req.Email,
		PricePerHour:   req.PricePerHour,
	}

	if req.Schedule != nil {
		ws, err := schedule.FromWire(req.Schedule)
		if err != nil {
			utils.BadRequest(c, "Invalid schedule: "+err.Error())
			return
		}
		doctor.Schedule = &ws
	}

	if err := h.DB.Create(&doctor).Error; err != nil {
		utils.InternalServerError(c, "Failed to create doctor: "+err.Error())
		return
	}

	utils.Created(c, "Doctor created successfully", doctor)
}

// GetDoctors handles fetching all doctors ordered by name.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	var doctors []models.Doctor
	if err := h.DB.Order("full_name asc").Find(&doctors).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch doctors: "+err.Error())
		return
	}

	utils.Success(c, "Doctors fetched successfully", doctors)
}

// GetDoctorByID handles fetching a single doctor by ID.
func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	doctorID := c.Param("id")

	var doctor models.Doctor
	if err := h.DB.First(&doctor, "id = ?", doctorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Doctor fetched successfully", doctor)
}

// UpdateDoctor handles updating a doctor by ID.
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	doctorID := c.Param("id")

	var doctor models.Doctor
	if err := h.DB.First(&doctor, "id = ?", doctorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var req DoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor.FullName = req.FullName
	doctor.Specialization = req.Specialization
	doctor.Phone = req.Phone
	doctor.Email = req.Email
	doctor.PricePerHour = req.PricePerHour

	if req.Schedule != nil {
		ws, err := schedule.FromWire(req.Schedule)
		if err != nil {
			utils.BadRequest(c, "Invalid schedule: "+err.Error())
			return
		}
		doctor.Schedule = &ws
	} else {
		doctor.Schedule = nil
	}

	if err := h.DB.Save(&doctor).Error; err != nil {
		utils.InternalServerError(c, "Failed to update doctor: "+err.Error())
		return
	}

	utils.Success(c, "Doctor updated successfully", doctor)
}

// DeleteDoctor handles deleting a doctor by ID.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	doctorID := c.Param("id")

	var doctor models.Doctor
	if err := h.DB.First(&doctor, "id = ?", doctorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&models.Doctor{}, "id = ?", doctorID).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete doctor: "+err.Error())
		return
	}

	utils.Success(c, "Doctor deleted successfully", nil)
}

// AvailableSlotsResponse lists the open slots for one doctor and date.
type AvailableSlotsResponse struct {
	DoctorID string   `json:"doctor_id"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
}

// GetAvailableSlots handles fetching the open "HH:MM" slots for a doctor on
// a date: the doctor's working windows minus already booked appointments.
// Query: date=YYYY-MM-DD (required), duration=minutes (default 30).
func (h *DoctorHandler) GetAvailableSlots(c *gin.Context) {
	doctorID := c.Param("id")

	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		utils.BadRequest(c, "Invalid or missing date, expected YYYY-MM-DD")
		return
	}

	duration := schedule.DefaultSlotMinutes
	if raw := c.Query("duration"); raw != "" {
		duration, err = strconv.Atoi(raw)
		if err != nil || duration <= 0 {
			utils.BadRequest(c, "Invalid duration, expected a positive number of minutes")
			return
		}
	}

	var doctor models.Doctor
	if err := h.DB.First(&doctor, "id = ?", doctorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Doctor not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	// Cancelled appointments and no-shows free their slot up again.
	var existing []models.Appointment
	if err := h.DB.Where("doctor_id = ? AND appointment_date = ? AND status IN ?",
		doctorID, dateStr, []models.AppointmentStatus{models.StatusScheduled, models.StatusCompleted}).
		Find(&existing).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, "Available slots fetched successfully", AvailableSlotsResponse{
		DoctorID: doctorID,
		Date:     dateStr,
		Slots:    doctor.AvailableTimeSlots(date, existing, duration),
	})
}
