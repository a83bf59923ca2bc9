package handlers

import (
	"time"

	"dental-clinic-server/internal/calendar"
	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CalendarHandler serves the composed calendar views for the scheduling UI.
type CalendarHandler struct {
	DB *gorm.DB

	// now is swapped out in tests so "is today" highlighting is deterministic.
	now func() time.Time
}

// NewCalendarHandler creates a new CalendarHandler using the wall clock.
func NewCalendarHandler(db *gorm.DB) *CalendarHandler {
	return &CalendarHandler{DB: db, now: time.Now}
}

// GetCalendar handles composing a calendar view.
// Query: view=day|week|month (default week), date=YYYY-MM-DD anchor (default
// today), doctor_id optional filter.
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	view := calendar.ViewWeek
	if raw := c.Query("view"); raw != "" {
		parsed, err := calendar.ParseView(raw)
		if err != nil {
			utils.BadRequest(c, "Invalid view, expected day, week or month")
			return
		}
		view = parsed
	}

	today := h.now()
	anchor := today
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		anchor = parsed
	}

	start, end := calendar.Range(view, anchor)
	query := h.DB.Preload("Patient").Preload("Doctor").Preload("Service").
		Where("appointment_date >= ? AND appointment_date <= ?",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	if doctorID := c.Query("doctor_id"); doctorID != "" {
		query = query.Where("doctor_id = ?", doctorID)
	}

	var appointments []models.Appointment
	if err := query.Order("appointment_date asc, appointment_time asc").
		Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, "Calendar fetched successfully",
		calendar.Compose(view, anchor, today, appointments))
}

// GetSelection handles resolving a click on the calendar into the event the
// appointment form consumes: an appointment-click when appointment_id is
// given, otherwise a slot-click for date and time.
func (h *CalendarHandler) GetSelection(c *gin.Context) {
	doctorID := c.Query("doctor_id")

	if appointmentID := c.Query("appointment_id"); appointmentID != "" {
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
		utils.Success(c, "Selection resolved successfully",
			calendar.NewAppointmentSelection(appointment, doctorID))
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		utils.BadRequest(c, "Invalid or missing date, expected YYYY-MM-DD")
		return
	}
	slotTime := c.Query("time")
	if slotTime == "" {
		utils.BadRequest(c, "Missing time, expected HH:MM")
		return
	}

	utils.Success(c, "Selection resolved successfully",
		calendar.NewSlotSelection(date, slotTime, doctorID))
}
