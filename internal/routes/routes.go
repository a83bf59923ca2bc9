package routes

import (
	"dental-clinic-server/internal/config"
	"dental-clinic-server/internal/handlers"
	"dental-clinic-server/internal/middleware"
	"dental-clinic-server/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	patientHandler := handlers.NewPatientHandler(db)
	doctorHandler := handlers.NewDoctorHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(db)
	medicalRecordHandler := handlers.NewMedicalRecordHandler(db)
	treatmentHandler := handlers.NewTreatmentHandler(db)
	invoiceHandler := handlers.NewInvoiceHandler(db, cfg)
	calendarHandler := handlers.NewCalendarHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
			authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
		}

		// Staff account management, admin only. Register sits here too so
		// only admins can create accounts.
		userRoutes := private.Group("/users")
		userRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			userRoutes.POST("", userHandler.CreateUser)
			userRoutes.GET("", userHandler.GetUsers)
			userRoutes.GET("/:id", userHandler.GetUserByID)
			userRoutes.PUT("/:id", userHandler.UpdateUser)
			userRoutes.DELETE("/:id", userHandler.DeleteUser)
		}
		private.POST("/auth/register", middleware.RoleAuthMiddleware(models.RoleAdmin), authHandler.Register)

		patientRoutes := private.Group("/patients")
		{
			patientRoutes.POST("", patientHandler.CreatePatient)
			patientRoutes.GET("", patientHandler.GetPatients)
			patientRoutes.GET("/:id", patientHandler.GetPatientByID)
			patientRoutes.PUT("/:id", patientHandler.UpdatePatient)
			patientRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), patientHandler.DeletePatient)
			patientRoutes.GET("/:id/dental-chart", patientHandler.GetDentalChart)
		}

		doctorRoutes := private.Group("/doctors")
		{
			doctorRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleAdmin), doctorHandler.CreateDoctor)
			doctorRoutes.GET("", doctorHandler.GetDoctors)
			doctorRoutes.GET("/:id", doctorHandler.GetDoctorByID)
			doctorRoutes.PUT("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), doctorHandler.UpdateDoctor)
			doctorRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), doctorHandler.DeleteDoctor)
			doctorRoutes.GET("/:id/available-slots", doctorHandler.GetAvailableSlots)
		}

		serviceRoutes := private.Group("/services")
		{
			serviceRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleAdmin), serviceHandler.CreateService)
			serviceRoutes.GET("", serviceHandler.GetServices)
			serviceRoutes.GET("/:id", serviceHandler.GetServiceByID)
			serviceRoutes.PUT("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), serviceHandler.UpdateService)
			serviceRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), serviceHandler.DeleteService)
		}

		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PUT("/:id", appointmentHandler.UpdateAppointment)
			appointmentRoutes.PATCH("/:id/status", appointmentHandler.UpdateAppointmentStatus)
			appointmentRoutes.PATCH("/:id/reschedule", appointmentHandler.RescheduleAppointment)
			appointmentRoutes.DELETE("/:id", appointmentHandler.DeleteAppointment)
		}

		medicalRecordRoutes := private.Group("/medical-records")
		{
			medicalRecordRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin), medicalRecordHandler.CreateMedicalRecord)
			medicalRecordRoutes.GET("", medicalRecordHandler.GetMedicalRecords)
			medicalRecordRoutes.GET("/:id", medicalRecordHandler.GetMedicalRecordByID)
			medicalRecordRoutes.PUT("/:id", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin), medicalRecordHandler.UpdateMedicalRecord)
			medicalRecordRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin), medicalRecordHandler.DeleteMedicalRecord)
		}

		treatmentRoutes := private.Group("/treatments")
		{
			treatmentRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin), treatmentHandler.CreateTreatment)
			treatmentRoutes.GET("", treatmentHandler.GetTreatments)
			treatmentRoutes.GET("/:id", treatmentHandler.GetTreatmentByID)
			treatmentRoutes.PUT("/:id", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin), treatmentHandler.UpdateTreatment)
			treatmentRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin), treatmentHandler.DeleteTreatment)
		}

		invoiceRoutes := private.Group("/invoices")
		{
			invoiceRoutes.POST("", invoiceHandler.CreateInvoice)
			invoiceRoutes.GET("", invoiceHandler.GetInvoices)
			invoiceRoutes.GET("/:id", invoiceHandler.GetInvoiceByID)
			invoiceRoutes.PATCH("/:id/status", invoiceHandler.UpdateInvoiceStatus)
			invoiceRoutes.POST("/:id/send", invoiceHandler.SendInvoice)
			invoiceRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), invoiceHandler.DeleteInvoice)
		}

		private.GET("/calendar", calendarHandler.GetCalendar)
		private.GET("/calendar/selection", calendarHandler.GetSelection)
		private.GET("/dashboard/stats", dashboardHandler.GetStats)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
