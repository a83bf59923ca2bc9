package handlers

import (
	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ServiceHandler handles dental service catalog requests.
type ServiceHandler struct {
	DB *gorm.DB
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{DB: db}
}

// ServiceRequest represents the request body for creating or updating a service.
type ServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"omitempty,gt=0"`
}

// CreateService handles adding a service to the catalog.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	service := models.Service{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	}
	if service.DurationMinutes == 0 {
		service.DurationMinutes = 30
	}

	if err := h.DB.Create(&service).Error; err != nil {
		utils.InternalServerError(c, "Failed to create service: "+err.Error())
		return
	}

	utils.Created(c, "Service created successfully", service)
}

// GetServices handles fetching the service catalog ordered by name.
func (h *ServiceHandler) GetServices(c *gin.Context) {
	var services []models.Service
	if err := h.DB.Order("name asc").Find(&services).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch services: "+err.Error())
		return
	}

	utils.Success(c, "Services fetched successfully", services)
}

// GetServiceByID handles fetching a single service by ID.
func (h *ServiceHandler) GetServiceByID(c *gin.Context) {
	serviceID := c.Param("id")

	var service models.Service
	if err := h.DB.First(&service, "id = ?", serviceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Service not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Service fetched successfully", service)
}

// UpdateService handles updating a service by ID.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	serviceID := c.Param("id")

	var service models.Service
	if err := h.DB.First(&service, "id = ?", serviceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Service not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	var req ServiceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Price = req.Price
	if req.DurationMinutes > 0 {
		service.DurationMinutes = req.DurationMinutes
	}

	if err := h.DB.Save(&service).Error; err != nil {
		utils.InternalServerError(c, "Failed to update service: "+err.Error())
		return
	}

	utils.Success(c, "Service updated successfully", service)
}

// DeleteService handles deleting a service by ID.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	serviceID := c.Param("id")

	var service models.Service
	if err := h.DB.First(&service, "id = ?", serviceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Service not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&models.Service{}, "id = ?", serviceID).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete service: "+err.Error())
		return
	}

	utils.Success(c, "Service deleted successfully", nil)
}
