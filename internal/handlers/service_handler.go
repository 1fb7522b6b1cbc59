package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/veloura/salon-scheduler/internal/httperr"
	"github.com/veloura/salon-scheduler/internal/httpresp"
	"github.com/veloura/salon-scheduler/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// ListActive is the public catalog: only active services, for clients
// picking what to book.
func (h *ServiceHandler) ListActive(c *gin.Context) {
	query := h.db.Where("active = true").Order("category, name")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if q := c.Query("q"); q != "" {
		query = query.Where("name ILIKE ?", "%"+q+"%")
	}

	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

// ListAll includes inactive services, for the admin panel.
func (h *ServiceHandler) ListAll(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("category, name").Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svc := models.Service{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Category:    req.Category,
		Active:      true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create the service.")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

type UpdateServiceRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	DurationMin int      `json:"duration_min"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Active      *bool    `json:"active"`
}

// Update edits the catalog entry. Existing bookings keep the price
// they were created with.
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	if req.Name != "" {
		svc.Name = req.Name
	}
	if req.Description != "" {
		svc.Description = req.Description
	}
	if req.DurationMin > 0 {
		svc.DurationMin = req.DurationMin
	}
	if req.Price > 0 {
		svc.Price = req.Price
	}
	if req.Category != "" {
		svc.Category = req.Category
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update the service.")
		return
	}

	httpresp.OK(c, svc)
}
