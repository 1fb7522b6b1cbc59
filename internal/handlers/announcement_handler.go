package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/veloura/salon-scheduler/internal/httperr"
	"github.com/veloura/salon-scheduler/internal/httpresp"
	"github.com/veloura/salon-scheduler/internal/models"
)

type AnnouncementHandler struct {
	db *gorm.DB
}

func NewAnnouncementHandler(db *gorm.DB) *AnnouncementHandler {
	return &AnnouncementHandler{db: db}
}

// List is visible to every authenticated user, newest first.
func (h *AnnouncementHandler) List(c *gin.Context) {
	var items []models.Announcement
	if err := h.db.Order("created_at DESC").Limit(50).Find(&items).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not list announcements.")
		return
	}

	httpresp.List(c, items)
}

type AnnouncementRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	item := models.Announcement{
		Title:     req.Title,
		Body:      req.Body,
		CreatedBy: currentUserID(c),
	}
	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not create the announcement.")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid announcement id.")
		return
	}

	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var item models.Announcement
	if err := h.db.First(&item, id).Error; err != nil {
		httperr.NotFound(c, "announcement_not_found", "Announcement not found.")
		return
	}

	item.Title = req.Title
	item.Body = req.Body

	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not update the announcement.")
		return
	}

	httpresp.OK(c, item)
}

func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid announcement id.")
		return
	}

	result := h.db.Delete(&models.Announcement{}, id)
	if result.Error != nil {
		httperr.Internal(c, "internal_error", "Could not delete the announcement.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "announcement_not_found", "Announcement not found.")
		return
	}

	httpresp.OK(c, gin.H{"message": "announcement_deleted"})
}
