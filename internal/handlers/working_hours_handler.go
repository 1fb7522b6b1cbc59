package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/veloura/salon-scheduler/internal/domain/appointment"
	"github.com/veloura/salon-scheduler/internal/httperr"
	"github.com/veloura/salon-scheduler/internal/httpresp"
	"github.com/veloura/salon-scheduler/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

// Get returns the authenticated staff member's weekly template.
func (h *WorkingHoursHandler) Get(c *gin.Context) {
	var hours []models.WorkingHours
	if err := h.db.
		Where("staff_id = ?", currentUserID(c)).
		Order("weekday").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "internal_error", "Could not load working hours.")
		return
	}

	httpresp.List(c, hours)
}

type WorkingHoursEntry struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
	Active     bool   `json:"active"`
}

type PutWorkingHoursRequest struct {
	Entries []WorkingHoursEntry `json:"entries" binding:"required,dive"`
}

// Put replaces the weekly template wholesale. Upserting per weekday
// keeps one row per (staff, weekday).
func (h *WorkingHoursHandler) Put(c *gin.Context) {
	var req PutWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	for _, e := range req.Entries {
		if !validClock(e.StartTime) || !validClock(e.EndTime) {
			httperr.BadRequest(c, "invalid_time", "Times must use the HH:MM format.")
			return
		}
		if e.BreakStart != "" && !validClock(e.BreakStart) {
			httperr.BadRequest(c, "invalid_time", "Times must use the HH:MM format.")
			return
		}
		if e.BreakEnd != "" && !validClock(e.BreakEnd) {
			httperr.BadRequest(c, "invalid_time", "Times must use the HH:MM format.")
			return
		}
		if e.StartTime >= e.EndTime {
			httperr.BadRequest(c, "invalid_range", "Start time must come before end time.")
			return
		}
	}

	staffID := currentUserID(c)

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", staffID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		for _, e := range req.Entries {
			row := models.WorkingHours{
				StaffID:    staffID,
				Weekday:    e.Weekday,
				StartTime:  e.StartTime,
				EndTime:    e.EndTime,
				BreakStart: e.BreakStart,
				BreakEnd:   e.BreakEnd,
				Active:     e.Active,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not save working hours.")
		return
	}

	httpresp.OK(c, gin.H{"message": "working_hours_saved"})
}

func validClock(v string) bool {
	_, err := time.Parse(domain.TimeLayout, v)
	return err == nil
}
