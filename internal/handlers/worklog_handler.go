package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/veloura/salon-scheduler/internal/httperr"
	"github.com/veloura/salon-scheduler/internal/httpresp"
	"github.com/veloura/salon-scheduler/internal/models"
)

type WorkLogHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewWorkLogHandler(db *gorm.DB, loc *time.Location) *WorkLogHandler {
	return &WorkLogHandler{db: db, loc: loc}
}

// CheckIn opens a shift. A staff member can only have one open shift
// at a time.
func (h *WorkLogHandler) CheckIn(c *gin.Context) {
	staffID := currentUserID(c)

	var open int64
	h.db.Model(&models.WorkLog{}).
		Where("staff_id = ? AND check_out IS NULL", staffID).
		Count(&open)
	if open > 0 {
		httperr.BadRequest(c, "shift_already_open", "Check out of the current shift first.")
		return
	}

	log := models.WorkLog{
		StaffID: staffID,
		CheckIn: time.Now().In(h.loc),
	}
	if err := h.db.Create(&log).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not check in.")
		return
	}

	httpresp.OK(c, log)
}

func (h *WorkLogHandler) CheckOut(c *gin.Context) {
	staffID := currentUserID(c)

	var log models.WorkLog
	if err := h.db.
		Where("staff_id = ? AND check_out IS NULL", staffID).
		Order("check_in DESC").
		First(&log).Error; err != nil {

		httperr.BadRequest(c, "no_open_shift", "There is no open shift to check out of.")
		return
	}

	now := time.Now().In(h.loc)
	log.CheckOut = &now
	log.DurationMin = int(now.Sub(log.CheckIn).Minutes())

	if err := h.db.Save(&log).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not check out.")
		return
	}

	httpresp.OK(c, log)
}

func (h *WorkLogHandler) List(c *gin.Context) {
	page := httpresp.PageFromQuery(c)

	query := h.db.Model(&models.WorkLog{}).
		Where("staff_id = ?", currentUserID(c)).
		Order("check_in DESC")

	var total int64
	query.Count(&total)

	var logs []models.WorkLog
	if err := query.
		Limit(httpresp.PageSize).
		Offset((page - 1) * httpresp.PageSize).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "internal_error", "Could not list work logs.")
		return
	}

	httpresp.Page(c, logs, total, page)
}
