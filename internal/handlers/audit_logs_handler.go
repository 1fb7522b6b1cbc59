package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/veloura/salon-scheduler/internal/httperr"
	"github.com/veloura/salon-scheduler/internal/httpresp"
	"github.com/veloura/salon-scheduler/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List pages through the audit trail with optional action, entity and
// user filters. Admin only.
func (h *AuditLogsHandler) List(c *gin.Context) {
	query := h.db.Model(&models.AuditLog{}).Order("created_at DESC")

	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		query = query.Where("entity = ?", entity)
	}
	if userID, ok := queryID(c, "user_id"); ok {
		query = query.Where("user_id = ?", userID)
	}

	page := httpresp.PageFromQuery(c)

	var total int64
	query.Count(&total)

	var logs []models.AuditLog
	if err := query.
		Limit(httpresp.PageSize).
		Offset((page - 1) * httpresp.PageSize).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "internal_error", "Could not list audit logs.")
		return
	}

	httpresp.Page(c, logs, total, page)
}
