package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/veloura/salon-scheduler/internal/httperr"
	"github.com/veloura/salon-scheduler/internal/httpresp"
	"github.com/veloura/salon-scheduler/internal/notify"
)

type NotificationHandler struct {
	store *notify.Store
}

func NewNotificationHandler(store *notify.Store) *NotificationHandler {
	return &NotificationHandler{store: store}
}

func (h *NotificationHandler) List(c *gin.Context) {
	page := httpresp.PageFromQuery(c)

	items, total, err := h.store.ListForUser(currentUserID(c), page, httpresp.PageSize)
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not list notifications.")
		return
	}

	httpresp.Page(c, items, total, page)
}

// MarkRead only touches the caller's own notifications; a foreign id
// reads as not found.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid notification id.")
		return
	}

	rows, err := h.store.MarkRead(currentUserID(c), id)
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not mark the notification as read.")
		return
	}
	if rows == 0 {
		httperr.NotFound(c, "notification_not_found", "Notification not found or already read.")
		return
	}

	httpresp.OK(c, gin.H{"message": "notification_read"})
}
