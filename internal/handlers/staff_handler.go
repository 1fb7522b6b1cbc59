package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/veloura/salon-scheduler/internal/httperr"
	"github.com/veloura/salon-scheduler/internal/httpresp"
	usecase "github.com/veloura/salon-scheduler/internal/usecase/appointment"
)

type StaffHandler struct {
	schedule     *usecase.ListStaffSchedule
	updateStatus *usecase.UpdateStatus
}

func NewStaffHandler(
	schedule *usecase.ListStaffSchedule,
	updateStatus *usecase.UpdateStatus,
) *StaffHandler {
	return &StaffHandler{
		schedule:     schedule,
		updateStatus: updateStatus,
	}
}

// Schedule lists the authenticated staff member's appointments for one
// day. Staff never see another staff member's bookings.
func (h *StaffHandler) Schedule(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "The date query parameter is required.")
		return
	}

	items, err := h.schedule.Execute(c.Request.Context(), currentUserID(c), date)
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "internal_error", "Could not list the schedule.")
		return
	}

	httpresp.List(c, items)
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *StaffHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), usecase.UpdateStatusInput{
		ActorID:       currentUserID(c),
		Role:          currentUserRole(c),
		AppointmentID: id,
		NewStatus:     req.Status,
	})
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "internal_error", "Could not update the status.")
		return
	}

	httpresp.OK(c, appointmentPayload(ap))
}
