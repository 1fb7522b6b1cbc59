package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/veloura/salon-scheduler/internal/domain/appointment"
	"github.com/veloura/salon-scheduler/internal/dto"
	"github.com/veloura/salon-scheduler/internal/httperr"
	"github.com/veloura/salon-scheduler/internal/httpresp"
	"github.com/veloura/salon-scheduler/internal/models"
	usecase "github.com/veloura/salon-scheduler/internal/usecase/appointment"
)

type AppointmentHandler struct {
	create       *usecase.CreateAppointment
	edit         *usecase.EditAppointment
	cancel       *usecase.CancelAppointment
	listMine     *usecase.ListClientAppointments
	availability *usecase.GetAvailability
}

func NewAppointmentHandler(
	create *usecase.CreateAppointment,
	edit *usecase.EditAppointment,
	cancel *usecase.CancelAppointment,
	listMine *usecase.ListClientAppointments,
	availability *usecase.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		edit:         edit,
		cancel:       cancel,
		listMine:     listMine,
		availability: availability,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
	HealthNotes string `json:"health_notes"`
}

// Omitted fields keep the stored value.
type EditAppointmentRequest struct {
	ServiceID uint   `json:"service_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		ClientID:    currentUserID(c),
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		HealthNotes: req.HealthNotes,
	})
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "internal_error", "Could not create the booking.")
		return
	}

	c.JSON(http.StatusCreated, appointmentPayload(ap))
}

func (h *AppointmentHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req EditAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.edit.Execute(c.Request.Context(), usecase.EditAppointmentInput{
		ClientID:      currentUserID(c),
		AppointmentID: id,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "internal_error", "Could not update the booking.")
		return
	}

	httpresp.OK(c, appointmentPayload(ap))
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	err := h.cancel.Execute(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "internal_error", "Could not cancel the booking.")
		return
	}

	httpresp.OK(c, gin.H{"message": "appointment_cancelled"})
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	page := httpresp.PageFromQuery(c)

	appointments, total, err := h.listMine.Execute(c.Request.Context(), currentUserID(c), page)
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not list bookings.")
		return
	}

	httpresp.Page(c, appointmentListPayload(appointments), total, page)
}

func (h *AppointmentHandler) Availability(c *gin.Context) {
	staffID, ok := paramID(c, "staffId")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid staff id.")
		return
	}
	serviceID, ok := paramID(c, "serviceId")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "The date query parameter is required.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		StaffID:   staffID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		if httperr.WriteBusiness(c, err) {
			return
		}
		httperr.Internal(c, "internal_error", "Could not compute availability.")
		return
	}

	httpresp.List(c, slots)
}

// --------- Payloads ---------

func appointmentPayload(ap *models.Appointment) gin.H {
	out := gin.H{
		"id":           ap.ID,
		"booking_code": ap.BookingCode,
		"service_id":   ap.ServiceID,
		"date":         ap.Date,
		"time":         ap.Time,
		"status":       ap.Status,
		"price":        ap.Price,
	}
	if ap.StaffID != nil {
		out["staff_id"] = *ap.StaffID
	}
	return out
}

func appointmentListPayload(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		item := dto.AppointmentListDTO{
			ID:          ap.ID,
			BookingCode: ap.BookingCode,
			Date:        ap.Date,
			Time:        ap.Time,
			Status:      ap.Status,
			Price:       ap.Price,
			ClientName:  ap.Client.FullName,
			ServiceName: ap.Service.Name,
		}
		out = append(out, item)
	}
	return out
}
