package appointment

import (
	"context"
	"fmt"

	"github.com/veloura/salon-scheduler/internal/audit"
	domain "github.com/veloura/salon-scheduler/internal/domain/appointment"
	"github.com/veloura/salon-scheduler/internal/events"
	"github.com/veloura/salon-scheduler/internal/httperr"
	"github.com/veloura/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateStatusInput struct {
	ActorID uint
	Role    string

	AppointmentID uint
	NewStatus     string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateStatus struct {
	repo     domain.Repository
	notifier Notifier
	audit    Auditor
	events   EventPublisher
}

func NewUpdateStatus(
	repo domain.Repository,
	notifier Notifier,
	auditor Auditor,
	publisher EventPublisher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:     repo,
		notifier: notifier,
		audit:    auditor,
		events:   publisher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	// Staff may only move their own appointments; admins move any.
	if in.Role == models.RoleStaff {
		if ap.StaffID == nil || *ap.StaffID != in.ActorID {
			return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotAssigned)
		}
	}

	from := domain.Status(ap.Status)
	next := domain.Status(in.NewStatus)

	if err := domain.ApplyStatus(ap, next); err != nil {
		return nil, err
	}

	// Guarded write: the row must still carry the status we read.
	rows, err := uc.repo.UpdateStatus(ctx, ap.ID, from, next)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	title, body := statusNotification(ap, next)
	uc.notifier.Notify(ap.ClientID, title, body)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Role:     in.Role,
		Action:   "status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"from": string(from), "to": string(next)},
	})

	uc.events.Publish(events.Event{
		Type:          events.AppointmentStatusChanged,
		AppointmentID: ap.ID,
		Payload: map[string]any{
			"from": string(from),
			"to":   string(next),
		},
	})

	return ap, nil
}

func statusNotification(ap *models.Appointment, next domain.Status) (string, string) {
	when := fmt.Sprintf("%s at %s", ap.Date, ap.Time)
	svc := ap.Service.Name

	switch next {
	case domain.StatusConfirmed:
		return "Booking confirmed", fmt.Sprintf("Your %s appointment on %s is confirmed.", svc, when)
	case domain.StatusInProgress:
		return "Appointment started", fmt.Sprintf("Your %s appointment on %s is underway.", svc, when)
	case domain.StatusCompleted:
		return "Appointment completed", fmt.Sprintf("Your %s appointment on %s is complete. Thank you!", svc, when)
	case domain.StatusCancelled:
		return "Booking cancelled", fmt.Sprintf("Your %s appointment on %s was cancelled.", svc, when)
	case domain.StatusNoShow:
		return "Missed appointment", fmt.Sprintf("You missed your %s appointment on %s.", svc, when)
	default:
		return "Booking update", fmt.Sprintf("Your %s appointment on %s is now %s.", svc, when, next)
	}
}
