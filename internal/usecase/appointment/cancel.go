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

type CancelAppointment struct {
	repo     domain.Repository
	notifier Notifier
	audit    Auditor
	events   EventPublisher
}

func NewCancelAppointment(
	repo domain.Repository,
	notifier Notifier,
	auditor Auditor,
	publisher EventPublisher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    auditor,
		events:   publisher,
	}
}

// Execute hard-deletes a client's booking. Completed bookings never
// match the delete, so the affected-row count is the real gate here,
// not the earlier read.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	clientID uint,
	appointmentID uint,
) error {

	// Fetched first so the notification can still name the service
	// after the row is gone.
	ap, err := uc.repo.GetAppointmentForClient(ctx, appointmentID, clientID)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	rows, err := uc.repo.DeleteAppointment(ctx, appointmentID, &clientID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	// Client only; admins are not told about cancellations.
	uc.notifier.Notify(
		clientID,
		"Booking cancelled",
		fmt.Sprintf("Your %s appointment on %s at %s was cancelled.", ap.Service.Name, ap.Date, ap.Time),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Role:     models.RoleClient,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	uc.events.Publish(events.Event{
		Type:          events.AppointmentCancelled,
		AppointmentID: appointmentID,
		Payload: map[string]any{
			"date": ap.Date,
			"time": ap.Time,
		},
	})

	return nil
}

// ExecuteAdmin removes any client's booking with the same completed
// guard but no ownership check. The client is told who acted.
func (uc *CancelAppointment) ExecuteAdmin(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	if err := domain.CanModify(domain.Status(ap.Status)); err != nil {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	rows, err := uc.repo.DeleteAppointment(ctx, appointmentID, nil)
	if err != nil {
		return err
	}
	if rows == 0 {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	uc.notifier.Notify(
		ap.ClientID,
		"Booking cancelled",
		fmt.Sprintf("Your %s appointment on %s at %s was cancelled by the salon.", ap.Service.Name, ap.Date, ap.Time),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Role:     models.RoleAdmin,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	uc.events.Publish(events.Event{
		Type:          events.AppointmentCancelled,
		AppointmentID: appointmentID,
	})

	return nil
}
