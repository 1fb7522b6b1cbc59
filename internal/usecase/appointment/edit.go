package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/veloura/salon-scheduler/internal/audit"
	domain "github.com/veloura/salon-scheduler/internal/domain/appointment"
	"github.com/veloura/salon-scheduler/internal/events"
	"github.com/veloura/salon-scheduler/internal/httperr"
	"github.com/veloura/salon-scheduler/internal/metrics"
	"github.com/veloura/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// Zero-valued fields keep the stored value.
type EditAppointmentInput struct {
	ClientID      uint
	AppointmentID uint

	ServiceID uint
	Date      string
	Time      string
}

// ======================================================
// USE CASE
// ======================================================

type EditAppointment struct {
	repo     domain.Repository
	notifier Notifier
	audit    Auditor
	events   EventPublisher
	loc      *time.Location
}

func NewEditAppointment(
	repo domain.Repository,
	notifier Notifier,
	auditor Auditor,
	publisher EventPublisher,
	loc *time.Location,
) *EditAppointment {
	return &EditAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    auditor,
		events:   publisher,
		loc:      loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *EditAppointment) Execute(
	ctx context.Context,
	in EditAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForClient(ctx, in.AppointmentID, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	oldDate, oldTime := ap.Date, ap.Time
	oldServiceID := ap.ServiceID

	// Read-modify-write merge; completed bookings refuse any change.
	if err := domain.Reschedule(ap, in.ServiceID, in.Date, in.Time); err != nil {
		return nil, err
	}

	// A changed service must resolve; the stored price stays the
	// booking-time snapshot either way.
	if ap.ServiceID != oldServiceID {
		if _, err := uc.repo.GetService(ctx, ap.ServiceID); err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
	}

	if _, err := domain.ParseSlot(domain.Slot{Date: ap.Date, Time: ap.Time}, uc.loc); err != nil {
		return nil, err
	}

	now := time.Now().In(uc.loc)
	if err := domain.ValidateDate(ap.Date, now); err != nil {
		return nil, err
	}

	// Global slot conflict, excluding this appointment.
	if err := uc.repo.RescheduleAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotTaken) {
			metrics.BookingConflicts.Inc()
		}
		return nil, err
	}

	detail := fmt.Sprintf("moved from %s %s to %s %s", oldDate, oldTime, ap.Date, ap.Time)
	uc.notifier.Notify(in.ClientID, "Booking updated", fmt.Sprintf("Your appointment was %s.", detail))
	uc.notifier.NotifyAdmins("Booking updated", fmt.Sprintf("Appointment #%d %s.", ap.ID, detail))

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Role:     models.RoleClient,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"old_date": oldDate, "old_time": oldTime,
			"new_date": ap.Date, "new_time": ap.Time,
		},
	})

	uc.events.Publish(events.Event{
		Type:          events.AppointmentUpdated,
		AppointmentID: ap.ID,
		Payload: map[string]any{
			"date": ap.Date,
			"time": ap.Time,
		},
	})

	return ap, nil
}
