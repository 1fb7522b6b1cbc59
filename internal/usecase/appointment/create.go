package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

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

type CreateAppointmentInput struct {
	ClientID uint

	ServiceID uint
	Date      string
	Time      string

	Notes       string
	HealthNotes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	notifier Notifier
	audit    Auditor
	events   EventPublisher
	loc      *time.Location
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier Notifier,
	auditor Auditor,
	publisher EventPublisher,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
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

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Slot format + past-date rule
	// --------------------------------------------------
	if _, err := domain.ParseSlot(domain.Slot{Date: in.Date, Time: in.Time}, uc.loc); err != nil {
		return nil, err
	}

	now := time.Now().In(uc.loc)
	if err := domain.ValidateDate(in.Date, now); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Service (price snapshot source)
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	// --------------------------------------------------
	// 3. Client display name, best-effort
	// --------------------------------------------------
	clientName := "A client"
	if client, err := uc.repo.GetUser(ctx, in.ClientID); err == nil {
		clientName = client.FullName
	}

	// --------------------------------------------------
	// 4. Insert (service-scoped conflict inside the tx)
	// --------------------------------------------------
	ap := &models.Appointment{
		BookingCode: uuid.NewString(),
		ClientID:    in.ClientID,
		ServiceID:   svc.ID,
		Date:        in.Date,
		Time:        in.Time,
		Price:       svc.Price,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
		HealthNotes: in.HealthNotes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotTaken) {
			metrics.BookingConflicts.Inc()
		}
		return nil, err
	}

	metrics.BookingsCreated.Inc()

	// --------------------------------------------------
	// 5. Fan-out (never rolls back the booking)
	// --------------------------------------------------
	uc.notifier.Notify(
		in.ClientID,
		"Booking received",
		fmt.Sprintf("Your %s appointment on %s at %s is pending confirmation.", svc.Name, ap.Date, ap.Time),
	)
	uc.notifier.NotifyAdmins(
		"New booking",
		fmt.Sprintf("%s booked %s on %s at %s.", clientName, svc.Name, ap.Date, ap.Time),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Role:     models.RoleClient,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.events.Publish(events.Event{
		Type:          events.AppointmentCreated,
		AppointmentID: ap.ID,
		Payload: map[string]any{
			"service_id": svc.ID,
			"date":       ap.Date,
			"time":       ap.Time,
		},
	})

	return ap, nil
}
