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

type AssignStaffInput struct {
	AdminID       uint
	AppointmentID uint
	StaffID       uint

	// The slot the admin believes they are assigning. Must still match
	// the stored appointment; stale forms get rejected instead of
	// silently assigning a moved booking.
	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type AssignStaff struct {
	repo     domain.Repository
	notifier Notifier
	audit    Auditor
	events   EventPublisher
}

func NewAssignStaff(
	repo domain.Repository,
	notifier Notifier,
	auditor Auditor,
	publisher EventPublisher,
) *AssignStaff {
	return &AssignStaff{
		repo:     repo,
		notifier: notifier,
		audit:    auditor,
		events:   publisher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AssignStaff) Execute(
	ctx context.Context,
	in AssignStaffInput,
) (*models.Appointment, error) {

	staff, err := uc.repo.GetActiveUserWithRole(ctx, in.StaffID, models.RoleStaff)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeStaffNotFound)
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	if ap.Date != in.Date || ap.Time != in.Time {
		return nil, httperr.ErrBusiness(httperr.CodeSlotMismatch)
	}

	// Completed bookings look deleted here; also sets StaffID.
	if err := domain.Assign(ap, staff.ID); err != nil {
		return nil, err
	}

	// Staff-scoped conflict check + write, one transaction.
	if err := uc.repo.AssignStaff(ctx, ap, staff.ID); err != nil {
		return nil, err
	}

	uc.notifier.Notify(
		staff.ID,
		"New assignment",
		fmt.Sprintf("You were assigned an appointment on %s at %s.", ap.Date, ap.Time),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.AdminID,
		Role:     models.RoleAdmin,
		Action:   "staff_assigned",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"staff_id": staff.ID},
	})

	uc.events.Publish(events.Event{
		Type:          events.AppointmentAssigned,
		AppointmentID: ap.ID,
		Payload: map[string]any{
			"staff_id": staff.ID,
			"date":     ap.Date,
			"time":     ap.Time,
		},
	})

	return ap, nil
}
