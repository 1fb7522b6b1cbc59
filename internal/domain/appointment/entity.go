package appointment

import (
	"github.com/veloura/salon-scheduler/internal/httperr"
	"github.com/veloura/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyStatus moves an appointment along the transition graph.
func ApplyStatus(ap *models.Appointment, next Status) error {
	if !Valid(next) {
		return httperr.ErrBusiness(httperr.CodeInvalidStatus)
	}
	if !CanTransition(Status(ap.Status), next) {
		return httperr.ErrBusiness(httperr.CodeInvalidStatusChange)
	}

	ap.Status = string(next)
	return nil
}

// Reschedule applies a partial edit: zero-value fields keep the stored
// value (read-modify-write, never a blind overwrite).
func Reschedule(ap *models.Appointment, serviceID uint, date, tm string) error {
	if err := CanModify(Status(ap.Status)); err != nil {
		return err
	}

	if serviceID != 0 {
		ap.ServiceID = serviceID
	}
	if date != "" {
		ap.Date = date
	}
	if tm != "" {
		ap.Time = tm
	}
	return nil
}

// Assign sets the staff member after the caller has passed the
// staff-scoped conflict check.
func Assign(ap *models.Appointment, staffID uint) error {
	if Status(ap.Status) == StatusCompleted {
		// Completed bookings look deleted to the assignment path.
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	ap.StaffID = &staffID
	return nil
}
