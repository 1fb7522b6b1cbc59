package appointment

import "github.com/veloura/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// InitialStatus is the status every new booking starts in.
func InitialStatus() Status {
	return StatusPending
}

func Valid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// transitions is the forward-only graph: pending → confirmed →
// in_progress → completed, with cancelled/no_show reachable from any
// non-terminal status. Terminal statuses have no exits.
var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed:  {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCompleted:  {},
	StatusCancelled:  {},
	StatusNoShow:     {},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0 && Valid(s)
}

// ===============================
// Validations
// ===============================

// CanModify gates client edits and staff reassignment: once completed,
// an appointment is immutable.
func CanModify(current Status) error {
	if current == StatusCompleted {
		return httperr.ErrBusiness(httperr.CodeAppointmentImmutable)
	}
	return nil
}
