package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Business error codes shared by the scheduling use cases. Handlers map
// them onto HTTP statuses with WriteBusiness.
const (
	CodeInvalidDateOrTime = "invalid_date_or_time"
	CodePastDate          = "past_date"
	CodeSlotTaken         = "slot_taken"
	CodeStaffSlotTaken    = "staff_slot_taken"
	CodeSlotMismatch      = "slot_mismatch"

	CodeAppointmentNotFound = "appointment_not_found"
	CodeServiceNotFound     = "service_not_found"
	CodeStaffNotFound       = "staff_not_found"

	CodeAppointmentImmutable   = "appointment_immutable"
	CodeInvalidStatus          = "invalid_status"
	CodeInvalidStatusChange    = "invalid_status_transition"
	CodeAppointmentNotAssigned = "appointment_not_assigned"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

var businessMessages = map[string]string{
	CodeInvalidDateOrTime:      "Invalid date or time.",
	CodePastDate:               "Date must not be in the past.",
	CodeSlotTaken:              "Time slot already booked.",
	CodeStaffSlotTaken:         "Staff member already booked for this slot.",
	CodeSlotMismatch:           "Appointment date or time changed, reload and retry.",
	CodeAppointmentNotFound:    "Appointment not found.",
	CodeServiceNotFound:        "Service not found.",
	CodeStaffNotFound:          "Staff member not found.",
	CodeAppointmentImmutable:   "Completed appointments cannot be changed.",
	CodeInvalidStatus:          "Unknown appointment status.",
	CodeInvalidStatusChange:    "Status change not allowed.",
	CodeAppointmentNotAssigned: "Appointment is not assigned to you.",
}

// WriteBusiness maps a business error to its HTTP status. Returns false
// when err carries no business code so callers can fall back to a 500.
func WriteBusiness(c *gin.Context, err error) bool {
	code, ok := BusinessCode(err)
	if !ok {
		return false
	}

	msg := businessMessages[code]
	if msg == "" {
		msg = "Request failed."
	}

	switch code {
	case CodeSlotTaken, CodeStaffSlotTaken:
		Conflict(c, code, msg)
	case CodeAppointmentNotFound, CodeServiceNotFound, CodeStaffNotFound:
		NotFound(c, code, msg)
	case CodeAppointmentNotAssigned:
		Forbidden(c, code, msg)
	default:
		BadRequest(c, code, msg)
	}
	return true
}
