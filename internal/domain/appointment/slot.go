package appointment

import (
	"time"

	"github.com/veloura/salon-scheduler/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Slot identifies a bookable instant. Conflicts are equality matches on
// the pair, scoped per service before assignment and per staff after.
type Slot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// ParseSlot validates a slot and resolves it to an instant in the
// salon's timezone.
func ParseSlot(s Slot, loc *time.Location) (time.Time, error) {
	start, err := time.ParseInLocation(DateLayout+" "+TimeLayout, s.Date+" "+s.Time, loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}
	return start, nil
}

// ValidateDate rejects calendar dates strictly before today. The clock
// time within today is not checked, matching the booking rules.
func ValidateDate(date string, now time.Time) error {
	day, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return httperr.ErrBusiness(httperr.CodePastDate)
	}
	return nil
}

type AvailabilityInput struct {
	StaffID   uint
	ServiceID uint
	Date      string
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
