package appointment

import (
	"time"

	"github.com/veloura/salon-scheduler/internal/models"
)

// DaySlots generates the candidate slot starts for one working day,
// stepping by the service duration and skipping the break window.
// Already-booked times are filtered by the caller.
func DaySlots(wh *models.WorkingHours, day time.Time, durationMin int) []TimeSlot {
	if wh == nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" || durationMin <= 0 {
		return nil
	}

	loc := day.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse(TimeLayout, hm)
		return time.Date(
			day.Year(), day.Month(), day.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	dayStart := parseHM(wh.StartTime)
	dayEnd := parseHM(wh.EndTime)

	hasBreak := wh.BreakStart != "" && wh.BreakEnd != ""
	var breakStart, breakEnd time.Time
	if hasBreak {
		breakStart = parseHM(wh.BreakStart)
		breakEnd = parseHM(wh.BreakEnd)
	}

	step := time.Duration(durationMin) * time.Minute
	var slots []TimeSlot

	for cur := dayStart; !cur.Add(step).After(dayEnd); cur = cur.Add(step) {
		slotStart := cur
		slotEnd := cur.Add(step)

		if hasBreak && slotStart.Before(breakEnd) && slotEnd.After(breakStart) {
			continue
		}

		slots = append(slots, TimeSlot{
			Start: slotStart.Format(TimeLayout),
			End:   slotEnd.Format(TimeLayout),
		})
	}

	return slots
}
