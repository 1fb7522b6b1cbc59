package appointment

import (
	"testing"
	"time"

	"github.com/veloura/salon-scheduler/internal/httperr"
)

func mustLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestParseSlot(t *testing.T) {
	loc := mustLocation(t)

	start, err := ParseSlot(Slot{Date: "2026-09-15", Time: "14:30"}, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Hour() != 14 || start.Minute() != 30 {
		t.Errorf("wrong clock time: %v", start)
	}
	if start.Location() != loc {
		t.Errorf("slot not resolved in the salon timezone")
	}

	bad := []Slot{
		{Date: "15-09-2026", Time: "14:30"},
		{Date: "2026-09-15", Time: "2pm"},
		{Date: "2026-13-40", Time: "14:30"},
		{Date: "", Time: "14:30"},
		{Date: "2026-09-15", Time: ""},
	}
	for _, s := range bad {
		_, err := ParseSlot(s, loc)
		if !httperr.IsBusiness(err, httperr.CodeInvalidDateOrTime) {
			t.Errorf("ParseSlot(%q, %q): expected invalid_date_or_time, got %v", s.Date, s.Time, err)
		}
	}
}

func TestValidateDate(t *testing.T) {
	loc := mustLocation(t)
	now := time.Date(2026, 9, 15, 18, 0, 0, 0, loc)

	if err := ValidateDate("2026-09-15", now); err != nil {
		t.Errorf("today must be bookable even late in the day, got %v", err)
	}
	if err := ValidateDate("2026-09-16", now); err != nil {
		t.Errorf("tomorrow must be bookable, got %v", err)
	}

	err := ValidateDate("2026-09-14", now)
	if !httperr.IsBusiness(err, httperr.CodePastDate) {
		t.Errorf("yesterday must be rejected as past_date, got %v", err)
	}

	err = ValidateDate("not-a-date", now)
	if !httperr.IsBusiness(err, httperr.CodeInvalidDateOrTime) {
		t.Errorf("garbage date must be rejected, got %v", err)
	}
}
