package appointment

import (
	"testing"
	"time"

	"github.com/veloura/salon-scheduler/internal/models"
)

func slotStarts(slots []TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start)
	}
	return out
}

func TestDaySlots_StepsByDuration(t *testing.T) {
	wh := &models.WorkingHours{
		StartTime: "09:00",
		EndTime:   "12:00",
		Active:    true,
	}
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	got := slotStarts(DaySlots(wh, day, 60))
	want := []string{"09:00", "10:00", "11:00"}

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDaySlots_SkipsBreakWindow(t *testing.T) {
	wh := &models.WorkingHours{
		StartTime:  "09:00",
		EndTime:    "14:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
		Active:     true,
	}
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	got := slotStarts(DaySlots(wh, day, 30))
	for _, start := range got {
		if start >= "12:00" && start < "13:00" {
			t.Errorf("slot %s overlaps the break", start)
		}
	}
	if len(got) == 0 {
		t.Fatal("expected slots outside the break")
	}
}

func TestDaySlots_SlotMustFitBeforeClose(t *testing.T) {
	wh := &models.WorkingHours{
		StartTime: "09:00",
		EndTime:   "10:30",
		Active:    true,
	}
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	// A 60 minute service only fits once before the 10:30 close.
	got := slotStarts(DaySlots(wh, day, 60))
	if len(got) != 1 || got[0] != "09:00" {
		t.Errorf("got %v, want [09:00]", got)
	}
}

func TestDaySlots_InactiveOrInvalid(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	inactive := &models.WorkingHours{StartTime: "09:00", EndTime: "17:00", Active: false}
	if got := DaySlots(inactive, day, 30); got != nil {
		t.Errorf("inactive day must yield no slots, got %v", got)
	}

	if got := DaySlots(nil, day, 30); got != nil {
		t.Errorf("nil template must yield no slots, got %v", got)
	}

	active := &models.WorkingHours{StartTime: "09:00", EndTime: "17:00", Active: true}
	if got := DaySlots(active, day, 0); got != nil {
		t.Errorf("zero duration must yield no slots, got %v", got)
	}
}
