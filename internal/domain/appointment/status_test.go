package appointment

import (
	"testing"

	"github.com/veloura/salon-scheduler/internal/httperr"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to no_show", StatusPending, StatusNoShow, true},
		{"pending skips to in_progress", StatusPending, StatusInProgress, false},
		{"pending skips to completed", StatusPending, StatusCompleted, false},

		{"confirmed to in_progress", StatusConfirmed, StatusInProgress, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed back to pending", StatusConfirmed, StatusPending, false},
		{"confirmed skips to completed", StatusConfirmed, StatusCompleted, false},

		{"in_progress to completed", StatusInProgress, StatusCompleted, true},
		{"in_progress to no_show", StatusInProgress, StatusNoShow, true},
		{"in_progress back to confirmed", StatusInProgress, StatusConfirmed, false},

		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"no_show is terminal", StatusNoShow, StatusConfirmed, false},

		{"same status is not a transition", StatusConfirmed, StatusConfirmed, false},
		{"unknown status has no exits", Status("archived"), StatusConfirmed, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []Status{StatusCompleted, StatusCancelled, StatusNoShow}
	for _, s := range terminal {
		if !IsTerminal(s) {
			t.Errorf("expected %s to be terminal", s)
		}
	}

	open := []Status{StatusPending, StatusConfirmed, StatusInProgress}
	for _, s := range open {
		if IsTerminal(s) {
			t.Errorf("expected %s not to be terminal", s)
		}
	}

	if IsTerminal(Status("archived")) {
		t.Error("unknown status must not read as terminal")
	}
}

func TestInitialStatus(t *testing.T) {
	if got := InitialStatus(); got != StatusPending {
		t.Errorf("InitialStatus() = %s, want %s", got, StatusPending)
	}
}

func TestCanModify(t *testing.T) {
	if err := CanModify(StatusPending); err != nil {
		t.Errorf("pending should be modifiable, got %v", err)
	}
	if err := CanModify(StatusConfirmed); err != nil {
		t.Errorf("confirmed should be modifiable, got %v", err)
	}

	err := CanModify(StatusCompleted)
	if !httperr.IsBusiness(err, httperr.CodeAppointmentImmutable) {
		t.Errorf("completed should be immutable, got %v", err)
	}
}
