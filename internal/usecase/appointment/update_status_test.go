package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/veloura/salon-scheduler/internal/domain/appointment"
	"github.com/veloura/salon-scheduler/internal/httperr"
	"github.com/veloura/salon-scheduler/internal/models"
)

func statusFixture(t *testing.T, staffID uint) (*fakeRepo, *fakeNotifier, *UpdateStatus, *models.Appointment) {
	t.Helper()

	repo := newFakeRepo()
	ap := &models.Appointment{
		ClientID:  1,
		ServiceID: 3,
		Service:   models.Service{ID: 3, Name: "Deep Tissue Massage"},
		StaffID:   &staffID,
		Date:      futureDate(),
		Time:      "10:00",
		Status:    string(domain.StatusPending),
	}
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))

	notifier := &fakeNotifier{}
	uc := NewUpdateStatus(repo, notifier, &fakeAuditor{}, &fakePublisher{})
	return repo, notifier, uc, ap
}

func TestUpdateStatus_FullLifecycle(t *testing.T) {
	repo, notifier, uc, ap := statusFixture(t, 5)

	for _, next := range []string{"confirmed", "in_progress", "completed"} {
		got, err := uc.Execute(context.Background(), UpdateStatusInput{
			ActorID:       5,
			Role:          models.RoleStaff,
			AppointmentID: ap.ID,
			NewStatus:     next,
		})
		require.NoError(t, err, "transition to %s", next)
		assert.Equal(t, next, got.Status)
	}

	assert.Equal(t, string(domain.StatusCompleted), repo.appointments[ap.ID].Status)
	// The client heard about every step.
	assert.Len(t, notifier.forUser(1), 3)
}

func TestUpdateStatus_SkippingStepsRejected(t *testing.T) {
	_, _, uc, ap := statusFixture(t, 5)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		ActorID: 5, Role: models.RoleStaff, AppointmentID: ap.ID, NewStatus: "completed",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidStatusChange))
}

func TestUpdateStatus_CompletedIsTerminal(t *testing.T) {
	repo, _, uc, ap := statusFixture(t, 5)
	repo.appointments[ap.ID].Status = string(domain.StatusCompleted)

	for _, next := range []string{"pending", "confirmed", "cancelled", "no_show"} {
		_, err := uc.Execute(context.Background(), UpdateStatusInput{
			ActorID: 5, Role: models.RoleStaff, AppointmentID: ap.ID, NewStatus: next,
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidStatusChange),
			"completed -> %s must be rejected", next)
	}
}

func TestUpdateStatus_NoShowFromConfirmed(t *testing.T) {
	repo, _, uc, ap := statusFixture(t, 5)
	repo.appointments[ap.ID].Status = string(domain.StatusConfirmed)

	got, err := uc.Execute(context.Background(), UpdateStatusInput{
		ActorID: 5, Role: models.RoleStaff, AppointmentID: ap.ID, NewStatus: "no_show",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusNoShow), got.Status)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	_, _, uc, ap := statusFixture(t, 5)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		ActorID: 5, Role: models.RoleStaff, AppointmentID: ap.ID, NewStatus: "archived",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidStatus))
}

func TestUpdateStatus_StaffScopedToOwnAppointments(t *testing.T) {
	_, _, uc, ap := statusFixture(t, 5)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		ActorID: 6, Role: models.RoleStaff, AppointmentID: ap.ID, NewStatus: "confirmed",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotAssigned))
}

func TestUpdateStatus_AdminMovesAnyAppointment(t *testing.T) {
	_, _, uc, ap := statusFixture(t, 5)

	got, err := uc.Execute(context.Background(), UpdateStatusInput{
		ActorID: 9, Role: models.RoleAdmin, AppointmentID: ap.ID, NewStatus: "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), got.Status)
}

func TestUpdateStatus_UnassignedAppointment(t *testing.T) {
	repo, _, uc, ap := statusFixture(t, 5)
	repo.appointments[ap.ID].StaffID = nil

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		ActorID: 5, Role: models.RoleStaff, AppointmentID: ap.ID, NewStatus: "confirmed",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotAssigned))
}
