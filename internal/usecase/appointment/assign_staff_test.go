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

func assignFixture(t *testing.T) (*fakeRepo, *fakeNotifier, *AssignStaff, *models.Appointment) {
	t.Helper()

	repo := newFakeRepo()
	repo.users[5] = &models.User{ID: 5, FullName: "Iris Chen", Role: models.RoleStaff, Active: true}
	repo.users[6] = &models.User{ID: 6, FullName: "Lena Park", Role: models.RoleStaff, Active: true}
	repo.services[3] = &models.Service{ID: 3, Name: "Deep Tissue Massage", Active: true}

	ap := &models.Appointment{
		ClientID:  1,
		ServiceID: 3,
		Date:      futureDate(),
		Time:      "10:00",
		Status:    string(domain.StatusPending),
	}
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))

	notifier := &fakeNotifier{}
	uc := NewAssignStaff(repo, notifier, &fakeAuditor{}, &fakePublisher{})
	return repo, notifier, uc, ap
}

func TestAssignStaff_HappyPath(t *testing.T) {
	repo, notifier, uc, ap := assignFixture(t)

	got, err := uc.Execute(context.Background(), AssignStaffInput{
		AdminID:       9,
		AppointmentID: ap.ID,
		StaffID:       5,
		Date:          ap.Date,
		Time:          ap.Time,
	})
	require.NoError(t, err)

	require.NotNil(t, got.StaffID)
	assert.Equal(t, uint(5), *got.StaffID)
	assert.Equal(t, uint(5), *repo.appointments[ap.ID].StaffID)

	// The staff member gets the assignment note.
	assert.Len(t, notifier.forUser(5), 1)
}

func TestAssignStaff_StaffDoubleBooking(t *testing.T) {
	repo, _, uc, ap := assignFixture(t)

	// The staff member already holds this exact slot on another booking.
	staffID := uint(5)
	repo.appointments[99] = &models.Appointment{
		ID:        99,
		ClientID:  2,
		ServiceID: 3,
		StaffID:   &staffID,
		Date:      ap.Date,
		Time:      ap.Time,
		Status:    string(domain.StatusConfirmed),
	}

	_, err := uc.Execute(context.Background(), AssignStaffInput{
		AdminID:       9,
		AppointmentID: ap.ID,
		StaffID:       staffID,
		Date:          ap.Date,
		Time:          ap.Time,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeStaffSlotTaken))
}

func TestAssignStaff_Reassignment(t *testing.T) {
	repo, _, uc, ap := assignFixture(t)

	_, err := uc.Execute(context.Background(), AssignStaffInput{
		AdminID: 9, AppointmentID: ap.ID, StaffID: 5, Date: ap.Date, Time: ap.Time,
	})
	require.NoError(t, err)

	// Reassigning the same booking to someone else must not trip over
	// the booking's own slot.
	got, err := uc.Execute(context.Background(), AssignStaffInput{
		AdminID: 9, AppointmentID: ap.ID, StaffID: 6, Date: ap.Date, Time: ap.Time,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(6), *got.StaffID)
	assert.Equal(t, uint(6), *repo.appointments[ap.ID].StaffID)
}

func TestAssignStaff_SlotMismatch(t *testing.T) {
	_, _, uc, ap := assignFixture(t)

	_, err := uc.Execute(context.Background(), AssignStaffInput{
		AdminID:       9,
		AppointmentID: ap.ID,
		StaffID:       5,
		Date:          ap.Date,
		Time:          "23:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotMismatch),
		"stale form data must be rejected, not silently applied")
}

func TestAssignStaff_UnknownOrInactiveStaff(t *testing.T) {
	repo, _, uc, ap := assignFixture(t)

	_, err := uc.Execute(context.Background(), AssignStaffInput{
		AdminID: 9, AppointmentID: ap.ID, StaffID: 77, Date: ap.Date, Time: ap.Time,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeStaffNotFound))

	repo.users[5].Active = false
	_, err = uc.Execute(context.Background(), AssignStaffInput{
		AdminID: 9, AppointmentID: ap.ID, StaffID: 5, Date: ap.Date, Time: ap.Time,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeStaffNotFound))
}

func TestAssignStaff_ClientIsNotStaff(t *testing.T) {
	repo, _, uc, ap := assignFixture(t)
	repo.users[2] = &models.User{ID: 2, Role: models.RoleClient, Active: true}

	_, err := uc.Execute(context.Background(), AssignStaffInput{
		AdminID: 9, AppointmentID: ap.ID, StaffID: 2, Date: ap.Date, Time: ap.Time,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeStaffNotFound))
}

func TestAssignStaff_CompletedLooksDeleted(t *testing.T) {
	repo, _, uc, ap := assignFixture(t)
	repo.appointments[ap.ID].Status = string(domain.StatusCompleted)

	_, err := uc.Execute(context.Background(), AssignStaffInput{
		AdminID: 9, AppointmentID: ap.ID, StaffID: 5, Date: ap.Date, Time: ap.Time,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
}
