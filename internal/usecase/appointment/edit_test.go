package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/veloura/salon-scheduler/internal/domain/appointment"
	"github.com/veloura/salon-scheduler/internal/httperr"
	"github.com/veloura/salon-scheduler/internal/models"
)

func editFixture(t *testing.T) (*fakeRepo, *EditAppointment, *models.Appointment) {
	t.Helper()

	repo := newFakeRepo()
	repo.users[1] = &models.User{ID: 1, FullName: "Maya Lopez", Role: models.RoleClient, Active: true}
	repo.services[3] = &models.Service{ID: 3, Name: "Deep Tissue Massage", DurationMin: 60, Price: 150, Active: true}
	repo.services[4] = &models.Service{ID: 4, Name: "Hot Stone Massage", DurationMin: 90, Price: 210, Active: true}

	ap := &models.Appointment{
		ClientID:  1,
		ServiceID: 3,
		Date:      futureDate(),
		Time:      "10:00",
		Price:     150,
		Status:    string(domain.StatusPending),
	}
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))

	uc := NewEditAppointment(repo, &fakeNotifier{}, &fakeAuditor{}, &fakePublisher{}, time.UTC)
	return repo, uc, ap
}

func TestEditAppointment_PartialUpdateKeepsOmittedFields(t *testing.T) {
	_, uc, ap := editFixture(t)

	// Only the time moves; service and date stay as stored.
	got, err := uc.Execute(context.Background(), EditAppointmentInput{
		ClientID:      1,
		AppointmentID: ap.ID,
		Time:          "11:00",
	})
	require.NoError(t, err)

	assert.Equal(t, ap.ServiceID, got.ServiceID)
	assert.Equal(t, ap.Date, got.Date)
	assert.Equal(t, "11:00", got.Time)
}

func TestEditAppointment_ServiceChangeKeepsPriceSnapshot(t *testing.T) {
	_, uc, ap := editFixture(t)

	got, err := uc.Execute(context.Background(), EditAppointmentInput{
		ClientID:      1,
		AppointmentID: ap.ID,
		ServiceID:     4,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(4), got.ServiceID)
	assert.Equal(t, 150.0, got.Price, "price stays the booking-time snapshot")
}

func TestEditAppointment_GlobalSlotConflict(t *testing.T) {
	repo, uc, ap := editFixture(t)

	// Another client's booking for a different service at the target slot.
	other := &models.Appointment{
		ClientID:  2,
		ServiceID: 4,
		Date:      futureDate(),
		Time:      "16:00",
		Status:    string(domain.StatusPending),
	}
	require.NoError(t, repo.CreateAppointment(context.Background(), other))

	_, err := uc.Execute(context.Background(), EditAppointmentInput{
		ClientID:      1,
		AppointmentID: ap.ID,
		Time:          "16:00",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))
}

func TestEditAppointment_KeepingOwnSlotIsNotAConflict(t *testing.T) {
	_, uc, ap := editFixture(t)

	// Changing only the service leaves the slot alone; the booking must
	// not conflict with itself.
	got, err := uc.Execute(context.Background(), EditAppointmentInput{
		ClientID:      1,
		AppointmentID: ap.ID,
		ServiceID:     4,
	})
	require.NoError(t, err)
	assert.Equal(t, ap.Time, got.Time)
}

func TestEditAppointment_OwnershipScoped(t *testing.T) {
	_, uc, ap := editFixture(t)

	_, err := uc.Execute(context.Background(), EditAppointmentInput{
		ClientID:      2,
		AppointmentID: ap.ID,
		Time:          "11:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound),
		"foreign appointment must read as not found")
}

func TestEditAppointment_CompletedIsImmutable(t *testing.T) {
	repo, uc, ap := editFixture(t)
	repo.appointments[ap.ID].Status = string(domain.StatusCompleted)

	_, err := uc.Execute(context.Background(), EditAppointmentInput{
		ClientID:      1,
		AppointmentID: ap.ID,
		Time:          "11:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentImmutable))
}

func TestEditAppointment_PastDateRejected(t *testing.T) {
	_, uc, ap := editFixture(t)
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format(domain.DateLayout)

	_, err := uc.Execute(context.Background(), EditAppointmentInput{
		ClientID:      1,
		AppointmentID: ap.ID,
		Date:          yesterday,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodePastDate))
}

func TestEditAppointment_UnknownServiceRejected(t *testing.T) {
	_, uc, ap := editFixture(t)

	_, err := uc.Execute(context.Background(), EditAppointmentInput{
		ClientID:      1,
		AppointmentID: ap.ID,
		ServiceID:     99,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))
}
