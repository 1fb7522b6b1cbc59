package appointment

import (
	"context"
	"errors"

	"github.com/veloura/salon-scheduler/internal/audit"
	domain "github.com/veloura/salon-scheduler/internal/domain/appointment"
	"github.com/veloura/salon-scheduler/internal/events"
	"github.com/veloura/salon-scheduler/internal/httperr"
	"github.com/veloura/salon-scheduler/internal/models"
)

// fakeRepo is an in-memory stand-in for the GORM repository. It keeps
// the same conflict semantics: equality on (date, time), scoped per
// service on create, globally on reschedule, per staff on assign.
type fakeRepo struct {
	users        map[uint]*models.User
	services     map[uint]*models.Service
	appointments map[uint]*models.Appointment
	workingHours map[int]*models.WorkingHours

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        map[uint]*models.User{},
		services:     map[uint]*models.Service{},
		appointments: map[uint]*models.Appointment{},
		workingHours: map[int]*models.WorkingHours{},
		nextID:       1,
	}
}

var errNotFound = errors.New("record not found")

func (f *fakeRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetActiveUserWithRole(_ context.Context, id uint, role string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok || !u.Active || u.Role != role {
		return nil, errNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	if s, ok := f.services[id]; ok && s.Active {
		return s, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	for _, other := range f.appointments {
		if other.ServiceID == ap.ServiceID && other.Date == ap.Date && other.Time == ap.Time {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
	}
	ap.ID = f.nextID
	f.nextID++
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) RescheduleAppointment(_ context.Context, ap *models.Appointment) error {
	for id, other := range f.appointments {
		if id != ap.ID && other.Date == ap.Date && other.Time == ap.Time {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
	}
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) AssignStaff(_ context.Context, ap *models.Appointment, staffID uint) error {
	for id, other := range f.appointments {
		if id == ap.ID || other.StaffID == nil {
			continue
		}
		if *other.StaffID == staffID && other.Date == ap.Date && other.Time == ap.Time {
			return httperr.ErrBusiness(httperr.CodeStaffSlotTaken)
		}
	}
	if stored, ok := f.appointments[ap.ID]; ok {
		stored.StaffID = &staffID
	}
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := f.appointments[id]; ok {
		cp := *ap
		return &cp, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetAppointmentForClient(_ context.Context, id, clientID uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok || ap.ClientID != clientID {
		return nil, errNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id uint, from, to domain.Status) (int64, error) {
	ap, ok := f.appointments[id]
	if !ok || ap.Status != string(from) {
		return 0, nil
	}
	ap.Status = string(to)
	return 1, nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, id uint, clientID *uint) (int64, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return 0, nil
	}
	if ap.Status == string(domain.StatusCompleted) {
		return 0, nil
	}
	if clientID != nil && ap.ClientID != *clientID {
		return 0, nil
	}
	delete(f.appointments, id)
	return 1, nil
}

func (f *fakeRepo) GetWorkingHours(_ context.Context, _ uint, weekday int) (*models.WorkingHours, error) {
	if wh, ok := f.workingHours[weekday]; ok {
		return wh, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListBookedTimes(_ context.Context, staffID, serviceID uint, date string) ([]string, error) {
	var out []string
	for _, ap := range f.appointments {
		if ap.Date != date {
			continue
		}
		if (ap.StaffID != nil && *ap.StaffID == staffID) || ap.ServiceID == serviceID {
			out = append(out, ap.Time)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListForClient(_ context.Context, clientID uint, _ int) ([]models.Appointment, int64, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) ListForStaffByDate(_ context.Context, staffID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.StaffID != nil && *ap.StaffID == staffID && ap.Date == date {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAll(_ context.Context, _ int) ([]models.Appointment, int64, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		out = append(out, *ap)
	}
	return out, int64(len(out)), nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// -------- Fan-out fakes --------

type sentNotification struct {
	userID    uint
	broadcast bool
	title     string
	body      string
}

type fakeNotifier struct {
	sent []sentNotification
}

func (f *fakeNotifier) Notify(userID uint, title, body string) {
	f.sent = append(f.sent, sentNotification{userID: userID, title: title, body: body})
}

func (f *fakeNotifier) NotifyAdmins(title, body string) {
	f.sent = append(f.sent, sentNotification{broadcast: true, title: title, body: body})
}

func (f *fakeNotifier) adminCount() int {
	n := 0
	for _, s := range f.sent {
		if s.broadcast {
			n++
		}
	}
	return n
}

func (f *fakeNotifier) forUser(userID uint) []sentNotification {
	var out []sentNotification
	for _, s := range f.sent {
		if !s.broadcast && s.userID == userID {
			out = append(out, s)
		}
	}
	return out
}

type fakeAuditor struct {
	events []audit.Event
}

func (f *fakeAuditor) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}

type fakePublisher struct {
	published []events.Event
}

func (f *fakePublisher) Publish(ev events.Event) {
	f.published = append(f.published, ev)
}
