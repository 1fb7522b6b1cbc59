package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/veloura/salon-scheduler/internal/domain/appointment"
	"github.com/veloura/salon-scheduler/internal/httperr"
	"github.com/veloura/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AppointmentGormRepository) GetActiveUserWithRole(
	ctx context.Context,
	id uint,
	role string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ? AND active = true", id, role).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", serviceID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Appointment (write / conflict)
// --------------------------------------------------

// CreateAppointment inserts a new booking after a service-scoped slot
// check. Check and insert share a transaction with row locks, and the
// unique index catches whatever slips past it.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"service_id = ? AND date = ? AND time = ?",
				ap.ServiceID, ap.Date, ap.Time,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		if err := tx.Create(ap).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness(httperr.CodeSlotTaken)
			}
			return err
		}
		return nil
	})
}

// RescheduleAppointment saves an edited booking. The slot check here is
// global across all appointments, excluding the one being edited.
func (r *AppointmentGormRepository) RescheduleAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"date = ? AND time = ? AND id <> ?",
				ap.Date, ap.Time, ap.ID,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		// Omit associations: ap may carry a preloaded Service, and the
		// save-before-associations callback would write its stale ID
		// back over an edited ServiceID.
		if err := tx.Omit(clause.Associations).Save(ap).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness(httperr.CodeSlotTaken)
			}
			return err
		}
		return nil
	})
}

// AssignStaff sets the staff member, rejecting when that staff already
// holds any other appointment at the same slot.
func (r *AppointmentGormRepository) AssignStaff(
	ctx context.Context,
	ap *models.Appointment,
	staffID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"staff_id = ? AND date = ? AND time = ? AND id <> ?",
				staffID, ap.Date, ap.Time, ap.ID,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeStaffSlotTaken)
		}

		if err := tx.
			Model(&models.Appointment{}).
			Where("id = ?", ap.ID).
			Update("staff_id", staffID).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness(httperr.CodeStaffSlotTaken)
			}
			return err
		}

		ap.StaffID = &staffID
		return nil
	})
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentForClient(
	ctx context.Context,
	appointmentID uint,
	clientID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("id = ? AND client_id = ?", appointmentID, clientID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Appointment (state change / delete)
// --------------------------------------------------

// UpdateStatus flips the status only when the stored value still matches
// the caller's view. Zero rows means the appointment vanished or moved.
func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	appointmentID uint,
	from domain.Status,
	to domain.Status,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", appointmentID, string(from)).
		Update("status", string(to))

	return res.RowsAffected, res.Error
}

// DeleteAppointment hard-deletes a booking. Completed rows never match,
// so cancelling a completed appointment reports zero rows.
func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	appointmentID uint,
	clientID *uint,
) (int64, error) {

	q := r.db.WithContext(ctx).
		Where("id = ? AND status <> ?", appointmentID, string(domain.StatusCompleted))

	if clientID != nil {
		q = q.Where("client_id = ?", *clientID)
	}

	res := q.Delete(&models.Appointment{})
	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Availability / listing
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	staffID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("staff_id = ? AND weekday = ?", staffID, weekday).
		First(&wh).Error; err != nil {
		return nil, err
	}
	return &wh, nil
}

// ListBookedTimes returns times on a date taken either by the staff
// member or by the service slot itself (unassigned bookings included).
func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	staffID uint,
	serviceID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"date = ? AND (staff_id = ? OR service_id = ?)",
			date, staffID, serviceID,
		).
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

func (r *AppointmentGormRepository) ListForClient(
	ctx context.Context,
	clientID uint,
	page int,
) ([]models.Appointment, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("client_id = ?", clientID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.Appointment
	if err := q.
		Preload("Service").
		Preload("Staff").
		Order("date DESC, time DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&apps).Error; err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *AppointmentGormRepository) ListForStaffByDate(
	ctx context.Context,
	staffID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("staff_id = ? AND date = ?", staffID, date).
		Order("time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAll(
	ctx context.Context,
	page int,
) ([]models.Appointment, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.Appointment
	if err := q.
		Preload("Client").
		Preload("Service").
		Preload("Staff").
		Order("date DESC, time DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&apps).Error; err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

const pageSize = 10

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
