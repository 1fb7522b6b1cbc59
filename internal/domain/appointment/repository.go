package appointment

import (
	"context"

	"github.com/veloura/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Users --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetActiveUserWithRole(
		ctx context.Context,
		id uint,
		role string,
	) (*models.User, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Appointment (write / conflict) --------
	//
	// The conflict check and the write run in one transaction; a taken
	// slot surfaces as a business error with the matching code.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	RescheduleAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssignStaff(
		ctx context.Context,
		ap *models.Appointment,
		staffID uint,
	) error

	// -------- Appointment (read) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	GetAppointmentForClient(
		ctx context.Context,
		appointmentID uint,
		clientID uint,
	) (*models.Appointment, error)

	// -------- Appointment (state change / delete) --------
	UpdateStatus(
		ctx context.Context,
		appointmentID uint,
		from Status,
		to Status,
	) (int64, error)

	DeleteAppointment(
		ctx context.Context,
		appointmentID uint,
		clientID *uint,
	) (int64, error)

	// -------- Availability / listing --------
	GetWorkingHours(
		ctx context.Context,
		staffID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListBookedTimes(
		ctx context.Context,
		staffID uint,
		serviceID uint,
		date string,
	) ([]string, error)

	ListForClient(
		ctx context.Context,
		clientID uint,
		page int,
	) ([]models.Appointment, int64, error)

	ListForStaffByDate(
		ctx context.Context,
		staffID uint,
		date string,
	) ([]models.Appointment, error)

	ListAll(
		ctx context.Context,
		page int,
	) ([]models.Appointment, int64, error)
}
