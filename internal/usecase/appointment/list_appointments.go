package appointment

import (
	"context"

	domain "github.com/veloura/salon-scheduler/internal/domain/appointment"
	"github.com/veloura/salon-scheduler/internal/models"
)

// ListClientAppointments pages through a client's own bookings.
type ListClientAppointments struct {
	repo domain.Repository
}

func NewListClientAppointments(repo domain.Repository) *ListClientAppointments {
	return &ListClientAppointments{repo: repo}
}

func (uc *ListClientAppointments) Execute(
	ctx context.Context,
	clientID uint,
	page int,
) ([]models.Appointment, int64, error) {
	if page <= 0 {
		page = 1
	}
	return uc.repo.ListForClient(ctx, clientID, page)
}

// ListAllAppointments pages through every booking, for admins.
type ListAllAppointments struct {
	repo domain.Repository
}

func NewListAllAppointments(repo domain.Repository) *ListAllAppointments {
	return &ListAllAppointments{repo: repo}
}

func (uc *ListAllAppointments) Execute(
	ctx context.Context,
	page int,
) ([]models.Appointment, int64, error) {
	if page <= 0 {
		page = 1
	}
	return uc.repo.ListAll(ctx, page)
}
