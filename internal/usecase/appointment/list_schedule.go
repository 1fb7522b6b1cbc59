package appointment

import (
	"context"
	"time"

	domain "github.com/veloura/salon-scheduler/internal/domain/appointment"
	"github.com/veloura/salon-scheduler/internal/dto"
	"github.com/veloura/salon-scheduler/internal/httperr"
)

type ListStaffSchedule struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListStaffSchedule(
	repo domain.Repository,
	loc *time.Location,
) *ListStaffSchedule {
	return &ListStaffSchedule{repo: repo, loc: loc}
}

func (uc *ListStaffSchedule) Execute(
	ctx context.Context,
	staffID uint,
	date string,
) ([]dto.AppointmentListDTO, error) {

	if _, err := time.ParseInLocation(domain.DateLayout, date, uc.loc); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	appointments, err := uc.repo.ListForStaffByDate(ctx, staffID, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			BookingCode: ap.BookingCode,
			Date:        ap.Date,
			Time:        ap.Time,
			Status:      ap.Status,
			Price:       ap.Price,
			ClientName:  ap.Client.FullName,
			ServiceName: ap.Service.Name,
		})
	}

	return out, nil
}
