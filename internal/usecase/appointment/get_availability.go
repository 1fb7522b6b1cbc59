package appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/veloura/salon-scheduler/internal/cache"
	domain "github.com/veloura/salon-scheduler/internal/domain/appointment"
	"github.com/veloura/salon-scheduler/internal/httperr"
)

const availabilityTTL = 30 * time.Second

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.Cache
	loc   *time.Location
}

func NewGetAvailability(
	repo domain.Repository,
	c *cache.Cache,
	loc *time.Location,
) *GetAvailability {
	return &GetAvailability{repo: repo, cache: c, loc: loc}
}

// Execute lists the free slots for a staff member, service and date.
// Results are cached briefly; the booking path re-checks conflicts
// transactionally, so a stale read can never double-book.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	key := fmt.Sprintf("availability:%d:%d:%s", in.StaffID, in.ServiceID, in.Date)
	if raw, ok := uc.cache.Get(ctx, key); ok {
		var cached []domain.TimeSlot
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	day, err := time.ParseInLocation(domain.DateLayout, in.Date, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	wh, err := uc.repo.GetWorkingHours(ctx, in.StaffID, int(day.Weekday()))
	if err != nil {
		return []domain.TimeSlot{}, nil
	}

	candidates := domain.DaySlots(wh, day, svc.DurationMin)
	if len(candidates) == 0 {
		return []domain.TimeSlot{}, nil
	}

	booked, err := uc.repo.ListBookedTimes(ctx, in.StaffID, svc.ID, in.Date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	slots := make([]domain.TimeSlot, 0, len(candidates))
	for _, s := range candidates {
		if _, ok := taken[s.Start]; ok {
			continue
		}
		slots = append(slots, s)
	}

	if raw, err := json.Marshal(slots); err == nil {
		uc.cache.Set(ctx, key, string(raw), availabilityTTL)
	}

	return slots, nil
}
