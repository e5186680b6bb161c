package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// loadProfessional returns an active professional with its barbershop,
// schedule and services, plus the barbershop's location.
func loadProfessional(
	ctx context.Context,
	repo domain.Repository,
	id uint,
) (*models.Professional, *time.Location, error) {

	pro, err := repo.GetProfessional(ctx, id)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, nil, domain.ErrProfessionalNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load professional %d: %w", id, err)
	}
	if !pro.Active {
		return nil, nil, domain.ErrProfessionalNotFound
	}

	tz := ""
	if pro.Barbershop != nil {
		tz = pro.Barbershop.Timezone
	}
	return pro, timezone.Location(tz), nil
}

func loadBarbershopBySlug(
	ctx context.Context,
	repo domain.Repository,
	slug string,
) (*models.Barbershop, error) {

	shop, err := repo.GetBarbershopBySlug(ctx, slug)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, domain.ErrBarbershopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load barbershop %q: %w", slug, err)
	}
	return shop, nil
}

func parseDay(date string, loc *time.Location) (time.Time, error) {
	day, err := timezone.ParseDate(date, loc)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return day, nil
}

// dayBounds is [local midnight, next local midnight) of day.
func dayBounds(day time.Time) (time.Time, time.Time) {
	from := timezone.StartOfDay(day, day.Location())
	return from, from.AddDate(0, 0, 1)
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// loadServices resolves ids into active services the professional offers.
// Any missing, inactive or not offered id is ErrServiceNotFound.
func loadServices(
	ctx context.Context,
	repo domain.Repository,
	pro *models.Professional,
	ids []uint,
) ([]models.Service, error) {

	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	services, err := repo.GetServices(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}
	if len(services) != len(ids) {
		return nil, domain.ErrServiceNotFound
	}

	offered := make(map[uint]struct{}, len(pro.Services))
	for _, s := range pro.Services {
		offered[s.ID] = struct{}{}
	}

	for _, s := range services {
		if !s.Active || s.BarbershopID != pro.BarbershopID {
			return nil, domain.ErrServiceNotFound
		}
		if _, ok := offered[s.ID]; !ok {
			return nil, domain.ErrServiceNotFound
		}
	}
	return services, nil
}

// dayStatus resolves the slots of day for pro and marks them against the
// day's active bookings and now.
func dayStatus(
	ctx context.Context,
	repo domain.Repository,
	pro *models.Professional,
	day time.Time,
	now time.Time,
) ([]domain.Slot, error) {

	slots, err := domain.ResolveSlots(pro.WorkingHours, day)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return []domain.Slot{}, nil
	}

	from, to := dayBounds(day)
	existing, err := repo.ListActiveBookingsForDay(ctx, pro.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return domain.StatusOf(slots, existing, day, now), nil
}
