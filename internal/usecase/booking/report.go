package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type ProfessionalRevenue struct {
	ProfessionalID uint
	Name           string
	Bookings       int
	Revenue        decimal.Decimal
}

type RevenueReport struct {
	repo domain.Repository
}

func NewRevenueReport(repo domain.Repository) *RevenueReport {
	return &RevenueReport{repo: repo}
}

// Execute sums, per professional, the active bookings starting between
// the civil days start and end (both inclusive) and their service prices.
func (uc *RevenueReport) Execute(
	ctx context.Context,
	barbershopID uint,
	start string,
	end string,
) ([]ProfessionalRevenue, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, domain.ErrBarbershopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load barbershop %d: %w", barbershopID, err)
	}

	loc := timezone.Location(shop.Timezone)

	from, err := parseDay(start, loc)
	if err != nil {
		return nil, err
	}
	last, err := parseDay(end, loc)
	if err != nil {
		return nil, err
	}
	if last.Before(from) {
		return nil, domain.ErrInvalidRange
	}

	pros, err := uc.repo.ListProfessionals(ctx, shop.ID)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListBookings(ctx, domain.BookingQuery{
		BarbershopID: shop.ID,
		From:         from,
		To:           last.AddDate(0, 0, 1),
	})
	if err != nil {
		return nil, err
	}

	rows := make([]ProfessionalRevenue, 0, len(pros))
	index := make(map[uint]int, len(pros))
	for _, p := range pros {
		index[p.ID] = len(rows)
		rows = append(rows, ProfessionalRevenue{
			ProfessionalID: p.ID,
			Name:           p.Name,
			Revenue:        decimal.Zero,
		})
	}

	for _, b := range bookings {
		i, ok := index[b.ProfessionalID]
		if !ok {
			continue
		}
		rows[i].Bookings++
		for _, s := range b.Services {
			rows[i].Revenue = rows[i].Revenue.Add(s.Price)
		}
	}

	return rows, nil
}
