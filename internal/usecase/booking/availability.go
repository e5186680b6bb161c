package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type AvailabilityOutput struct {
	Date     string
	Timezone string
	Slots    []domain.Slot
}

type GetAvailability struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewGetAvailability(repo domain.Repository, clock timezone.Clock) *GetAvailability {
	return &GetAvailability{repo: repo, clock: clock}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	professionalID uint,
	date string,
) (*AvailabilityOutput, error) {

	pro, loc, err := loadProfessional(ctx, uc.repo, professionalID)
	if err != nil {
		return nil, err
	}

	day, err := parseDay(date, loc)
	if err != nil {
		return nil, err
	}

	metrics.IncAvailabilityQuery()

	status, err := dayStatus(ctx, uc.repo, pro, day, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	return &AvailabilityOutput{
		Date:     day.Format("2006-01-02"),
		Timezone: loc.String(),
		Slots:    status,
	}, nil
}
