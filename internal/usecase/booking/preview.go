package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type PreviewRunInput struct {
	ProfessionalID uint
	ServiceIDs     []uint
	Date           string
	Time           string
}

// RunPreview is the block of slots a booking starting at the clicked slot
// would highlight, and the interval it would actually occupy.
type RunPreview struct {
	Slots        []string
	SlotsNeeded  int
	TotalMinutes int
	Start        time.Time
	End          time.Time
}

type PreviewRun struct {
	repo   domain.Repository
	clock  timezone.Clock
	policy domain.EmptySelectionPolicy
	mode   domain.RunMode
}

func NewPreviewRun(
	repo domain.Repository,
	clock timezone.Clock,
	policy domain.EmptySelectionPolicy,
	mode domain.RunMode,
) *PreviewRun {
	return &PreviewRun{
		repo:   repo,
		clock:  clock,
		policy: policy,
		mode:   mode,
	}
}

func (uc *PreviewRun) Execute(
	ctx context.Context,
	in PreviewRunInput,
) (*RunPreview, error) {

	if err := uc.policy.Check(in.ServiceIDs); err != nil {
		return nil, err
	}

	pro, loc, err := loadProfessional(ctx, uc.repo, in.ProfessionalID)
	if err != nil {
		return nil, err
	}

	start, err := timezone.ParseDateTime(in.Date, in.Time, loc)
	if err != nil {
		return nil, domain.ErrInvalidTime
	}

	services, err := loadServices(ctx, uc.repo, pro, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	status, err := dayStatus(ctx, uc.repo, pro, start, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	needed := domain.SlotsNeeded(services)
	run, err := domain.SelectRun(status, start.Format("15:04"), needed, uc.mode)
	if err != nil {
		return nil, err
	}

	return &RunPreview{
		Slots:        run,
		SlotsNeeded:  needed,
		TotalMinutes: domain.TotalMinutes(services),
		Start:        start,
		End:          start.Add(domain.RoundedDuration(services)),
	}, nil
}
