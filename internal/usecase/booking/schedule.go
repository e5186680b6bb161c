package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ScheduleOutput is a professional's working hours for one civil day and
// the slot labels they produce.
type ScheduleOutput struct {
	Date         string
	Timezone     string
	WorkingHours []models.WorkingHours
	Slots        []string
}

type GetSchedule struct {
	repo domain.Repository
}

func NewGetSchedule(repo domain.Repository) *GetSchedule {
	return &GetSchedule{repo: repo}
}

func (uc *GetSchedule) Execute(
	ctx context.Context,
	professionalID uint,
	date string,
) (*ScheduleOutput, error) {

	pro, loc, err := loadProfessional(ctx, uc.repo, professionalID)
	if err != nil {
		return nil, err
	}

	day, err := parseDay(date, loc)
	if err != nil {
		return nil, err
	}

	weekday := int(day.Weekday())
	entries := make([]models.WorkingHours, 0)
	for _, wh := range pro.WorkingHours {
		if wh.DayOfWeek == weekday {
			entries = append(entries, wh)
		}
	}

	slots, err := domain.ResolveSlots(entries, day)
	if err != nil {
		return nil, err
	}

	return &ScheduleOutput{
		Date:         day.Format("2006-01-02"),
		Timezone:     loc.String(),
		WorkingHours: entries,
		Slots:        slots,
	}, nil
}
