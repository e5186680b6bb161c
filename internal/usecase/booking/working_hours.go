package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type WorkingHoursEntry struct {
	DayOfWeek int
	StartTime string
	EndTime   string
}

type WorkingHours struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewWorkingHours(repo domain.Repository, log zerolog.Logger) *WorkingHours {
	return &WorkingHours{repo: repo, log: log}
}

// ownedProfessional loads the professional, inactive ones included, and
// checks it belongs to barbershopID.
func (uc *WorkingHours) ownedProfessional(
	ctx context.Context,
	barbershopID uint,
	professionalID uint,
) (*models.Professional, error) {

	pro, err := uc.repo.GetProfessional(ctx, professionalID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrProfessionalNotFound
		}
		return nil, fmt.Errorf("load professional %d: %w", professionalID, err)
	}
	if pro.BarbershopID != barbershopID {
		return nil, domain.ErrProfessionalNotFound
	}
	return pro, nil
}

func (uc *WorkingHours) List(
	ctx context.Context,
	barbershopID uint,
	professionalID uint,
) ([]models.WorkingHours, error) {

	if _, err := uc.ownedProfessional(ctx, barbershopID, professionalID); err != nil {
		return nil, err
	}
	return uc.repo.ListWorkingHours(ctx, professionalID)
}

// Replace swaps the professional's whole weekly schedule for entries.
// Nothing is written unless every entry is valid.
func (uc *WorkingHours) Replace(
	ctx context.Context,
	barbershopID uint,
	professionalID uint,
	entries []WorkingHoursEntry,
) ([]models.WorkingHours, error) {

	if _, err := uc.ownedProfessional(ctx, barbershopID, professionalID); err != nil {
		return nil, err
	}

	rows := make([]models.WorkingHours, 0, len(entries))
	for _, e := range entries {
		wh := models.WorkingHours{
			ProfessionalID: professionalID,
			DayOfWeek:      e.DayOfWeek,
			StartTime:      e.StartTime,
			EndTime:        e.EndTime,
		}
		if err := domain.ValidateWorkingHours(wh); err != nil {
			return nil, err
		}
		rows = append(rows, wh)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].DayOfWeek != rows[j].DayOfWeek {
			return rows[i].DayOfWeek < rows[j].DayOfWeek
		}
		return rows[i].StartTime < rows[j].StartTime
	})

	if err := uc.repo.ReplaceWorkingHours(ctx, professionalID, rows); err != nil {
		return nil, fmt.Errorf("replace working hours: %w", err)
	}

	uc.log.Info().
		Uint("professional_id", professionalID).
		Int("entries", len(rows)).
		Msg("working hours replaced")

	return uc.repo.ListWorkingHours(ctx, professionalID)
}
