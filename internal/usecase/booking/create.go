package booking

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientID       uint
	ProfessionalID uint
	ServiceIDs     []uint

	// BarbershopID, when non-zero, must own the professional.
	BarbershopID uint

	// Date and Time are read in the professional's barbershop timezone.
	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	events domain.EventPublisher
	clock  timezone.Clock
	policy domain.EmptySelectionPolicy
	log    zerolog.Logger
}

func NewCreateBooking(
	repo domain.Repository,
	events domain.EventPublisher,
	clock timezone.Clock,
	policy domain.EmptySelectionPolicy,
	log zerolog.Logger,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		events: events,
		clock:  clock,
		policy: policy,
		log:    log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	b, err := uc.execute(ctx, in)
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			metrics.IncBookingRejected(be.Code)
			uc.log.Info().
				Uint("professional_id", in.ProfessionalID).
				Uint("client_id", in.ClientID).
				Str("error_code", be.Code).
				Msg("booking rejected")
		} else {
			uc.log.Error().
				Err(err).
				Uint("professional_id", in.ProfessionalID).
				Msg("booking commit failed")
		}
		return nil, err
	}

	metrics.IncBookingCreated()
	uc.log.Info().
		Uint("booking_id", b.ID).
		Uint("professional_id", b.ProfessionalID).
		Time("start_time", b.StartTime).
		Msg("booking created")

	return b, nil
}

func (uc *CreateBooking) execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Seleção vazia
	// --------------------------------------------------
	if err := uc.policy.Check(in.ServiceIDs); err != nil {
		return nil, err
	}
	if in.ClientID == 0 {
		return nil, domain.ErrMissingClient
	}

	// --------------------------------------------------
	// 2️⃣ Profissional e timezone da barbearia
	// --------------------------------------------------
	pro, loc, err := loadProfessional(ctx, uc.repo, in.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if in.BarbershopID != 0 && pro.BarbershopID != in.BarbershopID {
		return nil, domain.ErrProfessionalNotFound
	}

	start, err := timezone.ParseDateTime(in.Date, in.Time, loc)
	if err != nil {
		return nil, domain.ErrInvalidTime
	}

	// --------------------------------------------------
	// 3️⃣ Serviços
	// --------------------------------------------------
	services, err := loadServices(ctx, uc.repo, pro, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Horário: futuro e dentro da agenda
	// --------------------------------------------------
	if !start.After(uc.clock.Now()) {
		return nil, domain.ErrSlotInPast
	}

	slots, err := domain.ResolveSlots(pro.WorkingHours, start)
	if err != nil {
		return nil, err
	}
	if !containsLabel(slots, start.Format("15:04")) {
		return nil, domain.ErrOutsideWorkingHours
	}

	// --------------------------------------------------
	// 5️⃣ Commit (revalida sobreposição sob lock)
	// --------------------------------------------------
	b := &models.Booking{
		ClientID:       in.ClientID,
		ProfessionalID: pro.ID,
		StartTime:      start,
		EndTime:        start.Add(domain.RoundedDuration(services)),
		Services:       services,
		Status:         domain.InitialStatus(),
	}

	if err := uc.repo.CommitBooking(ctx, b); err != nil {
		if errors.Is(err, domain.ErrSlotConflict) {
			return nil, domain.ErrSlotConflict
		}
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Evento
	// --------------------------------------------------
	uc.events.Publish(domain.NewEvent(domain.EventBookingCreated, *b, uc.clock.Now()))

	return b, nil
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
