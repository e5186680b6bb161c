package booking

import (
	"context"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type CancelBookingsInput struct {
	IDs []uint

	// ClientID limits the cancel to one client's bookings when set.
	ClientID *uint
	// BarbershopID limits the cancel to one barbershop when non-zero.
	BarbershopID uint
}

type CancelBookings struct {
	repo   domain.Repository
	events domain.EventPublisher
	clock  timezone.Clock
	log    zerolog.Logger
}

func NewCancelBookings(
	repo domain.Repository,
	events domain.EventPublisher,
	clock timezone.Clock,
	log zerolog.Logger,
) *CancelBookings {
	return &CancelBookings{
		repo:   repo,
		events: events,
		clock:  clock,
		log:    log,
	}
}

// Execute cancels the active bookings among in.IDs and returns how many
// changed. Unknown and already cancelled ids are skipped.
func (uc *CancelBookings) Execute(
	ctx context.Context,
	in CancelBookingsInput,
) (int, error) {

	ids := uniqueIDs(in.IDs)
	if len(ids) == 0 {
		return 0, domain.ErrMissingIDs
	}

	now := uc.clock.Now()

	cancelled, err := uc.repo.CancelBookings(ctx, domain.CancelFilter{
		IDs:          ids,
		ClientID:     in.ClientID,
		BarbershopID: in.BarbershopID,
	}, now)
	if err != nil {
		uc.log.Error().Err(err).Int("requested", len(ids)).Msg("cancel bookings failed")
		return 0, err
	}

	for _, b := range cancelled {
		uc.events.Publish(domain.NewEvent(domain.EventBookingCancelled, b, now))
	}

	metrics.AddBookingCancelled(len(cancelled))
	uc.log.Info().
		Int("requested", len(ids)).
		Int("cancelled", len(cancelled)).
		Msg("bookings cancelled")

	return len(cancelled), nil
}
