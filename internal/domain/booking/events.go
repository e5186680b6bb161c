package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type EventType string

const (
	EventBookingCreated   EventType = "booking_created"
	EventBookingCancelled EventType = "booking_cancelled"
)

// Event is what the core emits after a booking changes. Delivery is the
// publisher's concern and never affects the change itself.
type Event struct {
	ID             string    `json:"event_id"`
	Type           EventType `json:"event_type"`
	OccurredAt     time.Time `json:"occurred_at"`
	BookingID      uint      `json:"booking_id"`
	ProfessionalID uint      `json:"professional_id"`
	ClientID       uint      `json:"client_id"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	ServiceIDs     []uint    `json:"service_ids,omitempty"`
}

type EventPublisher interface {
	Publish(ev Event)
}

func NewEvent(t EventType, b models.Booking, now time.Time) Event {
	ids := make([]uint, 0, len(b.Services))
	for _, s := range b.Services {
		ids = append(ids, s.ID)
	}
	return Event{
		ID:             uuid.NewString(),
		Type:           t,
		OccurredAt:     now,
		BookingID:      b.ID,
		ProfessionalID: b.ProfessionalID,
		ClientID:       b.ClientID,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		ServiceIDs:     ids,
	}
}
