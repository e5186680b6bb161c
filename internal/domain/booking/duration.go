package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// EmptySelectionPolicy decides what happens when no service is selected.
type EmptySelectionPolicy string

const (
	RejectEmptySelection EmptySelectionPolicy = "reject"
	OneSlotForEmpty      EmptySelectionPolicy = "one_slot"
)

func TotalMinutes(services []models.Service) int {
	total := 0
	for _, s := range services {
		total += s.DurationMinutes
	}
	return total
}

// SlotsNeeded is ceil(total/30), never less than one.
func SlotsNeeded(services []models.Service) int {
	total := TotalMinutes(services)
	n := (total + slotMinutes - 1) / slotMinutes
	if n < 1 {
		n = 1
	}
	return n
}

// RoundedDuration is the length a booking of services occupies.
func RoundedDuration(services []models.Service) time.Duration {
	return time.Duration(SlotsNeeded(services)) * SlotDuration
}

func (p EmptySelectionPolicy) Check(serviceIDs []uint) error {
	if len(serviceIDs) == 0 && p != OneSlotForEmpty {
		return ErrNoServicesSelected
	}
	return nil
}
