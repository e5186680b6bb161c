package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// InitialStatus is the status every committed booking starts with.
func InitialStatus() models.BookingStatus {
	return models.BookingActive
}

// Cancel flips b to cancelled. It reports false, and leaves b untouched,
// when b is already cancelled.
func Cancel(b *models.Booking, now time.Time) bool {
	if b.Status == models.BookingCancelled {
		return false
	}
	b.Status = models.BookingCancelled
	b.CancelledAt = &now
	return true
}
