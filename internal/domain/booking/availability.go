package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// StatusOf marks each slot of day as disabled when day is today and the
// slot is not after now, or when it starts inside an active booking's
// [start, end) interval.
// existing is expected to hold one professional's bookings for day.
func StatusOf(slots []string, existing []models.Booking, day time.Time, now time.Time) []Slot {
	out := make([]Slot, 0, len(slots))

	for _, label := range slots {
		at, err := SlotInstant(day, label)
		if err != nil {
			out = append(out, Slot{Time: label, Disabled: true})
			continue
		}

		out = append(out, Slot{
			Time:     label,
			Disabled: isPast(at, day, now) || insideBooking(at, existing),
		})
	}

	return out
}

// isPast only applies to today, read in day's location. Earlier days are
// left to the commit path, which rejects any start not after now.
func isPast(at, day, now time.Time) bool {
	return timezone.SameCivilDay(day, now, day.Location()) && !at.After(now)
}

func insideBooking(at time.Time, existing []models.Booking) bool {
	for _, b := range existing {
		if b.Status != models.BookingActive {
			continue
		}
		if !at.Before(b.StartTime) && at.Before(b.EndTime) {
			return true
		}
	}
	return false
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
