package booking

import (
	"fmt"
	"sort"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// SlotDuration is the fixed booking granularity.
const SlotDuration = 30 * time.Minute

const slotMinutes = int(SlotDuration / time.Minute)

// Slot is one candidate start time on a day, as shown to a client.
type Slot struct {
	Time     string `json:"time"`
	Disabled bool   `json:"disabled"`
}

// ParseClock converts "HH:MM" into minutes after midnight.
func ParseClock(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", hm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ValidateWorkingHours checks a single entry as it would be stored.
func ValidateWorkingHours(wh models.WorkingHours) error {
	if wh.DayOfWeek < 0 || wh.DayOfWeek > 6 {
		return ErrInvalidWorkingHours
	}
	start, err := ParseClock(wh.StartTime)
	if err != nil {
		return ErrInvalidWorkingHours
	}
	end, err := ParseClock(wh.EndTime)
	if err != nil {
		return ErrInvalidWorkingHours
	}
	if start >= end {
		return ErrInvalidWorkingHours
	}
	return nil
}

// ResolveSlots lists the slot labels of day for the given weekly schedule.
// Every entry for day's weekday contributes a slot each SlotDuration from its
// start while the slot starts before its end; overlapping shifts are
// merged and the result is sorted.
func ResolveSlots(entries []models.WorkingHours, day time.Time) ([]string, error) {
	weekday := int(day.Weekday())

	seen := make(map[int]struct{})
	var starts []int

	for _, wh := range entries {
		if wh.DayOfWeek != weekday {
			continue
		}

		start, err := ParseClock(wh.StartTime)
		if err != nil {
			return nil, fmt.Errorf("working hours %d: %w", wh.ID, ErrInvalidWorkingHours)
		}
		end, err := ParseClock(wh.EndTime)
		if err != nil {
			return nil, fmt.Errorf("working hours %d: %w", wh.ID, ErrInvalidWorkingHours)
		}

		for cur := start; cur < end; cur += slotMinutes {
			if _, ok := seen[cur]; ok {
				continue
			}
			seen[cur] = struct{}{}
			starts = append(starts, cur)
		}
	}

	sort.Ints(starts)

	out := make([]string, 0, len(starts))
	for _, m := range starts {
		out = append(out, FormatClock(m))
	}
	return out, nil
}

// SlotInstant places a slot label on day, in day's location.
func SlotInstant(day time.Time, label string) (time.Time, error) {
	m, err := ParseClock(label)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), m/60, m%60, 0, 0, day.Location()), nil
}
