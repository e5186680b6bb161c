package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func at(day time.Time, h, m int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
}

func disabledSet(slots []Slot) map[string]bool {
	out := make(map[string]bool, len(slots))
	for _, s := range slots {
		out[s.Time] = s.Disabled
	}
	return out
}

func TestStatusOfConflicts(t *testing.T) {
	labels := []string{"08:00", "08:30", "09:00", "09:30"}
	existing := []models.Booking{
		{StartTime: at(monday, 8, 0), EndTime: at(monday, 9, 0), Status: models.BookingActive},
	}
	now := monday.AddDate(0, 0, -1)

	got := disabledSet(StatusOf(labels, existing, monday, now))

	assert.True(t, got["08:00"])
	assert.True(t, got["08:30"])
	assert.False(t, got["09:00"], "slot at booking end is free")
	assert.False(t, got["09:30"])
}

func TestStatusOfIgnoresCancelled(t *testing.T) {
	existing := []models.Booking{
		{StartTime: at(monday, 8, 0), EndTime: at(monday, 9, 0), Status: models.BookingCancelled},
	}
	got := StatusOf([]string{"08:00"}, existing, monday, monday.AddDate(0, 0, -1))
	assert.False(t, got[0].Disabled)
}

func TestStatusOfPastCutoff(t *testing.T) {
	labels := []string{"08:00", "08:30", "09:00"}
	now := at(monday, 8, 30)

	today := disabledSet(StatusOf(labels, nil, monday, now))
	assert.True(t, today["08:00"])
	assert.True(t, today["08:30"], "slot equal to now is disabled")
	assert.False(t, today["09:00"])

	nextWeek := monday.AddDate(0, 0, 7)
	future := disabledSet(StatusOf(labels, nil, nextWeek, now))
	assert.False(t, future["08:00"])
	assert.False(t, future["08:30"])
}

func TestStatusOfPastCutoffOnlyAppliesToToday(t *testing.T) {
	labels := []string{"09:00", "10:00"}
	tuesday := monday.AddDate(0, 0, 1)
	now := at(tuesday, 12, 0)

	yesterday := disabledSet(StatusOf(labels, nil, monday, now))
	assert.False(t, yesterday["09:00"])
	assert.False(t, yesterday["10:00"])

	today := disabledSet(StatusOf(labels, nil, tuesday, at(tuesday, 10, 0)))
	assert.True(t, today["09:00"])
	assert.True(t, today["10:00"], "slot equal to now is disabled")
}

func TestStatusOfCivilDayUsesDayLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	// 02:00 UTC on Tuesday is still Monday 23:00 in Sao Paulo
	now := time.Date(2026, 3, 3, 2, 0, 0, 0, time.UTC)

	got := StatusOf([]string{"08:00"}, nil, day, now)
	assert.True(t, got[0].Disabled)
}

func TestStatusOfLateTonightDoesNotDisableTomorrowMorning(t *testing.T) {
	now := at(monday, 23, 0)
	tuesday := monday.AddDate(0, 0, 1)

	got := StatusOf([]string{"08:00"}, nil, tuesday, now)
	assert.False(t, got[0].Disabled)
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(at(monday, 8, 0), at(monday, 9, 0), at(monday, 8, 30), at(monday, 9, 30)))
	assert.False(t, Overlaps(at(monday, 8, 0), at(monday, 9, 0), at(monday, 9, 0), at(monday, 9, 30)))
}
