package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// 2026-03-02 is a Monday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func TestResolveSlots(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.WorkingHours
		want    []string
	}{
		{
			name:    "single shift",
			entries: []models.WorkingHours{{DayOfWeek: 1, StartTime: "08:00", EndTime: "10:00"}},
			want:    []string{"08:00", "08:30", "09:00", "09:30"},
		},
		{
			name:    "half hour shift yields one slot",
			entries: []models.WorkingHours{{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:30"}},
			want:    []string{"09:00"},
		},
		{
			name:    "other weekday only",
			entries: []models.WorkingHours{{DayOfWeek: 2, StartTime: "08:00", EndTime: "10:00"}},
			want:    []string{},
		},
		{
			name: "disjoint shifts are sorted",
			entries: []models.WorkingHours{
				{DayOfWeek: 1, StartTime: "14:00", EndTime: "15:00"},
				{DayOfWeek: 1, StartTime: "08:00", EndTime: "09:00"},
			},
			want: []string{"08:00", "08:30", "14:00", "14:30"},
		},
		{
			name: "overlapping shifts are merged",
			entries: []models.WorkingHours{
				{DayOfWeek: 1, StartTime: "08:00", EndTime: "09:30"},
				{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
			},
			want: []string{"08:00", "08:30", "09:00", "09:30"},
		},
		{
			name:    "unaligned end keeps a slot starting before it",
			entries: []models.WorkingHours{{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:45"}},
			want:    []string{"09:00", "09:30"},
		},
		{
			name:    "late afternoon shift ending at quarter to",
			entries: []models.WorkingHours{{DayOfWeek: 1, StartTime: "17:00", EndTime: "17:45"}},
			want:    []string{"17:00", "17:30"},
		},
		{
			name:    "unaligned start",
			entries: []models.WorkingHours{{DayOfWeek: 1, StartTime: "09:15", EndTime: "10:15"}},
			want:    []string{"09:15", "09:45"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSlots(tt.entries, monday)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSlotsProperties(t *testing.T) {
	entries := []models.WorkingHours{{DayOfWeek: 1, StartTime: "07:30", EndTime: "18:00"}}
	start, _ := ParseClock("07:30")
	end, _ := ParseClock("18:00")

	first, err := ResolveSlots(entries, monday)
	require.NoError(t, err)
	second, err := ResolveSlots(entries, monday)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NotEmpty(t, first)
	prev := -1
	for _, label := range first {
		m, err := ParseClock(label)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, m, start)
		assert.Less(t, m, end)
		if prev >= 0 {
			assert.Equal(t, 30, m-prev)
		}
		prev = m
	}
	assert.LessOrEqual(t, prev+30, end)
}

func TestResolveSlotsRejectsMalformedEntry(t *testing.T) {
	_, err := ResolveSlots([]models.WorkingHours{{DayOfWeek: 1, StartTime: "8am", EndTime: "10:00"}}, monday)
	assert.ErrorIs(t, err, ErrInvalidWorkingHours)
}

func TestValidateWorkingHours(t *testing.T) {
	assert.NoError(t, ValidateWorkingHours(models.WorkingHours{DayOfWeek: 0, StartTime: "08:00", EndTime: "12:00"}))
	assert.ErrorIs(t, ValidateWorkingHours(models.WorkingHours{DayOfWeek: 7, StartTime: "08:00", EndTime: "12:00"}), ErrInvalidWorkingHours)
	assert.ErrorIs(t, ValidateWorkingHours(models.WorkingHours{DayOfWeek: 1, StartTime: "12:00", EndTime: "12:00"}), ErrInvalidWorkingHours)
	assert.ErrorIs(t, ValidateWorkingHours(models.WorkingHours{DayOfWeek: 1, StartTime: "12:00", EndTime: "25:00"}), ErrInvalidWorkingHours)
}

func TestSlotInstantUsesDayLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	at, err := SlotInstant(day, "08:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC), at.UTC())
}
