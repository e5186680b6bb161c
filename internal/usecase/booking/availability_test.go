package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

func TestAvailabilityDayWithoutHoursIsEmpty(t *testing.T) {
	f := newFixture(t)

	out, err := f.availability().Execute(context.Background(), f.pro.ID, tuesday)
	require.NoError(t, err)
	assert.NotNil(t, out.Slots)
	assert.Empty(t, out.Slots)
	assert.Equal(t, tuesday, out.Date)
}

func TestAvailabilityPastCutoff(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t).at(timezone.FixedClock{At: time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)})

	today, err := f.availability().Execute(ctx, f.pro.ID, monday)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{
		"08:00": true, "08:30": true, "09:00": false, "09:30": false,
	}, disabledByLabel(today.Slots))

	nextWeek, err := f.availability().Execute(ctx, f.pro.ID, nextMonday)
	require.NoError(t, err)
	assert.False(t, disabledByLabel(nextWeek.Slots)["08:30"])

	// the cutoff is a same-day rule; earlier days are refused at commit
	lastWeek, err := f.availability().Execute(ctx, f.pro.ID, "2026-02-23")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{
		"08:00": false, "08:30": false, "09:00": false, "09:30": false,
	}, disabledByLabel(lastWeek.Slots))
}

func TestAvailabilityErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.availability().Execute(ctx, 999, monday)
	assert.ErrorIs(t, err, domain.ErrProfessionalNotFound)

	_, err = f.availability().Execute(ctx, f.pro.ID, "02/03/2026")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestGetSchedule(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.setHours(t,
		models.WorkingHours{DayOfWeek: 1, StartTime: "13:00", EndTime: "14:00"},
		models.WorkingHours{DayOfWeek: 1, StartTime: "08:00", EndTime: "09:15"},
		models.WorkingHours{DayOfWeek: 2, StartTime: "08:00", EndTime: "18:00"},
	)

	out, err := NewGetSchedule(f.repo).Execute(ctx, f.pro.ID, monday)
	require.NoError(t, err)
	assert.Len(t, out.WorkingHours, 2)
	assert.Equal(t, []string{"08:00", "08:30", "09:00", "13:00", "13:30"}, out.Slots)
	assert.Equal(t, "UTC", out.Timezone)
}

func TestPreviewRun(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// 08:30 taken by a half-hour booking
	_, err := f.create(domain.RejectEmptySelection).Execute(ctx, CreateBookingInput{
		ClientID:       f.client,
		ProfessionalID: f.pro.ID,
		ServiceIDs:     []uint{f.cut.ID},
		Date:           monday,
		Time:           "08:30",
	})
	require.NoError(t, err)

	in := PreviewRunInput{
		ProfessionalID: f.pro.ID,
		ServiceIDs:     []uint{f.cut.ID, f.beard.ID},
		Date:           monday,
		Time:           "08:00",
	}

	byIndex, err := NewPreviewRun(f.repo, f.clock, domain.RejectEmptySelection, domain.RunByAvailableIndex).Execute(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "09:00"}, byIndex.Slots)
	assert.Equal(t, 2, byIndex.SlotsNeeded)
	assert.Equal(t, 50, byIndex.TotalMinutes)
	assert.Equal(t, time.Hour, byIndex.End.Sub(byIndex.Start))

	_, err = NewPreviewRun(f.repo, f.clock, domain.RejectEmptySelection, domain.RunByClock).Execute(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInsufficientContiguousAvailable)

	in.Time = "08:30"
	_, err = NewPreviewRun(f.repo, f.clock, domain.RejectEmptySelection, domain.RunByAvailableIndex).Execute(ctx, in)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)

	in.Time = "09:30"
	_, err = NewPreviewRun(f.repo, f.clock, domain.RejectEmptySelection, domain.RunByAvailableIndex).Execute(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInsufficientContiguousAvailable)
}
