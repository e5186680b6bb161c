package cache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var day = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

type countingRepo struct {
	domain.Repository
	loads int32
}

func (r *countingRepo) ListActiveBookingsForDay(ctx context.Context, proID uint, from, to time.Time) ([]models.Booking, error) {
	atomic.AddInt32(&r.loads, 1)
	return r.Repository.ListActiveBookingsForDay(ctx, proID, from, to)
}

func setup(t *testing.T) (*AvailabilityCache, *countingRepo) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	inner := &countingRepo{Repository: repository.NewMemoryRepository()}
	return NewAvailabilityCache(inner, rdb, time.Minute, zerolog.Nop()), inner
}

func newBooking(proID uint, hour int) *models.Booking {
	start := day.Add(time.Duration(hour) * time.Hour)
	return &models.Booking{
		ClientID:       1,
		ProfessionalID: proID,
		StartTime:      start,
		EndTime:        start.Add(30 * time.Minute),
		Status:         models.BookingActive,
	}
}

func TestCacheServesRepeatedReads(t *testing.T) {
	ctx := context.Background()
	c, inner := setup(t)
	require.NoError(t, inner.Repository.CommitBooking(ctx, newBooking(1, 8)))

	first, err := c.ListActiveBookingsForDay(ctx, 1, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	second, err := c.ListActiveBookingsForDay(ctx, 1, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&inner.loads))
	require.Len(t, second, 1)
	assert.True(t, first[0].StartTime.Equal(second[0].StartTime))
	assert.True(t, first[0].EndTime.Equal(second[0].EndTime))
	assert.Equal(t, models.BookingActive, second[0].Status)
}

func TestCacheInvalidatedByCommitAndCancel(t *testing.T) {
	ctx := context.Background()
	c, inner := setup(t)
	to := day.AddDate(0, 0, 1)

	got, err := c.ListActiveBookingsForDay(ctx, 1, day, to)
	require.NoError(t, err)
	assert.Empty(t, got)

	b := newBooking(1, 9)
	require.NoError(t, c.CommitBooking(ctx, b))

	got, err = c.ListActiveBookingsForDay(ctx, 1, day, to)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = c.CancelBookings(ctx, domain.CancelFilter{IDs: []uint{b.ID}}, day)
	require.NoError(t, err)

	got, err = c.ListActiveBookingsForDay(ctx, 1, day, to)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, int32(3), atomic.LoadInt32(&inner.loads))
}

func TestCacheFallsBackWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()

	// nothing listens on port 1
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })

	inner := &countingRepo{Repository: repository.NewMemoryRepository()}
	c := NewAvailabilityCache(inner, rdb, time.Minute, zerolog.Nop())
	require.NoError(t, inner.Repository.CommitBooking(ctx, newBooking(1, 8)))

	got, err := c.ListActiveBookingsForDay(ctx, 1, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// a write still succeeds; invalidation failure is only logged
	assert.NoError(t, c.CommitBooking(ctx, newBooking(1, 10)))
}

func TestCacheKeysArePerProfessional(t *testing.T) {
	ctx := context.Background()
	c, inner := setup(t)
	to := day.AddDate(0, 0, 1)

	_, err := c.ListActiveBookingsForDay(ctx, 1, day, to)
	require.NoError(t, err)
	_, err = c.ListActiveBookingsForDay(ctx, 2, day, to)
	require.NoError(t, err)

	require.NoError(t, c.CommitBooking(ctx, newBooking(2, 8)))

	_, err = c.ListActiveBookingsForDay(ctx, 1, day, to)
	require.NoError(t, err)
	got, err := c.ListActiveBookingsForDay(ctx, 2, day, to)
	require.NoError(t, err)

	assert.Len(t, got, 1)
	assert.Equal(t, int32(3), atomic.LoadInt32(&inner.loads))
}
