package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var day = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func booking(proID uint, startHour, startMin, minutes int) *models.Booking {
	start := day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute)
	return &models.Booking{
		ClientID:       1,
		ProfessionalID: proID,
		StartTime:      start,
		EndTime:        start.Add(time.Duration(minutes) * time.Minute),
		Status:         models.BookingActive,
	}
}

func TestMemoryCommitRejectsOverlap(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.CommitBooking(ctx, booking(1, 8, 0, 60)))
	assert.ErrorIs(t, repo.CommitBooking(ctx, booking(1, 8, 30, 30)), domain.ErrSlotConflict)

	// touching intervals and other professionals are fine
	assert.NoError(t, repo.CommitBooking(ctx, booking(1, 9, 0, 30)))
	assert.NoError(t, repo.CommitBooking(ctx, booking(2, 8, 0, 60)))
}

func TestMemoryConcurrentCommitsOnlyOneWins(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	const attempts = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			err := repo.CommitBooking(ctx, booking(1, 8, offset%2*30, 60))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if assert.ErrorIs(t, err, domain.ErrSlotConflict) {
				conflicts++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, attempts-1, conflicts)
}

func TestMemoryCancelBookings(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	now := day.Add(6 * time.Hour)

	a := booking(1, 8, 0, 30)
	b := booking(1, 9, 0, 30)
	require.NoError(t, repo.CommitBooking(ctx, a))
	require.NoError(t, repo.CommitBooking(ctx, b))

	got, err := repo.CancelBookings(ctx, domain.CancelFilter{IDs: []uint{a.ID, a.ID, 999}}, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.BookingCancelled, got[0].Status)

	again, err := repo.CancelBookings(ctx, domain.CancelFilter{IDs: []uint{a.ID}}, now)
	require.NoError(t, err)
	assert.Empty(t, again)

	other := uint(42)
	notMine, err := repo.CancelBookings(ctx, domain.CancelFilter{IDs: []uint{b.ID}, ClientID: &other}, now)
	require.NoError(t, err)
	assert.Empty(t, notMine)

	active, err := repo.ListActiveBookingsForDay(ctx, 1, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, b.ID, active[0].ID)
}

func TestMemoryGetOrCreateClient(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	first, err := repo.GetOrCreateClient(ctx, 1, "Ana", "5511999990000")
	require.NoError(t, err)
	second, err := repo.GetOrCreateClient(ctx, 1, "Ana Maria", "5511999990000")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	otherShop, err := repo.GetOrCreateClient(ctx, 2, "Ana", "5511999990000")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, otherShop.ID)
}

func TestSeedDemo(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	shop := SeedDemo(repo)

	found, err := repo.GetBarbershopBySlug(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, shop.ID, found.ID)

	services, err := repo.ListActiveServices(ctx, shop.ID)
	require.NoError(t, err)
	require.Len(t, services, 2)

	pros, err := repo.ListProfessionalsByService(ctx, shop.ID, []uint{services[0].ID})
	require.NoError(t, err)
	require.Len(t, pros, 1)

	pro, err := repo.GetProfessional(ctx, pros[0].ID)
	require.NoError(t, err)
	assert.Len(t, pro.WorkingHours, 12)
	assert.Len(t, pro.Services, 2)
	require.NotNil(t, pro.Barbershop)
	assert.Equal(t, "demo", pro.Barbershop.Slug)
}
