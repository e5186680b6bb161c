package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// AvailabilityCache is a domain.Repository that serves a professional's
// day of active bookings from Redis. Entries are keyed by a per-professional
// version; every successful write bumps it, so stale entries are never read
// again and simply expire.
type AvailabilityCache struct {
	domain.Repository

	rdb   *redis.Client
	ttl   time.Duration
	log   zerolog.Logger
	group singleflight.Group
}

type cachedBooking struct {
	ID        uint      `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	ClientID  uint      `json:"client_id"`
	Cancelled bool      `json:"cancelled,omitempty"`
}

func NewAvailabilityCache(
	next domain.Repository,
	rdb *redis.Client,
	ttl time.Duration,
	log zerolog.Logger,
) *AvailabilityCache {
	return &AvailabilityCache{
		Repository: next,
		rdb:        rdb,
		ttl:        ttl,
		log:        log,
	}
}

func versionKey(professionalID uint) string {
	return fmt.Sprintf("availability:pro:%d:ver", professionalID)
}

func dayKey(professionalID uint, version int64, from, to time.Time) string {
	return fmt.Sprintf("availability:pro:%d:v%d:%d:%d", professionalID, version, from.Unix(), to.Unix())
}

func (c *AvailabilityCache) ListActiveBookingsForDay(
	ctx context.Context,
	professionalID uint,
	from, to time.Time,
) ([]models.Booking, error) {

	version, err := c.rdb.Get(ctx, versionKey(professionalID)).Int64()
	if err != nil && err != redis.Nil {
		c.log.Warn().Err(err).Uint("professional_id", professionalID).Msg("availability cache unreachable")
		metrics.IncCacheLookup("error")
		return c.Repository.ListActiveBookingsForDay(ctx, professionalID, from, to)
	}

	key := dayKey(professionalID, version, from, to)

	if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var cached []cachedBooking
		if err := json.Unmarshal(raw, &cached); err == nil {
			metrics.IncCacheLookup("hit")
			return toBookings(professionalID, cached), nil
		}
	}
	metrics.IncCacheLookup("miss")

	v, err, _ := c.group.Do(key, func() (any, error) {
		bookings, err := c.Repository.ListActiveBookingsForDay(ctx, professionalID, from, to)
		if err != nil {
			return nil, err
		}
		c.store(ctx, key, bookings)
		return bookings, nil
	})
	if err != nil {
		return nil, err
	}

	shared := v.([]models.Booking)
	return append([]models.Booking(nil), shared...), nil
}

func (c *AvailabilityCache) store(ctx context.Context, key string, bookings []models.Booking) {
	cached := make([]cachedBooking, 0, len(bookings))
	for _, b := range bookings {
		cached = append(cached, cachedBooking{
			ID:        b.ID,
			Start:     b.StartTime,
			End:       b.EndTime,
			ClientID:  b.ClientID,
			Cancelled: b.Status == models.BookingCancelled,
		})
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("availability cache write failed")
	}
}

func toBookings(professionalID uint, cached []cachedBooking) []models.Booking {
	out := make([]models.Booking, 0, len(cached))
	for _, cb := range cached {
		status := models.BookingActive
		if cb.Cancelled {
			status = models.BookingCancelled
		}
		out = append(out, models.Booking{
			ID:             cb.ID,
			ClientID:       cb.ClientID,
			ProfessionalID: professionalID,
			StartTime:      cb.Start,
			EndTime:        cb.End,
			Status:         status,
		})
	}
	return out
}

// Invalidate makes every cached day of the professional unreachable.
func (c *AvailabilityCache) Invalidate(ctx context.Context, professionalID uint) {
	if err := c.rdb.Incr(ctx, versionKey(professionalID)).Err(); err != nil {
		c.log.Warn().Err(err).Uint("professional_id", professionalID).Msg("availability cache invalidation failed")
	}
}

func (c *AvailabilityCache) CommitBooking(ctx context.Context, b *models.Booking) error {
	if err := c.Repository.CommitBooking(ctx, b); err != nil {
		return err
	}
	c.Invalidate(ctx, b.ProfessionalID)
	return nil
}

func (c *AvailabilityCache) CancelBookings(
	ctx context.Context,
	f domain.CancelFilter,
	now time.Time,
) ([]models.Booking, error) {

	cancelled, err := c.Repository.CancelBookings(ctx, f, now)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]struct{})
	for _, b := range cancelled {
		if _, ok := seen[b.ProfessionalID]; ok {
			continue
		}
		seen[b.ProfessionalID] = struct{}{}
		c.Invalidate(ctx, b.ProfessionalID)
	}
	return cancelled, nil
}

var _ domain.Repository = (*AvailabilityCache)(nil)
