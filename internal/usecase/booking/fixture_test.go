package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const (
	monday     = "2026-03-02"
	tuesday    = "2026-03-03"
	nextMonday = "2026-03-09"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (p *recordingPublisher) Publish(ev domain.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *recordingPublisher) ofType(t domain.EventType) []domain.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []domain.Event
	for _, ev := range p.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

type fixture struct {
	repo   *repository.MemoryRepository
	events *recordingPublisher
	clock  timezone.FixedClock

	shop     models.Barbershop
	pro      models.Professional
	cut      models.Service // 30 min
	beard    models.Service // 20 min
	notOffer models.Service
	client   uint
}

// newFixture seeds a UTC barbershop whose professional works Mondays
// 08:00-10:00, with now on the Sunday before.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := repository.NewMemoryRepository()
	shop := repo.AddBarbershop(models.Barbershop{Name: "Navalha", Slug: "navalha", Timezone: "UTC"})

	cut := repo.AddService(models.Service{
		BarbershopID: shop.ID, Name: "Corte", DurationMinutes: 30,
		Price: decimal.RequireFromString("45.00"), Active: true,
	})
	beard := repo.AddService(models.Service{
		BarbershopID: shop.ID, Name: "Barba", DurationMinutes: 20,
		Price: decimal.RequireFromString("30.00"), Active: true,
	})
	notOffer := repo.AddService(models.Service{
		BarbershopID: shop.ID, Name: "Luzes", DurationMinutes: 90,
		Price: decimal.RequireFromString("120.00"), Active: true,
	})

	pro := repo.AddProfessional(models.Professional{
		BarbershopID: shop.ID, Name: "Rafael", Active: true,
	}, cut.ID, beard.ID)

	f := &fixture{
		repo:     repo,
		events:   &recordingPublisher{},
		clock:    timezone.FixedClock{At: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
		shop:     shop,
		pro:      pro,
		cut:      cut,
		beard:    beard,
		notOffer: notOffer,
	}

	f.setHours(t, models.WorkingHours{DayOfWeek: 1, StartTime: "08:00", EndTime: "10:00"})

	client, err := repo.GetOrCreateClient(context.Background(), shop.ID, "Ana", "11999990000")
	if err != nil {
		t.Fatal(err)
	}
	f.client = client.ID

	return f
}

func (f *fixture) setHours(t *testing.T, entries ...models.WorkingHours) {
	t.Helper()
	if err := f.repo.ReplaceWorkingHours(context.Background(), f.pro.ID, entries); err != nil {
		t.Fatal(err)
	}
}

func (f *fixture) at(clock timezone.FixedClock) *fixture {
	cp := *f
	cp.clock = clock
	return &cp
}

func (f *fixture) create(policy domain.EmptySelectionPolicy) *CreateBooking {
	return NewCreateBooking(f.repo, f.events, f.clock, policy, zerolog.Nop())
}

func (f *fixture) availability() *GetAvailability {
	return NewGetAvailability(f.repo, f.clock)
}

func disabledByLabel(slots []domain.Slot) map[string]bool {
	out := make(map[string]bool, len(slots))
	for _, s := range slots {
		out[s.Time] = s.Disabled
	}
	return out
}
