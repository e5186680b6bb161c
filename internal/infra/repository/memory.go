package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// MemoryRepository keeps everything in process memory behind one mutex.
// CommitBooking's overlap check and insert run under the same lock.
type MemoryRepository struct {
	mu sync.Mutex

	nextID uint

	shops         map[uint]models.Barbershop
	professionals map[uint]models.Professional
	offers        map[uint][]uint // professional -> service ids
	hours         map[uint][]models.WorkingHours
	services      map[uint]models.Service
	clients       map[uint]models.Client
	bookings      map[uint]models.Booking
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		shops:         make(map[uint]models.Barbershop),
		professionals: make(map[uint]models.Professional),
		offers:        make(map[uint][]uint),
		hours:         make(map[uint][]models.WorkingHours),
		services:      make(map[uint]models.Service),
		clients:       make(map[uint]models.Client),
		bookings:      make(map[uint]models.Booking),
	}
}

func (r *MemoryRepository) id() uint {
	r.nextID++
	return r.nextID
}

// --------------------------------------------------
// Seeding
// --------------------------------------------------

func (r *MemoryRepository) AddBarbershop(shop models.Barbershop) models.Barbershop {
	r.mu.Lock()
	defer r.mu.Unlock()

	shop.ID = r.id()
	r.shops[shop.ID] = shop
	return shop
}

func (r *MemoryRepository) AddService(svc models.Service) models.Service {
	r.mu.Lock()
	defer r.mu.Unlock()

	svc.ID = r.id()
	r.services[svc.ID] = svc
	return svc
}

func (r *MemoryRepository) AddProfessional(pro models.Professional, serviceIDs ...uint) models.Professional {
	r.mu.Lock()
	defer r.mu.Unlock()

	pro.ID = r.id()
	pro.WorkingHours = nil
	pro.Services = nil
	r.professionals[pro.ID] = pro
	r.offers[pro.ID] = append([]uint(nil), serviceIDs...)
	return pro
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *MemoryRepository) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	shop, ok := r.shops[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &shop, nil
}

func (r *MemoryRepository) GetBarbershopBySlug(_ context.Context, slug string) (*models.Barbershop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, shop := range r.shops {
		if shop.Slug == slug {
			s := shop
			return &s, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

// --------------------------------------------------
// Professional / schedule
// --------------------------------------------------

func (r *MemoryRepository) GetProfessional(_ context.Context, id uint) (*models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pro, ok := r.professionals[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	if shop, ok := r.shops[pro.BarbershopID]; ok {
		pro.Barbershop = &shop
	}
	pro.WorkingHours = append([]models.WorkingHours(nil), r.hours[id]...)
	pro.Services = r.servicesByID(r.offers[id])
	return &pro, nil
}

func (r *MemoryRepository) ListProfessionals(_ context.Context, barbershopID uint) ([]models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Professional
	for _, pro := range r.professionals {
		if pro.BarbershopID == barbershopID {
			out = append(out, pro)
		}
	}
	sortProfessionals(out)
	return out, nil
}

func (r *MemoryRepository) ListProfessionalsByService(_ context.Context, barbershopID uint, serviceIDs []uint) ([]models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wanted := make(map[uint]struct{}, len(serviceIDs))
	for _, id := range serviceIDs {
		wanted[id] = struct{}{}
	}

	var out []models.Professional
	for _, pro := range r.professionals {
		if pro.BarbershopID != barbershopID || !pro.Active {
			continue
		}
		for _, sid := range r.offers[pro.ID] {
			if _, ok := wanted[sid]; ok {
				out = append(out, pro)
				break
			}
		}
	}
	sortProfessionals(out)
	return out, nil
}

func (r *MemoryRepository) ListWorkingHours(_ context.Context, professionalID uint) ([]models.WorkingHours, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := append([]models.WorkingHours(nil), r.hours[professionalID]...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DayOfWeek != out[j].DayOfWeek {
			return out[i].DayOfWeek < out[j].DayOfWeek
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (r *MemoryRepository) ReplaceWorkingHours(_ context.Context, professionalID uint, entries []models.WorkingHours) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	replaced := make([]models.WorkingHours, 0, len(entries))
	for _, e := range entries {
		e.ID = r.id()
		e.ProfessionalID = professionalID
		replaced = append(replaced, e)
	}
	r.hours[professionalID] = replaced
	return nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *MemoryRepository) GetServices(_ context.Context, ids []uint) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.servicesByID(ids), nil
}

func (r *MemoryRepository) ListActiveServices(_ context.Context, barbershopID uint) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Service
	for _, svc := range r.services {
		if svc.BarbershopID == barbershopID && svc.Active {
			out = append(out, svc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) servicesByID(ids []uint) []models.Service {
	seen := make(map[uint]struct{}, len(ids))
	var out []models.Service
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if svc, ok := r.services[id]; ok {
			out = append(out, svc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *MemoryRepository) FindClientByPhone(_ context.Context, barbershopID uint, phone string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.clientByPhone(barbershopID, phone); ok {
		return &c, nil
	}
	return nil, domain.ErrRecordNotFound
}

func (r *MemoryRepository) GetOrCreateClient(_ context.Context, barbershopID uint, name, phone string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.clientByPhone(barbershopID, phone); ok {
		return &c, nil
	}

	c := models.Client{
		ID:           r.id(),
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
	}
	r.clients[c.ID] = c
	return &c, nil
}

func (r *MemoryRepository) clientByPhone(barbershopID uint, phone string) (models.Client, bool) {
	for _, c := range r.clients {
		if c.BarbershopID == barbershopID && c.Phone == phone {
			return c, true
		}
	}
	return models.Client{}, false
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *MemoryRepository) ListActiveBookingsForDay(_ context.Context, professionalID uint, from, to time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProfessionalID != professionalID || b.Status != models.BookingActive {
			continue
		}
		if domain.Overlaps(b.StartTime, b.EndTime, from, to) {
			out = append(out, b)
		}
	}
	sortBookings(out)
	return out, nil
}

func (r *MemoryRepository) ListBookings(_ context.Context, q domain.BookingQuery) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status != models.BookingActive {
			continue
		}
		if q.ProfessionalID != 0 && b.ProfessionalID != q.ProfessionalID {
			continue
		}
		if q.ClientID != 0 && b.ClientID != q.ClientID {
			continue
		}
		if q.BarbershopID != 0 && r.professionals[b.ProfessionalID].BarbershopID != q.BarbershopID {
			continue
		}
		if !q.From.IsZero() && b.StartTime.Before(q.From) {
			continue
		}
		if !q.To.IsZero() && !b.StartTime.Before(q.To) {
			continue
		}

		b.Client = r.clients[b.ClientID]
		b.Professional = r.professionals[b.ProfessionalID]
		b.Services = r.servicesByID(serviceIDs(b.Services))
		out = append(out, b)
	}
	sortBookings(out)
	return out, nil
}

func (r *MemoryRepository) CommitBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.bookings {
		if existing.ProfessionalID != b.ProfessionalID || existing.Status != models.BookingActive {
			continue
		}
		if domain.Overlaps(existing.StartTime, existing.EndTime, b.StartTime, b.EndTime) {
			return domain.ErrSlotConflict
		}
	}

	b.ID = r.id()
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt

	stored := *b
	stored.Services = append([]models.Service(nil), b.Services...)
	r.bookings[b.ID] = stored
	return nil
}

func (r *MemoryRepository) CancelBookings(_ context.Context, f domain.CancelFilter, now time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[uint]struct{}, len(f.IDs))
	var out []models.Booking
	for _, id := range f.IDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		b, ok := r.bookings[id]
		if !ok {
			continue
		}
		if f.ClientID != nil && b.ClientID != *f.ClientID {
			continue
		}
		if f.BarbershopID != 0 && r.professionals[b.ProfessionalID].BarbershopID != f.BarbershopID {
			continue
		}
		if !domain.Cancel(&b, now) {
			continue
		}
		b.UpdatedAt = now
		r.bookings[id] = b
		out = append(out, b)
	}
	sortBookings(out)
	return out, nil
}

func serviceIDs(services []models.Service) []uint {
	ids := make([]uint, 0, len(services))
	for _, s := range services {
		ids = append(ids, s.ID)
	}
	return ids
}

func sortBookings(bs []models.Booking) {
	sort.Slice(bs, func(i, j int) bool {
		if !bs[i].StartTime.Equal(bs[j].StartTime) {
			return bs[i].StartTime.Before(bs[j].StartTime)
		}
		return bs[i].ID < bs[j].ID
	})
}

func sortProfessionals(ps []models.Professional) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Name != ps[j].Name {
			return ps[i].Name < ps[j].Name
		}
		return ps[i].ID < ps[j].ID
	})
}

var _ domain.Repository = (*MemoryRepository)(nil)
