package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// BookingQuery selects active bookings with their services, client and
// professional loaded. Zero fields are not filtered on.
type BookingQuery struct {
	BarbershopID   uint
	ProfessionalID uint
	ClientID       uint
	From           time.Time
	To             time.Time
}

// CancelFilter restricts a bulk cancel. ClientID, when set, limits it to
// that client's bookings; a non-zero BarbershopID limits it to bookings
// with that barbershop's professionals.
type CancelFilter struct {
	IDs          []uint
	ClientID     *uint
	BarbershopID uint
}

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(ctx context.Context, id uint) (*models.Barbershop, error)
	GetBarbershopBySlug(ctx context.Context, slug string) (*models.Barbershop, error)

	// -------- Professional / schedule --------
	GetProfessional(ctx context.Context, id uint) (*models.Professional, error)
	ListProfessionals(ctx context.Context, barbershopID uint) ([]models.Professional, error)
	ListProfessionalsByService(ctx context.Context, barbershopID uint, serviceIDs []uint) ([]models.Professional, error)
	ListWorkingHours(ctx context.Context, professionalID uint) ([]models.WorkingHours, error)
	ReplaceWorkingHours(ctx context.Context, professionalID uint, entries []models.WorkingHours) error

	// -------- Service --------
	GetServices(ctx context.Context, ids []uint) ([]models.Service, error)
	ListActiveServices(ctx context.Context, barbershopID uint) ([]models.Service, error)

	// -------- Client --------
	FindClientByPhone(ctx context.Context, barbershopID uint, phone string) (*models.Client, error)
	GetOrCreateClient(ctx context.Context, barbershopID uint, name, phone string) (*models.Client, error)

	// -------- Booking --------
	// ListActiveBookingsForDay returns active bookings of a professional
	// overlapping [from, to). Only times and status are guaranteed.
	ListActiveBookingsForDay(ctx context.Context, professionalID uint, from, to time.Time) ([]models.Booking, error)
	ListBookings(ctx context.Context, q BookingQuery) ([]models.Booking, error)

	// CommitBooking inserts b only if no active booking of the same
	// professional overlaps it, atomically. It returns ErrSlotConflict
	// otherwise.
	CommitBooking(ctx context.Context, b *models.Booking) error

	// CancelBookings moves matching active bookings to cancelled and returns
	// the ones it changed.
	CancelBookings(ctx context.Context, f CancelFilter, now time.Time) ([]models.Booking, error)
}
