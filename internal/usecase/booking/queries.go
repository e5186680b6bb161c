package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// BookingList carries the location the bookings should be shown in.
type BookingList struct {
	Location *time.Location
	Bookings []models.Booking
}

// ======================================================
// Bookings of a professional on a civil day
// ======================================================

type ListBookingsByDay struct {
	repo domain.Repository
}

func NewListBookingsByDay(repo domain.Repository) *ListBookingsByDay {
	return &ListBookingsByDay{repo: repo}
}

// Execute lists the professional's active bookings on date. barbershopID,
// when non-zero, must own the professional.
func (uc *ListBookingsByDay) Execute(
	ctx context.Context,
	barbershopID uint,
	professionalID uint,
	date string,
) (*BookingList, error) {

	pro, loc, err := loadProfessional(ctx, uc.repo, professionalID)
	if err != nil {
		return nil, err
	}
	if barbershopID != 0 && pro.BarbershopID != barbershopID {
		return nil, domain.ErrProfessionalNotFound
	}

	day, err := parseDay(date, loc)
	if err != nil {
		return nil, err
	}

	from, to := dayBounds(day)
	bookings, err := uc.repo.ListBookings(ctx, domain.BookingQuery{
		ProfessionalID: pro.ID,
		From:           from,
		To:             to,
	})
	if err != nil {
		return nil, err
	}
	return &BookingList{Location: loc, Bookings: bookings}, nil
}

// ======================================================
// Upcoming bookings of a client, by phone
// ======================================================

type ListBookingsByPhone struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListBookingsByPhone(repo domain.Repository, clock timezone.Clock) *ListBookingsByPhone {
	return &ListBookingsByPhone{repo: repo, clock: clock}
}

// Execute returns the active bookings starting from now of the client
// with phone. An unknown phone yields an empty list.
func (uc *ListBookingsByPhone) Execute(
	ctx context.Context,
	slug string,
	phone string,
) (*BookingList, error) {

	digits, err := NormalizePhone(phone)
	if err != nil {
		return nil, err
	}

	shop, err := loadBarbershopBySlug(ctx, uc.repo, slug)
	if err != nil {
		return nil, err
	}

	out := &BookingList{
		Location: timezone.Location(shop.Timezone),
		Bookings: []models.Booking{},
	}

	client, err := uc.repo.FindClientByPhone(ctx, shop.ID, digits)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return out, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find client: %w", err)
	}

	out.Bookings, err = uc.repo.ListBookings(ctx, domain.BookingQuery{
		BarbershopID: shop.ID,
		ClientID:     client.ID,
		From:         uc.clock.Now(),
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ======================================================
// Catalogue
// ======================================================

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(ctx context.Context, slug string) ([]models.Service, error) {
	shop, err := loadBarbershopBySlug(ctx, uc.repo, slug)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListActiveServices(ctx, shop.ID)
}

type ListProfessionalsByService struct {
	repo domain.Repository
}

func NewListProfessionalsByService(repo domain.Repository) *ListProfessionalsByService {
	return &ListProfessionalsByService{repo: repo}
}

// Execute lists active professionals offering at least one of serviceIDs,
// or every active professional when serviceIDs is empty.
func (uc *ListProfessionalsByService) Execute(
	ctx context.Context,
	slug string,
	serviceIDs []uint,
) ([]models.Professional, error) {

	shop, err := loadBarbershopBySlug(ctx, uc.repo, slug)
	if err != nil {
		return nil, err
	}

	ids := uniqueIDs(serviceIDs)
	if len(ids) > 0 {
		return uc.repo.ListProfessionalsByService(ctx, shop.ID, ids)
	}

	all, err := uc.repo.ListProfessionals(ctx, shop.ID)
	if err != nil {
		return nil, err
	}

	active := make([]models.Professional, 0, len(all))
	for _, p := range all {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}
