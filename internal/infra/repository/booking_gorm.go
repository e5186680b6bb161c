package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrRecordNotFound
	}
	return err
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *BookingGormRepository) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &shop, nil
}

func (r *BookingGormRepository) GetBarbershopBySlug(
	ctx context.Context,
	slug string,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&shop).Error; err != nil {
		return nil, notFound(err)
	}
	return &shop, nil
}

// --------------------------------------------------
// Professional / schedule
// --------------------------------------------------

func (r *BookingGormRepository) GetProfessional(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).
		Preload("Barbershop").
		Preload("WorkingHours").
		Preload("Services").
		First(&pro, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &pro, nil
}

func (r *BookingGormRepository) ListProfessionals(
	ctx context.Context,
	barbershopID uint,
) ([]models.Professional, error) {

	var pros []models.Professional
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		Order("name ASC").
		Find(&pros).Error; err != nil {
		return nil, err
	}
	return pros, nil
}

func (r *BookingGormRepository) ListProfessionalsByService(
	ctx context.Context,
	barbershopID uint,
	serviceIDs []uint,
) ([]models.Professional, error) {

	offering := r.db.
		Table("professional_services").
		Select("professional_id").
		Where("service_id IN ?", serviceIDs)

	var pros []models.Professional
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND active = ?", barbershopID, true).
		Where("id IN (?)", offering).
		Order("name ASC").
		Find(&pros).Error; err != nil {
		return nil, err
	}
	return pros, nil
}

func (r *BookingGormRepository) ListWorkingHours(
	ctx context.Context,
	professionalID uint,
) ([]models.WorkingHours, error) {

	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("day_of_week ASC, start_time ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

// ReplaceWorkingHours deletes every entry of the professional and creates
// entries in the same transaction.
func (r *BookingGormRepository) ReplaceWorkingHours(
	ctx context.Context,
	professionalID uint,
	entries []models.WorkingHours,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("professional_id = ?", professionalID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		if len(entries) == 0 {
			return nil
		}

		toCreate := make([]models.WorkingHours, 0, len(entries))
		for _, e := range entries {
			toCreate = append(toCreate, models.WorkingHours{
				ProfessionalID: professionalID,
				DayOfWeek:      e.DayOfWeek,
				StartTime:      e.StartTime,
				EndTime:        e.EndTime,
			})
		}
		return tx.Create(&toCreate).Error
	})
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetServices(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) ListActiveServices(
	ctx context.Context,
	barbershopID uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND active = ?", barbershopID, true).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) FindClientByPhone(
	ctx context.Context,
	barbershopID uint,
	phone string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND phone = ?", barbershopID, phone).
		First(&client).Error; err != nil {
		return nil, notFound(err)
	}
	return &client, nil
}

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	barbershopID uint,
	name string,
	phone string,
) (*models.Client, error) {

	client, err := r.FindClientByPhone(ctx, barbershopID, phone)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err
	}

	created := models.Client{
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
	}

	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		// lost a race with a concurrent request for the same phone
		if httperr.IsUniqueViolation(err) {
			return r.FindClientByPhone(ctx, barbershopID, phone)
		}
		return nil, err
	}

	return &created, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveBookingsForDay(
	ctx context.Context,
	professionalID uint,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "professional_id", "client_id", "start_time", "end_time", "status").
		Where(
			"professional_id = ? AND status = ? AND start_time < ? AND end_time > ?",
			professionalID, models.BookingActive, to, from,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	q domain.BookingQuery,
) ([]models.Booking, error) {

	tx := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Services").
		Where("bookings.status = ?", models.BookingActive)

	if q.ProfessionalID != 0 {
		tx = tx.Where("bookings.professional_id = ?", q.ProfessionalID)
	}
	if q.ClientID != 0 {
		tx = tx.Where("bookings.client_id = ?", q.ClientID)
	}
	if q.BarbershopID != 0 {
		tx = tx.Where(
			"bookings.professional_id IN (?)",
			r.db.WithContext(ctx).Model(&models.Professional{}).Select("id").Where("barbershop_id = ?", q.BarbershopID),
		)
	}
	if !q.From.IsZero() {
		tx = tx.Where("bookings.start_time >= ?", q.From)
	}
	if !q.To.IsZero() {
		tx = tx.Where("bookings.start_time < ?", q.To)
	}

	var bookings []models.Booking
	if err := tx.Order("bookings.start_time ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// CommitBooking serialises commits per professional with a transaction-scoped
// advisory lock, so the overlap check and the insert see the same state.
// The bookings_no_overlap exclusion constraint backs this up.
func (r *BookingGormRepository) CommitBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?)",
			int64(b.ProfessionalID),
		).Error; err != nil {
			return fmt.Errorf("lock professional %d: %w", b.ProfessionalID, err)
		}

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Where(
				"professional_id = ? AND status = ? AND start_time < ? AND end_time > ?",
				b.ProfessionalID, models.BookingActive, b.EndTime, b.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return domain.ErrSlotConflict
		}

		return tx.
			Omit("Client", "Professional", "Services.*").
			Create(b).Error
	})

	if err != nil {
		if errors.Is(err, domain.ErrSlotConflict) || httperr.IsExclusionConflict(err) {
			return domain.ErrSlotConflict
		}
		return err
	}

	return nil
}

// cancellableBookings selects, and row-locks, the active bookings matched
// by f with their services, so cancellation events carry service ids.
func cancellableBookings(tx *gorm.DB, f domain.CancelFilter) *gorm.DB {
	q := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Services").
		Where("id IN ? AND status = ?", f.IDs, models.BookingActive)
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.BarbershopID != 0 {
		q = q.Where(
			"professional_id IN (?)",
			tx.Model(&models.Professional{}).Select("id").Where("barbershop_id = ?", f.BarbershopID),
		)
	}
	return q
}

func (r *BookingGormRepository) CancelBookings(
	ctx context.Context,
	f domain.CancelFilter,
	now time.Time,
) ([]models.Booking, error) {

	var cancelled []models.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := cancellableBookings(tx, f).Find(&cancelled).Error; err != nil {
			return err
		}
		if len(cancelled) == 0 {
			return nil
		}

		ids := make([]uint, 0, len(cancelled))
		for _, b := range cancelled {
			ids = append(ids, b.ID)
		}

		return tx.
			Model(&models.Booking{}).
			Where("id IN ?", ids).
			Updates(map[string]any{
				"status":       models.BookingCancelled,
				"cancelled_at": now,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	for i := range cancelled {
		domain.Cancel(&cancelled[i], now)
	}
	return cancelled, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
