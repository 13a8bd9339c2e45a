package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// Display names come from LEFT JOINs so that bookings pointing at a deleted
// barber (or an id that never existed) still list, with a NULL name.
const bookingRowColumns = `
	bookings.id,
	bookings.user_id,
	bookings.salon_id,
	bookings.barber_id,
	COALESCE(users.username, '') AS user_name,
	COALESCE(salons.name, '') AS salon_name,
	barbers.name AS barber_name,
	bookings.booking_time,
	bookings.status,
	COALESCE(bookings.service_type, '') AS service_type,
	COALESCE(bookings.notes, '') AS notes,
	bookings.created_at`

// --------------------------------------------------
// Booking (write)
// --------------------------------------------------

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
}

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateStatus(
	ctx context.Context,
	id uint,
	status string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) List(
	ctx context.Context,
	f domain.Filter,
) ([]domain.Row, error) {

	var rows []domain.Row
	if err := r.rows(ctx, f).
		Order("bookings.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingGormRepository) Count(
	ctx context.Context,
	f domain.Filter,
) (int64, error) {

	var count int64
	q := applyBookingFilter(r.db.WithContext(ctx).Model(&models.Booking{}), f)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingGormRepository) Page(
	ctx context.Context,
	f domain.Filter,
	p pagination.Params,
) ([]domain.Row, int64, error) {

	total, err := r.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	var rows []domain.Row
	if err := r.rows(ctx, f).
		Order("bookings.booking_time DESC, bookings.id DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *BookingGormRepository) BookingTimes(
	ctx context.Context,
	f domain.Filter,
) ([]time.Time, error) {

	var times []time.Time
	q := applyBookingFilter(r.db.WithContext(ctx).Model(&models.Booking{}), f)
	if err := q.
		Order("bookings.booking_time ASC").
		Pluck("bookings.booking_time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

func (r *BookingGormRepository) rows(ctx context.Context, f domain.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).
		Table("bookings").
		Select(bookingRowColumns).
		Joins("LEFT JOIN users ON users.id = bookings.user_id").
		Joins("LEFT JOIN salons ON salons.id = bookings.salon_id").
		Joins("LEFT JOIN barbers ON barbers.id = bookings.barber_id")

	return applyBookingFilter(q, f)
}

func applyBookingFilter(q *gorm.DB, f domain.Filter) *gorm.DB {
	if f.UserID != nil {
		q = q.Where("bookings.user_id = ?", *f.UserID)
	}
	if f.SalonID != nil {
		q = q.Where("bookings.salon_id = ?", *f.SalonID)
	}
	if f.Status != "" {
		q = q.Where("bookings.status = ?", f.Status)
	}
	if f.From != nil {
		q = q.Where("bookings.booking_time >= ?", f.From.UTC())
	}
	if f.To != nil {
		q = q.Where("bookings.booking_time < ?", f.To.UTC())
	}
	return q
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
