package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

type Repository interface {
	// -------- Booking (write) --------
	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateStatus(
		ctx context.Context,
		id uint,
		status string,
	) error

	// -------- Booking (read) --------
	List(
		ctx context.Context,
		f Filter,
	) ([]Row, error)

	Count(
		ctx context.Context,
		f Filter,
	) (int64, error)

	// Page lists bookings newest booking_time first.
	Page(
		ctx context.Context,
		f Filter,
		p pagination.Params,
	) ([]Row, int64, error)

	BookingTimes(
		ctx context.Context,
		f Filter,
	) ([]time.Time, error)
}
