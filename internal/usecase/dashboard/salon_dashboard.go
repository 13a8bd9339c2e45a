package dashboard

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

type SalonDashboard struct {
	salons   salon.Repository
	bookings booking.Repository
}

func NewSalonDashboard(
	salons salon.Repository,
	bookings booking.Repository,
) *SalonDashboard {
	return &SalonDashboard{
		salons:   salons,
		bookings: bookings,
	}
}

// Execute summarises the salon's day, its Monday-start week and its pending
// queue, all relative to now in the application timezone.
func (uc *SalonDashboard) Execute(
	ctx context.Context,
	salonID uint,
	now time.Time,
) (dto.SalonDashboardDTO, error) {

	s, err := uc.salons.GetByID(ctx, salonID)
	if err != nil {
		return dto.SalonDashboardDTO{}, httperr.NotFoundOr(err, "salon")
	}

	scope := booking.Filter{SalonID: &s.ID}

	today, err := uc.bookings.List(ctx, booking.DayWindow(now).Filter(scope))
	if err != nil {
		return dto.SalonDashboardDTO{}, err
	}

	weekCount, err := uc.bookings.Count(ctx, booking.WeekWindow(now).Filter(scope))
	if err != nil {
		return dto.SalonDashboardDTO{}, err
	}

	pendingFilter := scope
	pendingFilter.Status = string(booking.StatusPending)

	pending, err := uc.bookings.List(ctx, pendingFilter)
	if err != nil {
		return dto.SalonDashboardDTO{}, err
	}

	return dto.SalonDashboardDTO{
		SalonName:            s.Name,
		TodayBookingsCount:   int64(len(today)),
		WeekBookingsCount:    weekCount,
		PendingBookingsCount: int64(len(pending)),
		TodayBookings:        dto.Bookings(today, dto.SalonBooking),
		PendingBookings:      dto.Bookings(pending, dto.SalonBooking),
	}, nil
}
