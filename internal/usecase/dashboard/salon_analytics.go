package dashboard

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
)

const analyticsDays = 30

type SalonAnalytics struct {
	bookings booking.Repository
}

func NewSalonAnalytics(bookings booking.Repository) *SalonAnalytics {
	return &SalonAnalytics{bookings: bookings}
}

// Execute counts bookings whose booking_time falls in the trailing 30 days.
// An unknown salon reports zeros.
func (uc *SalonAnalytics) Execute(
	ctx context.Context,
	salonID uint,
	now time.Time,
) (dto.SalonAnalyticsDTO, error) {

	f := booking.Since(now, analyticsDays)
	f.SalonID = &salonID

	total, err := uc.bookings.Count(ctx, f)
	if err != nil {
		return dto.SalonAnalyticsDTO{}, err
	}

	f.Status = string(booking.StatusCompleted)
	completed, err := uc.bookings.Count(ctx, f)
	if err != nil {
		return dto.SalonAnalyticsDTO{}, err
	}

	f.Status = string(booking.StatusCancelled)
	cancelled, err := uc.bookings.Count(ctx, f)
	if err != nil {
		return dto.SalonAnalyticsDTO{}, err
	}

	return dto.SalonAnalyticsDTO{
		TotalBookings:     total,
		CompletedBookings: completed,
		CancelledBookings: cancelled,
		CompletionRate:    booking.CompletionRate(completed, total),
	}, nil
}
