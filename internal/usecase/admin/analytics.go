package admin

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
)

const (
	trendDays     = 30
	topSalonLimit = 5
)

type Analytics struct {
	salons   salon.Repository
	bookings booking.Repository
}

func NewAnalytics(
	salons salon.Repository,
	bookings booking.Repository,
) *Analytics {
	return &Analytics{
		salons:   salons,
		bookings: bookings,
	}
}

func (uc *Analytics) Execute(ctx context.Context, now time.Time) (dto.AdminAnalyticsDTO, error) {
	times, err := uc.bookings.BookingTimes(ctx, booking.Since(now, trendDays))
	if err != nil {
		return dto.AdminAnalyticsDTO{}, err
	}

	top, err := uc.salons.TopByBookings(ctx, topSalonLimit)
	if err != nil {
		return dto.AdminAnalyticsDTO{}, err
	}

	days := booking.GroupByDay(times)

	out := dto.AdminAnalyticsDTO{
		DailyBookings: make([]dto.DailyBookingsDTO, 0, len(days)),
		TopSalons:     make([]dto.TopSalonDTO, 0, len(top)),
	}
	for _, d := range days {
		out.DailyBookings = append(out.DailyBookings, dto.DailyBookingsDTO(d))
	}
	for _, r := range top {
		out.TopSalons = append(out.TopSalons, dto.TopSalon(r))
	}

	return out, nil
}
