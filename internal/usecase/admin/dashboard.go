package admin

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
)

const recentDays = 7

type Dashboard struct {
	users    user.Repository
	salons   salon.Repository
	bookings booking.Repository
}

func NewDashboard(
	users user.Repository,
	salons salon.Repository,
	bookings booking.Repository,
) *Dashboard {
	return &Dashboard{
		users:    users,
		salons:   salons,
		bookings: bookings,
	}
}

// Execute reports global totals. Recent users are those registered in the
// last 7 days; recent bookings are those whose booking_time is within or
// after that window.
func (uc *Dashboard) Execute(ctx context.Context, now time.Time) (dto.AdminDashboardDTO, error) {
	var (
		out      dto.AdminDashboardDTO
		err      error
		approved = true
		pending  = false
		since    = now.AddDate(0, 0, -recentDays).UTC()
	)

	if out.TotalUsers, err = uc.users.Count(ctx, user.Filter{}); err != nil {
		return out, err
	}
	if out.TotalSalons, err = uc.salons.Count(ctx, salon.Filter{}); err != nil {
		return out, err
	}
	if out.ApprovedSalons, err = uc.salons.Count(ctx, salon.Filter{Approved: &approved}); err != nil {
		return out, err
	}
	if out.PendingSalons, err = uc.salons.Count(ctx, salon.Filter{Approved: &pending}); err != nil {
		return out, err
	}
	if out.TotalBookings, err = uc.bookings.Count(ctx, booking.Filter{}); err != nil {
		return out, err
	}
	if out.RecentUsers, err = uc.users.Count(ctx, user.Filter{CreatedSince: &since}); err != nil {
		return out, err
	}
	if out.RecentBookings, err = uc.bookings.Count(ctx, booking.Since(now, recentDays)); err != nil {
		return out, err
	}

	return out, nil
}
