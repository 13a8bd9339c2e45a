package booking

import (
	"context"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
)

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

// Execute returns an empty list for an unknown user.
func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.BookingListDTO, error) {

	rows, err := uc.repo.List(ctx, domain.Filter{UserID: &userID})
	if err != nil {
		return nil, err
	}
	return dto.Bookings(rows, dto.UserBooking), nil
}

type ListSalonBookings struct {
	repo domain.Repository
}

func NewListSalonBookings(repo domain.Repository) *ListSalonBookings {
	return &ListSalonBookings{repo: repo}
}

func (uc *ListSalonBookings) Execute(
	ctx context.Context,
	salonID uint,
) ([]dto.BookingListDTO, error) {

	rows, err := uc.repo.List(ctx, domain.Filter{SalonID: &salonID})
	if err != nil {
		return nil, err
	}
	return dto.Bookings(rows, dto.SalonBooking), nil
}
