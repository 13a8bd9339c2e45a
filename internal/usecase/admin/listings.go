package admin

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

// ======================================================
// USERS
// ======================================================

type ListUsers struct {
	users user.Repository
}

func NewListUsers(users user.Repository) *ListUsers {
	return &ListUsers{users: users}
}

func (uc *ListUsers) Execute(
	ctx context.Context,
	p pagination.Params,
) (pagination.Page[dto.AdminUserDTO], error) {

	rows, total, err := uc.users.Page(ctx, p)
	if err != nil {
		return pagination.Page[dto.AdminUserDTO]{}, err
	}
	return pagination.Map(pagination.New(rows, total, p), dto.AdminUser), nil
}

// ======================================================
// SALONS
// ======================================================

type ListSalons struct {
	salons salon.Repository
}

func NewListSalons(salons salon.Repository) *ListSalons {
	return &ListSalons{salons: salons}
}

// Execute filters by status "approved" or "pending"; any other value lists
// every salon.
func (uc *ListSalons) Execute(
	ctx context.Context,
	status string,
	p pagination.Params,
) (pagination.Page[dto.AdminSalonDTO], error) {

	rows, total, err := uc.salons.Page(ctx, salon.ParseApprovalFilter(strings.TrimSpace(status)), p)
	if err != nil {
		return pagination.Page[dto.AdminSalonDTO]{}, err
	}
	return pagination.Map(pagination.New(rows, total, p), dto.AdminSalon), nil
}

// ======================================================
// BOOKINGS
// ======================================================

type ListBookings struct {
	bookings booking.Repository
}

func NewListBookings(bookings booking.Repository) *ListBookings {
	return &ListBookings{bookings: bookings}
}

// Execute lists newest booking_time first, optionally narrowed to an exact
// status.
func (uc *ListBookings) Execute(
	ctx context.Context,
	status string,
	p pagination.Params,
) (pagination.Page[dto.BookingListDTO], error) {

	f := booking.Filter{Status: strings.TrimSpace(status)}

	rows, total, err := uc.bookings.Page(ctx, f, p)
	if err != nil {
		return pagination.Page[dto.BookingListDTO]{}, err
	}
	return pagination.Map(pagination.New(rows, total, p), dto.AdminBooking), nil
}
