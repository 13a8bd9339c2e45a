package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// BookingListDTO is one booking in a listing. Which of user_name and
// salon_name is present depends on the listing's scope; a present name is
// always emitted, even when empty.
type BookingListDTO struct {
	ID          uint      `json:"id"`
	UserName    *string   `json:"user_name,omitempty"`
	SalonName   *string   `json:"salon_name,omitempty"`
	BarberID    *uint     `json:"barber_id"`
	BarberName  *string   `json:"barber_name"`
	BookingTime time.Time `json:"booking_time"`
	Status      string    `json:"status"`
	ServiceType string    `json:"service_type"`
	Notes       string    `json:"notes"`
}

func bookingBase(r booking.Row) BookingListDTO {
	return BookingListDTO{
		ID:          r.ID,
		BarberID:    r.BarberID,
		BarberName:  r.BarberName,
		BookingTime: r.BookingTime.In(timezone.Default()),
		Status:      r.Status,
		ServiceType: r.ServiceType,
		Notes:       r.Notes,
	}
}

// UserBooking is the customer view: which salon, not which customer.
func UserBooking(r booking.Row) BookingListDTO {
	out := bookingBase(r)
	out.SalonName = &r.SalonName
	return out
}

// SalonBooking is the salon view: which customer, not which salon.
func SalonBooking(r booking.Row) BookingListDTO {
	out := bookingBase(r)
	out.UserName = &r.UserName
	return out
}

func AdminBooking(r booking.Row) BookingListDTO {
	out := bookingBase(r)
	out.UserName = &r.UserName
	out.SalonName = &r.SalonName
	return out
}

func Bookings(rows []booking.Row, fn func(booking.Row) BookingListDTO) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, fn(r))
	}
	return out
}
