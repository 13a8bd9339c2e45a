package booking

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID      uint
	SalonID     uint
	BarberID    *uint
	BookingTime string
	ServiceType string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateBooking(
	repo domain.Repository,
	audit audit.Recorder,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute validates the request shape only. The user, salon and barber are
// not looked up and the slot is not checked for conflicts.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if in.UserID == 0 {
		return nil, httperr.ErrRequired("user_id")
	}
	if in.SalonID == 0 {
		return nil, httperr.ErrRequired("salon_id")
	}
	if strings.TrimSpace(in.BookingTime) == "" {
		return nil, httperr.ErrRequired("booking_time")
	}

	at, err := timezone.ParseISO(in.BookingTime)
	if err != nil {
		return nil, httperr.ErrInvalid("booking_time", "booking_time must be an ISO-8601 date or datetime")
	}

	b := &models.Booking{
		UserID:      in.UserID,
		SalonID:     in.SalonID,
		BarberID:    in.BarberID,
		BookingTime: at,
		Status:      string(domain.InitialStatus()),
		ServiceType: strings.TrimSpace(in.ServiceType),
		Notes:       in.Notes,
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  &b.SalonID,
		UserID:   &b.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
