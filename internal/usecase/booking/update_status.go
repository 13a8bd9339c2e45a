package booking

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit audit.Recorder,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute overwrites the status unconditionally. Setting the current value
// again succeeds.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	bookingID uint,
	status string,
) error {

	status = strings.TrimSpace(status)
	if status == "" {
		return httperr.ErrRequired("status")
	}

	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return httperr.NotFoundOr(err, "booking")
	}

	if err := uc.repo.UpdateStatus(ctx, b.ID, status); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  &b.SalonID,
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{
			"from": b.Status,
			"to":   status,
		},
	})

	return nil
}
