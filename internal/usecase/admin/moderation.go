package admin

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

// ModerateSalon sets the approval flag. Approving an approved salon, or
// rejecting a pending one, succeeds without change.
type ModerateSalon struct {
	salons salon.Repository
	audit  audit.Recorder
}

func NewModerateSalon(
	salons salon.Repository,
	audit audit.Recorder,
) *ModerateSalon {
	return &ModerateSalon{
		salons: salons,
		audit:  audit,
	}
}

func (uc *ModerateSalon) Approve(ctx context.Context, salonID uint) error {
	return uc.set(ctx, salonID, true)
}

func (uc *ModerateSalon) Reject(ctx context.Context, salonID uint) error {
	return uc.set(ctx, salonID, false)
}

func (uc *ModerateSalon) set(ctx context.Context, salonID uint, approved bool) error {
	s, err := uc.salons.GetByID(ctx, salonID)
	if err != nil {
		return httperr.NotFoundOr(err, "salon")
	}

	if err := uc.salons.SetApproval(ctx, s.ID, approved); err != nil {
		return err
	}

	action := "salon_rejected"
	if approved {
		action = "salon_approved"
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  &s.ID,
		Action:   action,
		Entity:   "salon",
		EntityID: &s.ID,
	})

	return nil
}
