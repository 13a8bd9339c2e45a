package salon

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

type RegisterSalonInput struct {
	Name        string
	Address     string
	Phone       string
	Email       string
	Description string
}

// RegisterSalon creates a salon owned by the caller. New salons wait for
// admin approval before they are listed publicly.
type RegisterSalon struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewRegisterSalon(
	repo domain.Repository,
	audit audit.Recorder,
) *RegisterSalon {
	return &RegisterSalon{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RegisterSalon) Execute(
	ctx context.Context,
	ownerID uint,
	in RegisterSalonInput,
) (*models.Salon, error) {

	s := &models.Salon{
		Name:        strings.TrimSpace(in.Name),
		Address:     strings.TrimSpace(in.Address),
		Phone:       strings.TrimSpace(in.Phone),
		Email:       validators.NormalizeEmail(in.Email),
		Description: strings.TrimSpace(in.Description),
		IsApproved:  false,
		OwnerID:     ownerID,
	}

	required := []struct{ field, value string }{
		{"name", s.Name},
		{"address", s.Address},
		{"phone", s.Phone},
		{"email", s.Email},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, httperr.ErrRequired(r.field)
		}
	}
	if !validators.IsEmail(s.Email) {
		return nil, httperr.ErrInvalid("email", "email must be a valid email address")
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrConflict(
				"salon_already_exists",
				"a salon with this name, phone or email already exists",
			)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  &s.ID,
		UserID:   &ownerID,
		Action:   "salon_registered",
		Entity:   "salon",
		EntityID: &s.ID,
	})

	return s, nil
}
