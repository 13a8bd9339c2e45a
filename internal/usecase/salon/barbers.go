package salon

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListBarbers struct {
	barbers domain.BarberRepository
}

func NewListBarbers(barbers domain.BarberRepository) *ListBarbers {
	return &ListBarbers{barbers: barbers}
}

// Execute returns an empty roster for an unknown salon.
func (uc *ListBarbers) Execute(ctx context.Context, salonID uint) ([]dto.BarberDTO, error) {
	barbers, err := uc.barbers.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	return dto.Barbers(barbers), nil
}

// ======================================================
// ADD
// ======================================================

type AddBarberInput struct {
	Name      string
	Specialty string
}

type AddBarber struct {
	salons  domain.Repository
	barbers domain.BarberRepository
	audit   audit.Recorder
}

func NewAddBarber(
	salons domain.Repository,
	barbers domain.BarberRepository,
	audit audit.Recorder,
) *AddBarber {
	return &AddBarber{
		salons:  salons,
		barbers: barbers,
		audit:   audit,
	}
}

func (uc *AddBarber) Execute(
	ctx context.Context,
	salonID uint,
	in AddBarberInput,
) (*models.Barber, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrRequired("name")
	}

	if _, err := uc.salons.GetByID(ctx, salonID); err != nil {
		return nil, httperr.NotFoundOr(err, "salon")
	}

	b := &models.Barber{
		Name:      name,
		Specialty: strings.TrimSpace(in.Specialty),
		SalonID:   salonID,
	}
	if err := uc.barbers.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  &salonID,
		Action:   "barber_added",
		Entity:   "barber",
		EntityID: &b.ID,
	})

	return b, nil
}

// ======================================================
// UPDATE
// ======================================================

// UpdateBarberInput is a partial update; nil fields are left unchanged.
type UpdateBarberInput struct {
	Name      *string
	Specialty *string
}

type UpdateBarber struct {
	barbers domain.BarberRepository
	audit   audit.Recorder
}

func NewUpdateBarber(
	barbers domain.BarberRepository,
	audit audit.Recorder,
) *UpdateBarber {
	return &UpdateBarber{
		barbers: barbers,
		audit:   audit,
	}
}

func (uc *UpdateBarber) Execute(
	ctx context.Context,
	salonID uint,
	barberID uint,
	in UpdateBarberInput,
) (*models.Barber, error) {

	b, err := uc.barbers.GetForSalon(ctx, salonID, barberID)
	if err != nil {
		return nil, httperr.NotFoundOr(err, "barber")
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, httperr.ErrInvalid("name", "name cannot be empty")
		}
		b.Name = name
	}
	if in.Specialty != nil {
		b.Specialty = strings.TrimSpace(*in.Specialty)
	}

	if err := uc.barbers.Update(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  &salonID,
		Action:   "barber_updated",
		Entity:   "barber",
		EntityID: &b.ID,
	})

	return b, nil
}

// ======================================================
// DELETE
// ======================================================

// DeleteBarber removes the barber at once. Bookings that reference it keep
// the id and list with a null barber name.
type DeleteBarber struct {
	barbers domain.BarberRepository
	audit   audit.Recorder
}

func NewDeleteBarber(
	barbers domain.BarberRepository,
	audit audit.Recorder,
) *DeleteBarber {
	return &DeleteBarber{
		barbers: barbers,
		audit:   audit,
	}
}

func (uc *DeleteBarber) Execute(
	ctx context.Context,
	salonID uint,
	barberID uint,
) error {

	b, err := uc.barbers.GetForSalon(ctx, salonID, barberID)
	if err != nil {
		return httperr.NotFoundOr(err, "barber")
	}

	if err := uc.barbers.Delete(ctx, b); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  &salonID,
		Action:   "barber_deleted",
		Entity:   "barber",
		EntityID: &barberID,
		Metadata: map[string]string{"name": b.Name},
	})

	return nil
}
