package account

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

type Me struct {
	users  user.Repository
	salons salon.Repository
}

func NewMe(users user.Repository, salons salon.Repository) *Me {
	return &Me{users: users, salons: salons}
}

func (uc *Me) Execute(ctx context.Context, userID uint) (dto.MeDTO, error) {
	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return dto.MeDTO{}, httperr.NotFoundOr(err, "user")
	}

	owned, err := uc.salons.List(ctx, salon.Filter{OwnerID: &u.ID})
	if err != nil {
		return dto.MeDTO{}, err
	}

	out := dto.MeDTO{
		User:   dto.User(*u),
		Salons: make([]dto.OwnedSalonDTO, 0, len(owned)),
	}
	for _, s := range owned {
		out.Salons = append(out.Salons, dto.OwnedSalon(s))
	}
	return out, nil
}
