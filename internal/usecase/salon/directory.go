package salon

import (
	"context"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

type ListApprovedSalons struct {
	repo domain.Repository
}

func NewListApprovedSalons(repo domain.Repository) *ListApprovedSalons {
	return &ListApprovedSalons{repo: repo}
}

func (uc *ListApprovedSalons) Execute(ctx context.Context) ([]dto.SalonPublicDTO, error) {
	approved := true

	salons, err := uc.repo.List(ctx, domain.Filter{Approved: &approved})
	if err != nil {
		return nil, err
	}

	out := make([]dto.SalonPublicDTO, 0, len(salons))
	for _, s := range salons {
		out = append(out, dto.SalonPublic(s))
	}
	return out, nil
}

// GetSalon returns the public detail of any salon, approved or not.
type GetSalon struct {
	repo domain.Repository
}

func NewGetSalon(repo domain.Repository) *GetSalon {
	return &GetSalon{repo: repo}
}

func (uc *GetSalon) Execute(ctx context.Context, salonID uint) (dto.SalonPublicDTO, error) {
	s, err := uc.repo.GetByID(ctx, salonID)
	if err != nil {
		return dto.SalonPublicDTO{}, httperr.NotFoundOr(err, "salon")
	}
	return dto.SalonPublic(*s), nil
}
