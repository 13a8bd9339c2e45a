package user

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

type Filter struct {
	CreatedSince *time.Time
}

type AdminRow struct {
	ID            uint
	Username      string
	Email         string
	CreatedAt     time.Time
	BookingsCount int64
}

type Repository interface {
	Create(
		ctx context.Context,
		u *models.User,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	Count(
		ctx context.Context,
		f Filter,
	) (int64, error)

	Page(
		ctx context.Context,
		p pagination.Params,
	) ([]AdminRow, int64, error)
}
