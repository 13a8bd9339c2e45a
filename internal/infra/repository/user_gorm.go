package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(u).Error
}

func (r *UserGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) Count(
	ctx context.Context,
	f domain.Filter,
) (int64, error) {

	q := r.db.WithContext(ctx).Model(&models.User{})
	if f.CreatedSince != nil {
		q = q.Where("users.created_at >= ?", f.CreatedSince.UTC())
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserGormRepository) Page(
	ctx context.Context,
	p pagination.Params,
) ([]domain.AdminRow, int64, error) {

	total, err := r.Count(ctx, domain.Filter{})
	if err != nil {
		return nil, 0, err
	}

	var rows []domain.AdminRow
	if err := r.db.WithContext(ctx).
		Table("users").
		Select(`
			users.id,
			users.username,
			users.email,
			users.created_at,
			(SELECT COUNT(*) FROM bookings WHERE bookings.user_id = users.id) AS bookings_count`).
		Order("users.id ASC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

var _ domain.Repository = (*UserGormRepository)(nil)
