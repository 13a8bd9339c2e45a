package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type BarberGormRepository struct {
	db *gorm.DB
}

func NewBarberGormRepository(db *gorm.DB) *BarberGormRepository {
	return &BarberGormRepository{db: db}
}

func (r *BarberGormRepository) ListBySalon(
	ctx context.Context,
	salonID uint,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *BarberGormRepository) Create(
	ctx context.Context,
	b *models.Barber,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BarberGormRepository) GetForSalon(
	ctx context.Context,
	salonID uint,
	barberID uint,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", barberID, salonID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BarberGormRepository) Update(
	ctx context.Context,
	b *models.Barber,
) error {
	return r.db.WithContext(ctx).
		Model(b).
		Select("name", "specialty").
		Updates(b).
		Error
}

// Delete removes the row only. Bookings keep their barber_id.
func (r *BarberGormRepository) Delete(
	ctx context.Context,
	b *models.Barber,
) error {
	return r.db.WithContext(ctx).Delete(b).Error
}

var _ domain.BarberRepository = (*BarberGormRepository)(nil)
