package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

type SalonGormRepository struct {
	db *gorm.DB
}

func NewSalonGormRepository(db *gorm.DB) *SalonGormRepository {
	return &SalonGormRepository{db: db}
}

func orderedBarbers(db *gorm.DB) *gorm.DB {
	return db.Order("barbers.id ASC")
}

func (r *SalonGormRepository) Create(
	ctx context.Context,
	s *models.Salon,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error
}

func (r *SalonGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var s models.Salon
	if err := r.db.WithContext(ctx).
		Preload("Barbers", orderedBarbers).
		First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SalonGormRepository) List(
	ctx context.Context,
	f domain.Filter,
) ([]models.Salon, error) {

	var salons []models.Salon
	q := applySalonFilter(r.db.WithContext(ctx).Model(&models.Salon{}), f)
	if err := q.
		Preload("Barbers", orderedBarbers).
		Order("salons.id ASC").
		Find(&salons).Error; err != nil {
		return nil, err
	}
	return salons, nil
}

func (r *SalonGormRepository) SetApproval(
	ctx context.Context,
	id uint,
	approved bool,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Where("id = ?", id).
		Update("is_approved", approved).
		Error
}

func (r *SalonGormRepository) Count(
	ctx context.Context,
	f domain.Filter,
) (int64, error) {

	var count int64
	q := applySalonFilter(r.db.WithContext(ctx).Model(&models.Salon{}), f)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SalonGormRepository) Page(
	ctx context.Context,
	f domain.Filter,
	p pagination.Params,
) ([]domain.AdminRow, int64, error) {

	total, err := r.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).
		Table("salons").
		Select(`
			salons.id,
			salons.name,
			salons.address,
			salons.phone,
			salons.email,
			salons.is_approved,
			COALESCE(users.username, '') AS owner_name,
			(SELECT COUNT(*) FROM barbers WHERE barbers.salon_id = salons.id) AS barbers_count,
			(SELECT COUNT(*) FROM bookings WHERE bookings.salon_id = salons.id) AS bookings_count`).
		Joins("LEFT JOIN users ON users.id = salons.owner_id")

	var rows []domain.AdminRow
	if err := applySalonFilter(q, f).
		Order("salons.id ASC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *SalonGormRepository) TopByBookings(
	ctx context.Context,
	limit int,
) ([]domain.Ranking, error) {

	var rows []domain.Ranking
	if err := r.db.WithContext(ctx).
		Table("salons").
		Select("salons.id AS salon_id, salons.name AS salon_name, COUNT(bookings.id) AS booking_count").
		Joins("JOIN bookings ON bookings.salon_id = salons.id").
		Group("salons.id, salons.name").
		Order("booking_count DESC, salons.id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func applySalonFilter(q *gorm.DB, f domain.Filter) *gorm.DB {
	if f.Approved != nil {
		q = q.Where("salons.is_approved = ?", *f.Approved)
	}
	if f.OwnerID != nil {
		q = q.Where("salons.owner_id = ?", *f.OwnerID)
	}
	return q
}

var _ domain.Repository = (*SalonGormRepository)(nil)
