package salon

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/pagination"
)

// ApprovalFilter values accepted by the admin listing.
const (
	FilterApproved = "approved"
	FilterPending  = "pending"
)

type Filter struct {
	Approved *bool
	OwnerID  *uint
}

// AdminRow is a salon with the owner name and related counts.
type AdminRow struct {
	ID            uint
	Name          string
	Address       string
	Phone         string
	Email         string
	IsApproved    bool
	OwnerName     string
	BarbersCount  int64
	BookingsCount int64
}

type Ranking struct {
	SalonID      uint
	SalonName    string
	BookingCount int64
}

type Repository interface {
	Create(
		ctx context.Context,
		s *models.Salon,
	) error

	// GetByID loads the salon with its barbers.
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	// List loads matching salons with their barbers, in storage order.
	List(
		ctx context.Context,
		f Filter,
	) ([]models.Salon, error)

	SetApproval(
		ctx context.Context,
		id uint,
		approved bool,
	) error

	Count(
		ctx context.Context,
		f Filter,
	) (int64, error)

	Page(
		ctx context.Context,
		f Filter,
		p pagination.Params,
	) ([]AdminRow, int64, error)

	// TopByBookings ranks salons that have at least one booking.
	TopByBookings(
		ctx context.Context,
		limit int,
	) ([]Ranking, error)
}

type BarberRepository interface {
	ListBySalon(
		ctx context.Context,
		salonID uint,
	) ([]models.Barber, error)

	Create(
		ctx context.Context,
		b *models.Barber,
	) error

	// GetForSalon only finds the barber when it belongs to salonID.
	GetForSalon(
		ctx context.Context,
		salonID uint,
		barberID uint,
	) (*models.Barber, error)

	Update(
		ctx context.Context,
		b *models.Barber,
	) error

	Delete(
		ctx context.Context,
		b *models.Barber,
	) error
}

// ParseApprovalFilter maps the admin status query value to a filter.
// Anything other than approved/pending lists every salon.
func ParseApprovalFilter(status string) Filter {
	var approved bool
	switch status {
	case FilterApproved:
		approved = true
	case FilterPending:
		approved = false
	default:
		return Filter{}
	}
	return Filter{Approved: &approved}
}
