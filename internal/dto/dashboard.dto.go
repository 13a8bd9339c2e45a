package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
)

type SalonDashboardDTO struct {
	SalonName            string           `json:"salon_name"`
	TodayBookingsCount   int64            `json:"today_bookings_count"`
	WeekBookingsCount    int64            `json:"week_bookings_count"`
	PendingBookingsCount int64            `json:"pending_bookings_count"`
	TodayBookings        []BookingListDTO `json:"today_bookings"`
	PendingBookings      []BookingListDTO `json:"pending_bookings"`
}

type SalonAnalyticsDTO struct {
	TotalBookings     int64   `json:"total_bookings_30_days"`
	CompletedBookings int64   `json:"completed_bookings_30_days"`
	CancelledBookings int64   `json:"cancelled_bookings_30_days"`
	CompletionRate    float64 `json:"completion_rate"`
}

type AdminDashboardDTO struct {
	TotalUsers     int64 `json:"total_users"`
	TotalSalons    int64 `json:"total_salons"`
	ApprovedSalons int64 `json:"approved_salons"`
	PendingSalons  int64 `json:"pending_salons"`
	TotalBookings  int64 `json:"total_bookings"`
	RecentUsers    int64 `json:"recent_users_7_days"`
	RecentBookings int64 `json:"recent_bookings_7_days"`
}

type AdminUserDTO struct {
	ID            uint      `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"created_at"`
	BookingsCount int64     `json:"bookings_count"`
}

type AdminSalonDTO struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	IsApproved    bool   `json:"is_approved"`
	OwnerName     string `json:"owner_name"`
	BarbersCount  int64  `json:"barbers_count"`
	BookingsCount int64  `json:"bookings_count"`
}

type DailyBookingsDTO struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type TopSalonDTO struct {
	SalonID      uint   `json:"salon_id"`
	SalonName    string `json:"salon_name"`
	BookingCount int64  `json:"booking_count"`
}

type AdminAnalyticsDTO struct {
	DailyBookings []DailyBookingsDTO `json:"daily_bookings"`
	TopSalons     []TopSalonDTO      `json:"top_salons"`
}

func AdminUser(r user.AdminRow) AdminUserDTO {
	return AdminUserDTO{
		ID:            r.ID,
		Username:      r.Username,
		Email:         r.Email,
		CreatedAt:     r.CreatedAt.In(timezone.Default()),
		BookingsCount: r.BookingsCount,
	}
}

func AdminSalon(r salon.AdminRow) AdminSalonDTO {
	return AdminSalonDTO(r)
}

func TopSalon(r salon.Ranking) TopSalonDTO {
	return TopSalonDTO(r)
}
