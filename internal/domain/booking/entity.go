package booking

import "time"

// Row is a booking joined with the display names of its related entities.
// BarberName is nil when no barber is assigned or the barber was deleted.
type Row struct {
	ID          uint
	UserID      uint
	SalonID     uint
	BarberID    *uint
	UserName    string
	SalonName   string
	BarberName  *string
	BookingTime time.Time
	Status      string
	ServiceType string
	Notes       string
	CreatedAt   time.Time
}

// Filter narrows list and count queries. Zero values mean "any".
type Filter struct {
	UserID  *uint
	SalonID *uint
	Status  string
	From    *time.Time // inclusive, on booking_time
	To      *time.Time // exclusive, on booking_time
}

type DayCount struct {
	Date  string
	Count int64
}

// CompletionRate is completed/total*100, 0 when total is 0.
func CompletionRate(completed, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}
