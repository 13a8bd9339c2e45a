package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	SalonID uint  `gorm:"not null;index" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	// No association on purpose: deleting a barber keeps the stale id here.
	BarberID *uint `gorm:"index" json:"barber_id"`

	BookingTime time.Time `gorm:"not null;index" json:"booking_time"`
	Status      string    `gorm:"size:50;not null;default:'pending';index" json:"status"`
	ServiceType string    `gorm:"size:100" json:"service_type"`
	Notes       string    `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
