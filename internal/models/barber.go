package models

type Barber struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:120;not null" json:"name"`
	Specialty string `gorm:"size:120" json:"specialty"`

	SalonID uint `gorm:"not null;index" json:"salon_id"`
}
