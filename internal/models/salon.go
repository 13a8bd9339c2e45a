package models

import "time"

type Salon struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:120;uniqueIndex;not null" json:"name"`
	Address     string `gorm:"size:200;not null" json:"address"`
	Phone       string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Email       string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Description string `gorm:"type:text" json:"description"`
	IsApproved  bool   `gorm:"default:false;index" json:"is_approved"`

	OwnerID uint `gorm:"not null;index" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Barbers []Barber `gorm:"foreignKey:SalonID" json:"barbers,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
