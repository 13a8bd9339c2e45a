package dto

import "github.com/BruksfildServices01/salon-booking/internal/models"

type BarberDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type SalonPublicDTO struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	Description string      `json:"description"`
	Barbers     []BarberDTO `json:"barbers"`
}

// OwnedSalonDTO is what an owner sees of their own salon.
type OwnedSalonDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Description string `json:"description"`
	IsApproved  bool   `json:"is_approved"`
}

func Barber(b models.Barber) BarberDTO {
	return BarberDTO{ID: b.ID, Name: b.Name, Specialty: b.Specialty}
}

func Barbers(in []models.Barber) []BarberDTO {
	out := make([]BarberDTO, 0, len(in))
	for _, b := range in {
		out = append(out, Barber(b))
	}
	return out
}

func SalonPublic(s models.Salon) SalonPublicDTO {
	return SalonPublicDTO{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		Phone:       s.Phone,
		Description: s.Description,
		Barbers:     Barbers(s.Barbers),
	}
}

func OwnedSalon(s models.Salon) OwnedSalonDTO {
	return OwnedSalonDTO{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		Phone:       s.Phone,
		Email:       s.Email,
		Description: s.Description,
		IsApproved:  s.IsApproved,
	}
}
