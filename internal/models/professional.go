package models

import "time"

type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint        `gorm:"index" json:"barbershop_id"`
	Barbershop   *Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barbershop,omitempty"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Email  string `gorm:"size:100" json:"email"`
	Phone  string `gorm:"size:20" json:"phone"`
	Active bool   `gorm:"default:true" json:"active"`

	WorkingHours []WorkingHours `gorm:"foreignKey:ProfessionalID" json:"working_hours,omitempty"`
	Services     []Service      `gorm:"many2many:professional_services;" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
